package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/shift"
	"github.com/kasirku/pos-backend-go/internal/pkg/database"
	"github.com/kasirku/pos-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

// TestMain connects once; the whole package is skipped when no test
// database is configured.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(0)
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn, 5, 1)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
	os.Exit(m.Run())
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"session_movements", "shift_sessions", "attendances", "shift_schedules", "payroll_records", "employees", "branches"} {
		_, err := testDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestBranch(t *testing.T, ctx context.Context) string {
	t.Helper()
	id := uuid.Must(uuid.NewV7()).String()
	_, err := testDB.Exec(ctx, `
		INSERT INTO branches (id, name, created_at, updated_at)
		VALUES ($1, 'Test Branch', NOW(), NOW())
	`, id)
	require.NoError(t, err)
	return id
}

func createTestEmployee(t *testing.T, ctx context.Context, branchID string) string {
	t.Helper()
	id := uuid.Must(uuid.NewV7()).String()
	_, err := testDB.Exec(ctx, `
		INSERT INTO employees (id, full_name, role, branch_id, pin_hash, base_salary, deduction_amount, join_date, active, created_at, updated_at)
		VALUES ($1, 'Test Cashier', 'cashier', $2, '', 3000000, 100000, '2026-01-01', true, NOW(), NOW())
	`, id, branchID)
	require.NoError(t, err)
	return id
}

func TestSessionRepository_OnlyOneOpenPerBranch(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	branchID := createTestBranch(t, ctx)
	employeeID := createTestEmployee(t, ctx, branchID)

	repo := postgresql.NewSessionRepository(testDB)

	session := shift.Session{
		BranchID:     branchID,
		OpenedBy:     employeeID,
		StartTime:    time.Now(),
		InitialCash:  100000,
		ExpectedCash: 100000,
		Status:       shift.StatusOpen,
	}
	first, err := repo.Create(ctx, session)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = repo.Create(ctx, session)
	assert.ErrorIs(t, err, shift.ErrSessionAlreadyOpen)

	// Closing releases the partial index and a new session can open.
	_, err = repo.Close(ctx, first.ID, employeeID, 100000, nil, time.Now())
	require.NoError(t, err)

	_, err = repo.Create(ctx, session)
	assert.NoError(t, err)
}

func TestSessionRepository_MovementArithmetic(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	branchID := createTestBranch(t, ctx)
	employeeID := createTestEmployee(t, ctx, branchID)

	repo := postgresql.NewSessionRepository(testDB)

	session, err := repo.Create(ctx, shift.Session{
		BranchID:     branchID,
		OpenedBy:     employeeID,
		StartTime:    time.Now(),
		InitialCash:  100000,
		ExpectedCash: 100000,
		Status:       shift.StatusOpen,
	})
	require.NoError(t, err)

	updated, err := repo.RecordMovement(ctx, shift.Movement{
		SessionID: session.ID,
		Kind:      shift.MovementSale,
		Method:    shift.PaymentCash,
		Amount:    25000,
	}, 25000)
	require.NoError(t, err)
	assert.Equal(t, int64(125000), updated.ExpectedCash)

	// Non-cash sale: ledger entry, no drawer change.
	updated, err = repo.RecordMovement(ctx, shift.Movement{
		SessionID: session.ID,
		Kind:      shift.MovementSale,
		Method:    shift.PaymentQRIS,
		Amount:    50000,
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(125000), updated.ExpectedCash)

	updated, err = repo.RecordMovement(ctx, shift.Movement{
		SessionID: session.ID,
		Kind:      shift.MovementExpense,
		Method:    shift.PaymentCash,
		Amount:    5000,
	}, -5000)
	require.NoError(t, err)
	assert.Equal(t, int64(120000), updated.ExpectedCash)

	movements, err := repo.ListMovements(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 3)

	// The statement itself derives the discrepancy from the live
	// expected cash: 118000 counted against 120000 expected.
	closed, err := repo.Close(ctx, session.ID, employeeID, 118000, nil, time.Now())
	require.NoError(t, err)
	require.NotNil(t, closed.Discrepancy)
	assert.Equal(t, int64(-2000), *closed.Discrepancy)

	// Movements against a closed session are refused.
	_, err = repo.RecordMovement(ctx, shift.Movement{
		SessionID: session.ID,
		Kind:      shift.MovementSale,
		Method:    shift.PaymentCash,
		Amount:    1000,
	}, 1000)
	assert.ErrorIs(t, err, shift.ErrSessionNotOpen)
}

func TestAttendanceRepository_OneRecordPerDay(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	branchID := createTestBranch(t, ctx)
	employeeID := createTestEmployee(t, ctx, branchID)

	repo := postgresql.NewAttendanceRepository(testDB)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkIn := date.Add(8 * time.Hour)
	record := attendance.Record{
		EmployeeID: employeeID,
		BranchID:   branchID,
		Date:       date,
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
		ShiftType:  "morning",
	}
	_, err := repo.Create(ctx, record)
	require.NoError(t, err)

	_, err = repo.Create(ctx, record)
	assert.ErrorIs(t, err, attendance.ErrRecordExists)

	found, err := repo.GetByEmployeeAndDate(ctx, employeeID, date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, attendance.StatusPresent, found.Status)
}
