package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kasirku/pos-backend-go/internal/config"
	appHTTP "github.com/kasirku/pos-backend-go/internal/handler/http"
	"github.com/kasirku/pos-backend-go/internal/pkg/database"
	"github.com/kasirku/pos-backend-go/internal/pkg/jwt"
	"github.com/kasirku/pos-backend-go/internal/pkg/watchdog"
	"github.com/kasirku/pos-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kasirku/pos-backend-go/internal/service/attendance"
	authService "github.com/kasirku/pos-backend-go/internal/service/auth"
	payrollService "github.com/kasirku/pos-backend-go/internal/service/payroll"
	scheduleService "github.com/kasirku/pos-backend-go/internal/service/schedule"
	shiftService "github.com/kasirku/pos-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "kasirku-pos"),
	)
	loc := cfg.Location()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, scheduleRepo, cfg.Attendance, loc)
	shiftSvc := shiftService.NewSessionService(db, sessionRepo, attendanceSvc, logger)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, scheduleRepo, employeeRepo, cfg.Payroll, loc, logger)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		shiftHandler,
		attendanceHandler,
		scheduleHandler,
		payrollHandler,
	)

	if cfg.Watchdog.Enabled {
		scheduler := watchdog.NewScheduler(logger)
		jobs := watchdog.NewStoreJobs(sessionRepo, attendanceRepo, cfg.Watchdog, logger, loc)
		jobs.RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down...")
	_ = server.Close()
}
