package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/kasirku/pos-backend-go/internal/config"
	"github.com/kasirku/pos-backend-go/internal/handler/http/middleware"
	"github.com/kasirku/pos-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kasirku-pos"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/pin-login", authHandler.PINLogin)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/open", shiftHandler.Open)
				r.Get("/status", shiftHandler.Status)
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/transactions", shiftHandler.RecordTransaction)
					r.Post("/expenses", shiftHandler.RecordExpense)
					r.Post("/close", shiftHandler.Close)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/today", attendanceHandler.Today)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", attendanceHandler.List)
					r.Post("/", attendanceHandler.CreateManual)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.QueryWeek)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/", scheduleHandler.UpsertWeek)
				})
			})

			// Manager only
			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", payrollHandler.ComputeMonth)
				r.Post("/finalize", payrollHandler.Finalize)
				r.Post("/reset", payrollHandler.Reset)
			})
		})
	})
	return r
}
