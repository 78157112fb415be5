package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/presensiku/payroll-backend-go/internal/config"
	"github.com/presensiku/payroll-backend-go/internal/handler/http/middleware"
	"github.com/presensiku/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	attendanceHandler *AttendanceHandler,
	leaveHandler *LeaveHandler,
	overtimeHandler *OvertimeHandler,
	payrollHandler *PayrollHandler,
	holidayHandler *HolidayHandler,
	employeeHandler *EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.MyDay)
				r.Get("/my/summary", attendanceHandler.MySummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/day", attendanceHandler.ListDay)
					r.Get("/summary/{employeeID}", attendanceHandler.Summary)
					r.Put("/{id}", attendanceHandler.Edit)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.MyRequests)
				r.Get("/quota/my", leaveHandler.MyQuota)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.List)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
					r.Get("/quota", leaveHandler.QuotaAll)
					r.Get("/quota/{employeeID}", leaveHandler.Quota)
				})
			})

			r.Route("/overtimes", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Get("/my", overtimeHandler.MyRequests)
				r.Delete("/{id}", overtimeHandler.Withdraw)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", overtimeHandler.List)
					r.Post("/{id}/approve", overtimeHandler.Approve)
					r.Post("/{id}/reject", overtimeHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", payrollHandler.MyPeriod)
				r.Get("/my/daily", payrollHandler.MyDailyPay)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/recap", payrollHandler.Recap)
					r.Get("/{employeeID}", payrollHandler.EmployeePeriod)
					r.Get("/{employeeID}/daily", payrollHandler.DailyPay)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListYear)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Declare)
					r.Delete("/{id}", holidayHandler.Remove)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.Me)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
