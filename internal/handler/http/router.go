package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(jwtService jwt.Service, env string, leaveHandler LeaveHandler, retroHandler RetroHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-adjust"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
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

			r.Route("/leave", func(r chi.Router) {
				r.Get("/summary", leaveHandler.GetPayrollSummary)
				r.Post("/transactions", leaveHandler.SaveTransactions)
			})

			r.Get("/payroll-runs/{runID}/leave-transactions", leaveHandler.GetRunTransactions)

			r.Route("/retro", func(r chi.Router) {
				r.Post("/configs/{configID}/generate", retroHandler.Generate)
				r.Get("/pending", retroHandler.GetPendingAmounts)
				r.Get("/pending/employee/{employeeID}", retroHandler.GetEmployeePending)
				r.Post("/processed", retroHandler.MarkProcessed)
			})
		})
	})

	return r
}
