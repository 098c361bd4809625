package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// tokenFromXAuthHeader reads the legacy x-auth-token header still sent by
// the admin frontend. Authorization: Bearer is accepted as well.
func tokenFromXAuthHeader(r *http.Request) string {
	return r.Header.Get("x-auth-token")
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, authHandler AuthHandler, employeeHandler EmployeeHandler, attendanceHandler AttendanceHandler, dashboardHandler DashboardHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-auth-token"},
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

	verifier := jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromHeader, tokenFromXAuthHeader)

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(verifier)
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Check-in surface used by the bot. Identity is the caller-supplied
		// Telegram id; mounted openly unless OPEN_CHECKIN is disabled.
		registerCheckIn := func(r chi.Router) {
			r.Post("/attendance/check-in", attendanceHandler.CheckIn)
			r.Post("/attendance/check-out", attendanceHandler.CheckOut)
			r.Get("/attendance/today", attendanceHandler.Today)
			r.Get("/employees/telegram/{telegramId}", employeeHandler.GetByTelegramID)
		}
		if cfg.Attendance.OpenCheckIn {
			r.Group(registerCheckIn)
		} else {
			r.Group(func(r chi.Router) {
				r.Use(verifier)
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				registerCheckIn(r)
			})
		}

		// Admin panel, HR and admin roles only
		r.Group(func(r chi.Router) {
			r.Use(verifier)
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.RequireHR)

			r.Get("/employees", employeeHandler.List)
			r.Post("/employees", employeeHandler.Create)
			r.Get("/employees/{id}", employeeHandler.Get)
			r.Put("/employees/{id}", employeeHandler.Update)
			r.Delete("/employees/{id}", employeeHandler.Deactivate)
			r.Get("/employees/{id}/attendance", attendanceHandler.ListByEmployee)

			r.Get("/attendance", attendanceHandler.List)
			r.Get("/attendance/{id}", attendanceHandler.Get)
			r.Put("/attendance/{id}", attendanceHandler.Correct)

			r.Get("/dashboard/stats", dashboardHandler.GetStats)
		})
	})

	return r
}
