package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-management/internal/activity"
	"github.com/frahmantamala/employee-management/internal/attendance"
	"github.com/frahmantamala/employee-management/internal/dashboard"
	"github.com/frahmantamala/employee-management/internal/employee"
	"github.com/frahmantamala/employee-management/internal/shift"
	"github.com/frahmantamala/employee-management/internal/transport/middleware"
	"github.com/frahmantamala/employee-management/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, employeeHandler *employee.Handler, shiftHandler *shift.Handler, attendanceHandler *attendance.Handler, dashboardHandler *dashboard.Handler, activityHandler *activity.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if employeeHandler != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Post("/", employeeHandler.CreateEmployee)
				er.Get("/", employeeHandler.ListEmployees)
				er.Get("/gender-distribution", employeeHandler.GetGenderDistribution)
				er.Get("/{id}", employeeHandler.GetEmployee)
				er.Put("/{id}", employeeHandler.UpdateEmployee)
				er.Delete("/{id}", employeeHandler.DeleteEmployee)
			})
		}

		if shiftHandler != nil {
			r.Route("/shifts", func(sr chi.Router) {
				sr.Post("/", shiftHandler.AssignShift)
				sr.Get("/", shiftHandler.ListShifts)
			})
		}

		if attendanceHandler != nil {
			r.Route("/attendance", func(ar chi.Router) {
				ar.Post("/", attendanceHandler.MarkAttendance)
				ar.Get("/", attendanceHandler.GetAttendanceForDate)
				ar.Get("/trend", attendanceHandler.GetAttendanceTrend)
			})
		}

		if dashboardHandler != nil {
			r.Get("/dashboard/summary", dashboardHandler.GetSummary)
		}

		if activityHandler != nil {
			r.Get("/activities", activityHandler.GetRecentActivity)
		}
	})
}
