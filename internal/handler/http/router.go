package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/learnhub-center/backoffice/internal/domain/access"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	"github.com/learnhub-center/backoffice/internal/handler/http/middleware"
	"github.com/learnhub-center/backoffice/internal/pkg/jwt"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	staffRepository staff.StaffRepository,
	accessHandler AccessHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.Actor(JWTService, staffRepository))

			r.Get("/me/permissions", accessHandler.MyPermissions)

			r.Route("/access", func(r chi.Router) {
				r.With(middleware.RequirePermission(access.ModuleSettings, access.ActionView)).
					Get("/roles/{role}/modules/{module}", accessHandler.LookupCapability)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/balance", func(r chi.Router) {
					r.Use(middleware.RequirePermission(access.ModuleLeaveRequests, access.ActionView))
					r.Get("/", leaveHandler.GetMyBalance)
					r.Post("/check", leaveHandler.CheckBalance)
					r.Get("/{staffID}", leaveHandler.GetBalance)
					r.With(middleware.RequirePermission(access.ModuleLeaveRequests, access.ActionApprove)).
						Post("/{staffID}/recalculate", leaveHandler.RecalculateBalance)
				})

				r.Route("/requests", func(r chi.Router) {
					r.With(middleware.RequirePermission(access.ModuleLeaveRequests, access.ActionView)).
						Get("/", leaveHandler.ListRequests)
					r.With(middleware.RequirePermission(access.ModuleLeaveRequests, access.ActionCreate)).
						Post("/", leaveHandler.CreateRequest)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", leaveHandler.GetRequest)
						r.Put("/", leaveHandler.UpdateRequest)
						r.Delete("/", leaveHandler.DeleteRequest)

						// Approvers only
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(access.ModuleLeaveRequests, access.ActionApprove))
							r.Post("/approve", leaveHandler.ApproveRequest)
							r.Post("/reject", leaveHandler.RejectRequest)
						})
					})
				})
			})
		})
	})
	return r
}
