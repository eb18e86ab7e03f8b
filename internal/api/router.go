package api

import (
	"net/http"

	"github.com/boe-dawah/boe-backend/internal/api/handlers"
	"github.com/boe-dawah/boe-backend/internal/api/middleware"
	"github.com/boe-dawah/boe-backend/internal/config"
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/notify"
	"github.com/boe-dawah/boe-backend/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// reportRoutes is the uniform surface every report kind exposes.
type reportRoutes interface {
	Submit(http.ResponseWriter, *http.Request)
	List(http.ResponseWriter, *http.Request)
	UpdateToday(http.ResponseWriter, *http.Request)
	AdminList(http.ResponseWriter, *http.Request)
	Summary(http.ResponseWriter, *http.Request)
}

func NewRouter(services *service.Services, hub *notify.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.EnsureDeviceCookie(cfg.DeviceCookieMaxAgeDays))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	leaveHandler := handlers.NewLeaveHandler(services.Leave)
	eventHandler := handlers.NewEventHandler(services.Event)
	adminHandler := handlers.NewAdminHandler(services.User)
	wsHandler := handlers.NewWebSocketHandler(hub)

	reportHandlers := map[domain.ReportKind]reportRoutes{
		domain.KindAmoli:         handlers.NewReportHandler(services.Amoli),
		domain.KindMoktob:        handlers.NewReportHandler(services.Moktob),
		domain.KindDawati:        handlers.NewReportHandler(services.Dawati),
		domain.KindDawatiMojlish: handlers.NewReportHandler(services.DawatiMojlish),
		domain.KindJamat:         handlers.NewReportHandler(services.Jamat),
		domain.KindDineFera:      handlers.NewReportHandler(services.DineFera),
		domain.KindSofor:         handlers.NewReportHandler(services.Sofor),
		domain.KindTalim:         handlers.NewReportHandler(services.Talim),
		domain.KindDayi:          handlers.NewReportHandler(services.Dayi),
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/logout", authHandler.Logout)

				r.Group(func(r chi.Router) {
					r.Use(middleware.DeviceGuard(services.Auth))
					r.Get("/me", authHandler.Me)
				})
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Use(middleware.DeviceGuard(services.Auth))

			// Daily report routes, one subtree per kind
			r.Route("/reports", func(r chi.Router) {
				for kind, h := range reportHandlers {
					r.Route("/"+kind.String(), func(r chi.Router) {
						r.Post("/", h.Submit)
						r.Get("/", h.List)
						r.Put("/today", h.UpdateToday)
					})
				}
			})

			// Leave routes
			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.File)
				r.Get("/", leaveHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin(services.Auth))
					r.Patch("/{id}", leaveHandler.Decide)
				})
			})

			// Calendar event routes
			r.Route("/events", func(r chi.Router) {
				r.Get("/", eventHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin(services.Auth))
					r.Post("/", eventHandler.Create)
					r.Delete("/{id}", eventHandler.Delete)
				})
			})

			// Admin routes
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin(services.Auth))

				r.Route("/reports", func(r chi.Router) {
					for kind, h := range reportHandlers {
						r.Route("/"+kind.String(), func(r chi.Router) {
							r.Get("/", h.AdminList)
							r.Get("/summary", h.Summary)
						})
					}
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCentralAdmin(services.Auth))
					r.Patch("/users/{id}", adminHandler.UpdateUser)
				})
				r.Get("/users", adminHandler.ListUsers)
			})
		})

		// WebSocket live feed (token via query param, admins only)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Use(middleware.RequireAdmin(services.Auth))
			r.Get("/ws", wsHandler.Handle)
		})
	})

	return r
}
