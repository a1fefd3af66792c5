package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/imovelhub/backoffice-api/internal/config"
	"github.com/imovelhub/backoffice-api/internal/http/handler"
	"github.com/imovelhub/backoffice-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/imovelhub/backoffice-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	auth             *middleware.Auth
	rateLimiter      *middleware.RateLimiter
	systemHandler    *handler.SystemHandler
	propertyHandler  *handler.PropertyHandler
	clientHandler    *handler.ClientHandler
	visitHandler     *handler.VisitHandler
	contractHandler  *handler.ContractHandler
	dashboardHandler *handler.DashboardHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	auth *middleware.Auth,
	rateLimiter *middleware.RateLimiter,
	systemHandler *handler.SystemHandler,
	propertyHandler *handler.PropertyHandler,
	clientHandler *handler.ClientHandler,
	visitHandler *handler.VisitHandler,
	contractHandler *handler.ContractHandler,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		auth:             auth,
		rateLimiter:      rateLimiter,
		systemHandler:    systemHandler,
		propertyHandler:  propertyHandler,
		clientHandler:    clientHandler,
		visitHandler:     visitHandler,
		contractHandler:  contractHandler,
		dashboardHandler: dashboardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Unauthenticated surface
	r.Get("/", rt.systemHandler.Banner)
	r.Get("/health", rt.systemHandler.Health)
	r.Get("/health/db", rt.systemHandler.HealthDB)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API routes, guarded by the shared key
	r.Route("/api", func(r chi.Router) {
		r.Use(rt.auth.Authenticate)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", rt.propertyHandler.List)
			r.Post("/", rt.propertyHandler.Create)
			r.Get("/{id}", rt.propertyHandler.Get)
			r.Put("/{id}", rt.propertyHandler.Update)
			r.Patch("/{id}", rt.propertyHandler.Update)
			r.Delete("/{id}", rt.propertyHandler.Delete)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Post("/", rt.clientHandler.Create)
			r.Get("/{id}", rt.clientHandler.Get)
			r.Put("/{id}", rt.clientHandler.Update)
			r.Patch("/{id}", rt.clientHandler.Update)
			r.Delete("/{id}", rt.clientHandler.Delete)
		})

		r.Route("/visits", func(r chi.Router) {
			r.Get("/", rt.visitHandler.List)
			r.Post("/", rt.visitHandler.Create)
			r.Get("/{id}", rt.visitHandler.Get)
			r.Put("/{id}", rt.visitHandler.Update)
			r.Patch("/{id}", rt.visitHandler.Update)
			r.Delete("/{id}", rt.visitHandler.Delete)
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", rt.contractHandler.List)
			r.Post("/", rt.contractHandler.Create)
			r.Get("/{id}", rt.contractHandler.Get)
			r.Put("/{id}", rt.contractHandler.Update)
			r.Patch("/{id}", rt.contractHandler.Update)
			r.Delete("/{id}", rt.contractHandler.Delete)
		})

		r.Get("/dashboard", rt.dashboardHandler.Metrics)
	})

	return r
}
