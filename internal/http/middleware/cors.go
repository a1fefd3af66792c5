package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/imovelhub/backoffice-api/internal/config"
	"go.uber.org/zap"
)

// CORS returns a CORS middleware configured from the application config
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if len(cfg.AllowedOrigins) > 0 {
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS configured with explicit origins",
			zap.Strings("origins", cfg.AllowedOrigins))
	} else if environment == "development" || environment == "" {
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return origin != ""
		}
		logger.Info("CORS configured to allow all origins in development mode")
	} else {
		// No origins configured outside development: deny all cross-origin
		// requests. Empty AllowedOrigins would default to "*".
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return false
		}
		logger.Warn("CORS configured with no allowed origins",
			zap.String("environment", environment))
	}

	return cors.Handler(options)
}
