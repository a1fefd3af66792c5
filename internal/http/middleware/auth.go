package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/imovelhub/backoffice-api/internal/config"
	"github.com/imovelhub/backoffice-api/internal/domain"
	"go.uber.org/zap"
)

// Auth guards the API group with a shared secret. The credential is accepted
// as "Authorization: Bearer <key>", "Authorization: Token <key>", a bare
// Authorization header, or an api_key query parameter. An empty configured
// key disables the check, which is the local development mode.
type Auth struct {
	cfg    *config.AuthConfig
	logger *zap.Logger
}

func NewAuth(cfg *config.AuthConfig, logger *zap.Logger) *Auth {
	if cfg.APIKey == "" {
		logger.Warn("API key not configured, authentication disabled")
	}
	return &Auth{cfg: cfg, logger: logger}
}

func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.cfg.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		presented := extractCredential(r)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(a.cfg.APIKey)) != 1 {
			a.logger.Warn("rejected request with invalid credentials",
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
			)
			respondUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractCredential pulls the presented key out of the request. The
// Authorization header wins over the query parameter.
func extractCredential(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header != "" {
		for _, scheme := range []string{"Bearer ", "Token "} {
			if strings.HasPrefix(header, scheme) {
				return strings.TrimSpace(strings.TrimPrefix(header, scheme))
			}
		}
		return header
	}
	return r.URL.Query().Get("api_key")
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + domain.ErrorTypeUnauthorized + `","message":"missing or invalid API key"}` + "\n"))
}
