package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/orbya/portfolio-backend/api/responses"
	pkgAuth "github.com/orbya/portfolio-backend/pkg/auth"
	"github.com/orbya/portfolio-backend/pkg/config"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/logger"
)

// CredentialVersionChecker reports the live admin credential version so
// tokens minted before a password change can be rejected.
type CredentialVersionChecker interface {
	CurrentVersion(ctx context.Context) (int64, error)
}

// AdminAuth validates a bearer session token against the JWT config and the
// live credential version.
func AdminAuth(cfg config.JWTConfig, versions CredentialVersionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAdminToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			if versions != nil {
				current, err := versions.CurrentVersion(r.Context())
				if err != nil {
					responses.WriteError(r.Context(), logg, w, err)
					return
				}
				if claims.CredentialVersion != current {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session revoked"))
					return
				}
			}

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithField(ctx, "admin_session", claims.ID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
