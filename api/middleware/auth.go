package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/artlease-io/artlease-backend/api/responses"
	pkgAuth "github.com/artlease-io/artlease-backend/pkg/auth"
	"github.com/artlease-io/artlease-backend/pkg/auth/session"
	"github.com/artlease-io/artlease-backend/pkg/config"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/logger"
	"github.com/artlease-io/artlease-backend/pkg/types"
)

const loginPath = "/login"

// Auth validates a bearer token and seeds the request context with the
// claims. Unauthenticated requests get a 401 carrying a login redirect so
// browser clients can bounce the visitor and return them afterwards.
func Auth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, unauthenticated(r, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, unauthenticated(r, "invalid token"))
				return
			}

			if claims.ID == "" {
				responses.WriteError(r.Context(), logg, w, unauthenticated(r, "missing session id"))
				return
			}

			if verifier != nil {
				ok, err := verifier.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					responses.WriteError(r.Context(), logg, w, unauthenticated(r, "session unavailable"))
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(seedIdentity(r.Context(), logg, claims)))
		})
	}
}

// OptionalAuth seeds identity when a valid token is present but lets
// anonymous requests through. Guest checkout and public cart routes use it.
func OptionalAuth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil || claims.ID == "" {
				next.ServeHTTP(w, r)
				return
			}

			if verifier != nil {
				if ok, err := verifier.HasSession(r.Context(), claims.ID); err != nil || !ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(seedIdentity(r.Context(), logg, claims)))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}

func seedIdentity(ctx context.Context, logg *logger.Logger, claims *pkgAuth.AccessTokenClaims) context.Context {
	ctx = WithUserID(ctx, claims.UserID.String())
	ctx = WithRole(ctx, string(claims.Role))

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"user_id":    claims.UserID.String(),
			"actor_role": string(claims.Role),
		})
	}
	return ctx
}

func unauthenticated(r *http.Request, message string) error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, message).WithDetails(types.LoginRedirect{
		RedirectTo: loginPath,
		Next:       r.URL.RequestURI(),
	})
}
