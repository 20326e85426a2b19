package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ayurnest/ayurnest-backend/api/responses"
	pkgAuth "github.com/ayurnest/ayurnest-backend/pkg/auth"
	"github.com/ayurnest/ayurnest-backend/pkg/auth/session"
	"github.com/ayurnest/ayurnest-backend/pkg/config"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the claims.
func Auth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			ctx, err := authenticate(r, cfg, verifier, token, logg)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth authenticates the bearer token when one is present but lets
// anonymous requests through. Cart routes serve both kinds of caller.
func OptionalAuth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx, err := authenticate(r, cfg, verifier, token, logg)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartToken copies the anonymous cart token header into the request context.
func CartToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get("X-Cart-Token"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCartToken(r.Context(), token)))
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

func authenticate(r *http.Request, cfg config.JWTConfig, verifier session.AccessSessionChecker, token string, logg *logger.Logger) (ctx context.Context, err error) {
	claims, parseErr := pkgAuth.ParseAccessToken(cfg, token)
	if parseErr != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, parseErr, "invalid token")
	}

	if claims.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id")
	}

	if verifier != nil {
		ok, checkErr := verifier.HasSession(r.Context(), claims.ID)
		if checkErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, checkErr, "validate session")
		}
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable")
		}
	}

	ctx = WithUserID(r.Context(), claims.UserID.String())
	if logg != nil {
		ctx = logg.WithUserID(ctx, claims.UserID.String())
	}
	return ctx, nil
}
