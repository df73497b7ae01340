package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/orbicity/hotel-ops-api/internal/usecases/authenticating"
	"github.com/orbicity/hotel-ops-api/pkg/apiErrors"
	"github.com/orbicity/hotel-ops-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// localClaims identifica as requisições aceitas quando a autenticação está desligada
var localClaims = &domain.Claims{Role: authenticating.RoleService, Email: "local"}

// AuthMiddleware valida o access token do Supabase e coloca as claims no contexto.
// /healthcheck e as rotas em publicPaths não exigem token.
func AuthMiddleware(authService authenticating.Authenticator, publicPaths ...string) func(http.Handler) http.Handler {
	public := map[string]bool{"/healthcheck": true}
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if public[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if !authService.Enabled() {
				ctx := context.WithValue(r.Context(), ContextKeyUser, localClaims)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token recusado")
				apiErrors.WriteError(w, authenticating.APICode(err), err.Error(), nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims do usuário autenticado, se houver
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
