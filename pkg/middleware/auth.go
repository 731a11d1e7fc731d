package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"github.com/vfg2006/store-finance-api/pkg/log"
)

type contextKey string

const (
	ContextKeyPrincipal contextKey = "principal"
)

// publicPaths não exigem token
var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			principal, err := authService.Authenticate(r.Context(), tokenString)
			if err != nil {
				logger := log.ForContext(r.Context()).WithError(err)
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					if authenticating.IsAuthorizationError(err) {
						logger.Warn("Acesso negado")
					} else {
						logger.WithField("user_id", authErr.UserID).Error("Falha ao autenticar usuário")
					}
					apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
					return
				}
				logger.Error("Erro inesperado na autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao autenticar usuário", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext retorna o usuário autenticado da requisição
func PrincipalFromContext(ctx context.Context) (*domain.Principal, bool) {
	principal, ok := ctx.Value(ContextKeyPrincipal).(*domain.Principal)
	return principal, ok && principal != nil
}

// WithPrincipal coloca o usuário no contexto, usado pelos testes dos handlers
func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, principal)
}
