package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/authenticating"
	"github.com/allansduarte/placas-mundi-vendas/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// SessionAuth exige um token Bearer válido e guarda as claims no contexto
func SessionAuth(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				var authErr *authenticating.AuthError
				switch {
				case errors.As(err, &authErr) && authErr.Code != "":
					apiErrors.WriteError(w, authErr.Code, "Token inválido", nil)
				case authenticating.IsAuthorizationError(err):
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				default:
					logrus.WithError(err).Error("Erro inesperado ao validar token")
					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar token", nil)
				}
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionOwner garante que o token pertence à sessão do parâmetro :id da rota
func SessionOwner() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
				return
			}

			sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
			if claims.SessionID != sessionID {
				logrus.Warningf("Token da sessão %s usado para acessar a sessão %s", claims.SessionID, sessionID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Token não pertence a esta sessão", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext obtém as claims gravadas por SessionAuth
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeySession).(*domain.Claims)
	return claims, ok && claims != nil
}
