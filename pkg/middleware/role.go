package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/allansduarte/placas-mundi-vendas/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// AdminKeyHeader é o header com a chave administrativa das rotas de manutenção
const AdminKeyHeader = "X-Admin-Key"

// AdminOnly restringe a rota a quem envia a chave administrativa configurada.
// Com a chave vazia a rota fica sempre indisponível.
func AdminOnly(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Rotas administrativas desabilitadas", nil)
				return
			}

			provided := r.Header.Get(AdminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
				logrus.Warningf("Acesso administrativo negado para %s %s", r.Method, r.URL.Path)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
