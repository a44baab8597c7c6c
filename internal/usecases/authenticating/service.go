package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/allansduarte/placas-mundi-vendas/internal/config"
	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const tokenIssuer = "placas-mundi-vendas"

// Authenticator emite e valida os tokens de acesso às sessões de painel
type Authenticator interface {
	IssueToken(sessionID string, expiresAt time.Time) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
		now:    time.Now,
	}
}

// IssueToken gera um JWT HS256 válido até o fim da sessão
func (s *Service) IssueToken(sessionID string, expiresAt time.Time) (string, error) {
	if sessionID == "" {
		return "", NewAuthError(ErrMissingSession, apiErrors.ErrMissingRequiredData, "ID da sessão é obrigatório")
	}

	claims := &domain.Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Error("Erro ao assinar token da sessão")
		return "", NewSessionAuthError(err, apiErrors.ErrInternalServer, sessionID, "Erro ao gerar token de acesso")
	}

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem sessão")
	}

	return claims, nil
}
