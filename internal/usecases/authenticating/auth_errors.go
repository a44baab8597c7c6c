package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrMissingSession = errors.New("sessão não informada")
	ErrSessionDenied  = errors.New("token não pertence a esta sessão")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SessionID string // Sessão envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrSessionDenied)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewSessionAuthError cria um novo erro de autenticação com contexto de sessão
func NewSessionAuthError(baseErr error, code string, sessionID string, details string) *AuthError {
	return &AuthError{
		Err:       baseErr,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
