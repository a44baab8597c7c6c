package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DashboardSession guarda o resultado de um upload enquanto a sessão estiver válida
type DashboardSession struct {
	ID        string       `json:"id"`
	FileName  string       `json:"file_name"`
	Records   []SaleRecord `json:"-"`
	Dashboard *Dashboard   `json:"dashboard"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Expired indica se a sessão já passou do prazo de validade
func (s *DashboardSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// UploadResponse é a resposta de um upload processado
type UploadResponse struct {
	SessionID string     `json:"session_id"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	Dashboard *Dashboard `json:"dashboard"`
}

// Claims são os dados do token de acesso a uma sessão
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
