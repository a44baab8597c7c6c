// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
)

//go:generate mockgen -source=dashboard_session.go -destination=mocks/dashboard_session.go -package=mocks

// ErrSessionNotFound indica sessão inexistente ou expirada
var ErrSessionNotFound = errors.New("sessão não encontrada")

type DashboardSessionRepository interface {
	Save(session *domain.DashboardSession) error
	GetByID(id string) (*domain.DashboardSession, error)
	Delete(id string) error
	DeleteExpired(now time.Time) (int, error)
	Count() int
}

// dashboardSessionRepository mantém as sessões apenas em memória; nada é gravado em disco
type dashboardSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.DashboardSession
	now      func() time.Time
}

func NewDashboardSessionRepository() DashboardSessionRepository {
	return &dashboardSessionRepository{
		sessions: make(map[string]*domain.DashboardSession),
		now:      time.Now,
	}
}

func (r *dashboardSessionRepository) Save(session *domain.DashboardSession) error {
	if session == nil || session.ID == "" {
		return errors.New("sessão sem identificador")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session
	return nil
}

// GetByID não devolve sessões expiradas, mesmo antes da limpeza agendada
func (r *dashboardSessionRepository) GetByID(id string) (*domain.DashboardSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok || session.Expired(r.now()) {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (r *dashboardSessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(r.sessions, id)
	return nil
}

func (r *dashboardSessionRepository) DeleteExpired(now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed, nil
}

func (r *dashboardSessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
