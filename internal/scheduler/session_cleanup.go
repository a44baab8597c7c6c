// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/allansduarte/placas-mundi-vendas/infrastructure/repository"
	"github.com/allansduarte/placas-mundi-vendas/internal/config"
	"github.com/allansduarte/placas-mundi-vendas/pkg/metrics"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type SessionCleanupConfig struct {
	CronSchedule string
	Enabled      bool
}

// SessionCleanupService remove periodicamente as sessões de painel expiradas
type SessionCleanupService struct {
	scheduler              *gocron.Scheduler
	sessionRepo            repository.DashboardSessionRepository
	metrics                *metrics.Metrics
	config                 SessionCleanupConfig
	now                    func() time.Time
	cleanupRunning         bool
	cleanupMutex           sync.Mutex
	lastCleanupStartedAt   time.Time
	lastCleanupCompletedAt time.Time
	lastRemoved            int
}

func NewSessionCleanupService(
	sessionRepo repository.DashboardSessionRepository,
	m *metrics.Metrics,
	cfg *config.Config,
) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: cfg.SessionCleanup.CronSchedule, // Default: a cada 10 minutos
		Enabled:      cfg.SessionCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"session_ttl":   cfg.Session.TTL.String(),
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler:   gocron.NewScheduler(time.Local),
		sessionRepo: sessionRepo,
		metrics:     m,
		config:      cleanupConfig,
		now:         time.Now,
	}
}

func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunCleanup(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de sessões")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCleanup remove as sessões expiradas e retorna quantas foram removidas.
// Execuções concorrentes são ignoradas.
func (s *SessionCleanupService) RunCleanup() (int, error) {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Warn("Limpeza de sessões já está em execução")
		return 0, nil
	}
	s.cleanupRunning = true
	s.lastCleanupStartedAt = s.now()
	s.cleanupMutex.Unlock()

	removed, err := s.sessionRepo.DeleteExpired(s.now())

	s.cleanupMutex.Lock()
	s.cleanupRunning = false
	s.lastCleanupCompletedAt = s.now()
	if err == nil {
		s.lastRemoved = removed
	}
	s.cleanupMutex.Unlock()

	if err != nil {
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.ObserveEviction(removed)
	}

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.sessionRepo.Count(),
	}).Info("Limpeza de sessões concluída")

	return removed, nil
}

// TriggerManualSync inicia manualmente uma limpeza de sessões
func (s *SessionCleanupService) TriggerManualSync() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go func() {
		if _, err := s.RunCleanup(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de sessões")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SessionCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"enabled":                   s.config.Enabled,
		"cron":                      s.config.CronSchedule,
		"running":                   s.cleanupRunning,
		"last_cleanup_started_at":   s.lastCleanupStartedAt,
		"last_cleanup_completed_at": s.lastCleanupCompletedAt,
		"last_removed":              s.lastRemoved,
		"active_sessions":           s.sessionRepo.Count(),
	}
}
