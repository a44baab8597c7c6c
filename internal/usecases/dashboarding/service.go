// Package dashboarding orquestra upload, sessões e consultas do painel de vendas
package dashboarding

import (
	"io"
	"time"

	"github.com/allansduarte/placas-mundi-vendas/infrastructure/repository"
	"github.com/allansduarte/placas-mundi-vendas/internal/config"
	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/aggregating"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/authenticating"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/ingesting"
	"github.com/allansduarte/placas-mundi-vendas/pkg/metrics"
	"github.com/allansduarte/placas-mundi-vendas/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Agrupamentos disponíveis para consulta
const (
	GroupingRegions     = "regions"
	GroupingStates      = "states"
	GroupingClients     = "clients"
	GroupingConsultants = "consultants"
	GroupingMonths      = "months"
	GroupingModels      = "models"
)

var groupings = map[string]aggregating.KeyFunc{
	GroupingRegions:     aggregating.RegionKey,
	GroupingStates:      aggregating.StateKey,
	GroupingClients:     aggregating.ClientKey,
	GroupingConsultants: aggregating.ConsultantKey,
	GroupingMonths:      aggregating.MonthKey,
}

type DashboardService interface {
	// Upload processa o arquivo, guarda o painel em uma nova sessão e devolve o token de acesso
	Upload(fileName string, r io.Reader) (*domain.UploadResponse, error)
	GetSession(id string) (*domain.DashboardSession, error)
	// GetAggregate recalcula um agrupamento completo da sessão; limit <= 0 devolve todas as linhas
	GetAggregate(id string, grouping string, limit int) (any, error)
	DeleteSession(id string) error
}

type Service struct {
	ingester      ingesting.Ingester
	sessionRepo   repository.DashboardSessionRepository
	authenticator authenticating.Authenticator
	metrics       *metrics.Metrics
	options       aggregating.Options
	ttl           time.Duration
	now           func() time.Time
	newID         func() (string, error)
}

func NewService(
	cfg *config.Config,
	ingester ingesting.Ingester,
	sessionRepo repository.DashboardSessionRepository,
	authenticator authenticating.Authenticator,
	m *metrics.Metrics,
) DashboardService {
	return &Service{
		ingester:      ingester,
		sessionRepo:   sessionRepo,
		authenticator: authenticator,
		metrics:       m,
		options: aggregating.Options{
			TopN:     cfg.Dashboard.TopN,
			TrendTop: cfg.Dashboard.TrendTop,
		},
		ttl:   cfg.Session.TTL,
		now:   time.Now,
		newID: utils.GenerateID,
	}
}

func (s *Service) Upload(fileName string, r io.Reader) (*domain.UploadResponse, error) {
	startedAt := s.now()

	result, err := s.ingester.Ingest(r, fileName)
	if err != nil {
		s.metrics.ObserveUpload(uploadResult(err), nil, time.Since(startedAt))
		return nil, err
	}

	dashboard := aggregating.BuildDashboard(result, s.options)

	id, err := s.newID()
	if err != nil {
		s.metrics.ObserveUpload(metrics.ResultError, &result.Stats, time.Since(startedAt))
		return nil, errors.Wrap(err, "erro ao gerar ID da sessão")
	}

	createdAt := s.now()
	session := &domain.DashboardSession{
		ID:        id,
		FileName:  fileName,
		Records:   result.Records,
		Dashboard: dashboard,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(s.ttl),
	}

	token, err := s.authenticator.IssueToken(session.ID, session.ExpiresAt)
	if err != nil {
		s.metrics.ObserveUpload(metrics.ResultError, &result.Stats, time.Since(startedAt))
		return nil, err
	}

	if err := s.sessionRepo.Save(session); err != nil {
		s.metrics.ObserveUpload(metrics.ResultError, &result.Stats, time.Since(startedAt))
		return nil, errors.Wrap(err, "erro ao salvar sessão")
	}

	outcome := metrics.ResultSuccess
	if dashboard.Empty {
		outcome = metrics.ResultEmpty
	}
	s.metrics.ObserveUpload(outcome, &result.Stats, time.Since(startedAt))

	logrus.WithFields(logrus.Fields{
		"session_id": session.ID,
		"file":       fileName,
		"records":    len(result.Records),
		"empty":      dashboard.Empty,
		"expires_at": session.ExpiresAt.Format(time.RFC3339),
	}).Info("Sessão de painel criada")

	return &domain.UploadResponse{
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Dashboard: dashboard,
	}, nil
}

func (s *Service) GetSession(id string) (*domain.DashboardSession, error) {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "erro ao buscar sessão")
	}

	return session, nil
}

func (s *Service) GetAggregate(id string, grouping string, limit int) (any, error) {
	session, err := s.GetSession(id)
	if err != nil {
		return nil, err
	}

	if grouping == GroupingModels {
		return session.Dashboard.Models, nil
	}

	key, ok := groupings[grouping]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGrouping, "%q", grouping)
	}

	rows := aggregating.GroupBy(session.Records, key)
	if limit > 0 {
		rows = aggregating.TopN(rows, limit)
	}

	return rows, nil
}

func (s *Service) DeleteSession(id string) error {
	if err := s.sessionRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return errors.Wrap(err, "erro ao remover sessão")
	}

	logrus.WithField("session_id", id).Info("Sessão de painel removida")
	return nil
}

func uploadResult(err error) string {
	switch {
	case ingesting.IsSchemaError(err):
		return metrics.ResultSchemaError
	case errors.Is(err, ingesting.ErrInvalidFile):
		return metrics.ResultInvalidFile
	default:
		return metrics.ResultError
	}
}
