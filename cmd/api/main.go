package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/allansduarte/placas-mundi-vendas/infrastructure/repository"
	"github.com/allansduarte/placas-mundi-vendas/internal/api"
	"github.com/allansduarte/placas-mundi-vendas/internal/config"
	"github.com/allansduarte/placas-mundi-vendas/internal/scheduler"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/authenticating"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/dashboarding"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/ingesting"
	"github.com/allansduarte/placas-mundi-vendas/pkg/log"
	"github.com/allansduarte/placas-mundi-vendas/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionRepo := repository.NewDashboardSessionRepository()

	m := metrics.New()
	m.RegisterActiveSessions(sessionRepo.Count)

	authenticator := authenticating.NewService(cfg)
	ingester := ingesting.NewService()
	dashboardService := dashboarding.NewService(cfg, ingester, sessionRepo, authenticator, m)

	sessionCleanupService := scheduler.NewSessionCleanupService(sessionRepo, m, cfg)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	if cfg.Auth.AdminKey == "" {
		logrus.Warn("ADMIN_KEY não configurada, rotas de cron desabilitadas")
	}

	server, err := api.New(cfg, dashboardService, authenticator, sessionCleanupService, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
