package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/allansduarte/placas-mundi-vendas/internal/api/handler"
	"github.com/allansduarte/placas-mundi-vendas/internal/api/handler/router"
	"github.com/allansduarte/placas-mundi-vendas/internal/config"
	"github.com/allansduarte/placas-mundi-vendas/internal/scheduler"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/authenticating"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/dashboarding"
	"github.com/allansduarte/placas-mundi-vendas/pkg/metrics"
	"github.com/allansduarte/placas-mundi-vendas/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	dashboardService dashboarding.DashboardService,
	authenticator authenticating.Authenticator,
	sessionCleanupService *scheduler.SessionCleanupService,
	m *metrics.Metrics,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SessionCleanupService: sessionCleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Uploads(dashboardService, config.Upload.MaxBytes)...),
		router.WithRoutes(handler.Sessions(dashboardService, authenticator)...),
		router.WithRoutes(handler.CronJobs(cronServices, config.Auth.AdminKey)...),
		router.WithRoutes(handler.Metrics(m)...),
	)

	// autenticação fica nas rotas de sessão, o upload é público
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Encerrando servidor HTTP")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
