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
	"github.com/vfg2006/orders-backoffice-api/internal/api/handler"
	"github.com/vfg2006/orders-backoffice-api/internal/api/handler/router"
	"github.com/vfg2006/orders-backoffice-api/internal/config"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/exporting"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/importing"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/ordering"
	"github.com/vfg2006/orders-backoffice-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	DB         handler.Pinger
	Orders     ordering.OrderService
	Exporter   exporting.OrderExporter
	Sites      cataloging.SiteService
	OrderTypes cataloging.OrderTypeService
	Importer   importing.SiteImporter
	CronJobs   handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas e a cadeia de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Orders(services.Orders)...),
		router.WithRoutes(handler.OrderExport(services.Exporter)...),
		router.WithRoutes(handler.Sites(services.Sites, services.Importer, config.Upload.MaxFileSize)...),
		router.WithRoutes(handler.OrderTypes(services.OrderTypes)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)
	logrus.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
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

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
