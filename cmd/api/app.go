package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/spreadsheet"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/storage"
	"github.com/vfg2006/orders-backoffice-api/internal/config"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/exporting"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/importing"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/ordering"
)

// application reúne conexão, storage e casos de uso compartilhados pelos comandos
type application struct {
	cfg        *config.Config
	conn       *postgres.Connection
	storage    *storage.LocalStorage
	orders     ordering.OrderService
	exporter   *exporting.Service
	sites      cataloging.SiteService
	orderTypes cataloging.OrderTypeService
	importer   importing.SiteImporter
}

func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	conn, err := pgconn(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Upload.Root)
	if err != nil {
		conn.Close()
		return nil, err
	}

	orderRepo := repository.NewOrderRepository(conn)
	siteRepo := repository.NewSiteRepository(conn)
	orderTypeRepo := repository.NewOrderTypeRepository(conn)

	return &application{
		cfg:        cfg,
		conn:       conn,
		storage:    fileStorage,
		orders:     ordering.NewService(conn, orderRepo, siteRepo, fileStorage, cfg),
		exporter:   exporting.NewService(orderRepo),
		sites:      cataloging.NewSiteService(siteRepo),
		orderTypes: cataloging.NewOrderTypeService(orderTypeRepo),
		importer:   importing.NewService(conn, siteRepo, spreadsheet.NewFileReader(), fileStorage, cfg),
	}, nil
}

func (a *application) Close() {
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		return nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
