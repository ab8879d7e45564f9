package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/orders-backoffice-api/internal/api"
	"github.com/vfg2006/orders-backoffice-api/internal/api/handler"
	"github.com/vfg2006/orders-backoffice-api/internal/config"
	"github.com/vfg2006/orders-backoffice-api/internal/scheduler"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/importing"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
	"github.com/vfg2006/orders-backoffice-api/pkg/utils"
)

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("erro ao carregar configuração: %w", err)
		}

		log.Setup(loaded.App.LogLevel)
		logrus.Debugf("Nível de log configurado para: %s", logrus.GetLevel())

		cfg = loaded
		return nil
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia a API HTTP e os agendadores",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	rootCmd := &cobra.Command{
		Use:               "api",
		Short:             "Backoffice de pedidos, sites e tipos de pedido",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE:              serveCmd.RunE,
	}

	rootCmd.AddCommand(
		serveCmd,
		&cobra.Command{
			Use:   "migrate",
			Short: "Aplica as migrações pendentes do banco de dados",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "import-sites <arquivo>",
			Short: "Importa sites a partir de uma planilha .xls, .xlsx ou .csv",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runImportSites(cmd.Context(), cfg, args[0])
			},
		},
		&cobra.Command{
			Use:   "export-orders <saida.xlsx>",
			Short: "Exporta todos os pedidos para uma planilha xlsx",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runExportOrders(cmd.Context(), cfg, args[0])
			},
		},
	)

	return rootCmd
}

func runServe(parent context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(contextOrBackground(parent), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.conn.Migrate(); err != nil {
		return err
	}

	cleanupService := scheduler.NewTempImportsCleanupService(app.storage, cfg)
	if err := cleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de importações temporárias")
	} else {
		logrus.Info("Agendador de limpeza de importações temporárias iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DB:         app.conn,
		Orders:     app.orders,
		Exporter:   app.exporter,
		Sites:      app.sites,
		OrderTypes: app.orderTypes,
		Importer:   app.importer,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeTempImportsCleanup: cleanupService,
		},
	})
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

func runMigrate(ctx context.Context, cfg *config.Config) error {
	conn, err := pgconn(contextOrBackground(ctx), cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.Migrate()
}

// runImportSites copia a planilha para a área temporária e executa a mesma
// importação usada pela API
func runImportSites(ctx context.Context, cfg *config.Config, filePath string) error {
	ctx = contextOrBackground(ctx)

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	src, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer src.Close()

	stored, err := app.importer.StageUpload(ctx, filepath.Base(filePath), src)
	if err != nil {
		return err
	}

	result, err := app.importer.ImportSites(ctx, stored)
	if err != nil {
		fmt.Println(importing.SummarizeFailure(err).Message)
		return err
	}

	out, err := utils.PrettyJson(result)
	if err != nil {
		return err
	}

	summary := importing.Summarize(result)
	fmt.Println(out)
	fmt.Printf("%s\n%s\n", summary.Title, summary.Message)

	return nil
}

func runExportOrders(ctx context.Context, cfg *config.Config, outPath string) error {
	ctx = contextOrBackground(ctx)

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo de saída: %w", err)
	}

	count, err := app.exporter.ExportOrders(ctx, out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(outPath)
		return err
	}

	logrus.WithFields(logrus.Fields{
		"file":   outPath,
		"orders": count,
	}).Info("Pedidos exportados")

	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
