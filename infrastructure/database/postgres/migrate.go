package postgres

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica as migrações pendentes embutidas no binário
func (c *Connection) Migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to open migrations source")
	}

	driver, err := migratepg.WithInstance(c.DB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrate instance")
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Banco de dados já está na versão mais recente")
			return nil
		}
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errors.Wrap(err, "failed to read migration version")
	}

	logrus.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Migrações aplicadas com sucesso")

	return nil
}
