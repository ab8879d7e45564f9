package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/internal/config"
)

// Transactor executa uma função dentro de uma transação
type Transactor interface {
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// Connection é o pool compartilhado por repositórios, migrações e healthcheck
type Connection struct {
	*sql.DB
}

// NewConnection abre o pool com os limites configurados e valida com um ping
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return &Connection{DB: db}, nil
}

// RunInTransaction faz commit quando fn retorna nil e rollback caso contrário.
// Um panic dentro de fn também desfaz a transação antes de ser propagado.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Wrapf(err, "rollback failed: %v", rbErr)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		committed = true
		return errors.Wrap(err, "commit transaction")
	}
	committed = true

	return nil
}
