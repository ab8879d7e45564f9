package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// step é a resposta do banco para o próximo comando recebido
type step struct {
	prefix  string
	err     error
	columns []string
	rows    [][]driver.Value
}

// scriptedConn responde aos comandos na ordem do roteiro e guarda o SQL recebido
type scriptedConn struct {
	mu         sync.Mutex
	t          *testing.T
	steps      []step
	statements []string
	args       [][]driver.NamedValue
}

func newScriptedDB(t *testing.T, steps ...step) (*sql.DB, *scriptedConn) {
	t.Helper()

	conn := &scriptedConn{t: t, steps: steps}
	db := sql.OpenDB(scriptedConnector{conn: conn})
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db, conn
}

func (c *scriptedConn) next(query string, args []driver.NamedValue) (step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statements = append(c.statements, query)
	c.args = append(c.args, args)

	if len(c.steps) == 0 {
		return step{}, fmt.Errorf("comando inesperado: %s", query)
	}

	s := c.steps[0]
	c.steps = c.steps[1:]
	if !strings.HasPrefix(strings.TrimSpace(query), s.prefix) {
		return step{}, fmt.Errorf("esperado comando iniciando com %q, recebido %q", s.prefix, query)
	}

	return s, nil
}

// requireStatements confere o início de cada comando executado, em ordem
func (c *scriptedConn) requireStatements(prefixes ...string) {
	c.t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	require.Len(c.t, c.statements, len(prefixes), "comandos executados: %v", c.statements)
	for i, prefix := range prefixes {
		require.True(c.t, strings.HasPrefix(strings.TrimSpace(c.statements[i]), prefix),
			"comando %d: esperado %q, recebido %q", i, prefix, c.statements[i])
	}
	require.Empty(c.t, c.steps, "roteiro não consumido por completo")
}

func (c *scriptedConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	s, err := c.next(query, args)
	if err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return driver.RowsAffected(int64(len(s.rows))), nil
}

func (c *scriptedConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	s, err := c.next(query, args)
	if err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return &scriptedRows{columns: s.columns, rows: s.rows}, nil
}

func (c *scriptedConn) Prepare(query string) (driver.Stmt, error) {
	return nil, fmt.Errorf("prepare não suportado: %s", query)
}

func (c *scriptedConn) Close() error { return nil }

func (c *scriptedConn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("transações não suportadas")
}

type scriptedRows struct {
	columns []string
	rows    [][]driver.Value
}

func (r *scriptedRows) Columns() []string { return r.columns }

func (r *scriptedRows) Close() error { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	if len(r.rows) == 0 {
		return io.EOF
	}
	copy(dest, r.rows[0])
	r.rows = r.rows[1:]
	return nil
}

type scriptedConnector struct {
	conn *scriptedConn
}

func (c scriptedConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }

func (c scriptedConnector) Driver() driver.Driver { return scriptedDriver{conn: c.conn} }

type scriptedDriver struct {
	conn *scriptedConn
}

func (d scriptedDriver) Open(string) (driver.Conn, error) { return d.conn, nil }
