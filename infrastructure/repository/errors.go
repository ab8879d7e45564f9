package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"

	orderNumberConstraint = "orders_order_number_key"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateOrderNumber = errors.New("order number already exists")
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrReferenceViolation   = errors.New("referenced record does not exist or is still in use")
	// ErrTransactionAborted indica que a transação não pode mais ser usada
	ErrTransactionAborted = errors.New("transaction aborted")
)

// translateError converte erros do PostgreSQL nos erros do repositório,
// mantendo o erro original acessível via errors.Cause
func translateError(err error, msg string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			if pqErr.Constraint == orderNumberConstraint {
				return &dbError{kind: ErrDuplicateOrderNumber, cause: pqErr, msg: msg}
			}
			return &dbError{kind: ErrDuplicateKey, cause: pqErr, msg: msg}
		case pqForeignKeyViolation:
			return &dbError{kind: ErrReferenceViolation, cause: pqErr, msg: msg}
		}
	}

	return errors.Wrap(err, msg)
}

// dbError associa um erro do banco a um dos erros sentinela do pacote
type dbError struct {
	kind  error
	cause error
	msg   string
}

func (e *dbError) Error() string {
	return e.msg + ": " + e.cause.Error()
}

func (e *dbError) Cause() error {
	return e.cause
}

func (e *dbError) Unwrap() error {
	return e.cause
}

func (e *dbError) Is(target error) bool {
	return target == e.kind
}
