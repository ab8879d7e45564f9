package ordering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pedidos
var (
	// Erros de validação
	ErrInvalidOrder       = errors.New("invalid order")
	ErrNoOrdersSelected   = errors.New("no orders selected")
	ErrInvalidAttachment  = errors.New("invalid invoice attachment")
	ErrAttachmentTooLarge = errors.New("invoice attachment too large")

	// Erros de registros
	ErrOrderNotFound        = errors.New("order not found")
	ErrSiteNotFound         = errors.New("site not found")
	ErrUnknownReference     = errors.New("order type or site does not exist")
	ErrDuplicateOrderNumber = errors.New("order number already exists")
	ErrOrderNumberExhausted = errors.New("monthly order number sequence exhausted")

	// Erros de infraestrutura
	ErrDatabaseOperation = errors.New("database operation error")
	ErrStorageOperation  = errors.New("storage operation error")
)

// OrderError é um erro com contexto adicional para pedidos
type OrderError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	OrderID int64  // ID do pedido envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *OrderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func NewOrderError(err error, code string, details string) *OrderError {
	return &OrderError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewOrderErrorWithID(err error, code string, orderID int64, details string) *OrderError {
	return &OrderError{
		Err:     err,
		Code:    code,
		OrderID: orderID,
		Details: details,
	}
}
