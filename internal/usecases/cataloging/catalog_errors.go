package cataloging

import (
	"errors"
	"fmt"
)

// Erros específicos para sites e tipos de pedido
var (
	ErrInvalidSite       = errors.New("invalid site")
	ErrInvalidOrderType  = errors.New("invalid order type")
	ErrSiteNotFound      = errors.New("site not found")
	ErrOrderTypeNotFound = errors.New("order type not found")
	ErrDuplicateSite     = errors.New("a site with this name already exists")
	ErrDuplicateSlug     = errors.New("an order type with this slug already exists")
	ErrOrderTypeInUse    = errors.New("order type is used by existing orders")
	ErrNoSitesSelected   = errors.New("no sites selected")
	ErrDatabaseOperation = errors.New("database operation error")
)

// CatalogError é um erro com contexto adicional para o catálogo
type CatalogError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	ID      int64  // Registro envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, id int64, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		ID:      id,
		Details: details,
	}
}
