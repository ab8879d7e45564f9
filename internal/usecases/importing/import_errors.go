package importing

import (
	"errors"
	"fmt"
)

// Erros específicos para a importação de sites
var (
	// ErrIO indica arquivo ausente ou inacessível
	ErrIO = errors.New("import file unavailable")
	// ErrFormat indica planilha ilegível, vazia ou sem cabeçalho
	ErrFormat = errors.New("invalid import file")
	// ErrTransaction indica que nada foi gravado
	ErrTransaction = errors.New("import transaction failed")
)

// ImportError é um erro com contexto adicional para importações
type ImportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Path    string // Arquivo envolvido
	Details string // Mensagem exibida ao usuário
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, path string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Path:    path,
		Details: details,
	}
}
