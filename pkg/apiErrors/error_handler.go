package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrFileTooLarge        = "VAL_004" // Arquivo acima do limite
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado na rota

	// Erros de recursos (3000-3999)
	ErrNotFound             = "RES_001" // Registro não encontrado
	ErrDuplicateRecord      = "RES_002" // Registro duplicado
	ErrRecordInUse          = "RES_003" // Registro referenciado por outros
	ErrOrderNumberConflict  = "ORD_001" // Número de pedido já utilizado
	ErrOrderNumberExhausted = "ORD_002" // Sequência mensal esgotada

	// Erros de importação (4000-4999)
	ErrImportFileUnavailable = "IMP_001" // Arquivo de importação inacessível
	ErrImportFileFormat      = "IMP_002" // Planilha ilegível ou sem cabeçalho
	ErrImportTransaction     = "IMP_003" // Falha ao gravar a importação

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrStorageOperation  = "SRV_003" // Erro ao acessar arquivos
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrFileTooLarge:          http.StatusRequestEntityTooLarge,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrNotFound:              http.StatusNotFound,
	ErrDuplicateRecord:       http.StatusConflict,
	ErrRecordInUse:           http.StatusConflict,
	ErrOrderNumberConflict:   http.StatusConflict,
	ErrOrderNumberExhausted:  http.StatusConflict,
	ErrImportFileUnavailable: http.StatusBadRequest,
	ErrImportFileFormat:      http.StatusUnprocessableEntity,
	ErrImportTransaction:     http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrStorageOperation:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
