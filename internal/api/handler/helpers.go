package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/importing"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/ordering"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON codifica a resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody lê o corpo JSON da requisição, respondendo 400 em caso de falha
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// pathID lê o parâmetro :id da rota
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID é obrigatório", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID inválido", map[string]any{"id": raw})
		return 0, false
	}

	return id, true
}

// queryValues junta parâmetros repetidos e separados por vírgula (status=a&status=b,c)
func queryValues(r *http.Request, key string) []string {
	var values []string
	for _, raw := range r.URL.Query()[key] {
		for _, value := range strings.Split(raw, ",") {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
	}
	return values
}

func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}

func queryBool(r *http.Request, key string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && value
}

// writeServiceError converte os erros dos casos de uso no erro padronizado da API
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		orderErr   *ordering.OrderError
		catalogErr *cataloging.CatalogError
		importErr  *importing.ImportError
	)

	switch {
	case errors.As(err, &orderErr):
		var details map[string]any
		if orderErr.OrderID != 0 {
			details = map[string]any{"order_id": orderErr.OrderID}
		}
		apiErrors.WriteError(w, orderErr.Code, orderErr.Error(), details)

	case errors.As(err, &catalogErr):
		var details map[string]any
		if catalogErr.ID != 0 {
			details = map[string]any{"id": catalogErr.ID}
		}
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), details)

	case errors.As(err, &importErr):
		apiErrors.WriteError(w, importErr.Code, importErr.Error(), map[string]any{
			"summary": importing.SummarizeFailure(importErr),
		})

	default:
		log.ForContext(ctx).WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
