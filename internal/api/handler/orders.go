package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/exporting"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/ordering"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
	"github.com/vfg2006/orders-backoffice-api/pkg/utils"
)

const (
	xlsxContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	invoiceFormField     = "file"
	multipartMemory      = 2 << 20
	multipartOverhead    = 1 << 20
	largestInvoiceUpload = 5 << 20
)

func ListOrders(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		createdFrom, err := utils.ParseDate(r.URL.Query().Get("created_from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "created_from deve estar no formato AAAA-MM-DD", nil)
			return
		}

		createdTo, err := utils.ParseDate(r.URL.Query().Get("created_to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "created_to deve estar no formato AAAA-MM-DD", nil)
			return
		}

		filter := domain.OrderFilter{
			Search:      r.URL.Query().Get("search"),
			CreatedFrom: createdFrom,
			CreatedTo:   createdTo,
			Page:        queryInt(r, "page"),
			PerPage:     queryInt(r, "per_page"),
		}
		for _, status := range queryValues(r, "status") {
			filter.Statuses = append(filter.Statuses, domain.OrderStatus(status))
		}
		for _, status := range queryValues(r, "invoice_status") {
			filter.InvoiceStatuses = append(filter.InvoiceStatuses, domain.InvoiceStatus(status))
		}

		page, err := service.ListOrders(r.Context(), filter)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}

func GetOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		order, err := service.GetOrder(r.Context(), id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, order)
	})
}

func CreateOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateOrderRequest
		if !decodeBody(w, r, &request) {
			return
		}

		order, err := service.CreateOrder(r.Context(), &request)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, order)
	})
}

func UpdateOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var request domain.UpdateOrderRequest
		if !decodeBody(w, r, &request) {
			return
		}

		// Garante que o ID da URL seja usado
		request.ID = id

		order, err := service.UpdateOrder(r.Context(), &request)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, order)
	})
}

func DeleteOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		resp, err := service.DeleteOrders(r.Context(), []int64{id})
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		if resp.Quantity == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Pedido não encontrado", map[string]any{"order_id": id})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func BulkDeleteOrders(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.BulkActionRequest
		if !decodeBody(w, r, &request) {
			return
		}

		resp, err := service.DeleteOrders(r.Context(), request.IDs)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func BulkCompleteOrders(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.BulkActionRequest
		if !decodeBody(w, r, &request) {
			return
		}

		resp, err := service.CompleteOrders(r.Context(), request.IDs)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func GetOrderStats(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetStats(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}

// ExportOrders gera a planilha em memória para poder responder com erro JSON
// caso a geração falhe
func ExportOrders(exporter exporting.OrderExporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if _, err := exporter.ExportOrders(r.Context(), &buf); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao exportar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar pedidos", nil)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+exporter.FileName()+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar planilha de pedidos")
		}
	})
}

// UploadInvoice recebe o anexo no campo multipart "file"
func UploadInvoice(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, largestInvoiceUpload+multipartOverhead)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			writeUploadError(w, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(invoiceFormField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não enviado no campo '"+invoiceFormField+"'", nil)
			return
		}
		defer file.Close()

		order, err := service.AttachInvoice(r.Context(), &domain.AttachInvoiceRequest{
			OrderID:  id,
			Party:    domain.InvoiceParty(params.ByName("party")),
			Kind:     domain.InvoiceKind(params.ByName("kind")),
			FileName: header.Filename,
			Size:     header.Size,
		}, file)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, order)
	})
}

func writeUploadError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo acima do tamanho permitido", map[string]any{"limit": maxBytesErr.Limit})
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Upload inválido: "+err.Error(), nil)
}
