package handler

import (
	"net/http"

	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/importing"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

const importFormField = "xls_file"

func ListSites(service cataloging.SiteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sites, err := service.ListSites(r.Context(), domain.SiteFilter{
			Search:     r.URL.Query().Get("search"),
			ActiveOnly: queryBool(r, "active"),
		})
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, sites)
	})
}

func GetSite(service cataloging.SiteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		site, err := service.GetSite(r.Context(), id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, site)
	})
}

func CreateSite(service cataloging.SiteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateSiteRequest
		if !decodeBody(w, r, &request) {
			return
		}

		site, err := service.CreateSite(r.Context(), &request)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, site)
	})
}

func UpdateSite(service cataloging.SiteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var request domain.UpdateSiteRequest
		if !decodeBody(w, r, &request) {
			return
		}
		request.ID = id

		site, err := service.UpdateSite(r.Context(), &request)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, site)
	})
}

func DeleteSite(service cataloging.SiteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		resp, err := service.DeleteSites(r.Context(), []int64{id})
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		if resp.Quantity == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Site não encontrado", map[string]any{"id": id})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func BulkDeleteSites(service cataloging.SiteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.BulkActionRequest
		if !decodeBody(w, r, &request) {
			return
		}

		resp, err := service.DeleteSites(r.Context(), request.IDs)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// ImportSites recebe a planilha no campo multipart "xls_file", guarda na área
// temporária e executa a importação. A resposta traz o resultado e a notificação.
func ImportSites(importer importing.SiteImporter, maxFileSize int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+multipartOverhead)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			writeUploadError(w, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(importFormField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Planilha não enviada no campo '"+importFormField+"'", nil)
			return
		}
		defer file.Close()

		if header.Size > maxFileSize {
			apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo acima do tamanho permitido", map[string]any{"limit": maxFileSize})
			return
		}

		stored, err := importer.StageUpload(r.Context(), header.Filename, file)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		logger.WithField("import_file", stored).Info("Planilha de sites recebida")

		result, err := importer.ImportSites(r.Context(), stored)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.SiteImportResponse{
			Result:  result,
			Summary: importing.Summarize(result),
		})
	})
}
