package handler

import (
	"net/http"

	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/cataloging"
)

func ListOrderTypes(service cataloging.OrderTypeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderTypes, err := service.ListOrderTypes(r.Context(), queryBool(r, "active"))
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, orderTypes)
	})
}

func GetOrderType(service cataloging.OrderTypeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		orderType, err := service.GetOrderType(r.Context(), id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, orderType)
	})
}

func CreateOrderType(service cataloging.OrderTypeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateOrderTypeRequest
		if !decodeBody(w, r, &request) {
			return
		}

		orderType, err := service.CreateOrderType(r.Context(), &request)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, orderType)
	})
}

func UpdateOrderType(service cataloging.OrderTypeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var request domain.UpdateOrderTypeRequest
		if !decodeBody(w, r, &request) {
			return
		}
		request.ID = id

		orderType, err := service.UpdateOrderType(r.Context(), &request)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, orderType)
	})
}

func DeleteOrderType(service cataloging.OrderTypeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteOrderType(r.Context(), id); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
