//go:generate mockgen -source=order_type_service.go -destination=mocks/order_type_service.go -package=mocks

package cataloging

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

type OrderTypeService interface {
	CreateOrderType(ctx context.Context, request *domain.CreateOrderTypeRequest) (*domain.OrderType, error)
	GetOrderType(ctx context.Context, id int64) (*domain.OrderType, error)
	ListOrderTypes(ctx context.Context, activeOnly bool) ([]*domain.OrderType, error)
	UpdateOrderType(ctx context.Context, request *domain.UpdateOrderTypeRequest) (*domain.OrderType, error)
	DeleteOrderType(ctx context.Context, id int64) error
}

type orderTypeService struct {
	orderTypes repository.OrderTypeRepository
}

func NewOrderTypeService(orderTypes repository.OrderTypeRepository) OrderTypeService {
	return &orderTypeService{orderTypes: orderTypes}
}

func (s *orderTypeService) CreateOrderType(ctx context.Context, request *domain.CreateOrderTypeRequest) (*domain.OrderType, error) {
	orderType := &domain.OrderType{
		Name:        strings.TrimSpace(request.Name),
		Slug:        strings.TrimSpace(request.Slug),
		Description: request.Description,
		IsActive:    true,
	}
	if request.IsActive != nil {
		orderType.IsActive = *request.IsActive
	}
	if orderType.Slug == "" {
		orderType.Slug = Slugify(orderType.Name)
	}

	if err := validateOrderType(orderType); err != nil {
		return nil, err
	}

	created, err := s.orderTypes.CreateOrderType(ctx, orderType)
	if err != nil {
		return nil, orderTypeWriteError(ctx, err, 0)
	}

	return created, nil
}

func (s *orderTypeService) GetOrderType(ctx context.Context, id int64) (*domain.OrderType, error) {
	orderType, err := s.orderTypes.GetOrderTypeByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar tipo de pedido")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar tipo de pedido")
	}

	if orderType == nil {
		return nil, NewCatalogError(ErrOrderTypeNotFound, apiErrors.ErrNotFound, id, "")
	}

	return orderType, nil
}

func (s *orderTypeService) ListOrderTypes(ctx context.Context, activeOnly bool) ([]*domain.OrderType, error) {
	orderTypes, err := s.orderTypes.ListOrderTypes(ctx, activeOnly)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar tipos de pedido")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "Falha ao listar tipos de pedido")
	}

	return orderTypes, nil
}

// UpdateOrderType regenera o slug quando o nome muda e nenhum slug é enviado
func (s *orderTypeService) UpdateOrderType(ctx context.Context, request *domain.UpdateOrderTypeRequest) (*domain.OrderType, error) {
	orderType, err := s.GetOrderType(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		orderType.Name = strings.TrimSpace(*request.Name)
		if request.Slug == nil {
			orderType.Slug = Slugify(orderType.Name)
		}
	}
	if request.Slug != nil {
		orderType.Slug = Slugify(*request.Slug)
	}
	if request.Description != nil {
		orderType.Description = request.Description
	}
	if request.IsActive != nil {
		orderType.IsActive = *request.IsActive
	}

	if err := validateOrderType(orderType); err != nil {
		return nil, err
	}

	if err := s.orderTypes.UpdateOrderType(ctx, orderType); err != nil {
		return nil, orderTypeWriteError(ctx, err, orderType.ID)
	}

	return s.GetOrderType(ctx, orderType.ID)
}

func (s *orderTypeService) DeleteOrderType(ctx context.Context, id int64) error {
	if err := s.orderTypes.DeleteOrderType(ctx, id); err != nil {
		return orderTypeWriteError(ctx, err, id)
	}
	return nil
}

func validateOrderType(orderType *domain.OrderType) error {
	if orderType.Name == "" {
		return NewCatalogError(ErrInvalidOrderType, apiErrors.ErrMissingRequiredData, orderType.ID, "name is required")
	}
	if orderType.Slug == "" {
		return NewCatalogError(ErrInvalidOrderType, apiErrors.ErrInvalidRequest, orderType.ID, "slug must contain letters or digits")
	}
	return nil
}

func orderTypeWriteError(ctx context.Context, err error, id int64) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateKey):
		return NewCatalogError(ErrDuplicateSlug, apiErrors.ErrDuplicateRecord, id, "")
	case errors.Is(err, repository.ErrReferenceViolation):
		return NewCatalogError(ErrOrderTypeInUse, apiErrors.ErrRecordInUse, id, "")
	case errors.Is(err, repository.ErrNotFound):
		return NewCatalogError(ErrOrderTypeNotFound, apiErrors.ErrNotFound, id, "")
	}

	log.ForContext(ctx).WithError(err).Error("Erro ao gravar tipo de pedido")
	return NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao gravar tipo de pedido")
}
