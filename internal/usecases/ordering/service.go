//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

package ordering

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/storage"
	"github.com/vfg2006/orders-backoffice-api/internal/config"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

const (
	defaultPerPage = 10
	// maxPage mantém (page-1)*per_page dentro de um OFFSET válido para qualquer per_page permitido
	maxPage = math.MaxInt32 / 100
)

var allowedPerPage = map[int]bool{10: true, 25: true, 50: true, 100: true}

type OrderService interface {
	CreateOrder(ctx context.Context, request *domain.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) (*domain.OrderPage, error)
	ListAllOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, request *domain.UpdateOrderRequest) (*domain.Order, error)
	DeleteOrders(ctx context.Context, ids []int64) (*domain.BulkActionResponse, error)
	CompleteOrders(ctx context.Context, ids []int64) (*domain.BulkActionResponse, error)
	GetStats(ctx context.Context) (*domain.OrderStats, error)
	AttachInvoice(ctx context.Context, request *domain.AttachInvoiceRequest, content io.Reader) (*domain.Order, error)
}

type Service struct {
	tx         postgres.Transactor
	orders     repository.OrderRepository
	sites      repository.SiteRepository
	storage    storage.FileStorage
	maxRetries int
	now        func() time.Time
}

func NewService(
	tx postgres.Transactor,
	orders repository.OrderRepository,
	sites repository.SiteRepository,
	fileStorage storage.FileStorage,
	cfg *config.Config,
) OrderService {
	return &Service{
		tx:         tx,
		orders:     orders,
		sites:      sites,
		storage:    fileStorage,
		maxRetries: cfg.Orders.NumberMaxRetries,
		now:        time.Now,
	}
}

func (s *Service) CreateOrder(ctx context.Context, request *domain.CreateOrderRequest) (*domain.Order, error) {
	order, err := s.newOrder(ctx, request)
	if err != nil {
		return nil, err
	}

	// número informado pelo usuário não é regenerado em caso de conflito
	generate := order.OrderNumber == ""
	logger := log.ForContext(ctx)

	for attempt := 1; ; attempt++ {
		created, err := s.insertOrder(ctx, *order, generate)
		if err == nil {
			logger.WithField("order_number", created.OrderNumber).Info("Pedido criado")
			return created, nil
		}

		if generate && errors.Is(err, repository.ErrDuplicateOrderNumber) && attempt < s.maxRetries {
			logger.WithField("order_attempt", attempt).Warn("Número de pedido em uso, gerando novamente")
			continue
		}

		return nil, s.translateWriteError(ctx, err, order.ID)
	}
}

// insertOrder gera o número (quando necessário) e insere o pedido na mesma
// transação, com o prefixo do mês bloqueado até o commit
func (s *Service) insertOrder(ctx context.Context, order domain.Order, generate bool) (*domain.Order, error) {
	var created *domain.Order

	err := s.tx.RunInTransaction(ctx, func(tx *sql.Tx) error {
		orders := s.orders.WithTx(tx)

		if generate {
			now := s.now()
			if err := orders.LockOrderNumberPrefix(ctx, OrderNumberPrefix(now)); err != nil {
				return err
			}

			number, err := GenerateOrderNumber(ctx, now, orders)
			if err != nil {
				return err
			}
			order.OrderNumber = number
		}

		var err error
		created, err = orders.CreateOrder(ctx, &order)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) newOrder(ctx context.Context, request *domain.CreateOrderRequest) (*domain.Order, error) {
	clientName := strings.TrimSpace(request.ClientName)
	if clientName == "" {
		return nil, NewOrderError(ErrInvalidOrder, apiErrors.ErrMissingRequiredData, "client_name is required")
	}

	if request.OrderTypeID <= 0 {
		return nil, NewOrderError(ErrInvalidOrder, apiErrors.ErrMissingRequiredData, "order_type_id is required")
	}

	order := &domain.Order{
		OrderTypeID:      request.OrderTypeID,
		SiteID:           request.SiteID,
		ClientName:       clientName,
		ClientEmail:      request.ClientEmail,
		ClientPhone:      request.ClientPhone,
		ArticleName:      request.ArticleName,
		PostURL:          request.PostURL,
		LiveLinkStatus:   domain.LiveLinkStatusPending,
		LiveLinkURL:      request.LiveLinkURL,
		Notes:            request.Notes,
		ClientPrice:      decimal.Zero,
		AdminFee:         decimal.Zero,
		AdminInvoiceURL:  request.AdminInvoiceURL,
		ClientInvoiceURL: request.ClientInvoiceURL,
		InvoiceStatus:    domain.InvoiceStatusUnpaid,
		Status:           domain.OrderStatusInProgress,
	}

	if request.OrderNumber != nil {
		order.OrderNumber = strings.TrimSpace(*request.OrderNumber)
	}
	if request.LiveLinkStatus != nil {
		order.LiveLinkStatus = *request.LiveLinkStatus
	}
	if request.InvoiceStatus != nil {
		order.InvoiceStatus = *request.InvoiceStatus
	}
	if request.Status != nil {
		order.Status = *request.Status
	}
	if request.ClientPrice != nil {
		order.ClientPrice = *request.ClientPrice
	}

	if err := validateOrder(order); err != nil {
		return nil, err
	}

	switch {
	case request.AdminFee != nil:
		order.AdminFee = *request.AdminFee
	case order.SiteID != nil:
		site, err := s.findSite(ctx, *order.SiteID)
		if err != nil {
			return nil, err
		}
		order.AdminFee = site.AdminFee
	}

	if order.IsCompleted() {
		now := s.now()
		order.CompletedAt = &now
	}

	applyLiveLinkRule(order)

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar pedido")
		return nil, NewOrderErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar pedido")
	}

	if order == nil {
		return nil, NewOrderErrorWithID(ErrOrderNotFound, apiErrors.ErrNotFound, id, "")
	}

	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter) (*domain.OrderPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Page > maxPage {
		filter.Page = maxPage
	}
	if !allowedPerPage[filter.PerPage] {
		filter.PerPage = defaultPerPage
	}

	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, NewOrderError(ErrInvalidOrder, apiErrors.ErrInvalidRequest, fmt.Sprintf("invalid status %q", status))
		}
	}
	for _, status := range filter.InvoiceStatuses {
		if !status.IsValid() {
			return nil, NewOrderError(ErrInvalidOrder, apiErrors.ErrInvalidRequest, fmt.Sprintf("invalid invoice status %q", status))
		}
	}

	orders, total, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar pedidos")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar pedidos")
	}

	return &domain.OrderPage{
		Orders:  orders,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

func (s *Service) ListAllOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orders.ListAllOrders(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar pedidos")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar pedidos")
	}

	return orders, nil
}

// UpdateOrder aplica apenas os campos enviados. O número do pedido nunca muda.
func (s *Service) UpdateOrder(ctx context.Context, request *domain.UpdateOrderRequest) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.OrderTypeID != nil {
		order.OrderTypeID = *request.OrderTypeID
	}
	if request.ClientName != nil {
		order.ClientName = strings.TrimSpace(*request.ClientName)
		if order.ClientName == "" {
			return nil, NewOrderErrorWithID(ErrInvalidOrder, apiErrors.ErrMissingRequiredData, order.ID, "client_name is required")
		}
	}
	if request.ClientEmail != nil {
		order.ClientEmail = request.ClientEmail
	}
	if request.ClientPhone != nil {
		order.ClientPhone = request.ClientPhone
	}
	if request.ArticleName != nil {
		order.ArticleName = request.ArticleName
	}
	if request.PostURL != nil {
		order.PostURL = request.PostURL
	}
	if request.LiveLinkStatus != nil {
		order.LiveLinkStatus = *request.LiveLinkStatus
	}
	if request.LiveLinkURL != nil {
		order.LiveLinkURL = request.LiveLinkURL
	}
	if request.Notes != nil {
		order.Notes = request.Notes
	}
	if request.ClientPrice != nil {
		order.ClientPrice = *request.ClientPrice
	}
	if request.AdminInvoiceURL != nil {
		order.AdminInvoiceURL = request.AdminInvoiceURL
	}
	if request.ClientInvoiceURL != nil {
		order.ClientInvoiceURL = request.ClientInvoiceURL
	}
	if request.InvoiceStatus != nil {
		order.InvoiceStatus = *request.InvoiceStatus
	}
	if request.CompletedAt != nil {
		order.CompletedAt = request.CompletedAt
	}

	wasCompleted := order.IsCompleted()
	if request.Status != nil {
		order.Status = *request.Status
	}

	if err := validateOrder(order); err != nil {
		return nil, err
	}

	if err := s.applySiteChange(ctx, order, request); err != nil {
		return nil, err
	}
	if request.AdminFee != nil {
		order.AdminFee = *request.AdminFee
	}

	if order.IsCompleted() && !wasCompleted && order.CompletedAt == nil {
		now := s.now()
		order.CompletedAt = &now
	}

	applyLiveLinkRule(order)

	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return nil, s.translateWriteError(ctx, err, order.ID)
	}

	return s.GetOrder(ctx, order.ID)
}

// applySiteChange troca o site do pedido. site_id 0 remove o site; um novo
// site sem taxa explícita copia a taxa do site.
func (s *Service) applySiteChange(ctx context.Context, order *domain.Order, request *domain.UpdateOrderRequest) error {
	if request.SiteID == nil {
		return nil
	}

	if *request.SiteID == 0 {
		order.SiteID = nil
		return nil
	}

	changed := order.SiteID == nil || *order.SiteID != *request.SiteID
	order.SiteID = request.SiteID

	if !changed || request.AdminFee != nil {
		return nil
	}

	site, err := s.findSite(ctx, *request.SiteID)
	if err != nil {
		return err
	}
	order.AdminFee = site.AdminFee

	return nil
}

func (s *Service) DeleteOrders(ctx context.Context, ids []int64) (*domain.BulkActionResponse, error) {
	if len(ids) == 0 {
		return nil, NewOrderError(ErrNoOrdersSelected, apiErrors.ErrMissingRequiredData, "")
	}

	quantity, err := s.orders.DeleteOrders(ctx, ids)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao excluir pedidos")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao excluir pedidos")
	}

	return &domain.BulkActionResponse{
		Quantity: quantity,
		Message:  fmt.Sprintf("%d orders deleted", quantity),
	}, nil
}

func (s *Service) CompleteOrders(ctx context.Context, ids []int64) (*domain.BulkActionResponse, error) {
	if len(ids) == 0 {
		return nil, NewOrderError(ErrNoOrdersSelected, apiErrors.ErrMissingRequiredData, "")
	}

	quantity, err := s.orders.CompleteOrders(ctx, ids, s.now())
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao concluir pedidos")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao concluir pedidos")
	}

	return &domain.BulkActionResponse{
		Quantity: quantity,
		Message:  fmt.Sprintf("%d orders marked as completed", quantity),
	}, nil
}

func (s *Service) GetStats(ctx context.Context) (*domain.OrderStats, error) {
	stats, err := s.orders.GetStats(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao calcular estatísticas")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao calcular estatísticas de pedidos")
	}

	return stats, nil
}

// AttachInvoice grava o anexo e substitui o anterior, que é removido do storage
func (s *Service) AttachInvoice(ctx context.Context, request *domain.AttachInvoiceRequest, content io.Reader) (*domain.Order, error) {
	attachment, ok := domain.InvoiceAttachmentFor(request.Party, request.Kind)
	if !ok {
		return nil, NewOrderErrorWithID(ErrInvalidAttachment, apiErrors.ErrInvalidRequest, request.OrderID,
			fmt.Sprintf("unknown invoice %s/%s", request.Party, request.Kind))
	}

	ext := strings.ToLower(filepath.Ext(request.FileName))
	if !attachment.Accepts(ext) {
		return nil, NewOrderErrorWithID(ErrInvalidAttachment, apiErrors.ErrInvalidFormat, request.OrderID,
			fmt.Sprintf("accepted file types: %s", strings.Join(attachment.Extensions, ", ")))
	}

	if request.Size > attachment.MaxSize {
		return nil, NewOrderErrorWithID(ErrAttachmentTooLarge, apiErrors.ErrFileTooLarge, request.OrderID,
			fmt.Sprintf("maximum size is %d bytes", attachment.MaxSize))
	}

	order, err := s.GetOrder(ctx, request.OrderID)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithField("order_id", order.ID)

	path, err := s.storage.Save(attachment.Directory, request.FileName, content)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar anexo")
		return nil, NewOrderErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, order.ID, "Falha ao gravar anexo")
	}

	if err := s.orders.SetInvoiceAttachment(ctx, order.ID, attachment.Column, path); err != nil {
		if delErr := s.storage.Delete(path); delErr != nil {
			logger.WithError(delErr).Warn("Erro ao remover anexo não utilizado")
		}
		return nil, s.translateWriteError(ctx, err, order.ID)
	}

	if previous := order.InvoicePath(request.Party, request.Kind); previous != nil && *previous != "" {
		if err := s.storage.Delete(*previous); err != nil {
			logger.WithError(err).Warn("Erro ao remover anexo anterior")
		}
	}

	return s.GetOrder(ctx, order.ID)
}

func (s *Service) findSite(ctx context.Context, id int64) (*domain.Site, error) {
	site, err := s.sites.GetSiteByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar site")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar site")
	}

	if site == nil {
		return nil, NewOrderError(ErrSiteNotFound, apiErrors.ErrInvalidRequest, fmt.Sprintf("site %d does not exist", id))
	}

	return site, nil
}

func (s *Service) translateWriteError(ctx context.Context, err error, orderID int64) error {
	var orderErr *OrderError
	if errors.As(err, &orderErr) {
		return orderErr
	}

	switch {
	case errors.Is(err, ErrOrderNumberExhausted):
		return NewOrderErrorWithID(ErrOrderNumberExhausted, apiErrors.ErrOrderNumberExhausted, orderID, "")
	case errors.Is(err, repository.ErrDuplicateOrderNumber):
		return NewOrderErrorWithID(ErrDuplicateOrderNumber, apiErrors.ErrOrderNumberConflict, orderID, "")
	case errors.Is(err, repository.ErrReferenceViolation):
		return NewOrderErrorWithID(ErrUnknownReference, apiErrors.ErrInvalidRequest, orderID, "")
	case errors.Is(err, repository.ErrNotFound):
		return NewOrderErrorWithID(ErrOrderNotFound, apiErrors.ErrNotFound, orderID, "")
	}

	log.ForContext(ctx).WithError(err).Error("Erro ao gravar pedido")

	return NewOrderErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, orderID, "Falha ao gravar pedido")
}

func validateOrder(order *domain.Order) error {
	if !order.Status.IsValid() {
		return NewOrderErrorWithID(ErrInvalidOrder, apiErrors.ErrInvalidRequest, order.ID, fmt.Sprintf("invalid status %q", order.Status))
	}
	if !order.InvoiceStatus.IsValid() {
		return NewOrderErrorWithID(ErrInvalidOrder, apiErrors.ErrInvalidRequest, order.ID, fmt.Sprintf("invalid invoice status %q", order.InvoiceStatus))
	}
	if !order.LiveLinkStatus.IsValid() {
		return NewOrderErrorWithID(ErrInvalidOrder, apiErrors.ErrInvalidRequest, order.ID, fmt.Sprintf("invalid live link status %q", order.LiveLinkStatus))
	}
	if order.ClientPrice.IsNegative() {
		return NewOrderErrorWithID(ErrInvalidOrder, apiErrors.ErrInvalidRequest, order.ID, "client_price must not be negative")
	}
	return nil
}

// applyLiveLinkRule mantém o link publicado apenas quando o status é live
func applyLiveLinkRule(order *domain.Order) {
	if order.LiveLinkStatus != domain.LiveLinkStatusLive {
		order.LiveLinkURL = nil
	}
}
