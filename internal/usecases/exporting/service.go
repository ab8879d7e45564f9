//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

package exporting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/spreadsheet"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

const (
	sheetName      = "Orders"
	dateTimeLayout = "2006-01-02 15:04:05"
	notAvailable   = "N/A"
)

var (
	ErrLoadOrders  = errors.New("failed to load orders for export")
	ErrWriteExport = errors.New("failed to write export file")
)

var columns = []string{
	"ID", "Order Number", "Client Name", "Client Email", "Client Phone",
	"Article Name", "Post URL", "Live Link Status", "Live Link URL", "Order Type",
	"Status", "Invoice Status", "Client Price", "Admin Fee", "Net Profit",
	"Admin Invoice URL", "Client Invoice URL", "Notes",
	"Created At", "Updated At", "Completed At",
}

type OrderExporter interface {
	ExportOrders(ctx context.Context, w io.Writer) (int, error)
	FileName() string
}

type Service struct {
	orders repository.OrderRepository
	now    func() time.Time
}

func NewService(orders repository.OrderRepository) *Service {
	return &Service{
		orders: orders,
		now:    time.Now,
	}
}

// FileName devolve o nome sugerido para o download, ex: orders-2025-01-15.xlsx
func (s *Service) FileName() string {
	return fmt.Sprintf("orders-%s.xlsx", s.now().Format("2006-01-02"))
}

// ExportOrders grava todos os pedidos ativos em xlsx e devolve quantos foram exportados
func (s *Service) ExportOrders(ctx context.Context, w io.Writer) (int, error) {
	logger := log.ForContext(ctx)

	orders, err := s.orders.ListAllOrders(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar pedidos para exportação")
		return 0, errors.Join(ErrLoadOrders, err)
	}

	rows := make([][]any, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, orderRow(order))
	}

	if err := spreadsheet.WriteXLSX(w, sheetName, columns, rows); err != nil {
		logger.WithError(err).Error("Erro ao gerar planilha de pedidos")
		return 0, errors.Join(ErrWriteExport, err)
	}

	logger.WithField("order_count", len(orders)).Info("Exportação de pedidos concluída")

	return len(orders), nil
}

func orderRow(o *domain.Order) []any {
	orderType := notAvailable
	if o.OrderTypeName != nil {
		orderType = *o.OrderTypeName
	}

	completedAt := notAvailable
	if o.CompletedAt != nil {
		completedAt = o.CompletedAt.Format(dateTimeLayout)
	}

	return []any{
		o.ID,
		o.OrderNumber,
		o.ClientName,
		value(o.ClientEmail),
		value(o.ClientPhone),
		value(o.ArticleName),
		value(o.PostURL),
		o.LiveLinkStatus.Label(),
		value(o.LiveLinkURL),
		orderType,
		o.Status.Label(),
		o.InvoiceStatus.Label(),
		o.ClientPrice.InexactFloat64(),
		o.AdminFee.InexactFloat64(),
		o.NetProfit.InexactFloat64(),
		value(o.AdminInvoiceURL),
		value(o.ClientInvoiceURL),
		value(o.Notes),
		o.CreatedAt.Format(dateTimeLayout),
		o.UpdatedAt.Format(dateTimeLayout),
		completedAt,
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
