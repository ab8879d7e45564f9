package exporting

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestService_FileName(t *testing.T) {
	service := &Service{now: func() time.Time { return time.Date(2025, 3, 7, 23, 0, 0, 0, time.UTC) }}

	assert.Equal(t, "orders-2025-03-07.xlsx", service.FileName())
}

func TestService_ExportOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)

	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	completed := time.Date(2025, 1, 20, 8, 0, 5, 0, time.UTC)

	orders.EXPECT().ListAllOrders(gomock.Any()).Return([]*domain.Order{
		{
			ID:             1,
			OrderNumber:    "GBOB-202501-00001",
			OrderTypeName:  ptr("Guest Post"),
			ClientName:     "Acme",
			ClientEmail:    ptr("ops@acme.com"),
			LiveLinkStatus: domain.LiveLinkStatusLive,
			LiveLinkURL:    ptr("https://blog.org/acme"),
			ClientPrice:    decimal.RequireFromString("150.00"),
			AdminFee:       decimal.RequireFromString("45.50"),
			NetProfit:      decimal.RequireFromString("104.50"),
			InvoiceStatus:  domain.InvoiceStatusUnpaid,
			Status:         domain.OrderStatusCompleted,
			CompletedAt:    &completed,
			CreatedAt:      created,
			UpdatedAt:      created,
		},
		{
			ID:             2,
			OrderNumber:    "GBOB-202501-00002",
			ClientName:     "Globex",
			LiveLinkStatus: domain.LiveLinkStatusPending,
			InvoiceStatus:  domain.InvoiceStatusPartial,
			Status:         domain.OrderStatusInProgress,
			CreatedAt:      created,
			UpdatedAt:      created,
		},
	}, nil)

	var buf bytes.Buffer
	count, err := NewService(orders).ExportOrders(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "GBOB-202501-00001", rows[1][1])
	assert.Equal(t, "Live", rows[1][7])
	assert.Equal(t, "Guest Post", rows[1][9])
	assert.Equal(t, "Completed", rows[1][10])
	assert.Equal(t, "Unpaid", rows[1][11])
	assert.Equal(t, "2025-01-15 10:30:00", rows[1][18])
	assert.Equal(t, "2025-01-20 08:00:05", rows[1][20])

	assert.Equal(t, "N/A", rows[2][9])
	assert.Equal(t, "In progress", rows[2][10])
	assert.Equal(t, "N/A", rows[2][20])

	netProfit, err := f.GetCellValue(sheetName, "O2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "104.5", netProfit)
}

func TestService_ExportOrders_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	orders.EXPECT().ListAllOrders(gomock.Any()).Return(nil, errors.New("connection reset"))

	var buf bytes.Buffer
	_, err := NewService(orders).ExportOrders(context.Background(), &buf)

	assert.ErrorIs(t, err, ErrLoadOrders)
	assert.Zero(t, buf.Len())
}
