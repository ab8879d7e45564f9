package ordering

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/storage"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// fakeTransactor executa a função sem banco; os mocks ignoram o *sql.Tx
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	return fn(nil)
}

var fixedNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockOrderRepository, *mocks.MockSiteRepository, *fakeTransactor, afero.Fs) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	sites := mocks.NewMockSiteRepository(ctrl)
	orders.EXPECT().WithTx(gomock.Any()).Return(orders).AnyTimes()

	tx := &fakeTransactor{}
	fs := afero.NewMemMapFs()

	service := &Service{
		tx:         tx,
		orders:     orders,
		sites:      sites,
		storage:    storage.NewStorage(fs),
		maxRetries: 3,
		now:        func() time.Time { return fixedNow },
	}

	return service, orders, sites, tx, fs
}

func ptr[T any](v T) *T {
	return &v
}

func assertOrderError(t *testing.T, err error, sentinel error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)

	var orderErr *OrderError
	require.True(t, errors.As(err, &orderErr))
	assert.Equal(t, code, orderErr.Code)
}

func TestService_CreateOrder_Defaults(t *testing.T) {
	service, orders, _, tx, _ := newTestService(t)

	orders.EXPECT().LockOrderNumberPrefix(gomock.Any(), "GBOB-202501-").Return(nil)
	orders.EXPECT().LatestOrderNumber(gomock.Any(), "GBOB-202501-").Return("", nil)
	orders.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			assert.Equal(t, "GBOB-202501-00001", order.OrderNumber)
			assert.Equal(t, domain.OrderStatusInProgress, order.Status)
			assert.Equal(t, domain.InvoiceStatusUnpaid, order.InvoiceStatus)
			assert.Equal(t, domain.LiveLinkStatusPending, order.LiveLinkStatus)
			assert.True(t, order.ClientPrice.IsZero())
			assert.True(t, order.AdminFee.IsZero())
			assert.Nil(t, order.CompletedAt)
			assert.Nil(t, order.LiveLinkURL)

			created := *order
			created.ID = 1
			return &created, nil
		})

	created, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{
		OrderTypeID: 1,
		ClientName:  "  Acme Corp ",
		LiveLinkURL: ptr("https://acme.com/post"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Acme Corp", created.ClientName)
	assert.Equal(t, 1, tx.calls)
}

func TestService_CreateOrder_CopiesSiteFee(t *testing.T) {
	service, orders, sites, _, _ := newTestService(t)

	sites.EXPECT().GetSiteByID(gomock.Any(), int64(7)).Return(&domain.Site{ID: 7, AdminFee: decimal.RequireFromString("45.50")}, nil)
	orders.EXPECT().LockOrderNumberPrefix(gomock.Any(), gomock.Any()).Return(nil)
	orders.EXPECT().LatestOrderNumber(gomock.Any(), gomock.Any()).Return("GBOB-202501-00009", nil)
	orders.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			assert.Equal(t, "GBOB-202501-00010", order.OrderNumber)
			assert.True(t, decimal.RequireFromString("45.50").Equal(order.AdminFee))
			return order, nil
		})

	_, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{
		OrderTypeID: 1,
		ClientName:  "Acme",
		SiteID:      ptr(int64(7)),
		ClientPrice: ptr(decimal.NewFromInt(100)),
	})
	require.NoError(t, err)
}

func TestService_CreateOrder_ExplicitFeeWins(t *testing.T) {
	service, orders, _, _, _ := newTestService(t)

	orders.EXPECT().LockOrderNumberPrefix(gomock.Any(), gomock.Any()).Return(nil)
	orders.EXPECT().LatestOrderNumber(gomock.Any(), gomock.Any()).Return("", nil)
	orders.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			assert.True(t, decimal.NewFromInt(12).Equal(order.AdminFee))
			return order, nil
		})

	_, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{
		OrderTypeID: 1,
		ClientName:  "Acme",
		SiteID:      ptr(int64(7)),
		AdminFee:    ptr(decimal.NewFromInt(12)),
	})
	require.NoError(t, err)
}

func TestService_CreateOrder_CompletedStampsCompletedAt(t *testing.T) {
	service, orders, _, _, _ := newTestService(t)

	orders.EXPECT().LockOrderNumberPrefix(gomock.Any(), gomock.Any()).Return(nil)
	orders.EXPECT().LatestOrderNumber(gomock.Any(), gomock.Any()).Return("", nil)
	orders.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			require.NotNil(t, order.CompletedAt)
			assert.Equal(t, fixedNow, *order.CompletedAt)
			return order, nil
		})

	_, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{
		OrderTypeID: 1,
		ClientName:  "Acme",
		Status:      ptr(domain.OrderStatusCompleted),
	})
	require.NoError(t, err)
}

func TestService_CreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.CreateOrderRequest
		code    string
	}{
		{
			name:    "cliente obrigatório",
			request: &domain.CreateOrderRequest{OrderTypeID: 1, ClientName: "   "},
			code:    apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "tipo obrigatório",
			request: &domain.CreateOrderRequest{ClientName: "Acme"},
			code:    apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "status inválido",
			request: &domain.CreateOrderRequest{OrderTypeID: 1, ClientName: "Acme", Status: ptr(domain.OrderStatus("shipped"))},
			code:    apiErrors.ErrInvalidRequest,
		},
		{
			name:    "preço negativo",
			request: &domain.CreateOrderRequest{OrderTypeID: 1, ClientName: "Acme", ClientPrice: ptr(decimal.NewFromInt(-1))},
			code:    apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, tx, _ := newTestService(t)

			_, err := service.CreateOrder(context.Background(), tt.request)

			assertOrderError(t, err, ErrInvalidOrder, tt.code)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestService_CreateOrder_UnknownSite(t *testing.T) {
	service, _, sites, _, _ := newTestService(t)

	sites.EXPECT().GetSiteByID(gomock.Any(), int64(99)).Return(nil, nil)

	_, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{
		OrderTypeID: 1,
		ClientName:  "Acme",
		SiteID:      ptr(int64(99)),
	})

	assertOrderError(t, err, ErrSiteNotFound, apiErrors.ErrInvalidRequest)
}

func TestService_CreateOrder_RetriesDuplicateGeneratedNumber(t *testing.T) {
	service, orders, _, tx, _ := newTestService(t)

	duplicate := errors.Join(errors.New("failed to insert order"), repository.ErrDuplicateOrderNumber)

	orders.EXPECT().LockOrderNumberPrefix(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		orders.EXPECT().LatestOrderNumber(gomock.Any(), gomock.Any()).Return("GBOB-202501-00004", nil),
		orders.EXPECT().LatestOrderNumber(gomock.Any(), gomock.Any()).Return("GBOB-202501-00005", nil),
	)
	gomock.InOrder(
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, duplicate),
		orders.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				assert.Equal(t, "GBOB-202501-00006", order.OrderNumber)
				return order, nil
			}),
	)

	created, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{OrderTypeID: 1, ClientName: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, "GBOB-202501-00006", created.OrderNumber)
	assert.Equal(t, 2, tx.calls)
}

func TestService_CreateOrder_GivesUpAfterMaxRetries(t *testing.T) {
	service, orders, _, tx, _ := newTestService(t)

	orders.EXPECT().LockOrderNumberPrefix(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	orders.EXPECT().LatestOrderNumber(gomock.Any(), gomock.Any()).Return("", nil).Times(3)
	orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicateOrderNumber).Times(3)

	_, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{OrderTypeID: 1, ClientName: "Acme"})

	assertOrderError(t, err, ErrDuplicateOrderNumber, apiErrors.ErrOrderNumberConflict)
	assert.Equal(t, 3, tx.calls)
}

func TestService_CreateOrder_SuppliedNumberIsNotRegenerated(t *testing.T) {
	service, orders, _, tx, _ := newTestService(t)

	orders.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			assert.Equal(t, "LEGACY-1", order.OrderNumber)
			return nil, repository.ErrDuplicateOrderNumber
		})

	_, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{
		OrderNumber: ptr("LEGACY-1"),
		OrderTypeID: 1,
		ClientName:  "Acme",
	})

	assertOrderError(t, err, ErrDuplicateOrderNumber, apiErrors.ErrOrderNumberConflict)
	assert.Equal(t, 1, tx.calls)
}

func TestService_CreateOrder_SequenceExhausted(t *testing.T) {
	service, orders, _, _, _ := newTestService(t)

	orders.EXPECT().LockOrderNumberPrefix(gomock.Any(), gomock.Any()).Return(nil)
	orders.EXPECT().LatestOrderNumber(gomock.Any(), gomock.Any()).Return("GBOB-202501-99999", nil)

	_, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{OrderTypeID: 1, ClientName: "Acme"})

	assertOrderError(t, err, ErrOrderNumberExhausted, apiErrors.ErrOrderNumberExhausted)
}

func TestService_CreateOrder_UnknownOrderType(t *testing.T) {
	service, orders, _, _, _ := newTestService(t)

	orders.EXPECT().LockOrderNumberPrefix(gomock.Any(), gomock.Any()).Return(nil)
	orders.EXPECT().LatestOrderNumber(gomock.Any(), gomock.Any()).Return("", nil)
	orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, repository.ErrReferenceViolation)

	_, err := service.CreateOrder(context.Background(), &domain.CreateOrderRequest{OrderTypeID: 42, ClientName: "Acme"})

	assertOrderError(t, err, ErrUnknownReference, apiErrors.ErrInvalidRequest)
}

func existingOrder() *domain.Order {
	return &domain.Order{
		ID:             5,
		OrderNumber:    "GBOB-202501-00005",
		OrderTypeID:    1,
		SiteID:         ptr(int64(7)),
		ClientName:     "Acme",
		LiveLinkStatus: domain.LiveLinkStatusLive,
		LiveLinkURL:    ptr("https://blog.example.com/acme"),
		ClientPrice:    decimal.NewFromInt(100),
		AdminFee:       decimal.NewFromInt(30),
		InvoiceStatus:  domain.InvoiceStatusUnpaid,
		Status:         domain.OrderStatusInProgress,
	}
}

func TestService_UpdateOrder(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.UpdateOrderRequest
		setup    func(sites *mocks.MockSiteRepository)
		validate func(t *testing.T, order *domain.Order)
	}{
		{
			name:    "concluir preenche completed_at",
			request: &domain.UpdateOrderRequest{ID: 5, Status: ptr(domain.OrderStatusCompleted)},
			validate: func(t *testing.T, order *domain.Order) {
				require.NotNil(t, order.CompletedAt)
				assert.Equal(t, fixedNow, *order.CompletedAt)
			},
		},
		{
			name: "completed_at informado é mantido",
			request: &domain.UpdateOrderRequest{
				ID:          5,
				Status:      ptr(domain.OrderStatusCompleted),
				CompletedAt: ptr(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)),
			},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), *order.CompletedAt)
			},
		},
		{
			name:    "link removido quando status deixa de ser live",
			request: &domain.UpdateOrderRequest{ID: 5, LiveLinkStatus: ptr(domain.LiveLinkStatusRejected)},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Nil(t, order.LiveLinkURL)
			},
		},
		{
			name:    "troca de site copia a taxa",
			request: &domain.UpdateOrderRequest{ID: 5, SiteID: ptr(int64(8))},
			setup: func(sites *mocks.MockSiteRepository) {
				sites.EXPECT().GetSiteByID(gomock.Any(), int64(8)).Return(&domain.Site{ID: 8, AdminFee: decimal.NewFromInt(55)}, nil)
			},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, int64(8), *order.SiteID)
				assert.True(t, decimal.NewFromInt(55).Equal(order.AdminFee))
			},
		},
		{
			name:    "mesmo site mantém a taxa",
			request: &domain.UpdateOrderRequest{ID: 5, SiteID: ptr(int64(7))},
			validate: func(t *testing.T, order *domain.Order) {
				assert.True(t, decimal.NewFromInt(30).Equal(order.AdminFee))
			},
		},
		{
			name:    "troca de site com taxa explícita",
			request: &domain.UpdateOrderRequest{ID: 5, SiteID: ptr(int64(8)), AdminFee: ptr(decimal.NewFromInt(10))},
			validate: func(t *testing.T, order *domain.Order) {
				assert.True(t, decimal.NewFromInt(10).Equal(order.AdminFee))
			},
		},
		{
			name:    "site zero remove o site",
			request: &domain.UpdateOrderRequest{ID: 5, SiteID: ptr(int64(0))},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Nil(t, order.SiteID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, orders, sites, _, _ := newTestService(t)

			orders.EXPECT().GetOrderByID(gomock.Any(), int64(5)).Return(existingOrder(), nil)
			if tt.setup != nil {
				tt.setup(sites)
			}

			var saved *domain.Order
			orders.EXPECT().
				UpdateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, order *domain.Order) error {
					saved = order
					return nil
				})
			orders.EXPECT().GetOrderByID(gomock.Any(), int64(5)).DoAndReturn(func(context.Context, int64) (*domain.Order, error) {
				return saved, nil
			})

			updated, err := service.UpdateOrder(context.Background(), tt.request)
			require.NoError(t, err)

			assert.Equal(t, "GBOB-202501-00005", updated.OrderNumber)
			tt.validate(t, updated)
		})
	}
}

func TestService_UpdateOrder_NotFound(t *testing.T) {
	service, orders, _, _, _ := newTestService(t)

	orders.EXPECT().GetOrderByID(gomock.Any(), int64(404)).Return(nil, nil)

	_, err := service.UpdateOrder(context.Background(), &domain.UpdateOrderRequest{ID: 404})

	assertOrderError(t, err, ErrOrderNotFound, apiErrors.ErrNotFound)
}

func TestService_ListOrders_NormalizesPagination(t *testing.T) {
	service, orders, _, _, _ := newTestService(t)

	orders.EXPECT().
		ListOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.OrderFilter) ([]*domain.Order, int, error) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 10, filter.PerPage)
			return []*domain.Order{existingOrder()}, 1, nil
		})

	page, err := service.ListOrders(context.Background(), domain.OrderFilter{Page: 0, PerPage: 33})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Orders, 1)
	assert.Equal(t, 10, page.PerPage)
}

func TestService_ListOrders_ClampsHugePage(t *testing.T) {
	service, orders, _, _, _ := newTestService(t)

	orders.EXPECT().
		ListOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.OrderFilter) ([]*domain.Order, int, error) {
			assert.Equal(t, maxPage, filter.Page)
			assert.LessOrEqual(t, int64(filter.Page-1)*int64(filter.PerPage), int64(math.MaxInt32))
			return []*domain.Order{}, 3, nil
		})

	page, err := service.ListOrders(context.Background(), domain.OrderFilter{Page: math.MaxInt, PerPage: 100})
	require.NoError(t, err)

	assert.Equal(t, maxPage, page.Page)
	assert.Empty(t, page.Orders)
}

func TestService_ListOrders_InvalidStatus(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	_, err := service.ListOrders(context.Background(), domain.OrderFilter{Statuses: []domain.OrderStatus{"archived"}})

	assertOrderError(t, err, ErrInvalidOrder, apiErrors.ErrInvalidRequest)
}

func TestService_BulkActions(t *testing.T) {
	t.Run("concluir", func(t *testing.T) {
		service, orders, _, _, _ := newTestService(t)
		orders.EXPECT().CompleteOrders(gomock.Any(), []int64{1, 2, 3}, fixedNow).Return(int64(3), nil)

		response, err := service.CompleteOrders(context.Background(), []int64{1, 2, 3})
		require.NoError(t, err)

		assert.Equal(t, int64(3), response.Quantity)
		assert.Equal(t, "3 orders marked as completed", response.Message)
	})

	t.Run("excluir", func(t *testing.T) {
		service, orders, _, _, _ := newTestService(t)
		orders.EXPECT().DeleteOrders(gomock.Any(), []int64{4}).Return(int64(1), nil)

		response, err := service.DeleteOrders(context.Background(), []int64{4})
		require.NoError(t, err)

		assert.Equal(t, "1 orders deleted", response.Message)
	})

	t.Run("sem pedidos selecionados", func(t *testing.T) {
		service, _, _, _, _ := newTestService(t)

		_, err := service.CompleteOrders(context.Background(), nil)
		assertOrderError(t, err, ErrNoOrdersSelected, apiErrors.ErrMissingRequiredData)
	})

	t.Run("erro de banco", func(t *testing.T) {
		service, orders, _, _, _ := newTestService(t)
		orders.EXPECT().DeleteOrders(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

		_, err := service.DeleteOrders(context.Background(), []int64{1})
		assertOrderError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_GetStats(t *testing.T) {
	service, orders, _, _, _ := newTestService(t)

	expected := &domain.OrderStats{Total: 10, Completed: 4, InProgress: 5, PendingPayment: 6}
	orders.EXPECT().GetStats(gomock.Any()).Return(expected, nil)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestService_AttachInvoice(t *testing.T) {
	service, orders, _, _, fs := newTestService(t)

	previous := "client-invoices/old.pdf"
	require.NoError(t, afero.WriteFile(fs, previous, []byte("old"), 0o644))

	order := existingOrder()
	order.ClientInvoiceFile = &previous

	var savedPath string
	orders.EXPECT().GetOrderByID(gomock.Any(), int64(5)).Return(order, nil)
	orders.EXPECT().
		SetInvoiceAttachment(gomock.Any(), int64(5), "client_invoice_file", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, path string) error {
			savedPath = path
			return nil
		})
	orders.EXPECT().GetOrderByID(gomock.Any(), int64(5)).Return(order, nil)

	_, err := service.AttachInvoice(context.Background(), &domain.AttachInvoiceRequest{
		OrderID:  5,
		Party:    domain.InvoicePartyClient,
		Kind:     domain.InvoiceKindFile,
		FileName: "Fatura.PDF",
		Size:     3,
	}, strings.NewReader("pdf"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(savedPath, "client-invoices/"))
	assert.True(t, strings.HasSuffix(savedPath, ".pdf"))

	content, err := afero.ReadFile(fs, savedPath)
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(content))

	exists, err := afero.Exists(fs, previous)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestService_AttachInvoice_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.AttachInvoiceRequest
		sentinel error
		code     string
	}{
		{
			name:     "tipo de anexo desconhecido",
			request:  &domain.AttachInvoiceRequest{OrderID: 5, Party: "vendor", Kind: domain.InvoiceKindFile, FileName: "a.pdf"},
			sentinel: ErrInvalidAttachment,
			code:     apiErrors.ErrInvalidRequest,
		},
		{
			name:     "foto não aceita pdf",
			request:  &domain.AttachInvoiceRequest{OrderID: 5, Party: domain.InvoicePartyAdmin, Kind: domain.InvoiceKindPicture, FileName: "a.pdf"},
			sentinel: ErrInvalidAttachment,
			code:     apiErrors.ErrInvalidFormat,
		},
		{
			name:     "arquivo acima de 5 MB",
			request:  &domain.AttachInvoiceRequest{OrderID: 5, Party: domain.InvoicePartyAdmin, Kind: domain.InvoiceKindFile, FileName: "a.png", Size: 5<<20 + 1},
			sentinel: ErrAttachmentTooLarge,
			code:     apiErrors.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _, _ := newTestService(t)

			_, err := service.AttachInvoice(context.Background(), tt.request, io.LimitReader(strings.NewReader(""), 0))

			assertOrderError(t, err, tt.sentinel, tt.code)
		})
	}
}

func TestService_AttachInvoice_RemovesFileWhenUpdateFails(t *testing.T) {
	service, orders, _, _, fs := newTestService(t)

	orders.EXPECT().GetOrderByID(gomock.Any(), int64(5)).Return(existingOrder(), nil)
	orders.EXPECT().SetInvoiceAttachment(gomock.Any(), int64(5), "admin_invoice_picture", gomock.Any()).Return(repository.ErrNotFound)

	_, err := service.AttachInvoice(context.Background(), &domain.AttachInvoiceRequest{
		OrderID:  5,
		Party:    domain.InvoicePartyAdmin,
		Kind:     domain.InvoiceKindPicture,
		FileName: "nota.jpg",
		Size:     3,
	}, strings.NewReader("jpg"))

	assertOrderError(t, err, ErrOrderNotFound, apiErrors.ErrNotFound)

	entries, err := afero.ReadDir(fs, "admin-invoice-pictures")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
