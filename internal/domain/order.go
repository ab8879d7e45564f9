// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusRejected   OrderStatus = "rejected"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusInProgress, OrderStatusCompleted, OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

// Label devolve o status no formato exibido em relatórios (ex: "In progress")
func (s OrderStatus) Label() string {
	return humanize(string(s))
}

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid:
		return true
	}
	return false
}

func (s InvoiceStatus) Label() string {
	return humanize(string(s))
}

type LiveLinkStatus string

const (
	LiveLinkStatusPending  LiveLinkStatus = "pending"
	LiveLinkStatusRejected LiveLinkStatus = "rejected"
	LiveLinkStatusLive     LiveLinkStatus = "live"
)

func (s LiveLinkStatus) IsValid() bool {
	switch s {
	case LiveLinkStatusPending, LiveLinkStatusRejected, LiveLinkStatusLive:
		return true
	}
	return false
}

func (s LiveLinkStatus) Label() string {
	return humanize(string(s))
}

type Order struct {
	ID                   int64           `json:"id"`
	OrderNumber          string          `json:"order_number"`
	OrderTypeID          int64           `json:"order_type_id"`
	OrderTypeName        *string         `json:"order_type_name"`
	SiteID               *int64          `json:"site_id"`
	SiteName             *string         `json:"site_name"`
	ClientName           string          `json:"client_name"`
	ClientEmail          *string         `json:"client_email"`
	ClientPhone          *string         `json:"client_phone"`
	ArticleName          *string         `json:"article_name"`
	PostURL              *string         `json:"post_url"`
	LiveLinkStatus       LiveLinkStatus  `json:"live_link_status"`
	LiveLinkURL          *string         `json:"live_link_url"`
	Notes                *string         `json:"notes"`
	ClientPrice          decimal.Decimal `json:"client_price"`
	AdminFee             decimal.Decimal `json:"admin_fee"`
	NetProfit            decimal.Decimal `json:"net_profit"`
	AdminInvoiceURL      *string         `json:"admin_invoice_url"`
	AdminInvoiceFile     *string         `json:"admin_invoice_file"`
	AdminInvoicePicture  *string         `json:"admin_invoice_picture"`
	ClientInvoiceURL     *string         `json:"client_invoice_url"`
	ClientInvoiceFile    *string         `json:"client_invoice_file"`
	ClientInvoicePicture *string         `json:"client_invoice_picture"`
	InvoiceStatus        InvoiceStatus   `json:"invoice_status"`
	Status               OrderStatus     `json:"status"`
	CompletedAt          *time.Time      `json:"completed_at"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	DeletedAt            *time.Time      `json:"deleted_at,omitempty"`
}

func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

func (o *Order) IsPaid() bool {
	return o.InvoiceStatus == InvoiceStatusPaid
}

type CreateOrderRequest struct {
	OrderNumber      *string          `json:"order_number,omitempty"`
	OrderTypeID      int64            `json:"order_type_id"`
	SiteID           *int64           `json:"site_id,omitempty"`
	ClientName       string           `json:"client_name"`
	ClientEmail      *string          `json:"client_email,omitempty"`
	ClientPhone      *string          `json:"client_phone,omitempty"`
	ArticleName      *string          `json:"article_name,omitempty"`
	PostURL          *string          `json:"post_url,omitempty"`
	LiveLinkStatus   *LiveLinkStatus  `json:"live_link_status,omitempty"`
	LiveLinkURL      *string          `json:"live_link_url,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
	ClientPrice      *decimal.Decimal `json:"client_price,omitempty"`
	AdminFee         *decimal.Decimal `json:"admin_fee,omitempty"`
	AdminInvoiceURL  *string          `json:"admin_invoice_url,omitempty"`
	ClientInvoiceURL *string          `json:"client_invoice_url,omitempty"`
	InvoiceStatus    *InvoiceStatus   `json:"invoice_status,omitempty"`
	Status           *OrderStatus     `json:"status,omitempty"`
}

// UpdateOrderRequest só altera os campos enviados. O número do pedido nunca é alterado.
type UpdateOrderRequest struct {
	ID               int64            `json:"id"`
	OrderTypeID      *int64           `json:"order_type_id,omitempty"`
	SiteID           *int64           `json:"site_id,omitempty"`
	ClientName       *string          `json:"client_name,omitempty"`
	ClientEmail      *string          `json:"client_email,omitempty"`
	ClientPhone      *string          `json:"client_phone,omitempty"`
	ArticleName      *string          `json:"article_name,omitempty"`
	PostURL          *string          `json:"post_url,omitempty"`
	LiveLinkStatus   *LiveLinkStatus  `json:"live_link_status,omitempty"`
	LiveLinkURL      *string          `json:"live_link_url,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
	ClientPrice      *decimal.Decimal `json:"client_price,omitempty"`
	AdminFee         *decimal.Decimal `json:"admin_fee,omitempty"`
	AdminInvoiceURL  *string          `json:"admin_invoice_url,omitempty"`
	ClientInvoiceURL *string          `json:"client_invoice_url,omitempty"`
	InvoiceStatus    *InvoiceStatus   `json:"invoice_status,omitempty"`
	Status           *OrderStatus     `json:"status,omitempty"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
}

type OrderFilter struct {
	Statuses        []OrderStatus
	InvoiceStatuses []InvoiceStatus
	Search          string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
	Page            int
	PerPage         int
}

type OrderPage struct {
	Orders  []*Order `json:"orders"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}

type OrderStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	PendingPayment int `json:"pending_payment"`
}

type BulkActionRequest struct {
	IDs []int64 `json:"ids"`
}

type BulkActionResponse struct {
	Quantity int64  `json:"quantity"`
	Message  string `json:"message"`
}

func humanize(value string) string {
	value = strings.ReplaceAll(value, "_", " ")
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
