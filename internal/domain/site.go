package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Site struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	URL         string          `json:"url"`
	AdminFee    decimal.Decimal `json:"admin_fee"`
	IsActive    bool            `json:"is_active"`
	OrdersCount int             `json:"orders_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
}

// SiteFields são os campos gravados no upsert de um site, cuja chave é o nome
type SiteFields struct {
	URL      string
	AdminFee decimal.Decimal
	IsActive bool
}

type SiteFilter struct {
	Search     string
	ActiveOnly bool
}

type CreateSiteRequest struct {
	Name     string           `json:"name"`
	URL      string           `json:"url"`
	AdminFee *decimal.Decimal `json:"admin_fee"`
	IsActive *bool            `json:"is_active,omitempty"`
}

type UpdateSiteRequest struct {
	ID       int64            `json:"id"`
	Name     *string          `json:"name,omitempty"`
	URL      *string          `json:"url,omitempty"`
	AdminFee *decimal.Decimal `json:"admin_fee,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}
