//go:generate mockgen -source=site_service.go -destination=mocks/site_service.go -package=mocks

package cataloging

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

type SiteService interface {
	CreateSite(ctx context.Context, request *domain.CreateSiteRequest) (*domain.Site, error)
	GetSite(ctx context.Context, id int64) (*domain.Site, error)
	ListSites(ctx context.Context, filter domain.SiteFilter) ([]*domain.Site, error)
	UpdateSite(ctx context.Context, request *domain.UpdateSiteRequest) (*domain.Site, error)
	DeleteSites(ctx context.Context, ids []int64) (*domain.BulkActionResponse, error)
}

type siteService struct {
	sites repository.SiteRepository
}

func NewSiteService(sites repository.SiteRepository) SiteService {
	return &siteService{sites: sites}
}

func (s *siteService) CreateSite(ctx context.Context, request *domain.CreateSiteRequest) (*domain.Site, error) {
	site := &domain.Site{
		Name:     strings.TrimSpace(request.Name),
		URL:      strings.TrimSpace(request.URL),
		IsActive: true,
	}
	if request.AdminFee != nil {
		site.AdminFee = *request.AdminFee
	}
	if request.IsActive != nil {
		site.IsActive = *request.IsActive
	}

	if err := validateSite(site, request.AdminFee != nil); err != nil {
		return nil, err
	}

	created, err := s.sites.CreateSite(ctx, site)
	if err != nil {
		return nil, siteWriteError(ctx, err, 0)
	}

	return created, nil
}

func (s *siteService) GetSite(ctx context.Context, id int64) (*domain.Site, error) {
	site, err := s.sites.GetSiteByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar site")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar site")
	}

	if site == nil {
		return nil, NewCatalogError(ErrSiteNotFound, apiErrors.ErrNotFound, id, "")
	}

	return site, nil
}

func (s *siteService) ListSites(ctx context.Context, filter domain.SiteFilter) ([]*domain.Site, error) {
	sites, err := s.sites.ListSites(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar sites")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "Falha ao listar sites")
	}

	return sites, nil
}

func (s *siteService) UpdateSite(ctx context.Context, request *domain.UpdateSiteRequest) (*domain.Site, error) {
	site, err := s.GetSite(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		site.Name = strings.TrimSpace(*request.Name)
	}
	if request.URL != nil {
		site.URL = strings.TrimSpace(*request.URL)
	}
	if request.AdminFee != nil {
		site.AdminFee = *request.AdminFee
	}
	if request.IsActive != nil {
		site.IsActive = *request.IsActive
	}

	if err := validateSite(site, true); err != nil {
		return nil, err
	}

	if err := s.sites.UpdateSite(ctx, site); err != nil {
		return nil, siteWriteError(ctx, err, site.ID)
	}

	return s.GetSite(ctx, site.ID)
}

// DeleteSites faz exclusão lógica; pedidos continuam apontando para o site
func (s *siteService) DeleteSites(ctx context.Context, ids []int64) (*domain.BulkActionResponse, error) {
	if len(ids) == 0 {
		return nil, NewCatalogError(ErrNoSitesSelected, apiErrors.ErrMissingRequiredData, 0, "")
	}

	quantity, err := s.sites.DeleteSites(ctx, ids)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao excluir sites")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "Falha ao excluir sites")
	}

	return &domain.BulkActionResponse{
		Quantity: quantity,
		Message:  fmt.Sprintf("%d sites deleted", quantity),
	}, nil
}

func validateSite(site *domain.Site, hasFee bool) error {
	switch {
	case site.Name == "":
		return NewCatalogError(ErrInvalidSite, apiErrors.ErrMissingRequiredData, site.ID, "name is required")
	case site.URL == "":
		return NewCatalogError(ErrInvalidSite, apiErrors.ErrMissingRequiredData, site.ID, "url is required")
	case !hasFee:
		return NewCatalogError(ErrInvalidSite, apiErrors.ErrMissingRequiredData, site.ID, "admin_fee is required")
	case site.AdminFee.IsNegative():
		return NewCatalogError(ErrInvalidSite, apiErrors.ErrInvalidRequest, site.ID, "admin_fee must not be negative")
	}
	return nil
}

func siteWriteError(ctx context.Context, err error, id int64) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateKey):
		return NewCatalogError(ErrDuplicateSite, apiErrors.ErrDuplicateRecord, id, "")
	case errors.Is(err, repository.ErrNotFound):
		return NewCatalogError(ErrSiteNotFound, apiErrors.ErrNotFound, id, "")
	}

	log.ForContext(ctx).WithError(err).Error("Erro ao gravar site")
	return NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao gravar site")
}
