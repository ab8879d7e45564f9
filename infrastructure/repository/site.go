//go:generate mockgen -source=site.go -destination=mocks/site.go -package=mocks

package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
)

const upsertSavepoint = "site_upsert"

var siteColumns = []string{
	"s.id", "s.name", "s.url", "s.admin_fee", "s.is_active",
	"(SELECT COUNT(*) FROM orders o WHERE o.site_id = s.id AND o.deleted_at IS NULL)",
	"s.created_at", "s.updated_at", "s.deleted_at",
}

type SiteRepository interface {
	WithTx(tx *sql.Tx) SiteRepository
	UpsertSite(ctx context.Context, name string, fields domain.SiteFields) (*domain.Site, error)
	CreateSite(ctx context.Context, site *domain.Site) (*domain.Site, error)
	GetSiteByID(ctx context.Context, id int64) (*domain.Site, error)
	ListSites(ctx context.Context, filter domain.SiteFilter) ([]*domain.Site, error)
	UpdateSite(ctx context.Context, site *domain.Site) error
	DeleteSites(ctx context.Context, ids []int64) (int64, error)
}

type siteRepository struct {
	q    postgres.Queryer
	inTx bool
}

func NewSiteRepository(conn *postgres.Connection) SiteRepository {
	return &siteRepository{
		q: conn,
	}
}

func (r *siteRepository) WithTx(tx *sql.Tx) SiteRepository {
	return &siteRepository{q: tx, inTx: true}
}

// UpsertSite cria ou atualiza o site pelo nome. Um site excluído logicamente
// com o mesmo nome é restaurado. Dentro de uma transação a gravação fica
// protegida por um savepoint, para que a falha de uma linha não invalide as demais.
func (r *siteRepository) UpsertSite(ctx context.Context, name string, fields domain.SiteFields) (*domain.Site, error) {
	query, args, err := squirrel.
		Insert("sites").
		Columns("name", "url", "admin_fee", "is_active").
		Values(name, fields.URL, fields.AdminFee, fields.IsActive).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			url = EXCLUDED.url,
			admin_fee = EXCLUDED.admin_fee,
			is_active = EXCLUDED.is_active,
			deleted_at = NULL,
			updated_at = NOW()
			RETURNING id, name, url, admin_fee, is_active, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	if r.inTx {
		if _, err := r.q.ExecContext(ctx, "SAVEPOINT "+upsertSavepoint); err != nil {
			return nil, errors.Wrap(ErrTransactionAborted, err.Error())
		}
	}

	site := &domain.Site{}
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&site.ID,
		&site.Name,
		&site.URL,
		&site.AdminFee,
		&site.IsActive,
		&site.CreatedAt,
		&site.UpdatedAt,
	)
	if err != nil {
		if r.inTx {
			if _, rbErr := r.q.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+upsertSavepoint); rbErr != nil {
				return nil, errors.Wrap(ErrTransactionAborted, rbErr.Error())
			}
		}
		return nil, translateError(err, "failed to upsert site")
	}

	if r.inTx {
		if _, err := r.q.ExecContext(ctx, "RELEASE SAVEPOINT "+upsertSavepoint); err != nil {
			return nil, errors.Wrap(ErrTransactionAborted, err.Error())
		}
	}

	return site, nil
}

// CreateSite insere o site ou restaura um site excluído com o mesmo nome, como
// a importação faz. Um nome em uso por site ativo resulta em ErrDuplicateKey.
func (r *siteRepository) CreateSite(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	query, args, err := squirrel.
		Insert("sites").
		Columns("name", "url", "admin_fee", "is_active").
		Values(site.Name, site.URL, site.AdminFee, site.IsActive).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			url = EXCLUDED.url,
			admin_fee = EXCLUDED.admin_fee,
			is_active = EXCLUDED.is_active,
			deleted_at = NULL,
			updated_at = NOW()
			WHERE sites.deleted_at IS NOT NULL
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	created := *site
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		// o WHERE do ON CONFLICT não devolve linha quando o nome pertence a um site ativo
		if err == sql.ErrNoRows {
			return nil, errors.Wrap(ErrDuplicateKey, "site name already in use")
		}
		return nil, translateError(err, "failed to insert site")
	}

	return &created, nil
}

func (r *siteRepository) GetSiteByID(ctx context.Context, id int64) (*domain.Site, error) {
	query, args, err := squirrel.
		Select(siteColumns...).
		From("sites s").
		Where(squirrel.Eq{"s.id": id, "s.deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	site, err := scanSite(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get site")
	}

	return site, nil
}

func (r *siteRepository) ListSites(ctx context.Context, filter domain.SiteFilter) ([]*domain.Site, error) {
	queryBuilder := squirrel.
		Select(siteColumns...).
		From("sites s").
		Where(squirrel.Eq{"s.deleted_at": nil}).
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if search := strings.TrimSpace(filter.Search); search != "" {
		queryBuilder = queryBuilder.Where(containsAny(search, "s.name", "s.url"))
	}

	if filter.ActiveOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.is_active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query sites")
	}
	defer rows.Close()

	sites := make([]*domain.Site, 0)
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan site")
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate sites")
	}

	return sites, nil
}

func (r *siteRepository) UpdateSite(ctx context.Context, site *domain.Site) error {
	query, args, err := squirrel.
		Update("sites").
		Set("name", site.Name).
		Set("url", site.URL).
		Set("admin_fee", site.AdminFee).
		Set("is_active", site.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": site.ID, "deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update site")
	}

	return expectAffected(result)
}

func (r *siteRepository) DeleteSites(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Update("sites").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids, "deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete sites")
	}

	return result.RowsAffected()
}

func scanSite(row scanner) (*domain.Site, error) {
	s := &domain.Site{}

	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.URL,
		&s.AdminFee,
		&s.IsActive,
		&s.OrdersCount,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.DeletedAt,
	); err != nil {
		return nil, err
	}

	return s, nil
}
