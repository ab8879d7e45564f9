//go:generate mockgen -source=order_type.go -destination=mocks/order_type.go -package=mocks

package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
)

var orderTypeColumns = []string{
	"ot.id", "ot.name", "ot.slug", "ot.description", "ot.is_active",
	"(SELECT COUNT(*) FROM orders o WHERE o.order_type_id = ot.id AND o.deleted_at IS NULL)",
	"ot.created_at", "ot.updated_at",
}

type OrderTypeRepository interface {
	CreateOrderType(ctx context.Context, orderType *domain.OrderType) (*domain.OrderType, error)
	GetOrderTypeByID(ctx context.Context, id int64) (*domain.OrderType, error)
	ListOrderTypes(ctx context.Context, activeOnly bool) ([]*domain.OrderType, error)
	UpdateOrderType(ctx context.Context, orderType *domain.OrderType) error
	DeleteOrderType(ctx context.Context, id int64) error
}

type orderTypeRepository struct {
	q postgres.Queryer
}

func NewOrderTypeRepository(conn *postgres.Connection) OrderTypeRepository {
	return &orderTypeRepository{
		q: conn,
	}
}

func (r *orderTypeRepository) CreateOrderType(ctx context.Context, orderType *domain.OrderType) (*domain.OrderType, error) {
	query, args, err := squirrel.
		Insert("order_types").
		Columns("name", "slug", "description", "is_active").
		Values(orderType.Name, orderType.Slug, orderType.Description, orderType.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	created := *orderType
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, translateError(err, "failed to insert order type")
	}

	return &created, nil
}

func (r *orderTypeRepository) GetOrderTypeByID(ctx context.Context, id int64) (*domain.OrderType, error) {
	query, args, err := squirrel.
		Select(orderTypeColumns...).
		From("order_types ot").
		Where(squirrel.Eq{"ot.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	orderType, err := scanOrderType(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get order type")
	}

	return orderType, nil
}

func (r *orderTypeRepository) ListOrderTypes(ctx context.Context, activeOnly bool) ([]*domain.OrderType, error) {
	queryBuilder := squirrel.
		Select(orderTypeColumns...).
		From("order_types ot").
		OrderBy("ot.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if activeOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ot.is_active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query order types")
	}
	defer rows.Close()

	orderTypes := make([]*domain.OrderType, 0)
	for rows.Next() {
		orderType, err := scanOrderType(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan order type")
		}
		orderTypes = append(orderTypes, orderType)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate order types")
	}

	return orderTypes, nil
}

func (r *orderTypeRepository) UpdateOrderType(ctx context.Context, orderType *domain.OrderType) error {
	query, args, err := squirrel.
		Update("order_types").
		Set("name", orderType.Name).
		Set("slug", orderType.Slug).
		Set("description", orderType.Description).
		Set("is_active", orderType.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderType.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update order type")
	}

	return expectAffected(result)
}

// DeleteOrderType remove o registro. Tipos ainda referenciados por pedidos
// resultam em ErrReferenceViolation.
func (r *orderTypeRepository) DeleteOrderType(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete("order_types").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to delete order type")
	}

	return expectAffected(result)
}

func scanOrderType(row scanner) (*domain.OrderType, error) {
	ot := &domain.OrderType{}

	if err := row.Scan(
		&ot.ID,
		&ot.Name,
		&ot.Slug,
		&ot.Description,
		&ot.IsActive,
		&ot.OrdersCount,
		&ot.CreatedAt,
		&ot.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return ot, nil
}
