//go:generate mockgen -source=order.go -destination=mocks/order.go -package=mocks

package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
)

const (
	ordersTable = "orders o"
)

var orderColumns = []string{
	"o.id", "o.order_number", "o.order_type_id", "ot.name", "o.site_id", "s.name",
	"o.client_name", "o.client_email", "o.client_phone",
	"o.article_name", "o.post_url", "o.live_link_status", "o.live_link_url", "o.notes",
	"o.client_price", "o.admin_fee", "o.net_profit",
	"o.admin_invoice_url", "o.admin_invoice_file", "o.admin_invoice_picture",
	"o.client_invoice_url", "o.client_invoice_file", "o.client_invoice_picture",
	"o.invoice_status", "o.status", "o.completed_at", "o.created_at", "o.updated_at", "o.deleted_at",
}

type OrderRepository interface {
	WithTx(tx *sql.Tx) OrderRepository
	LockOrderNumberPrefix(ctx context.Context, prefix string) error
	LatestOrderNumber(ctx context.Context, prefix string) (string, error)
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int, error)
	ListAllOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
	SetInvoiceAttachment(ctx context.Context, id int64, column string, path string) error
	DeleteOrders(ctx context.Context, ids []int64) (int64, error)
	CompleteOrders(ctx context.Context, ids []int64, completedAt time.Time) (int64, error)
	GetStats(ctx context.Context) (*domain.OrderStats, error)
}

type orderRepository struct {
	q postgres.Queryer
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		q: conn,
	}
}

func (r *orderRepository) WithTx(tx *sql.Tx) OrderRepository {
	return &orderRepository{q: tx}
}

// LockOrderNumberPrefix serializa a geração de números do mesmo mês.
// O lock é liberado automaticamente no fim da transação.
func (r *orderRepository) LockOrderNumberPrefix(ctx context.Context, prefix string) error {
	if _, err := r.q.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", prefix); err != nil {
		return errors.Wrap(err, "failed to lock order number prefix")
	}
	return nil
}

// LatestOrderNumber retorna o maior número com o prefixo, incluindo pedidos
// excluídos logicamente, ou "" quando não há nenhum
func (r *orderRepository) LatestOrderNumber(ctx context.Context, prefix string) (string, error) {
	query, args, err := latestOrderNumberQuery(prefix).ToSql()
	if err != nil {
		return "", errors.Wrap(err, "failed to build query")
	}

	var number string
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&number); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to query latest order number")
	}

	return number, nil
}

// latestOrderNumberQuery não filtra deleted_at: números de pedidos excluídos
// continuam ocupando a sequência do mês
func latestOrderNumberQuery(prefix string) squirrel.SelectBuilder {
	return squirrel.
		Select("order_number").
		From("orders").
		Where(squirrel.Expr(`order_number LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")).
		OrderBy("order_number DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query, args, err := squirrel.
		Insert("orders").
		Columns(
			"order_number", "order_type_id", "site_id",
			"client_name", "client_email", "client_phone",
			"article_name", "post_url", "live_link_status", "live_link_url", "notes",
			"client_price", "admin_fee",
			"admin_invoice_url", "client_invoice_url",
			"invoice_status", "status", "completed_at",
		).
		Values(
			order.OrderNumber, order.OrderTypeID, order.SiteID,
			order.ClientName, order.ClientEmail, order.ClientPhone,
			order.ArticleName, order.PostURL, order.LiveLinkStatus, order.LiveLinkURL, order.Notes,
			order.ClientPrice, order.AdminFee,
			order.AdminInvoiceURL, order.ClientInvoiceURL,
			order.InvoiceStatus, order.Status, order.CompletedAt,
		).
		Suffix("RETURNING id, net_profit, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	created := *order
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.NetProfit,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "failed to insert order")
	}

	return &created, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	query, args, err := r.selectOrders().
		Where(squirrel.Eq{"o.id": id, "o.deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	order, err := scanOrder(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int, error) {
	where := orderFilterConditions(filter)

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(ordersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to build count query")
	}

	var total int
	if err := r.q.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	queryBuilder := r.selectOrders().
		Where(where).
		OrderBy("o.created_at DESC", "o.id DESC")

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		queryBuilder = queryBuilder.
			Limit(uint64(filter.PerPage)).
			Offset(uint64(page-1) * uint64(filter.PerPage))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to build query")
	}

	orders, err := r.queryOrders(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) ListAllOrders(ctx context.Context) ([]*domain.Order, error) {
	query, args, err := r.selectOrders().
		Where(squirrel.Eq{"o.deleted_at": nil}).
		OrderBy("o.id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	return r.queryOrders(ctx, query, args...)
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	query, args, err := squirrel.
		Update("orders").
		Set("order_type_id", order.OrderTypeID).
		Set("site_id", order.SiteID).
		Set("client_name", order.ClientName).
		Set("client_email", order.ClientEmail).
		Set("client_phone", order.ClientPhone).
		Set("article_name", order.ArticleName).
		Set("post_url", order.PostURL).
		Set("live_link_status", order.LiveLinkStatus).
		Set("live_link_url", order.LiveLinkURL).
		Set("notes", order.Notes).
		Set("client_price", order.ClientPrice).
		Set("admin_fee", order.AdminFee).
		Set("admin_invoice_url", order.AdminInvoiceURL).
		Set("client_invoice_url", order.ClientInvoiceURL).
		Set("invoice_status", order.InvoiceStatus).
		Set("status", order.Status).
		Set("completed_at", order.CompletedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": order.ID, "deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update order")
	}

	return expectAffected(result)
}

func (r *orderRepository) SetInvoiceAttachment(ctx context.Context, id int64, column string, path string) error {
	query, args, err := squirrel.
		Update("orders").
		Set(column, path).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to update invoice attachment")
	}

	return expectAffected(result)
}

// DeleteOrders faz exclusão lógica; os números continuam reservados
func (r *orderRepository) DeleteOrders(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Update("orders").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids, "deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete orders")
	}

	return result.RowsAffected()
}

func (r *orderRepository) CompleteOrders(ctx context.Context, ids []int64, completedAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Update("orders").
		Set("status", domain.OrderStatusCompleted).
		Set("completed_at", completedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids, "deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to complete orders")
	}

	return result.RowsAffected()
}

func (r *orderRepository) GetStats(ctx context.Context) (*domain.OrderStats, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", domain.OrderStatusCompleted)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", domain.OrderStatusInProgress)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE invoice_status = ?)", domain.InvoiceStatusUnpaid)).
		From("orders").
		Where(squirrel.Eq{"deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	stats := &domain.OrderStats{}
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Completed,
		&stats.InProgress,
		&stats.PendingPayment,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order stats")
	}

	return stats, nil
}

func (r *orderRepository) selectOrders() squirrel.SelectBuilder {
	return squirrel.
		Select(orderColumns...).
		From(ordersTable).
		LeftJoin("order_types ot ON ot.id = o.order_type_id").
		LeftJoin("sites s ON s.id = o.site_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query orders")
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan order")
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate orders")
	}

	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*domain.Order, error) {
	o := &domain.Order{}

	if err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.OrderTypeID,
		&o.OrderTypeName,
		&o.SiteID,
		&o.SiteName,
		&o.ClientName,
		&o.ClientEmail,
		&o.ClientPhone,
		&o.ArticleName,
		&o.PostURL,
		&o.LiveLinkStatus,
		&o.LiveLinkURL,
		&o.Notes,
		&o.ClientPrice,
		&o.AdminFee,
		&o.NetProfit,
		&o.AdminInvoiceURL,
		&o.AdminInvoiceFile,
		&o.AdminInvoicePicture,
		&o.ClientInvoiceURL,
		&o.ClientInvoiceFile,
		&o.ClientInvoicePicture,
		&o.InvoiceStatus,
		&o.Status,
		&o.CompletedAt,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.DeletedAt,
	); err != nil {
		return nil, err
	}

	return o, nil
}

func orderFilterConditions(filter domain.OrderFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"o.deleted_at": nil}}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		where = append(where, squirrel.Eq{"o.status": statuses})
	}

	if len(filter.InvoiceStatuses) > 0 {
		statuses := make([]string, 0, len(filter.InvoiceStatuses))
		for _, status := range filter.InvoiceStatuses {
			statuses = append(statuses, string(status))
		}
		where = append(where, squirrel.Eq{"o.invoice_status": statuses})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		where = append(where, containsAny(search, "o.order_number", "o.client_name"))
	}

	if filter.CreatedFrom != nil {
		where = append(where, squirrel.GtOrEq{"o.created_at": *filter.CreatedFrom})
	}

	if filter.CreatedTo != nil {
		where = append(where, squirrel.Lt{"o.created_at": filter.CreatedTo.AddDate(0, 0, 1)})
	}

	return where
}

func expectAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error getting rows affected")
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// containsAny busca o texto literal em qualquer das colunas; % e _ digitados
// pelo usuário não viram curingas
func containsAny(search string, columns ...string) squirrel.Or {
	pattern := "%" + escapeLike(search) + "%"

	or := make(squirrel.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, squirrel.Expr(column+` ILIKE ? ESCAPE '\'`, pattern))
	}
	return or
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
