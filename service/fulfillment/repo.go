package fulfillment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/mohitahujaa/pizzeria-management/dbtx"
	"github.com/mohitahujaa/pizzeria-management/model"
)

type IRepo interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	CustomerExists(ctx context.Context, id int64) (bool, error)
	AddressExists(ctx context.Context, id int64) (bool, error)
	CreateOrder(ctx context.Context, order model.Order) error
	CreateOrderLines(ctx context.Context, lines []model.OrderLine) error
	CreateOutbox(ctx context.Context, outbox model.Outbox) error
	GetPendingOutbox(ctx context.Context, limit int) ([]model.Outbox, error)
	MarkDoneOutboxes(ctx context.Context, ids []int64) error
	ListRecentOrders(ctx context.Context, limit int) ([]model.OrderSummary, error)
}

type repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) IRepo {
	return &repo{
		db: db,
	}
}

func (r repo) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbtx.Transact(ctx, r.db, fn)
}

var customerExistsQuery = "SELECT count(*) FROM customers WHERE id = ?"

func (r repo) CustomerExists(ctx context.Context, id int64) (bool, error) {
	var res int
	err := sqlx.GetContext(ctx, dbtx.From(ctx, r.db), &res, customerExistsQuery, id)
	return res > 0, err
}

var addressExistsQuery = "SELECT count(*) FROM addresses WHERE id = ?"

func (r repo) AddressExists(ctx context.Context, id int64) (bool, error) {
	var res int
	err := sqlx.GetContext(ctx, dbtx.From(ctx, r.db), &res, addressExistsQuery, id)
	return res > 0, err
}

var createOrderQuery = "INSERT INTO orders (id, customer_id, address_id, delivery) VALUES (:id, :customer_id, :address_id, :delivery)"

func (r repo) CreateOrder(ctx context.Context, order model.Order) error {
	_, err := sqlx.NamedExecContext(ctx, dbtx.From(ctx, r.db), createOrderQuery, order)
	return err
}

var createOrderLinesQuery = "INSERT INTO order_lines (order_id, menu_item_id, quantity) VALUES (:order_id, :menu_item_id, :quantity)"

func (r repo) CreateOrderLines(ctx context.Context, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := sqlx.NamedExecContext(ctx, dbtx.From(ctx, r.db), createOrderLinesQuery, lines)
	return err
}

var createOutboxQuery = "INSERT INTO order_outboxes (content) VALUES (:content)"

func (r repo) CreateOutbox(ctx context.Context, outbox model.Outbox) error {
	_, err := sqlx.NamedExecContext(ctx, dbtx.From(ctx, r.db), createOutboxQuery, outbox)
	return err
}

var getPendingOutboxQuery = "SELECT * FROM order_outboxes WHERE status = ? ORDER BY id LIMIT ?"

func (r repo) GetPendingOutbox(ctx context.Context, limit int) ([]model.Outbox, error) {
	var res []model.Outbox
	err := sqlx.SelectContext(ctx, dbtx.From(ctx, r.db), &res, getPendingOutboxQuery, model.OutboxPending, limit)
	return res, err
}

var markDoneOutboxesQuery = "UPDATE order_outboxes SET status = ? WHERE id IN (?)"

func (r repo) MarkDoneOutboxes(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(markDoneOutboxesQuery, model.OutboxCompleted, ids)
	if err != nil {
		return err
	}

	_, err = dbtx.From(ctx, r.db).ExecContext(ctx, query, args...)
	return err
}

type recentOrderRow struct {
	OrderID      string         `db:"order_id"`
	CreatedAt    sql.NullTime   `db:"created_at"`
	CustomerID   int64          `db:"customer_id"`
	CustomerName string         `db:"customer_name"`
	MenuItemID   int64          `db:"menu_item_id"`
	ItemName     string         `db:"item_name"`
	ItemSize     model.ItemSize `db:"item_size"`
	Quantity     int            `db:"quantity"`
}

var listRecentOrdersQuery = `
SELECT o.id AS order_id,
       o.created_at,
       o.customer_id,
       CONCAT(c.first_name, ' ', c.last_name) AS customer_name,
       l.menu_item_id,
       m.name AS item_name,
       m.size AS item_size,
       l.quantity
FROM orders o
JOIN customers c ON c.id = o.customer_id
JOIN order_lines l ON l.order_id = o.id
JOIN menu_items m ON m.id = l.menu_item_id
ORDER BY o.created_at DESC, o.id, l.menu_item_id
LIMIT ?`

// ListRecentOrders returns the newest orders with their lines grouped per
// order, for the staff dashboard. limit bounds the number of joined rows.
func (r repo) ListRecentOrders(ctx context.Context, limit int) ([]model.OrderSummary, error) {
	var rows []recentOrderRow
	err := sqlx.SelectContext(ctx, dbtx.From(ctx, r.db), &rows, listRecentOrdersQuery, limit)
	if err != nil {
		return nil, err
	}

	var res []model.OrderSummary
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			res = append(res, model.OrderSummary{
				OrderID:      row.OrderID,
				CreatedAt:    row.CreatedAt,
				CustomerID:   row.CustomerID,
				CustomerName: row.CustomerName,
			})
			i = len(res) - 1
			index[row.OrderID] = i
		}
		res[i].Lines = append(res[i].Lines, model.OrderSummaryLine{
			MenuItemID: row.MenuItemID,
			ItemName:   row.ItemName,
			ItemSize:   row.ItemSize,
			Quantity:   row.Quantity,
		})
	}
	return res, nil
}
