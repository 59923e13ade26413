package stock

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mohitahujaa/pizzeria-management/dbtx"
	"github.com/mohitahujaa/pizzeria-management/model"
)

type IRepo interface {
	GetQuantity(ctx context.Context, ingredientID string) (float64, bool, error)
	DecrementIfAvailable(ctx context.Context, ingredientID string, amount float64) (bool, error)
	ListLevels(ctx context.Context) ([]model.StockLevel, error)
}

type repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) IRepo {
	return &repo{
		db: db,
	}
}

var getQuantityQuery = "SELECT quantity FROM stock_levels WHERE ingredient_id = ?"

func (r repo) GetQuantity(ctx context.Context, ingredientID string) (float64, bool, error) {
	var res float64
	err := sqlx.GetContext(ctx, dbtx.From(ctx, r.db), &res, getQuantityQuery, ingredientID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return res, true, nil
}

// The check and the write are one statement, so concurrent orders cannot both
// pass a stale check; the store's row lock serializes overlapping decrements.
var decrementQuery = "UPDATE stock_levels SET quantity = quantity - ? WHERE ingredient_id = ? AND quantity >= ?"

func (r repo) DecrementIfAvailable(ctx context.Context, ingredientID string, amount float64) (bool, error) {
	res, err := dbtx.From(ctx, r.db).ExecContext(ctx, decrementQuery, amount, ingredientID, amount)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

var listLevelsQuery = "SELECT * FROM stock_levels ORDER BY ingredient_id"

func (r repo) ListLevels(ctx context.Context) ([]model.StockLevel, error) {
	var res []model.StockLevel
	err := sqlx.SelectContext(ctx, dbtx.From(ctx, r.db), &res, listLevelsQuery)
	return res, err
}
