package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mohitahujaa/pizzeria-management/dbtx"
	"github.com/mohitahujaa/pizzeria-management/model"
)

type IRepo interface {
	GetMenuItem(ctx context.Context, id int64) (model.MenuItem, bool, error)
	GetRecipeLines(ctx context.Context, recipeKey string) ([]model.RecipeLine, error)
}

type repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) IRepo {
	return &repo{
		db: db,
	}
}

var getMenuItemQuery = "SELECT * FROM menu_items WHERE id = ?"

func (r repo) GetMenuItem(ctx context.Context, id int64) (model.MenuItem, bool, error) {
	var res model.MenuItem
	err := sqlx.GetContext(ctx, dbtx.From(ctx, r.db), &res, getMenuItemQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MenuItem{}, false, nil
	}
	if err != nil {
		return model.MenuItem{}, false, err
	}
	return res, true, nil
}

// Ordered so resolution enumerates ingredients the same way every time.
var getRecipeLinesQuery = "SELECT * FROM recipe_lines WHERE recipe_key = ? ORDER BY ingredient_id"

func (r repo) GetRecipeLines(ctx context.Context, recipeKey string) ([]model.RecipeLine, error) {
	var res []model.RecipeLine
	err := sqlx.SelectContext(ctx, dbtx.From(ctx, r.db), &res, getRecipeLinesQuery, recipeKey)
	return res, err
}
