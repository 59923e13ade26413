package model

import "database/sql"

// StockLevel holds the current on-hand quantity of one ingredient. The quantity
// never goes negative; decrements that would cross zero are rejected.
type StockLevel struct {
	IngredientID string       `db:"ingredient_id"`
	Quantity     float64      `db:"quantity"`
	UpdatedAt    sql.NullTime `db:"updated_at"`
}
