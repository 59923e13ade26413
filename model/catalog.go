package model

import "database/sql"

type ItemCategory string

const (
	CategoryPizza    ItemCategory = "Pizza"
	CategorySide     ItemCategory = "Side"
	CategoryBeverage ItemCategory = "Beverage"
	CategoryDessert  ItemCategory = "Dessert"
)

type ItemSize string

const (
	SizeRegular ItemSize = "Regular"
	SizeLarge   ItemSize = "Large"
)

// MenuItem is a purchasable product. SKU doubles as the recipe reference key:
// composed items expand it through recipe_lines, direct-stock items consume the
// ingredient with that identifier unit-for-unit.
type MenuItem struct {
	ID         int64        `db:"id"`
	Name       string       `db:"name"`
	Category   ItemCategory `db:"category"`
	Size       ItemSize     `db:"size"`
	SKU        string       `db:"sku"`
	PriceCents int          `db:"price_cents"`
	CreatedAt  sql.NullTime `db:"created_at"`
}

type Ingredient struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	CreatedAt sql.NullTime `db:"created_at"`
}

type RecipeLine struct {
	RecipeKey       string  `db:"recipe_key"`
	IngredientID    string  `db:"ingredient_id"`
	QuantityPerUnit float64 `db:"quantity_per_unit"`
}

// IngredientRequirement is one resolved (ingredient, total quantity) pair for an
// order line.
type IngredientRequirement struct {
	IngredientID string
	Quantity     float64
}
