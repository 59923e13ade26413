package model

import "database/sql"

type Order struct {
	ID         string       `db:"id"`
	CustomerID int64        `db:"customer_id"`
	AddressID  int64        `db:"address_id"`
	Delivery   bool         `db:"delivery"`
	CreatedAt  sql.NullTime `db:"created_at"`
}

// OrderLine is owned by its Order and only ever written as part of a successful
// fulfillment commit.
type OrderLine struct {
	OrderID    string `db:"order_id"`
	MenuItemID int64  `db:"menu_item_id"`
	Quantity   int    `db:"quantity"`
}

// OrderSummary is the staff-dashboard view of an order: header plus lines with
// customer and item names joined in.
type OrderSummary struct {
	OrderID      string
	CreatedAt    sql.NullTime
	CustomerID   int64
	CustomerName string
	Lines        []OrderSummaryLine
}

type OrderSummaryLine struct {
	MenuItemID int64
	ItemName   string
	ItemSize   ItemSize
	Quantity   int
}

type OutboxStatus int

const (
	OutboxPending   OutboxStatus = 1
	OutboxCompleted OutboxStatus = 2
)

// Outbox rows carry order events written in the same transaction as the order
// itself and relayed to Kafka by the relay worker.
type Outbox struct {
	ID        int64        `db:"id"`
	Content   []byte       `db:"content"`
	Status    OutboxStatus `db:"status"`
	CreatedAt sql.NullTime `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}
