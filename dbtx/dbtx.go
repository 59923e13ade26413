package dbtx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// Transact runs fn inside a single database transaction. The transaction is
// attached to the context, so every repo call made through From inside fn joins
// it. An error or panic from fn rolls the transaction back; cancelling ctx
// aborts it through the driver.
func Transact(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = fn(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		return err
	}
	return tx.Commit()
}

// From returns the transaction attached to ctx, falling back to db when no
// transaction is open.
func From(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}
