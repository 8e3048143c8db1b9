package db

import (
	"context"

	"gorm.io/gorm"
)

type transactionKey struct{}

func withTransaction(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, transactionKey{}, tx)
}

func transactionFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(transactionKey{}).(*gorm.DB)
	return tx
}

// NewTransaction runs f in a transaction. Queries issued through a client with the context
// passed to f join the transaction, and a nested call reuses the outer transaction.
func NewTransaction(ctx context.Context, client *Client, f func(context.Context) error) error {
	if tx := transactionFromContext(ctx); tx != nil {
		return f(ctx)
	}
	return client.connection.Transaction(func(tx *gorm.DB) error {
		txWithContext := tx.WithContext(ctx)
		return f(withTransaction(ctx, txWithContext))
	})
}
