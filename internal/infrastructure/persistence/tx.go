package persistence

import (
	"context"

	"github.com/erp/connector/internal/domain/sync"
	"gorm.io/gorm"
)

type txContextKey struct{}

// GormTxRunner implements sync.TxRunner on top of a GORM connection. The
// transaction handle travels in the context; repositories in this package
// pick it up via dbFromContext and so participate in the caller's
// transaction transparently.
type GormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner creates a new GormTxRunner.
func NewGormTxRunner(db *gorm.DB) *GormTxRunner {
	return &GormTxRunner{db: db}
}

// RunInTransaction executes fn inside a single database transaction. If fn
// returns an error the transaction is rolled back and the error returned
// unchanged. Nested calls reuse the outer transaction.
func (r *GormTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// dbFromContext returns the transaction stashed in ctx, or fallback when the
// caller is not inside a RunInTransaction scope.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback
}

var _ sync.TxRunner = (*GormTxRunner)(nil)
