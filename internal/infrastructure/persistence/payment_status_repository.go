package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/erp/connector/internal/domain/sync"
	"github.com/erp/connector/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentStatusStore implements sync.PaymentStatusStore using GORM.
type GormPaymentStatusStore struct {
	db *gorm.DB
}

// NewGormPaymentStatusStore creates a new GormPaymentStatusStore.
func NewGormPaymentStatusStore(db *gorm.DB) *GormPaymentStatusStore {
	return &GormPaymentStatusStore{db: db}
}

// Get returns the payment status for an order, or nil when the order has
// never had a payment booked.
func (r *GormPaymentStatusStore) Get(ctx context.Context, orderID string) (*sync.OrderPaymentStatus, error) {
	var model models.OrderPaymentStatusModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// MarkPaid records the booking time for an order's incoming payment.
func (r *GormPaymentStatusStore) MarkPaid(ctx context.Context, orderID string, paidAt time.Time) error {
	model := models.OrderPaymentStatusModel{
		OrderID:   orderID,
		PaidAt:    &paidAt,
		UpdatedAt: time.Now(),
	}

	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"paid_at", "updated_at"}),
		}).
		Create(&model).Error
}

var _ sync.PaymentStatusStore = (*GormPaymentStatusStore)(nil)
