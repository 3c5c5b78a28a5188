package models

import (
	"time"

	"github.com/erp/connector/internal/domain/sync"
	"github.com/google/uuid"
)

// IdentityMappingModel is the persistence model for the IdentityMapping
// domain entity. The (kind, local_id) pair is unique; Record relies on that
// constraint for its idempotent upsert.
type IdentityMappingModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	Kind      sync.EntityKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_identity_mappings_kind_local,priority:1"`
	LocalID   string          `gorm:"type:varchar(100);not null;column:local_id;uniqueIndex:idx_identity_mappings_kind_local,priority:2"`
	RemoteID  string          `gorm:"type:varchar(100);not null;column:remote_id"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (IdentityMappingModel) TableName() string {
	return "identity_mappings"
}

// ToDomain converts the persistence model to a domain IdentityMapping entity.
func (m *IdentityMappingModel) ToDomain() *sync.IdentityMapping {
	return &sync.IdentityMapping{
		ID:        m.ID,
		Kind:      m.Kind,
		LocalID:   m.LocalID,
		RemoteID:  m.RemoteID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain IdentityMapping entity.
func (m *IdentityMappingModel) FromDomain(im *sync.IdentityMapping) {
	m.ID = im.ID
	m.Kind = im.Kind
	m.LocalID = im.LocalID
	m.RemoteID = im.RemoteID
	m.CreatedAt = im.CreatedAt
	m.UpdatedAt = im.UpdatedAt
}

// OrderPaymentStatusModel is the persistence model for OrderPaymentStatus.
type OrderPaymentStatusModel struct {
	OrderID   string     `gorm:"type:varchar(100);primary_key;column:order_id"`
	PaidAt    *time.Time `gorm:"column:paid_at"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderPaymentStatusModel) TableName() string {
	return "order_payment_status"
}

// ToDomain converts the persistence model to a domain OrderPaymentStatus.
func (m *OrderPaymentStatusModel) ToDomain() *sync.OrderPaymentStatus {
	return &sync.OrderPaymentStatus{
		OrderID:   m.OrderID,
		PaidAt:    m.PaidAt,
		UpdatedAt: m.UpdatedAt,
	}
}
