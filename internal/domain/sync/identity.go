package sync

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMappingNotFound indicates no remote identity has been recorded for
	// a (kind, local id) pair. Absence means "not yet exported" and is the
	// trigger for inline dependency exports.
	ErrMappingNotFound = errors.New("sync: identity mapping not found")
	// ErrMappingInvalidKind indicates an unknown entity kind.
	ErrMappingInvalidKind = errors.New("sync: invalid entity kind")
	// ErrMappingInvalidLocalID indicates an empty local identifier.
	ErrMappingInvalidLocalID = errors.New("sync: invalid local identifier")
	// ErrMappingInvalidRemoteID indicates an empty remote identifier.
	ErrMappingInvalidRemoteID = errors.New("sync: invalid remote identifier")
)

// ---------------------------------------------------------------------------
// EntityKind
// ---------------------------------------------------------------------------

// EntityKind identifies the kind of a synchronized entity. The identity map
// is keyed by (EntityKind, local identifier).
type EntityKind string

const (
	// EntityKindOrder is a storefront sales order.
	EntityKindOrder EntityKind = "ORDER"
	// EntityKindPayment is the incoming payment booked for an exported order.
	EntityKindPayment EntityKind = "PAYMENT"
	// EntityKindCustomer is a storefront customer.
	EntityKindCustomer EntityKind = "CUSTOMER"
	// EntityKindProduct is a storefront product.
	EntityKindProduct EntityKind = "PRODUCT"
	// EntityKindWarehouse is a warehouse definition.
	EntityKindWarehouse EntityKind = "WAREHOUSE"
	// EntityKindProperty is a product property group.
	EntityKindProperty EntityKind = "PROPERTY"
	// EntityKindCurrency is a resolve-only kind seeded by configuration
	// import; the connector never exports currencies itself.
	EntityKindCurrency EntityKind = "CURRENCY"
	// EntityKindPaymentMethod is a resolve-only kind seeded by configuration import.
	EntityKindPaymentMethod EntityKind = "PAYMENT_METHOD"
)

// IsValid returns true if the entity kind is known.
func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindOrder, EntityKindPayment, EntityKindCustomer, EntityKindProduct,
		EntityKindWarehouse, EntityKindProperty, EntityKindCurrency, EntityKindPaymentMethod:
		return true
	default:
		return false
	}
}

// String returns the string representation of EntityKind.
func (k EntityKind) String() string {
	return string(k)
}

// ---------------------------------------------------------------------------
// IdentityMapping Entity
// ---------------------------------------------------------------------------

// IdentityMapping records the remote identity the ERP assigned to a local
// entity at its first successful export. Entries are created exactly once
// and never deleted by the connector; re-export idempotency relies on them.
type IdentityMapping struct {
	// ID is the unique identifier of this mapping row
	ID uuid.UUID
	// Kind is the entity kind this mapping is for
	Kind EntityKind
	// LocalID is the storefront-side identifier
	LocalID string
	// RemoteID is the opaque identifier assigned by the ERP
	RemoteID string
	// CreatedAt is when the mapping was first recorded
	CreatedAt time.Time
	// UpdatedAt is when the mapping was last touched
	UpdatedAt time.Time
}

// NewIdentityMapping creates a new identity mapping.
func NewIdentityMapping(kind EntityKind, localID, remoteID string) (*IdentityMapping, error) {
	if !kind.IsValid() {
		return nil, ErrMappingInvalidKind
	}
	if localID == "" {
		return nil, ErrMappingInvalidLocalID
	}
	if remoteID == "" {
		return nil, ErrMappingInvalidRemoteID
	}

	now := time.Now()
	return &IdentityMapping{
		ID:        uuid.New(),
		Kind:      kind,
		LocalID:   localID,
		RemoteID:  remoteID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ---------------------------------------------------------------------------
// IdentityMap Port
// ---------------------------------------------------------------------------

// IdentityMap is the persistent local<->remote identity correspondence.
// Resolve is a pure lookup; Record is an idempotent upsert that adapters
// call only after a confirmed successful export, inside the same local
// transaction as the entity's status update.
type IdentityMap interface {
	// Resolve returns the remote identity for (kind, localID).
	// Returns ErrMappingNotFound when the entity has not been exported yet.
	Resolve(ctx context.Context, kind EntityKind, localID string) (string, error)

	// Record persists the remote identity assigned at first successful
	// export. Recording the same pair again is a no-op upsert.
	Record(ctx context.Context, kind EntityKind, localID, remoteID string) error

	// FindByKind lists all mappings of one kind, newest first.
	FindByKind(ctx context.Context, kind EntityKind, limit int) ([]IdentityMapping, error)
}

// ---------------------------------------------------------------------------
// Payment status
// ---------------------------------------------------------------------------

// OrderPaymentStatus tracks the incoming-payment booking state of an
// exported order. "Order exported" and "payment booked" are independent
// states: the former is the presence of the order's identity mapping, the
// latter is PaidAt on this record.
type OrderPaymentStatus struct {
	// OrderID is the storefront order identifier
	OrderID string
	// PaidAt is when the incoming payment was booked in the ERP;
	// nil means the payment has not been exported yet
	PaidAt *time.Time
	// UpdatedAt is when this record was last updated
	UpdatedAt time.Time
}

// Paid reports whether the incoming payment has been booked.
func (s *OrderPaymentStatus) Paid() bool {
	return s != nil && s.PaidAt != nil
}

// PaymentStatusStore persists the per-order payment booking state.
type PaymentStatusStore interface {
	// Get returns the payment status for an order, or nil when the order
	// has never had a payment booked.
	Get(ctx context.Context, orderID string) (*OrderPaymentStatus, error)

	// MarkPaid records the booking time. Called only after the ERP
	// confirmed the payment, inside the export commit transaction.
	MarkPaid(ctx context.Context, orderID string, paidAt time.Time) error
}

// ---------------------------------------------------------------------------
// TxRunner Port
// ---------------------------------------------------------------------------

// TxRunner executes fn inside a single local transaction. The context passed
// to fn carries the transaction; repositories participate in it
// transparently. If fn returns an error the transaction is rolled back, so a
// failed export attempt leaves no partial IdentityMap or status writes.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
