package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/domain/sync"
	"go.uber.org/zap"
)

// PaymentExporter books the incoming payment of an exported order in the
// ERP. It is the canonical identity-mapped export adapter: guard checks,
// dependency resolution with a single inline customer re-export, pure
// request assembly, exactly one remote call, and an atomic local commit of
// the identity mapping plus the order's paid status.
type PaymentExporter struct {
	orders     shop.OrderRepository
	payments   sync.PaymentStatusStore
	identities sync.IdentityMap
	gateway    erp.RemoteGateway
	customers  EntityExporter
	tx         sync.TxRunner
	clock      Clock
	logger     *zap.Logger
}

// NewPaymentExporter creates a new PaymentExporter. customers is the
// exporter used for the depth-1 inline re-export of a missing customer
// mapping.
func NewPaymentExporter(
	orders shop.OrderRepository,
	payments sync.PaymentStatusStore,
	identities sync.IdentityMap,
	gateway erp.RemoteGateway,
	customers EntityExporter,
	tx sync.TxRunner,
	logger *zap.Logger,
) *PaymentExporter {
	return &PaymentExporter{
		orders:     orders,
		payments:   payments,
		identities: identities,
		gateway:    gateway,
		customers:  customers,
		tx:         tx,
		clock:      time.Now,
		logger:     logger,
	}
}

// WithClock replaces the time source. Used by tests.
func (e *PaymentExporter) WithClock(clock Clock) *PaymentExporter {
	e.clock = clock
	return e
}

// Export books the incoming payment for one order.
func (e *PaymentExporter) Export(ctx context.Context, orderID int64) error {
	id := localID(orderID)

	order, err := e.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shop.ErrOrderNotFound) {
			return sync.NewNotFoundError(sync.EntityKindOrder, id)
		}
		return err
	}

	// The order itself must have been exported first.
	remoteOrderID, err := e.identities.Resolve(ctx, sync.EntityKindOrder, id)
	if err != nil {
		if errors.Is(err, sync.ErrMappingNotFound) {
			return sync.NewPrerequisiteMissingError(sync.EntityKindPayment, id,
				"order has not been exported to the ERP yet")
		}
		return err
	}

	// Idempotency guard: a booked payment is never booked twice.
	status, err := e.payments.Get(ctx, id)
	if err != nil {
		return err
	}
	if status.Paid() {
		return sync.NewAlreadyExportedError(sync.EntityKindPayment, id)
	}

	customerRemoteID, err := e.resolveCustomer(ctx, id, order)
	if err != nil {
		return err
	}

	currency, err := e.resolveSeededMapping(ctx, id, sync.EntityKindCurrency, order.CurrencyCode)
	if err != nil {
		return err
	}
	methodRemoteID, err := e.resolveSeededMapping(ctx, id, sync.EntityKindPaymentMethod, localID(order.PaymentMethodID))
	if err != nil {
		return err
	}

	req, err := assemblePaymentRequest(order, remoteOrderID, customerRemoteID, currency, methodRemoteID, e.clock())
	if err != nil {
		return err
	}

	result, err := e.gateway.AddIncomingPayment(ctx, req)
	if err != nil {
		return sync.NewTransportError(sync.EntityKindPayment, id, err)
	}
	if !result.Success {
		return sync.NewBusinessRejectionError(sync.EntityKindPayment, id, result.ErrorMessage)
	}

	// Identity mapping and paid status commit together or not at all.
	paidAt := e.clock()
	err = e.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if result.RemoteID != "" {
			if err := e.identities.Record(txCtx, sync.EntityKindPayment, id, result.RemoteID); err != nil {
				return err
			}
		}
		return e.payments.MarkPaid(txCtx, id, paidAt)
	})
	if err != nil {
		return err
	}

	e.logger.Info("incoming payment booked",
		zap.String("order_id", id),
		zap.String("remote_order_id", remoteOrderID),
		zap.Time("paid_at", paidAt))
	return nil
}

// resolveCustomer resolves the order's customer to its remote identity,
// re-exporting the customer inline at most once when the mapping is missing.
func (e *PaymentExporter) resolveCustomer(ctx context.Context, orderLocalID string, order *shop.Order) (string, error) {
	depID := localID(order.CustomerID)

	remoteID, err := e.identities.Resolve(ctx, sync.EntityKindCustomer, depID)
	if err == nil {
		return remoteID, nil
	}
	if !errors.Is(err, sync.ErrMappingNotFound) {
		return "", err
	}

	e.logger.Info("customer mapping missing, re-exporting inline",
		zap.String("order_id", orderLocalID),
		zap.String("customer_id", depID))

	if err := e.customers.Export(ctx, order.CustomerID); err != nil {
		return "", sync.NewDependencyExportError(sync.EntityKindPayment, orderLocalID,
			sync.EntityKindCustomer, depID, err)
	}

	// Single retry of the lookup after the inline export.
	remoteID, err = e.identities.Resolve(ctx, sync.EntityKindCustomer, depID)
	if err != nil {
		return "", sync.NewDependencyExportError(sync.EntityKindPayment, orderLocalID,
			sync.EntityKindCustomer, depID, err)
	}
	return remoteID, nil
}

// resolveSeededMapping resolves a resolve-only kind (currency, payment
// method). These mappings are seeded by configuration import; a miss cannot
// be repaired by an inline export.
func (e *PaymentExporter) resolveSeededMapping(ctx context.Context, orderLocalID string, kind sync.EntityKind, key string) (string, error) {
	remoteID, err := e.identities.Resolve(ctx, kind, key)
	if err != nil {
		if errors.Is(err, sync.ErrMappingNotFound) {
			return "", sync.NewDependencyExportError(sync.EntityKindPayment, orderLocalID, kind, key, err)
		}
		return "", err
	}
	return remoteID, nil
}

// assemblePaymentRequest maps the order and its resolved identities onto
// the wire request. Missing optional source fields get documented defaults:
// an absent transaction id is replaced by the reason-for-payment string, an
// absent cleared date by now.
func assemblePaymentRequest(
	order *shop.Order,
	remoteOrderID, customerRemoteID, currency, methodRemoteID string,
	now time.Time,
) (*erp.AddIncomingPayment, error) {
	orderIDNum, err := remoteIDToInt(remoteOrderID)
	if err != nil {
		return nil, err
	}
	customerIDNum, err := remoteIDToInt(customerRemoteID)
	if err != nil {
		return nil, err
	}
	methodIDNum, err := remoteIDToInt(methodRemoteID)
	if err != nil {
		return nil, err
	}

	reason := fmt.Sprintf("Shop (OrderId: %d, CustomerId: %d)", order.ID, order.CustomerID)

	transactionID := order.TransactionID
	if transactionID == "" {
		transactionID = reason
	}

	transactionTime := now.Unix()
	if order.ClearedAt != nil {
		transactionTime = order.ClearedAt.Unix()
	}

	amount, _ := order.InvoiceAmount.Float64()

	return &erp.AddIncomingPayment{
		Amount:            amount,
		Currency:          currency,
		CustomerEmail:     order.CustomerEmail,
		CustomerID:        customerIDNum,
		CustomerName:      order.BillingName(),
		MethodOfPaymentID: methodIDNum,
		OrderID:           orderIDNum,
		ReasonForPayment:  reason,
		TransactionID:     transactionID,
		TransactionTime:   transactionTime,
	}, nil
}

var _ EntityExporter = (*PaymentExporter)(nil)
