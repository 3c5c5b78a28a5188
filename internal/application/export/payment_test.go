package export

import (
	"context"
	"testing"
	"time"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/domain/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type paymentFixture struct {
	orders     *mockOrderRepository
	payments   *mockPaymentStatusStore
	identities *mockIdentityMap
	gateway    *mockGateway
	customers  *mockEntityExporter
	tx         *mockTxRunner
	exporter   *PaymentExporter
	now        time.Time
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		orders:     new(mockOrderRepository),
		payments:   new(mockPaymentStatusStore),
		identities: new(mockIdentityMap),
		gateway:    new(mockGateway),
		customers:  new(mockEntityExporter),
		tx:         new(mockTxRunner),
		now:        time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
	}
	f.exporter = NewPaymentExporter(
		f.orders, f.payments, f.identities, f.gateway, f.customers, f.tx, zap.NewNop(),
	).WithClock(func() time.Time { return f.now })
	return f
}

// expectResolved wires the happy-path identity lookups: order 42 exported
// as 5001, customer 7 as 9001, EUR as 2, payment method 3 as 4.
func (f *paymentFixture) expectResolved() {
	f.identities.On("Resolve", mock.Anything, sync.EntityKindOrder, "42").Return("5001", nil)
	f.identities.On("Resolve", mock.Anything, sync.EntityKindCustomer, "7").Return("9001", nil)
	f.identities.On("Resolve", mock.Anything, sync.EntityKindCurrency, "EUR").Return("2", nil)
	f.identities.On("Resolve", mock.Anything, sync.EntityKindPaymentMethod, "3").Return("4", nil)
}

func TestPaymentExporter_Export(t *testing.T) {
	t.Run("books payment and commits mapping with paid status", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.expectResolved()
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)

		var captured *erp.AddIncomingPayment
		f.gateway.On("AddIncomingPayment", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*erp.AddIncomingPayment)
			}).
			Return(&erp.ExportResult{Success: true, RemoteID: "7001"}, nil)

		f.tx.On("RunInTransaction", mock.Anything).Return(nil)
		f.identities.On("Record", mock.Anything, sync.EntityKindPayment, "42", "7001").Return(nil)
		f.payments.On("MarkPaid", mock.Anything, "42", f.now).Return(nil)

		err := f.exporter.Export(context.Background(), 42)
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, 19.99, captured.Amount)
		assert.Equal(t, "2", captured.Currency)
		assert.Equal(t, "jane@example.com", captured.CustomerEmail)
		assert.Equal(t, 9001, captured.CustomerID)
		assert.Equal(t, "Jane Doe", captured.CustomerName)
		assert.Equal(t, 4, captured.MethodOfPaymentID)
		assert.Equal(t, 5001, captured.OrderID)
		assert.Equal(t, "Shop (OrderId: 42, CustomerId: 7)", captured.ReasonForPayment)

		f.gateway.AssertNumberOfCalls(t, "AddIncomingPayment", 1)
		f.identities.AssertExpectations(t)
		f.payments.AssertExpectations(t)
	})

	t.Run("missing transaction id falls back to reason for payment", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := testOrder()
		order.TransactionID = ""
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(order, nil)
		f.expectResolved()
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)

		var captured *erp.AddIncomingPayment
		f.gateway.On("AddIncomingPayment", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*erp.AddIncomingPayment)
			}).
			Return(&erp.ExportResult{Success: true, RemoteID: "7001"}, nil)
		f.tx.On("RunInTransaction", mock.Anything).Return(nil)
		f.identities.On("Record", mock.Anything, sync.EntityKindPayment, "42", "7001").Return(nil)
		f.payments.On("MarkPaid", mock.Anything, "42", f.now).Return(nil)

		require.NoError(t, f.exporter.Export(context.Background(), 42))
		assert.Equal(t, "Shop (OrderId: 42, CustomerId: 7)", captured.TransactionID)
		assert.Equal(t, f.now.Unix(), captured.TransactionTime)
	})

	t.Run("cleared date is used as transaction time when present", func(t *testing.T) {
		f := newPaymentFixture(t)
		cleared := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
		order := testOrder()
		order.TransactionID = "TXN-123"
		order.ClearedAt = &cleared
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(order, nil)
		f.expectResolved()
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)

		var captured *erp.AddIncomingPayment
		f.gateway.On("AddIncomingPayment", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*erp.AddIncomingPayment)
			}).
			Return(&erp.ExportResult{Success: true, RemoteID: "7001"}, nil)
		f.tx.On("RunInTransaction", mock.Anything).Return(nil)
		f.identities.On("Record", mock.Anything, sync.EntityKindPayment, "42", "7001").Return(nil)
		f.payments.On("MarkPaid", mock.Anything, "42", f.now).Return(nil)

		require.NoError(t, f.exporter.Export(context.Background(), 42))
		assert.Equal(t, "TXN-123", captured.TransactionID)
		assert.Equal(t, cleared.Unix(), captured.TransactionTime)
	})

	t.Run("unknown order fails with NOT_FOUND before any remote call", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(99)).Return(nil, shop.ErrOrderNotFound)

		err := f.exporter.Export(context.Background(), 99)
		assert.Equal(t, sync.ErrorKindNotFound, sync.KindOf(err))
		f.gateway.AssertNotCalled(t, "AddIncomingPayment", mock.Anything, mock.Anything)
	})

	t.Run("unexported order fails with PREREQUISITE_MISSING", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindOrder, "42").
			Return("", sync.ErrMappingNotFound)

		err := f.exporter.Export(context.Background(), 42)
		assert.Equal(t, sync.ErrorKindPrerequisiteMissing, sync.KindOf(err))
		f.gateway.AssertNotCalled(t, "AddIncomingPayment", mock.Anything, mock.Anything)
	})

	t.Run("already booked payment fails with ALREADY_EXPORTED and no remote call", func(t *testing.T) {
		f := newPaymentFixture(t)
		paidAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindOrder, "42").Return("5001", nil)
		f.payments.On("Get", mock.Anything, "42").
			Return(&sync.OrderPaymentStatus{OrderID: "42", PaidAt: &paidAt}, nil)

		err := f.exporter.Export(context.Background(), 42)
		assert.Equal(t, sync.ErrorKindAlreadyExported, sync.KindOf(err))
		f.gateway.AssertNotCalled(t, "AddIncomingPayment", mock.Anything, mock.Anything)
		f.payments.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing customer mapping triggers one inline export", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindOrder, "42").Return("5001", nil)
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)

		// First lookup misses, the inline export repairs it, the retry hits.
		f.identities.On("Resolve", mock.Anything, sync.EntityKindCustomer, "7").
			Return("", sync.ErrMappingNotFound).Once()
		f.customers.On("Export", mock.Anything, int64(7)).Return(nil).Once()
		f.identities.On("Resolve", mock.Anything, sync.EntityKindCustomer, "7").
			Return("9001", nil).Once()

		f.identities.On("Resolve", mock.Anything, sync.EntityKindCurrency, "EUR").Return("2", nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindPaymentMethod, "3").Return("4", nil)
		f.gateway.On("AddIncomingPayment", mock.Anything, mock.Anything).
			Return(&erp.ExportResult{Success: true, RemoteID: "7001"}, nil)
		f.tx.On("RunInTransaction", mock.Anything).Return(nil)
		f.identities.On("Record", mock.Anything, sync.EntityKindPayment, "42", "7001").Return(nil)
		f.payments.On("MarkPaid", mock.Anything, "42", f.now).Return(nil)

		require.NoError(t, f.exporter.Export(context.Background(), 42))
		f.customers.AssertNumberOfCalls(t, "Export", 1)
	})

	t.Run("failed inline customer export fails with DEPENDENCY_EXPORT", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindOrder, "42").Return("5001", nil)
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindCustomer, "7").
			Return("", sync.ErrMappingNotFound)
		f.customers.On("Export", mock.Anything, int64(7)).
			Return(sync.NewTransportError(sync.EntityKindCustomer, "7", assert.AnError))

		err := f.exporter.Export(context.Background(), 42)
		assert.Equal(t, sync.ErrorKindDependencyExport, sync.KindOf(err))
		f.gateway.AssertNotCalled(t, "AddIncomingPayment", mock.Anything, mock.Anything)
	})

	t.Run("mapping still missing after inline export fails with DEPENDENCY_EXPORT", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindOrder, "42").Return("5001", nil)
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindCustomer, "7").
			Return("", sync.ErrMappingNotFound)
		f.customers.On("Export", mock.Anything, int64(7)).Return(nil)

		err := f.exporter.Export(context.Background(), 42)
		assert.Equal(t, sync.ErrorKindDependencyExport, sync.KindOf(err))
		// Exactly one inline attempt, never a loop.
		f.customers.AssertNumberOfCalls(t, "Export", 1)
	})

	t.Run("unseeded currency mapping fails with DEPENDENCY_EXPORT", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindOrder, "42").Return("5001", nil)
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindCustomer, "7").Return("9001", nil)
		f.identities.On("Resolve", mock.Anything, sync.EntityKindCurrency, "EUR").
			Return("", sync.ErrMappingNotFound)

		err := f.exporter.Export(context.Background(), 42)
		assert.Equal(t, sync.ErrorKindDependencyExport, sync.KindOf(err))
		f.gateway.AssertNotCalled(t, "AddIncomingPayment", mock.Anything, mock.Anything)
	})

	t.Run("transport failure is retryable and leaves no local state", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.expectResolved()
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)
		f.gateway.On("AddIncomingPayment", mock.Anything, mock.Anything).
			Return(nil, erp.ErrTransport)

		err := f.exporter.Export(context.Background(), 42)
		assert.Equal(t, sync.ErrorKindTransport, sync.KindOf(err))
		assert.True(t, sync.IsRetryable(err))
		f.payments.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
		f.identities.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("business rejection is not retryable and leaves no local state", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.expectResolved()
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)
		f.gateway.On("AddIncomingPayment", mock.Anything, mock.Anything).
			Return(&erp.ExportResult{Success: false, ErrorCode: "DUPLICATE", ErrorMessage: "already booked"}, nil)

		err := f.exporter.Export(context.Background(), 42)
		assert.Equal(t, sync.ErrorKindBusinessRejection, sync.KindOf(err))
		assert.False(t, sync.IsRetryable(err))
		assert.Contains(t, err.Error(), "already booked")
		f.payments.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("commit failure surfaces the transaction error", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.expectResolved()
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)
		f.gateway.On("AddIncomingPayment", mock.Anything, mock.Anything).
			Return(&erp.ExportResult{Success: true, RemoteID: "7001"}, nil)
		f.tx.On("RunInTransaction", mock.Anything).Return(nil)
		f.identities.On("Record", mock.Anything, sync.EntityKindPayment, "42", "7001").
			Return(assert.AnError)

		err := f.exporter.Export(context.Background(), 42)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("empty remote id skips the mapping but still marks paid", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.orders.On("FindByID", mock.Anything, int64(42)).Return(testOrder(), nil)
		f.expectResolved()
		f.payments.On("Get", mock.Anything, "42").Return(nil, nil)
		f.gateway.On("AddIncomingPayment", mock.Anything, mock.Anything).
			Return(&erp.ExportResult{Success: true}, nil)
		f.tx.On("RunInTransaction", mock.Anything).Return(nil)
		f.payments.On("MarkPaid", mock.Anything, "42", f.now).Return(nil)

		require.NoError(t, f.exporter.Export(context.Background(), 42))
		f.identities.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
