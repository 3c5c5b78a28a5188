package export

import (
	"context"
	"time"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/domain/sync"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// ---------------------------------------------------------------------------
// Repository mocks
// ---------------------------------------------------------------------------

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int64) (*shop.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id int64) (*shop.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Customer), args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*shop.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Product), args.Error(1)
}

type mockWarehouseRepository struct {
	mock.Mock
}

func (m *mockWarehouseRepository) FindByID(ctx context.Context, id int64) (*shop.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Warehouse), args.Error(1)
}

type mockPropertyRepository struct {
	mock.Mock
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, id int64) (*shop.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Property), args.Error(1)
}

// ---------------------------------------------------------------------------
// Sync port mocks
// ---------------------------------------------------------------------------

type mockIdentityMap struct {
	mock.Mock
}

func (m *mockIdentityMap) Resolve(ctx context.Context, kind sync.EntityKind, localID string) (string, error) {
	args := m.Called(ctx, kind, localID)
	return args.String(0), args.Error(1)
}

func (m *mockIdentityMap) Record(ctx context.Context, kind sync.EntityKind, localID, remoteID string) error {
	args := m.Called(ctx, kind, localID, remoteID)
	return args.Error(0)
}

func (m *mockIdentityMap) FindByKind(ctx context.Context, kind sync.EntityKind, limit int) ([]sync.IdentityMapping, error) {
	args := m.Called(ctx, kind, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sync.IdentityMapping), args.Error(1)
}

type mockPaymentStatusStore struct {
	mock.Mock
}

func (m *mockPaymentStatusStore) Get(ctx context.Context, orderID string) (*sync.OrderPaymentStatus, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sync.OrderPaymentStatus), args.Error(1)
}

func (m *mockPaymentStatusStore) MarkPaid(ctx context.Context, orderID string, paidAt time.Time) error {
	args := m.Called(ctx, orderID, paidAt)
	return args.Error(0)
}

// mockTxRunner runs the function inline with the same context, so the
// mocks observe all calls made inside the transaction scope.
type mockTxRunner struct {
	mock.Mock
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Gateway and resolver mocks
// ---------------------------------------------------------------------------

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) AddIncomingPayment(ctx context.Context, req *erp.AddIncomingPayment) (*erp.ExportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*erp.ExportResult), args.Error(1)
}

func (m *mockGateway) SetCustomer(ctx context.Context, req *erp.SetCustomer) (*erp.ExportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*erp.ExportResult), args.Error(1)
}

func (m *mockGateway) SetOrder(ctx context.Context, req *erp.SetOrder) (*erp.ExportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*erp.ExportResult), args.Error(1)
}

func (m *mockGateway) SetProduct(ctx context.Context, req *erp.SetProduct) (*erp.ExportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*erp.ExportResult), args.Error(1)
}

func (m *mockGateway) SetWarehouse(ctx context.Context, req *erp.SetWarehouse) (*erp.ExportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*erp.ExportResult), args.Error(1)
}

func (m *mockGateway) SetProperty(ctx context.Context, req *erp.SetProperty) (*erp.ExportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*erp.ExportResult), args.Error(1)
}

type mockTranslationResolver struct {
	mock.Mock
}

func (m *mockTranslationResolver) ShopsForLocale(ctx context.Context, locale shop.Locale) ([]shop.Shop, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *mockTranslationResolver) PropertyOptionByName(ctx context.Context, property shop.Property) (*shop.PropertyOption, error) {
	args := m.Called(ctx, property)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.PropertyOption), args.Error(1)
}

func (m *mockTranslationResolver) PropertyValueByValue(ctx context.Context, value shop.PropertyValue) (*shop.PropertyValueRecord, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.PropertyValueRecord), args.Error(1)
}

func (m *mockTranslationResolver) ConfiguratorGroupByName(ctx context.Context, property shop.Property) (*shop.ConfiguratorGroup, error) {
	args := m.Called(ctx, property)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.ConfiguratorGroup), args.Error(1)
}

func (m *mockTranslationResolver) ConfiguratorOptionByName(ctx context.Context, value shop.PropertyValue) (*shop.ConfiguratorOption, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.ConfiguratorOption), args.Error(1)
}

type mockEntityExporter struct {
	mock.Mock
}

func (m *mockEntityExporter) Export(ctx context.Context, localID int64) error {
	args := m.Called(ctx, localID)
	return args.Error(0)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func testOrder() *shop.Order {
	return &shop.Order{
		ID:               42,
		Number:           "20042",
		CustomerID:       7,
		CustomerEmail:    "jane@example.com",
		BillingFirstName: "Jane",
		BillingLastName:  "Doe",
		InvoiceAmount:    decimal.NewFromFloat(19.99),
		CurrencyCode:     "EUR",
		PaymentMethodID:  3,
		Items: []shop.OrderItem{
			{
				ProductID:     10,
				ProductNumber: "SW-1001",
				Name:          "Widget",
				Quantity:      2,
				Price:         decimal.NewFromFloat(9.99),
			},
		},
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func testCustomer() *shop.Customer {
	return &shop.Customer{
		ID:        7,
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Street:    "Main St 1",
		ZipCode:   "10115",
		City:      "Berlin",
		Country:   "DE",
		Phone:     "+49 30 1234567",
	}
}
