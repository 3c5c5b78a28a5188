package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newShopDB creates an in-memory database with the storefront read tables
func newShopDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.ProductPropertyValueModel{},
		&models.PropertyModel{},
		&models.WarehouseModel{},
	)
	require.NoError(t, err)

	return db
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	db := newShopDB(t)
	repo := NewGormOrderRepository(db)

	cleared := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.OrderModel{
		ID:               42,
		Number:           "20042",
		CustomerID:       7,
		CustomerEmail:    "jane@example.com",
		BillingFirstName: "Jane",
		BillingLastName:  "Doe",
		InvoiceAmount:    decimal.RequireFromString("19.99"),
		CurrencyCode:     "EUR",
		PaymentMethodID:  5,
		TransactionID:    "tx-abc",
		ClearedAt:        &cleared,
		CreatedAt:        cleared,
	}).Error)
	require.NoError(t, db.Create(&models.OrderItemModel{
		ID: 1, OrderID: 42, ProductID: 10, ProductNumber: "SW-10",
		Name: "Widget", Quantity: 2, Price: decimal.RequireFromString("9.99"),
	}).Error)

	t.Run("loads order with items", func(t *testing.T) {
		order, err := repo.FindByID(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, "20042", order.Number)
		assert.Equal(t, "Jane Doe", order.BillingName())
		assert.True(t, order.InvoiceAmount.Equal(decimal.RequireFromString("19.99")))
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Widget", order.Items[0].Name)
	})

	t.Run("returns ErrOrderNotFound for unknown id", func(t *testing.T) {
		order, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, shop.ErrOrderNotFound)
		assert.Nil(t, order)
	})
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	db := newShopDB(t)
	repo := NewGormCustomerRepository(db)

	require.NoError(t, db.Create(&models.CustomerModel{
		ID: 7, Email: "jane@example.com", FirstName: "Jane", LastName: "Doe",
		Street: "Main St 1", ZipCode: "10115", City: "Berlin", Country: "DE",
		CreatedAt: time.Now(),
	}).Error)

	t.Run("loads customer", func(t *testing.T) {
		customer, err := repo.FindByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", customer.FullName())
		assert.Equal(t, "Berlin", customer.City)
	})

	t.Run("returns ErrCustomerNotFound for unknown id", func(t *testing.T) {
		customer, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, shop.ErrCustomerNotFound)
		assert.Nil(t, customer)
	})
}

func TestGormProductRepository_FindByID(t *testing.T) {
	db := newShopDB(t)
	repo := NewGormProductRepository(db)

	require.NoError(t, db.Create(&models.ProductModel{
		ID: 10, Number: "SW-10", Name: "Widget", Description: "A widget",
		Price: decimal.RequireFromString("9.99"), StockLevel: 25,
		Weight: decimal.RequireFromString("0.250"), Active: true,
		CreatedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.PropertyModel{ID: 1, Name: "Color"}).Error)
	require.NoError(t, db.Create(&models.ProductPropertyValueModel{
		ID: 100, ProductID: 10, PropertyID: 1, Value: "Red",
	}).Error)

	t.Run("loads product with named property values", func(t *testing.T) {
		product, err := repo.FindByID(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, "Widget", product.Name)
		require.Len(t, product.Properties, 1)
		assert.Equal(t, "Color", product.Properties[0].PropertyName)
		assert.Equal(t, "Red", product.Properties[0].Value)
	})

	t.Run("skips values pointing at a missing property group", func(t *testing.T) {
		require.NoError(t, db.Create(&models.ProductPropertyValueModel{
			ID: 101, ProductID: 10, PropertyID: 999, Value: "Orphan",
		}).Error)

		product, err := repo.FindByID(context.Background(), 10)

		require.NoError(t, err)
		assert.Len(t, product.Properties, 1)
	})

	t.Run("returns ErrProductNotFound for unknown id", func(t *testing.T) {
		product, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, shop.ErrProductNotFound)
		assert.Nil(t, product)
	})
}

func TestGormWarehouseRepository_FindByID(t *testing.T) {
	db := newShopDB(t)
	repo := NewGormWarehouseRepository(db)

	require.NoError(t, db.Create(&models.WarehouseModel{
		ID: 3, Name: "Main", Address: "Dock 1", Priority: 1,
		OnStockAvailable: true, SplitByParcel: true, CreatedAt: time.Now(),
	}).Error)

	t.Run("loads warehouse", func(t *testing.T) {
		warehouse, err := repo.FindByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, "Main", warehouse.Name)
		assert.True(t, warehouse.OnStockAvailable)
		assert.True(t, warehouse.SplitByParcel)
		assert.False(t, warehouse.AssignedForRepairs)
	})

	t.Run("returns ErrWarehouseNotFound for unknown id", func(t *testing.T) {
		warehouse, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, shop.ErrWarehouseNotFound)
		assert.Nil(t, warehouse)
	})
}
