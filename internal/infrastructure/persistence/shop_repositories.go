package persistence

import (
	"context"
	"errors"

	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// The repositories in this file read the storefront's native tables. They
// are lookup-only; the connector never mutates storefront data.

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

// GormOrderRepository implements shop.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads an order with its line items.
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*shop.Order, error) {
	var model models.OrderModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shop.ErrOrderNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ---------------------------------------------------------------------------
// Customers
// ---------------------------------------------------------------------------

// GormCustomerRepository implements shop.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID loads a customer by its storefront identifier.
func (r *GormCustomerRepository) FindByID(ctx context.Context, id int64) (*shop.Customer, error) {
	var model models.CustomerModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shop.ErrCustomerNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

// GormProductRepository implements shop.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID loads a product and its assigned property values. The property
// group name is joined in so the export layer sees complete values.
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*shop.Product, error) {
	db := dbFromContext(ctx, r.db)

	var model models.ProductModel
	if err := db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shop.ErrProductNotFound
		}
		return nil, err
	}

	var valueModels []models.ProductPropertyValueModel
	if err := db.WithContext(ctx).
		Where("product_id = ?", id).
		Order("id ASC").
		Find(&valueModels).Error; err != nil {
		return nil, err
	}

	properties := make([]shop.PropertyValue, 0, len(valueModels))
	for _, value := range valueModels {
		var property models.PropertyModel
		if err := db.WithContext(ctx).First(&property, "id = ?", value.PropertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Orphaned value row, skip it
				continue
			}
			return nil, err
		}
		properties = append(properties, shop.PropertyValue{
			ID:           value.ID,
			PropertyID:   value.PropertyID,
			PropertyName: property.Name,
			Value:        value.Value,
		})
	}

	return model.ToDomain(properties), nil
}

// ---------------------------------------------------------------------------
// Warehouses
// ---------------------------------------------------------------------------

// GormWarehouseRepository implements shop.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository.
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// FindByID loads a warehouse definition by its identifier.
func (r *GormWarehouseRepository) FindByID(ctx context.Context, id int64) (*shop.Warehouse, error) {
	var model models.WarehouseModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shop.ErrWarehouseNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

// GormPropertyRepository implements shop.PropertyRepository using GORM.
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository.
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID loads a property group by its identifier.
func (r *GormPropertyRepository) FindByID(ctx context.Context, id int64) (*shop.Property, error) {
	var model models.PropertyModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shop.ErrPropertyNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var (
	_ shop.OrderRepository     = (*GormOrderRepository)(nil)
	_ shop.CustomerRepository  = (*GormCustomerRepository)(nil)
	_ shop.ProductRepository   = (*GormProductRepository)(nil)
	_ shop.WarehouseRepository = (*GormWarehouseRepository)(nil)
	_ shop.PropertyRepository  = (*GormPropertyRepository)(nil)
)
