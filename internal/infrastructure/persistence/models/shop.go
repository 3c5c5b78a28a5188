package models

import (
	"time"

	"github.com/erp/connector/internal/domain/shop"
	"github.com/shopspring/decimal"
)

// The models in this file are read models over the storefront's native
// tables. The connector never writes them.

// OrderModel is the persistence model for the storefront Order.
type OrderModel struct {
	ID               int64           `gorm:"primary_key"`
	Number           string          `gorm:"type:varchar(50);not null"`
	CustomerID       int64           `gorm:"not null;index"`
	CustomerEmail    string          `gorm:"type:varchar(255)"`
	BillingFirstName string          `gorm:"type:varchar(100)"`
	BillingLastName  string          `gorm:"type:varchar(100)"`
	InvoiceAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CurrencyCode     string          `gorm:"type:varchar(3);not null"`
	PaymentMethodID  int64           `gorm:"not null"`
	TransactionID    string          `gorm:"type:varchar(100)"`
	ClearedAt        *time.Time
	Items            []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *shop.Order {
	items := make([]shop.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = *item.ToDomain()
	}
	return &shop.Order{
		ID:               m.ID,
		Number:           m.Number,
		CustomerID:       m.CustomerID,
		CustomerEmail:    m.CustomerEmail,
		BillingFirstName: m.BillingFirstName,
		BillingLastName:  m.BillingLastName,
		InvoiceAmount:    m.InvoiceAmount,
		CurrencyCode:     m.CurrencyCode,
		PaymentMethodID:  m.PaymentMethodID,
		TransactionID:    m.TransactionID,
		ClearedAt:        m.ClearedAt,
		Items:            items,
		CreatedAt:        m.CreatedAt,
	}
}

// OrderItemModel is the persistence model for an order line item.
type OrderItemModel struct {
	ID            int64           `gorm:"primary_key"`
	OrderID       int64           `gorm:"not null;index"`
	ProductID     int64           `gorm:"not null"`
	ProductNumber string          `gorm:"type:varchar(50)"`
	Name          string          `gorm:"type:varchar(255)"`
	Quantity      int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() *shop.OrderItem {
	return &shop.OrderItem{
		ProductID:     m.ProductID,
		ProductNumber: m.ProductNumber,
		Name:          m.Name,
		Quantity:      m.Quantity,
		Price:         m.Price,
	}
}

// CustomerModel is the persistence model for the storefront Customer.
type CustomerModel struct {
	ID        int64     `gorm:"primary_key"`
	Email     string    `gorm:"type:varchar(255);not null"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	Street    string    `gorm:"type:varchar(255)"`
	ZipCode   string    `gorm:"type:varchar(20)"`
	City      string    `gorm:"type:varchar(100)"`
	Country   string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *shop.Customer {
	return &shop.Customer{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Street:    m.Street,
		ZipCode:   m.ZipCode,
		City:      m.City,
		Country:   m.Country,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

// ProductModel is the persistence model for the storefront Product.
type ProductModel struct {
	ID          int64           `gorm:"primary_key"`
	Number      string          `gorm:"type:varchar(50);not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockLevel  int             `gorm:"not null"`
	Weight      decimal.Decimal `gorm:"type:numeric(10,3)"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
// Property values are loaded separately by the repository.
func (m *ProductModel) ToDomain(properties []shop.PropertyValue) *shop.Product {
	return &shop.Product{
		ID:          m.ID,
		Number:      m.Number,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		StockLevel:  m.StockLevel,
		Weight:      m.Weight,
		Active:      m.Active,
		Properties:  properties,
		CreatedAt:   m.CreatedAt,
	}
}

// ProductPropertyValueModel links a product to one property value.
type ProductPropertyValueModel struct {
	ID         int64  `gorm:"primary_key"`
	ProductID  int64  `gorm:"not null;index"`
	PropertyID int64  `gorm:"not null"`
	Value      string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (ProductPropertyValueModel) TableName() string {
	return "product_property_values"
}

// WarehouseModel is the persistence model for the Warehouse definition.
type WarehouseModel struct {
	ID                  int64     `gorm:"primary_key"`
	Name                string    `gorm:"type:varchar(100);not null"`
	Address             string    `gorm:"type:varchar(255)"`
	Email               string    `gorm:"type:varchar(255)"`
	Phone               string    `gorm:"type:varchar(50)"`
	Fax                 string    `gorm:"type:varchar(50)"`
	Note                string    `gorm:"type:text"`
	Priority            int       `gorm:"not null;default:0"`
	OnStockAvailable    bool      `gorm:"not null;default:true"`
	OutOfStockOrderable bool      `gorm:"not null;default:false"`
	SplitByParcel       bool      `gorm:"not null;default:false"`
	AssignedForRepairs  bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (WarehouseModel) TableName() string {
	return "warehouses"
}

// ToDomain converts the persistence model to a domain Warehouse entity.
func (m *WarehouseModel) ToDomain() *shop.Warehouse {
	return &shop.Warehouse{
		ID:                  m.ID,
		Name:                m.Name,
		Address:             m.Address,
		Email:               m.Email,
		Phone:               m.Phone,
		Fax:                 m.Fax,
		Note:                m.Note,
		Priority:            m.Priority,
		OnStockAvailable:    m.OnStockAvailable,
		OutOfStockOrderable: m.OutOfStockOrderable,
		SplitByParcel:       m.SplitByParcel,
		AssignedForRepairs:  m.AssignedForRepairs,
		CreatedAt:           m.CreatedAt,
	}
}

// PropertyModel is the persistence model for a product property group.
type PropertyModel struct {
	ID   int64  `gorm:"primary_key"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property.
func (m *PropertyModel) ToDomain() *shop.Property {
	return &shop.Property{
		ID:   m.ID,
		Name: m.Name,
	}
}

// LocaleModel is the persistence model for a storefront locale.
type LocaleModel struct {
	ID   int64  `gorm:"primary_key"`
	Code string `gorm:"type:varchar(10);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (LocaleModel) TableName() string {
	return "locales"
}

// ShopModel is the persistence model for a storefront (sub)shop.
type ShopModel struct {
	ID       int64  `gorm:"primary_key"`
	Name     string `gorm:"type:varchar(100);not null"`
	LocaleID int64  `gorm:"not null;index"`
	Default  bool   `gorm:"not null;default:false;column:is_default"`
}

// TableName returns the table name for GORM
func (ShopModel) TableName() string {
	return "shops"
}

// ToDomain converts the persistence model to a domain Shop.
func (m *ShopModel) ToDomain() *shop.Shop {
	return &shop.Shop{
		ID:       m.ID,
		Name:     m.Name,
		LocaleID: m.LocaleID,
		Default:  m.Default,
	}
}

// PropertyOptionModel is the persistence model for a property option.
type PropertyOptionModel struct {
	ID         int64  `gorm:"primary_key"`
	Name       string `gorm:"type:varchar(100);not null;index"`
	Filterable bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (PropertyOptionModel) TableName() string {
	return "property_options"
}

// ToDomain converts the persistence model to a domain PropertyOption.
func (m *PropertyOptionModel) ToDomain() *shop.PropertyOption {
	return &shop.PropertyOption{
		ID:         m.ID,
		Name:       m.Name,
		Filterable: m.Filterable,
	}
}

// PropertyValueModel is the persistence model for a stored property value.
type PropertyValueModel struct {
	ID       int64  `gorm:"primary_key"`
	OptionID int64  `gorm:"not null;index"`
	Value    string `gorm:"type:varchar(255);not null;index"`
}

// TableName returns the table name for GORM
func (PropertyValueModel) TableName() string {
	return "property_values"
}

// ToDomain converts the persistence model to a domain PropertyValueRecord.
func (m *PropertyValueModel) ToDomain() *shop.PropertyValueRecord {
	return &shop.PropertyValueRecord{
		ID:       m.ID,
		OptionID: m.OptionID,
		Value:    m.Value,
	}
}

// ConfiguratorGroupModel is the persistence model for a variant configurator group.
type ConfiguratorGroupModel struct {
	ID   int64  `gorm:"primary_key"`
	Name string `gorm:"type:varchar(100);not null;index"`
}

// TableName returns the table name for GORM
func (ConfiguratorGroupModel) TableName() string {
	return "configurator_groups"
}

// ToDomain converts the persistence model to a domain ConfiguratorGroup.
func (m *ConfiguratorGroupModel) ToDomain() *shop.ConfiguratorGroup {
	return &shop.ConfiguratorGroup{
		ID:   m.ID,
		Name: m.Name,
	}
}

// ConfiguratorOptionModel is the persistence model for a variant configurator option.
type ConfiguratorOptionModel struct {
	ID      int64  `gorm:"primary_key"`
	GroupID int64  `gorm:"not null;index"`
	Name    string `gorm:"type:varchar(100);not null;index"`
}

// TableName returns the table name for GORM
func (ConfiguratorOptionModel) TableName() string {
	return "configurator_options"
}

// ToDomain converts the persistence model to a domain ConfiguratorOption.
func (m *ConfiguratorOptionModel) ToDomain() *shop.ConfiguratorOption {
	return &shop.ConfiguratorOption{
		ID:      m.ID,
		GroupID: m.GroupID,
		Name:    m.Name,
	}
}
