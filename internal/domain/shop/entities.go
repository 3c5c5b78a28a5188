package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound indicates the referenced order does not exist.
	ErrOrderNotFound = errors.New("shop: order not found")
	// ErrCustomerNotFound indicates the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("shop: customer not found")
	// ErrProductNotFound indicates the referenced product does not exist.
	ErrProductNotFound = errors.New("shop: product not found")
	// ErrWarehouseNotFound indicates the referenced warehouse does not exist.
	ErrWarehouseNotFound = errors.New("shop: warehouse not found")
	// ErrPropertyNotFound indicates the referenced property group does not exist.
	ErrPropertyNotFound = errors.New("shop: property not found")
)

// ---------------------------------------------------------------------------
// Order
// ---------------------------------------------------------------------------

// Order is a storefront sales order as the connector sees it: the fields
// needed to export the order itself and to book its incoming payment.
type Order struct {
	// ID is the storefront order identifier
	ID int64
	// Number is the human-facing order number
	Number string
	// CustomerID is the storefront customer identifier
	CustomerID int64
	// CustomerEmail is the buyer's e-mail address
	CustomerEmail string
	// BillingFirstName is the first name on the billing address
	BillingFirstName string
	// BillingLastName is the last name on the billing address
	BillingLastName string
	// InvoiceAmount is the gross order total
	InvoiceAmount decimal.Decimal
	// CurrencyCode is the ISO currency code, e.g. "EUR"
	CurrencyCode string
	// PaymentMethodID is the storefront payment method identifier
	PaymentMethodID int64
	// TransactionID is the payment provider's transaction reference;
	// empty when the provider did not supply one
	TransactionID string
	// ClearedAt is when the payment cleared; nil when unknown
	ClearedAt *time.Time
	// Items are the order line items
	Items []OrderItem
	// CreatedAt is when the order was placed
	CreatedAt time.Time
}

// BillingName returns the full name on the billing address.
func (o *Order) BillingName() string {
	return fmt.Sprintf("%s %s", o.BillingFirstName, o.BillingLastName)
}

// OrderItem is a storefront order line item.
type OrderItem struct {
	// ProductID is the storefront product identifier
	ProductID int64
	// ProductNumber is the storefront article number
	ProductNumber string
	// Name is the article name at order time
	Name string
	// Quantity is the ordered quantity
	Quantity int
	// Price is the gross unit price
	Price decimal.Decimal
}

// OrderRepository reads storefront orders.
type OrderRepository interface {
	// FindByID loads an order by its storefront identifier.
	// Returns ErrOrderNotFound when absent.
	FindByID(ctx context.Context, id int64) (*Order, error)
}

// ---------------------------------------------------------------------------
// Customer
// ---------------------------------------------------------------------------

// Customer is a storefront customer with its default billing address.
type Customer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Street    string
	ZipCode   string
	City      string
	Country   string
	Phone     string
	CreatedAt time.Time
}

// FullName returns the customer's full name.
func (c *Customer) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// CustomerRepository reads storefront customers.
type CustomerRepository interface {
	// FindByID loads a customer by its storefront identifier.
	// Returns ErrCustomerNotFound when absent.
	FindByID(ctx context.Context, id int64) (*Customer, error)
}

// ---------------------------------------------------------------------------
// Product
// ---------------------------------------------------------------------------

// Product is a storefront article with the attributes the ERP export needs.
type Product struct {
	ID          int64
	Number      string
	Name        string
	Description string
	Price       decimal.Decimal
	StockLevel  int
	Weight      decimal.Decimal
	Active      bool
	// Properties are the property values assigned to the article
	Properties []PropertyValue
	CreatedAt  time.Time
}

// ProductRepository reads storefront products.
type ProductRepository interface {
	// FindByID loads a product by its storefront identifier.
	// Returns ErrProductNotFound when absent.
	FindByID(ctx context.Context, id int64) (*Product, error)
}

// ---------------------------------------------------------------------------
// Warehouse
// ---------------------------------------------------------------------------

// Warehouse is a warehouse definition maintained in the storefront backend.
type Warehouse struct {
	ID                  int64
	Name                string
	Address             string
	Email               string
	Phone               string
	Fax                 string
	Note                string
	Priority            int
	OnStockAvailable    bool
	OutOfStockOrderable bool
	SplitByParcel       bool
	AssignedForRepairs  bool
	CreatedAt           time.Time
}

// WarehouseRepository reads warehouse definitions.
type WarehouseRepository interface {
	// FindByID loads a warehouse by its storefront identifier.
	// Returns ErrWarehouseNotFound when absent.
	FindByID(ctx context.Context, id int64) (*Warehouse, error)
}

// ---------------------------------------------------------------------------
// Property / configuration value objects
// ---------------------------------------------------------------------------

// Property is a product property group, e.g. "Color".
type Property struct {
	ID   int64
	Name string
}

// PropertyRepository reads property groups.
type PropertyRepository interface {
	// FindByID loads a property group by its storefront identifier.
	// Returns ErrPropertyNotFound when absent.
	FindByID(ctx context.Context, id int64) (*Property, error)
}

// PropertyValue is a concrete value of a property group, e.g. "Red".
type PropertyValue struct {
	ID           int64
	PropertyID   int64
	PropertyName string
	Value        string
}

// Locale is a language/region pair, e.g. "de_DE".
type Locale struct {
	ID   int64
	Code string
}

// Shop is a storefront (sub)shop bound to a locale.
type Shop struct {
	ID       int64
	Name     string
	LocaleID int64
	Default  bool
}

// ---------------------------------------------------------------------------
// Resolved configuration records
// ---------------------------------------------------------------------------

// PropertyOption is the storefront's property option record matched by name.
type PropertyOption struct {
	ID         int64
	Name       string
	Filterable bool
}

// PropertyValueRecord is the storefront's stored property value matched by value.
type PropertyValueRecord struct {
	ID       int64
	OptionID int64
	Value    string
}

// ConfiguratorGroup is a variant configurator group matched by name.
type ConfiguratorGroup struct {
	ID   int64
	Name string
}

// ConfiguratorOption is a variant configurator option matched by name.
type ConfiguratorOption struct {
	ID      int64
	GroupID int64
	Name    string
}

// ---------------------------------------------------------------------------
// TranslationResolver Port
// ---------------------------------------------------------------------------

// TranslationResolver looks up storefront-side representations needed to
// populate export requests. Every lookup is an exact name/value match
// against the storefront's native configuration model. A nil result with a
// nil error means "no match" and is a normal outcome; the caller decides
// whether absence blocks the export. The resolver never creates data.
type TranslationResolver interface {
	// ShopsForLocale returns all storefronts bound to a locale.
	// An empty slice is a valid result, not an error.
	ShopsForLocale(ctx context.Context, locale Locale) ([]Shop, error)

	// PropertyOptionByName returns the property option whose name equals
	// the property's name, or nil when no option matches.
	PropertyOptionByName(ctx context.Context, property Property) (*PropertyOption, error)

	// PropertyValueByValue returns the stored property value equal to the
	// given value, or nil when no record matches.
	PropertyValueByValue(ctx context.Context, value PropertyValue) (*PropertyValueRecord, error)

	// ConfiguratorGroupByName returns the configurator group whose name
	// equals the property's name, or nil when no group matches.
	ConfiguratorGroupByName(ctx context.Context, property Property) (*ConfiguratorGroup, error)

	// ConfiguratorOptionByName returns the configurator option whose name
	// equals the given value, or nil when no option matches.
	ConfiguratorOptionByName(ctx context.Context, value PropertyValue) (*ConfiguratorOption, error)
}
