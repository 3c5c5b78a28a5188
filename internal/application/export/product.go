package export

import (
	"context"
	"errors"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/domain/sync"
	"go.uber.org/zap"
)

// ProductExporter pushes a storefront article to the ERP. Property values
// are translated through the storefront's configuration model; a value
// whose property option has no storefront match is skipped with a warning,
// a value without a stored value record is sent by raw value so the ERP can
// auto-create it.
type ProductExporter struct {
	products   shop.ProductRepository
	identities sync.IdentityMap
	resolver   shop.TranslationResolver
	gateway    erp.RemoteGateway
	logger     *zap.Logger
}

// NewProductExporter creates a new ProductExporter.
func NewProductExporter(
	products shop.ProductRepository,
	identities sync.IdentityMap,
	resolver shop.TranslationResolver,
	gateway erp.RemoteGateway,
	logger *zap.Logger,
) *ProductExporter {
	return &ProductExporter{
		products:   products,
		identities: identities,
		resolver:   resolver,
		gateway:    gateway,
		logger:     logger,
	}
}

// Export exports one article.
func (e *ProductExporter) Export(ctx context.Context, productID int64) error {
	id := localID(productID)

	product, err := e.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shop.ErrProductNotFound) {
			return sync.NewNotFoundError(sync.EntityKindProduct, id)
		}
		return err
	}

	if _, err := e.identities.Resolve(ctx, sync.EntityKindProduct, id); err == nil {
		return sync.NewAlreadyExportedError(sync.EntityKindProduct, id)
	} else if !errors.Is(err, sync.ErrMappingNotFound) {
		return err
	}

	properties, err := e.translateProperties(ctx, id, product.Properties)
	if err != nil {
		return err
	}

	req := assembleProductRequest(product, properties)

	result, err := e.gateway.SetProduct(ctx, req)
	if err != nil {
		return sync.NewTransportError(sync.EntityKindProduct, id, err)
	}
	if !result.Success {
		return sync.NewBusinessRejectionError(sync.EntityKindProduct, id, result.ErrorMessage)
	}

	if err := e.identities.Record(ctx, sync.EntityKindProduct, id, result.RemoteID); err != nil {
		return err
	}

	e.logger.Info("product exported",
		zap.String("local_id", id),
		zap.String("remote_id", result.RemoteID),
		zap.Int("properties", len(properties)))
	return nil
}

// translateProperties resolves each property value against the storefront
// configuration model. Resolver absence is never fatal here.
func (e *ProductExporter) translateProperties(ctx context.Context, productLocalID string, values []shop.PropertyValue) ([]erp.ProductProperty, error) {
	properties := make([]erp.ProductProperty, 0, len(values))

	for _, value := range values {
		option, err := e.resolver.PropertyOptionByName(ctx, shop.Property{
			ID:   value.PropertyID,
			Name: value.PropertyName,
		})
		if err != nil {
			return nil, err
		}
		if option == nil {
			e.logger.Warn("property option has no storefront match, skipping value",
				zap.String("product_id", productLocalID),
				zap.String("property", value.PropertyName))
			continue
		}

		record, err := e.resolver.PropertyValueByValue(ctx, value)
		if err != nil {
			return nil, err
		}

		property := erp.ProductProperty{
			PropertyID: int(option.ID),
			Value:      value.Value,
		}
		if record != nil {
			property.PropertyValueID = int(record.ID)
		}
		properties = append(properties, property)
	}

	return properties, nil
}

// assembleProductRequest maps the article onto the wire request.
func assembleProductRequest(product *shop.Product, properties []erp.ProductProperty) *erp.SetProduct {
	price, _ := product.Price.Float64()
	weight := product.Weight.Mul(gramsPerKilogram).IntPart()

	return &erp.SetProduct{
		ExternalProductID: localID(product.ID),
		ItemNumber:        product.Number,
		Name:              product.Name,
		Description:       product.Description,
		Price:             price,
		StockLevel:        product.StockLevel,
		WeightInGram:      int(weight),
		Active:            boolToInt(product.Active),
		Properties:        properties,
	}
}

var _ EntityExporter = (*ProductExporter)(nil)
