package export

import (
	"context"
	"errors"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/domain/sync"
	"go.uber.org/zap"
)

// OrderExporter pushes a storefront sales order to the ERP. The order's
// customer must resolve to a remote identity; a missing customer mapping
// triggers one inline customer export before the order request is built.
type OrderExporter struct {
	orders     shop.OrderRepository
	identities sync.IdentityMap
	gateway    erp.RemoteGateway
	customers  EntityExporter
	logger     *zap.Logger
}

// NewOrderExporter creates a new OrderExporter.
func NewOrderExporter(
	orders shop.OrderRepository,
	identities sync.IdentityMap,
	gateway erp.RemoteGateway,
	customers EntityExporter,
	logger *zap.Logger,
) *OrderExporter {
	return &OrderExporter{
		orders:     orders,
		identities: identities,
		gateway:    gateway,
		customers:  customers,
		logger:     logger,
	}
}

// Export exports one sales order.
func (e *OrderExporter) Export(ctx context.Context, orderID int64) error {
	id := localID(orderID)

	order, err := e.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shop.ErrOrderNotFound) {
			return sync.NewNotFoundError(sync.EntityKindOrder, id)
		}
		return err
	}

	if _, err := e.identities.Resolve(ctx, sync.EntityKindOrder, id); err == nil {
		return sync.NewAlreadyExportedError(sync.EntityKindOrder, id)
	} else if !errors.Is(err, sync.ErrMappingNotFound) {
		return err
	}

	customerRemoteID, err := e.resolveCustomer(ctx, id, order)
	if err != nil {
		return err
	}

	currency, err := e.identities.Resolve(ctx, sync.EntityKindCurrency, order.CurrencyCode)
	if err != nil {
		if errors.Is(err, sync.ErrMappingNotFound) {
			return sync.NewDependencyExportError(sync.EntityKindOrder, id,
				sync.EntityKindCurrency, order.CurrencyCode, err)
		}
		return err
	}

	req, err := assembleOrderRequest(order, customerRemoteID, currency)
	if err != nil {
		return err
	}

	result, err := e.gateway.SetOrder(ctx, req)
	if err != nil {
		return sync.NewTransportError(sync.EntityKindOrder, id, err)
	}
	if !result.Success {
		return sync.NewBusinessRejectionError(sync.EntityKindOrder, id, result.ErrorMessage)
	}

	if err := e.identities.Record(ctx, sync.EntityKindOrder, id, result.RemoteID); err != nil {
		return err
	}

	e.logger.Info("order exported",
		zap.String("local_id", id),
		zap.String("remote_id", result.RemoteID),
		zap.Int("items", len(order.Items)))
	return nil
}

// resolveCustomer resolves the order's customer, re-exporting inline at
// most once when the mapping is missing.
func (e *OrderExporter) resolveCustomer(ctx context.Context, orderLocalID string, order *shop.Order) (string, error) {
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
		return "", sync.NewDependencyExportError(sync.EntityKindOrder, orderLocalID,
			sync.EntityKindCustomer, depID, err)
	}

	remoteID, err = e.identities.Resolve(ctx, sync.EntityKindCustomer, depID)
	if err != nil {
		return "", sync.NewDependencyExportError(sync.EntityKindOrder, orderLocalID,
			sync.EntityKindCustomer, depID, err)
	}
	return remoteID, nil
}

// assembleOrderRequest maps the order onto the wire request.
func assembleOrderRequest(order *shop.Order, customerRemoteID, currency string) (*erp.SetOrder, error) {
	customerIDNum, err := remoteIDToInt(customerRemoteID)
	if err != nil {
		return nil, err
	}

	items := make([]erp.SetOrderItem, len(order.Items))
	for i, item := range order.Items {
		price, _ := item.Price.Float64()
		items[i] = erp.SetOrderItem{
			ItemNumber: item.ProductNumber,
			ItemText:   item.Name,
			Quantity:   item.Quantity,
			Price:      price,
		}
	}

	total, _ := order.InvoiceAmount.Float64()

	return &erp.SetOrder{
		ExternalOrderID: localID(order.ID),
		CustomerID:      customerIDNum,
		Currency:        currency,
		OrderTimestamp:  order.CreatedAt.Unix(),
		TotalGross:      total,
		OrderItems:      items,
	}, nil
}

var _ EntityExporter = (*OrderExporter)(nil)
