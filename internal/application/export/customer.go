package export

import (
	"context"
	"errors"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/domain/sync"
	"go.uber.org/zap"
)

// CustomerExporter pushes a storefront customer to the ERP and records the
// assigned remote identity. Presence of the identity mapping is the
// customer's "already exported" state.
type CustomerExporter struct {
	customers  shop.CustomerRepository
	identities sync.IdentityMap
	gateway    erp.RemoteGateway
	logger     *zap.Logger
}

// NewCustomerExporter creates a new CustomerExporter.
func NewCustomerExporter(
	customers shop.CustomerRepository,
	identities sync.IdentityMap,
	gateway erp.RemoteGateway,
	logger *zap.Logger,
) *CustomerExporter {
	return &CustomerExporter{
		customers:  customers,
		identities: identities,
		gateway:    gateway,
		logger:     logger,
	}
}

// Export exports one customer. Guard checks run before any remote call.
func (e *CustomerExporter) Export(ctx context.Context, customerID int64) error {
	id := localID(customerID)

	customer, err := e.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, shop.ErrCustomerNotFound) {
			return sync.NewNotFoundError(sync.EntityKindCustomer, id)
		}
		return err
	}

	if _, err := e.identities.Resolve(ctx, sync.EntityKindCustomer, id); err == nil {
		return sync.NewAlreadyExportedError(sync.EntityKindCustomer, id)
	} else if !errors.Is(err, sync.ErrMappingNotFound) {
		return err
	}

	req := assembleCustomerRequest(customer)

	result, err := e.gateway.SetCustomer(ctx, req)
	if err != nil {
		return sync.NewTransportError(sync.EntityKindCustomer, id, err)
	}
	if !result.Success {
		return sync.NewBusinessRejectionError(sync.EntityKindCustomer, id, result.ErrorMessage)
	}

	if err := e.identities.Record(ctx, sync.EntityKindCustomer, id, result.RemoteID); err != nil {
		return err
	}

	e.logger.Info("customer exported",
		zap.String("local_id", id),
		zap.String("remote_id", result.RemoteID))
	return nil
}

// assembleCustomerRequest builds the wire request from the local customer.
// Pure construction, no side effects.
func assembleCustomerRequest(customer *shop.Customer) *erp.SetCustomer {
	return &erp.SetCustomer{
		ExternalCustomerID: localID(customer.ID),
		CustomerNumber:     localID(customer.ID),
		Email:              customer.Email,
		FirstName:          customer.FirstName,
		Surname:            customer.LastName,
		Street:             customer.Street,
		ZIP:                customer.ZipCode,
		City:               customer.City,
		CountryISO2:        customer.Country,
		Telephone:          customer.Phone,
	}
}

var _ EntityExporter = (*CustomerExporter)(nil)
