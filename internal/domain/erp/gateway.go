package erp

import (
	"context"
	"errors"
)

// ErrTransport marks a remote call that failed at the network or protocol
// level (timeout, connection refused, malformed envelope, SOAP fault).
// Gateway implementations wrap it so callers can classify with errors.Is.
var ErrTransport = errors.New("erp: transport failure")

// ExportResult is the structured outcome of a single remote operation.
// Success=false with a reason is a business rejection: the ERP processed
// the request and declined it. Transport problems never produce a result;
// they surface as errors wrapping ErrTransport.
type ExportResult struct {
	// Success is the ERP's success flag
	Success bool
	// RemoteID is the identifier the ERP assigned, when the operation
	// creates or addresses an entity
	RemoteID string
	// ErrorCode is the ERP's error code on rejection
	ErrorCode string
	// ErrorMessage is the ERP's rejection reason
	ErrorMessage string
}

// RemoteGateway is the synchronous call interface to the ERP. One operation
// per entity kind; each invocation performs exactly one remote call with no
// client-side retry loop (retries belong to the orchestrator).
type RemoteGateway interface {
	// AddIncomingPayment books an incoming payment on an exported order.
	AddIncomingPayment(ctx context.Context, req *AddIncomingPayment) (*ExportResult, error)

	// SetCustomer creates or updates a customer.
	SetCustomer(ctx context.Context, req *SetCustomer) (*ExportResult, error)

	// SetOrder creates a sales order.
	SetOrder(ctx context.Context, req *SetOrder) (*ExportResult, error)

	// SetProduct creates or updates an article.
	SetProduct(ctx context.Context, req *SetProduct) (*ExportResult, error)

	// SetWarehouse creates or updates a warehouse definition.
	SetWarehouse(ctx context.Context, req *SetWarehouse) (*ExportResult, error)

	// SetProperty creates or updates a property group.
	SetProperty(ctx context.Context, req *SetProperty) (*ExportResult, error)
}
