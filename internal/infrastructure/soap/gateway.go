package soap

import (
	"context"

	"github.com/erp/connector/internal/domain/erp"
)

// operationResponse is the common response body the ERP returns for every
// operation: a success flag, the assigned identifier, and an error pair on
// business rejection.
type operationResponse struct {
	Success      int    `xml:"Success"`
	ID           string `xml:"ID"`
	ErrorCode    string `xml:"ErrorCode"`
	ErrorMessage string `xml:"ErrorMessage"`
}

func (r *operationResponse) toResult() *erp.ExportResult {
	return &erp.ExportResult{
		Success:      r.Success == 1,
		RemoteID:     r.ID,
		ErrorCode:    r.ErrorCode,
		ErrorMessage: r.ErrorMessage,
	}
}

// Gateway implements erp.RemoteGateway over the SOAP client. Each method is
// exactly one remote call; business rejections come back as results, never
// as errors.
type Gateway struct {
	client *Client
}

// NewGateway creates a new Gateway.
func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) call(ctx context.Context, action string, payload any) (*erp.ExportResult, error) {
	var resp operationResponse
	if err := g.client.Call(ctx, action, payload, &resp); err != nil {
		return nil, err
	}
	return resp.toResult(), nil
}

// AddIncomingPayment books an incoming payment on an exported order.
func (g *Gateway) AddIncomingPayment(ctx context.Context, req *erp.AddIncomingPayment) (*erp.ExportResult, error) {
	return g.call(ctx, "AddIncomingPayment", req)
}

// SetCustomer creates or updates a customer.
func (g *Gateway) SetCustomer(ctx context.Context, req *erp.SetCustomer) (*erp.ExportResult, error) {
	return g.call(ctx, "SetCustomer", req)
}

// SetOrder creates a sales order.
func (g *Gateway) SetOrder(ctx context.Context, req *erp.SetOrder) (*erp.ExportResult, error) {
	return g.call(ctx, "SetOrder", req)
}

// SetProduct creates or updates an article.
func (g *Gateway) SetProduct(ctx context.Context, req *erp.SetProduct) (*erp.ExportResult, error) {
	return g.call(ctx, "SetProduct", req)
}

// SetWarehouse creates or updates a warehouse definition.
func (g *Gateway) SetWarehouse(ctx context.Context, req *erp.SetWarehouse) (*erp.ExportResult, error) {
	return g.call(ctx, "SetWarehouse", req)
}

// SetProperty creates or updates a property group.
func (g *Gateway) SetProperty(ctx context.Context, req *erp.SetProperty) (*erp.ExportResult, error) {
	return g.call(ctx, "SetProperty", req)
}

var _ erp.RemoteGateway = (*Gateway)(nil)
