package export

import (
	"context"
	"errors"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/domain/sync"
	"go.uber.org/zap"
)

// Wire defaults for warehouse fields the storefront does not model.
const (
	defaultInventoryModus      = 0
	defaultStandardZone        = 0
	defaultWarehouseLocation   = 0
	defaultWarehouseType       = 0
	defaultStorageLocationType = "standard"
)

// WarehouseExporter pushes a warehouse definition to the ERP using the
// exact remote wire record.
type WarehouseExporter struct {
	warehouses shop.WarehouseRepository
	identities sync.IdentityMap
	gateway    erp.RemoteGateway
	logger     *zap.Logger
}

// NewWarehouseExporter creates a new WarehouseExporter.
func NewWarehouseExporter(
	warehouses shop.WarehouseRepository,
	identities sync.IdentityMap,
	gateway erp.RemoteGateway,
	logger *zap.Logger,
) *WarehouseExporter {
	return &WarehouseExporter{
		warehouses: warehouses,
		identities: identities,
		gateway:    gateway,
		logger:     logger,
	}
}

// Export exports one warehouse definition.
func (e *WarehouseExporter) Export(ctx context.Context, warehouseID int64) error {
	id := localID(warehouseID)

	warehouse, err := e.warehouses.FindByID(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, shop.ErrWarehouseNotFound) {
			return sync.NewNotFoundError(sync.EntityKindWarehouse, id)
		}
		return err
	}

	if _, err := e.identities.Resolve(ctx, sync.EntityKindWarehouse, id); err == nil {
		return sync.NewAlreadyExportedError(sync.EntityKindWarehouse, id)
	} else if !errors.Is(err, sync.ErrMappingNotFound) {
		return err
	}

	req := assembleWarehouseRequest(warehouse)

	result, err := e.gateway.SetWarehouse(ctx, req)
	if err != nil {
		return sync.NewTransportError(sync.EntityKindWarehouse, id, err)
	}
	if !result.Success {
		return sync.NewBusinessRejectionError(sync.EntityKindWarehouse, id, result.ErrorMessage)
	}

	if err := e.identities.Record(ctx, sync.EntityKindWarehouse, id, result.RemoteID); err != nil {
		return err
	}

	e.logger.Info("warehouse exported",
		zap.String("local_id", id),
		zap.String("remote_id", result.RemoteID))
	return nil
}

// assembleWarehouseRequest maps the warehouse onto the wire record.
func assembleWarehouseRequest(warehouse *shop.Warehouse) *erp.SetWarehouse {
	return &erp.SetWarehouse{
		AvailabilityOnstock:         boolToInt(warehouse.OnStockAvailable),
		AvailabilityOutofstock:      boolToInt(warehouse.OutOfStockOrderable),
		Email:                       warehouse.Email,
		Fax:                         warehouse.Fax,
		Fon:                         warehouse.Phone,
		InventoryModus:              defaultInventoryModus,
		Note:                        warehouse.Note,
		Priority:                    warehouse.Priority,
		SplitByParcel:               boolToInt(warehouse.SplitByParcel),
		StandardStorageLocationType: defaultStorageLocationType,
		StandardZone:                defaultStandardZone,
		WarehouseAddress:            warehouse.Address,
		WarehouseAssignedForRepairs: boolToInt(warehouse.AssignedForRepairs),
		WarehouseID:                 int(warehouse.ID),
		WarehouseLocation:           defaultWarehouseLocation,
		WarehouseName:               warehouse.Name,
		WarehouseType:               defaultWarehouseType,
	}
}

var _ EntityExporter = (*WarehouseExporter)(nil)
