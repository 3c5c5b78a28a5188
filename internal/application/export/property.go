package export

import (
	"context"
	"errors"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/domain/sync"
	"go.uber.org/zap"
)

// defaultPropertyLang is used when the storefront does not carry a
// per-property language.
const defaultPropertyLang = "de"

// PropertyExporter pushes a product property group to the ERP. When the
// storefront's variant configurator carries a group of the same name, its
// name is preferred so both systems agree on spelling; absence of a
// configurator match is not an error.
type PropertyExporter struct {
	properties shop.PropertyRepository
	identities sync.IdentityMap
	resolver   shop.TranslationResolver
	gateway    erp.RemoteGateway
	logger     *zap.Logger
}

// NewPropertyExporter creates a new PropertyExporter.
func NewPropertyExporter(
	properties shop.PropertyRepository,
	identities sync.IdentityMap,
	resolver shop.TranslationResolver,
	gateway erp.RemoteGateway,
	logger *zap.Logger,
) *PropertyExporter {
	return &PropertyExporter{
		properties: properties,
		identities: identities,
		resolver:   resolver,
		gateway:    gateway,
		logger:     logger,
	}
}

// Export exports one property group.
func (e *PropertyExporter) Export(ctx context.Context, propertyID int64) error {
	id := localID(propertyID)

	property, err := e.properties.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, shop.ErrPropertyNotFound) {
			return sync.NewNotFoundError(sync.EntityKindProperty, id)
		}
		return err
	}

	if _, err := e.identities.Resolve(ctx, sync.EntityKindProperty, id); err == nil {
		return sync.NewAlreadyExportedError(sync.EntityKindProperty, id)
	} else if !errors.Is(err, sync.ErrMappingNotFound) {
		return err
	}

	groupName := property.Name
	group, err := e.resolver.ConfiguratorGroupByName(ctx, *property)
	if err != nil {
		return err
	}
	if group != nil {
		groupName = group.Name
	}

	req := &erp.SetProperty{
		ExternalPropertyID: id,
		PropertyGroupName:  groupName,
		PropertyName:       property.Name,
		Lang:               defaultPropertyLang,
	}

	result, err := e.gateway.SetProperty(ctx, req)
	if err != nil {
		return sync.NewTransportError(sync.EntityKindProperty, id, err)
	}
	if !result.Success {
		return sync.NewBusinessRejectionError(sync.EntityKindProperty, id, result.ErrorMessage)
	}

	if err := e.identities.Record(ctx, sync.EntityKindProperty, id, result.RemoteID); err != nil {
		return err
	}

	e.logger.Info("property exported",
		zap.String("local_id", id),
		zap.String("remote_id", result.RemoteID),
		zap.String("group", groupName))
	return nil
}

var _ EntityExporter = (*PropertyExporter)(nil)
