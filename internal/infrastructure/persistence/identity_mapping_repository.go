package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/erp/connector/internal/domain/sync"
	"github.com/erp/connector/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIdentityMap implements sync.IdentityMap using GORM.
type GormIdentityMap struct {
	db *gorm.DB
}

// NewGormIdentityMap creates a new GormIdentityMap.
func NewGormIdentityMap(db *gorm.DB) *GormIdentityMap {
	return &GormIdentityMap{db: db}
}

// Resolve returns the remote identity for (kind, localID).
func (r *GormIdentityMap) Resolve(ctx context.Context, kind sync.EntityKind, localID string) (string, error) {
	var model models.IdentityMappingModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("kind = ? AND local_id = ?", kind, localID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", sync.ErrMappingNotFound
		}
		return "", err
	}
	return model.RemoteID, nil
}

// Record persists the remote identity assigned at first successful export.
// Re-recording the same (kind, local_id) pair updates remote_id in place, so
// retries after a lost commit acknowledgment stay idempotent.
func (r *GormIdentityMap) Record(ctx context.Context, kind sync.EntityKind, localID, remoteID string) error {
	mapping, err := sync.NewIdentityMapping(kind, localID, remoteID)
	if err != nil {
		return err
	}

	var model models.IdentityMappingModel
	model.FromDomain(mapping)

	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "local_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"remote_id":  remoteID,
				"updated_at": time.Now(),
			}),
		}).
		Create(&model).Error
}

// FindByKind lists all mappings of one kind, newest first.
func (r *GormIdentityMap) FindByKind(ctx context.Context, kind sync.EntityKind, limit int) ([]sync.IdentityMapping, error) {
	var mappingModels []models.IdentityMappingModel
	db := dbFromContext(ctx, r.db)
	query := db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&mappingModels).Error; err != nil {
		return nil, err
	}

	mappings := make([]sync.IdentityMapping, len(mappingModels))
	for i, model := range mappingModels {
		mappings[i] = *model.ToDomain()
	}
	return mappings, nil
}

var _ sync.IdentityMap = (*GormIdentityMap)(nil)
