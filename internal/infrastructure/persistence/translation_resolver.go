package persistence

import (
	"context"
	"errors"

	"github.com/erp/connector/internal/domain/shop"
	"github.com/erp/connector/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTranslationResolver implements shop.TranslationResolver with exact-match
// lookups against the storefront's configuration tables. A missing row is a
// normal outcome and surfaces as (nil, nil); the resolver never creates data.
type GormTranslationResolver struct {
	db *gorm.DB
}

// NewGormTranslationResolver creates a new GormTranslationResolver.
func NewGormTranslationResolver(db *gorm.DB) *GormTranslationResolver {
	return &GormTranslationResolver{db: db}
}

// ShopsForLocale returns all storefronts bound to a locale.
func (r *GormTranslationResolver) ShopsForLocale(ctx context.Context, locale shop.Locale) ([]shop.Shop, error) {
	var shopModels []models.ShopModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("locale_id = ?", locale.ID).
		Order("id ASC").
		Find(&shopModels).Error; err != nil {
		return nil, err
	}

	shops := make([]shop.Shop, len(shopModels))
	for i, model := range shopModels {
		shops[i] = *model.ToDomain()
	}
	return shops, nil
}

// PropertyOptionByName returns the property option whose name equals the
// property's name, or nil when no option matches.
func (r *GormTranslationResolver) PropertyOptionByName(ctx context.Context, property shop.Property) (*shop.PropertyOption, error) {
	var model models.PropertyOptionModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("name = ?", property.Name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// PropertyValueByValue returns the stored property value equal to the given
// value, or nil when no record matches.
func (r *GormTranslationResolver) PropertyValueByValue(ctx context.Context, value shop.PropertyValue) (*shop.PropertyValueRecord, error) {
	var model models.PropertyValueModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("value = ?", value.Value).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ConfiguratorGroupByName returns the configurator group whose name equals
// the property's name, or nil when no group matches.
func (r *GormTranslationResolver) ConfiguratorGroupByName(ctx context.Context, property shop.Property) (*shop.ConfiguratorGroup, error) {
	var model models.ConfiguratorGroupModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("name = ?", property.Name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ConfiguratorOptionByName returns the configurator option whose name equals
// the given value, or nil when no option matches.
func (r *GormTranslationResolver) ConfiguratorOptionByName(ctx context.Context, value shop.PropertyValue) (*shop.ConfiguratorOption, error) {
	var model models.ConfiguratorOptionModel
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("name = ?", value.Value).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var _ shop.TranslationResolver = (*GormTranslationResolver)(nil)
