package persistence

import (
	"context"
	"errors"

	"github.com/fakturo/backend/internal/domain/document"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemRepository implements document.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uint) (*document.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all items ordered by ID
func (r *GormItemRepository) FindAll(ctx context.Context) ([]document.Item, error) {
	var itemModels []models.ItemModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]document.Item, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// FindByDocument finds the items of a document ordered by ID
func (r *GormItemRepository) FindByDocument(ctx context.Context, documentID uint) ([]document.Item, error) {
	var itemModels []models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]document.Item, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// ExistsForProduct checks whether any item references the product
func (r *GormItemRepository) ExistsForProduct(ctx context.Context, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ItemModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists an item, writing back the generated ID on insert
func (r *GormItemRepository) Save(ctx context.Context, item *document.Item) error {
	model := models.ItemModelFromDomain(item)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	item.ID = model.ID
	return nil
}

// Delete deletes an item
func (r *GormItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
