package persistence

import (
	"context"
	"errors"

	"github.com/fakturo/backend/internal/domain/document"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDocumentRepository implements document.Repository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByID finds a document by its ID
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uint) (*document.Document, error) {
	var model models.DocumentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds documents matching the filter, ordered by ID
func (r *GormDocumentRepository) FindAll(ctx context.Context, filter document.Filter) ([]document.Document, error) {
	var documentModels []models.DocumentModel
	query := r.db.WithContext(ctx).Model(&models.DocumentModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Number != nil {
		query = query.Where("number = ?", *filter.Number)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	if err := query.Order("id ASC").Find(&documentModels).Error; err != nil {
		return nil, err
	}
	documents := make([]document.Document, len(documentModels))
	for i, model := range documentModels {
		documents[i] = *model.ToDomain()
	}
	return documents, nil
}

// ExistsByNumber checks whether a document of the type carries the number
func (r *GormDocumentRepository) ExistsByNumber(ctx context.Context, docType document.Type, number string) (bool, error) {
	if number == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.DocumentModel{}).
		Where("type = ? AND number = ?", docType.String(), number).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsForCustomer checks whether any document references the customer
func (r *GormDocumentRepository) ExistsForCustomer(ctx context.Context, customerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.DocumentModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a document, writing back the generated ID on insert
func (r *GormDocumentRepository) Save(ctx context.Context, doc *document.Document) error {
	model := models.DocumentModelFromDomain(doc)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	doc.ID = model.ID
	return nil
}

// Delete deletes a document together with its items. The item delete runs
// in the same transaction so a failure leaves both tables untouched.
func (r *GormDocumentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ItemModel{}, "document_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.DocumentModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
