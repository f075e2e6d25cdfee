package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fakturo/backend/internal/domain/partner"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all customers ordered by ID
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&customerModels).Error; err != nil {
		return nil, err
	}
	customers := make([]partner.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// ExistsByEmail checks whether another customer carries the email.
// Empty values never collide.
func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.existsByColumn(ctx, "email", strings.ToLower(email), excludeID)
}

// ExistsByPhone checks whether another customer carries the phone number
func (r *GormCustomerRepository) ExistsByPhone(ctx context.Context, phone string, excludeID uint) (bool, error) {
	return r.existsByColumn(ctx, "phone", phone, excludeID)
}

// ExistsByCompanyName checks whether another customer carries the company name
func (r *GormCustomerRepository) ExistsByCompanyName(ctx context.Context, companyName string, excludeID uint) (bool, error) {
	return r.existsByColumn(ctx, "company_name", companyName, excludeID)
}

// ExistsByTaxID checks whether another customer carries the tax ID
func (r *GormCustomerRepository) ExistsByTaxID(ctx context.Context, taxID string, excludeID uint) (bool, error) {
	return r.existsByColumn(ctx, "tax_id", taxID, excludeID)
}

func (r *GormCustomerRepository) existsByColumn(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	if value == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where(column+" = ? AND id <> ?", value, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a customer, writing back the generated ID on insert
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	customer.ID = model.ID
	return nil
}

// Delete deletes a customer
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
