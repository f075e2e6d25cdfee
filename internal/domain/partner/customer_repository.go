package partner

import "context"

// CustomerRepository defines the persistence contract for customers
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// FindAll returns all customers ordered by ID ascending
	FindAll(ctx context.Context) ([]Customer, error)

	// ExistsByEmail checks for another customer with the given email,
	// excluding excludeID (0 to exclude nobody)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)

	// ExistsByPhone checks for another customer with the given phone
	ExistsByPhone(ctx context.Context, phone string, excludeID uint) (bool, error)

	// ExistsByCompanyName checks for another customer with the given company name
	ExistsByCompanyName(ctx context.Context, companyName string, excludeID uint) (bool, error)

	// ExistsByTaxID checks for another customer with the given tax ID
	ExistsByTaxID(ctx context.Context, taxID string, excludeID uint) (bool, error)

	// Save persists a customer (insert or update)
	Save(ctx context.Context, customer *Customer) error

	// Delete removes a customer by ID
	Delete(ctx context.Context, id uint) error
}
