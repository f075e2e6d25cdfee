package catalog

import "context"

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindAll returns all products ordered by ID ascending
	FindAll(ctx context.Context) ([]Product, error)

	// ExistsByName checks for another product with the given name, excluding
	// excludeID (0 to exclude nobody)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)

	// Save persists a product (insert or update)
	Save(ctx context.Context, product *Product) error

	// Delete removes a product by ID
	Delete(ctx context.Context, id uint) error
}
