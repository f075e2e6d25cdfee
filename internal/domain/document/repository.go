package document

import "context"

// Filter holds the optional equality predicates for document list queries.
type Filter struct {
	Status     *Status
	Number     *string
	CustomerID *uint
}

// Repository defines the persistence contract for documents
type Repository interface {
	// FindByID finds a document by ID
	FindByID(ctx context.Context, id uint) (*Document, error)

	// FindAll returns documents matching the filter, ordered by ID ascending
	FindAll(ctx context.Context, filter Filter) ([]Document, error)

	// ExistsByNumber checks whether a document of the given type already
	// carries the number
	ExistsByNumber(ctx context.Context, docType Type, number string) (bool, error)

	// ExistsForCustomer checks whether any document references the customer
	ExistsForCustomer(ctx context.Context, customerID uint) (bool, error)

	// Save persists a document (insert or update)
	Save(ctx context.Context, doc *Document) error

	// Delete removes a document and all of its items
	Delete(ctx context.Context, id uint) error
}

// ItemRepository defines the persistence contract for document items
type ItemRepository interface {
	// FindByID finds an item by ID
	FindByID(ctx context.Context, id uint) (*Item, error)

	// FindAll returns all items ordered by ID ascending
	FindAll(ctx context.Context) ([]Item, error)

	// FindByDocument returns the items of a document ordered by ID ascending
	FindByDocument(ctx context.Context, documentID uint) ([]Item, error)

	// ExistsForProduct checks whether any item references the product
	ExistsForProduct(ctx context.Context, productID uint) (bool, error)

	// Save persists an item (insert or update)
	Save(ctx context.Context, item *Item) error

	// Delete removes an item by ID
	Delete(ctx context.Context, id uint) error
}
