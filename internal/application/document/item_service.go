package document

import (
	"context"

	"github.com/fakturo/backend/internal/domain/catalog"
	"github.com/fakturo/backend/internal/domain/document"
	"github.com/fakturo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ItemService handles line items on documents. Items can only be
// changed while the owning document is in a mutable status.
type ItemService struct {
	itemRepo     document.ItemRepository
	documentRepo document.Repository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(
	itemRepo document.ItemRepository,
	documentRepo document.Repository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		documentRepo: documentRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Add appends a line item to a document. The unit price is captured at
// this moment: later product price changes do not affect it.
func (s *ItemService) Add(ctx context.Context, documentID uint, req AddItemRequest) (*ItemResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewNotFoundError("Document not found")
		}
		return nil, err
	}
	if !doc.CanModifyItems() {
		return nil, shared.NewConflictError("Document items cannot be modified in status " + doc.Status.String())
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewNotFoundError("Product not found")
		}
		return nil, err
	}

	unitPrice := product.UnitPrice
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	item, err := document.NewItem(documentID, req.ProductID, req.Quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		s.logger.Error("Failed to save item", zap.Uint("document_id", documentID), zap.Error(err))
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves a line item of a document
func (s *ItemService) GetByID(ctx context.Context, documentID, itemID uint) (*ItemResponse, error) {
	item, err := s.findOwnedItem(ctx, documentID, itemID)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// ListByDocument returns all items of a document. A storage failure
// degrades to an empty list.
func (s *ItemService) ListByDocument(ctx context.Context, documentID uint) ([]ItemResponse, error) {
	if _, err := s.documentRepo.FindByID(ctx, documentID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("Failed to list items", zap.Uint("document_id", documentID), zap.Error(err))
		return []ItemResponse{}, nil
	}
	return ToItemResponses(items), nil
}

// Update changes quantity and/or unit price of a line item
func (s *ItemService) Update(ctx context.Context, documentID, itemID uint, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.findOwnedItem(ctx, documentID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.checkMutable(ctx, item.DocumentID); err != nil {
		return nil, err
	}

	quantity := item.Quantity
	unitPrice := item.UnitPrice
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}
	if err := item.Update(quantity, unitPrice); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		s.logger.Error("Failed to update item", zap.Uint("item_id", itemID), zap.Error(err))
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes a line item from a document
func (s *ItemService) Delete(ctx context.Context, documentID, itemID uint) error {
	item, err := s.findOwnedItem(ctx, documentID, itemID)
	if err != nil {
		return err
	}
	if err := s.checkMutable(ctx, item.DocumentID); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, itemID)
}

// findOwnedItem resolves an item and verifies it belongs to the given
// document. An item of another document is treated as not found so the
// path never leaks existence across documents.
func (s *ItemService) findOwnedItem(ctx context.Context, documentID, itemID uint) (*document.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.DocumentID != documentID {
		return nil, shared.NewNotFoundError("Item not found")
	}
	return item, nil
}

func (s *ItemService) checkMutable(ctx context.Context, documentID uint) error {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if !doc.CanModifyItems() {
		return shared.NewConflictError("Document items cannot be modified in status " + doc.Status.String())
	}
	return nil
}
