package document

import (
	"context"

	"github.com/fakturo/backend/internal/domain/document"
	"github.com/fakturo/backend/internal/domain/identity"
	"github.com/fakturo/backend/internal/domain/partner"
	"github.com/fakturo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DocumentService handles the lifecycle of orders, quotations and
// invoices.
type DocumentService struct {
	documentRepo document.Repository
	customerRepo partner.CustomerRepository
	userRepo     identity.UserRepository
	logger       *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo document.Repository,
	customerRepo partner.CustomerRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Create creates a new document. The status defaults to DRAFT and must
// belong to the vocabulary of the document type.
func (s *DocumentService) Create(ctx context.Context, req CreateDocumentRequest) (*DocumentResponse, error) {
	docType, err := document.ParseType(req.Type)
	if err != nil {
		return nil, err
	}

	status := document.StatusDraft
	if req.Status != "" {
		status, err = document.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
	}

	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewNotFoundError("Customer not found")
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewNotFoundError("User not found")
		}
		return nil, err
	}

	doc, err := document.New(docType, req.CustomerID, req.UserID, req.IssueDate, status)
	if err != nil {
		return nil, err
	}

	if req.Number != "" {
		if err := s.checkNumberUnique(ctx, docType, req.Number); err != nil {
			return nil, err
		}
		if err := doc.AssignNumber(req.Number); err != nil {
			return nil, err
		}
	}
	doc.SetDueDate(req.DueDate)
	if req.DeliveryDate != nil {
		if err := doc.SetDeliveryDate(req.DeliveryDate); err != nil {
			return nil, err
		}
	}
	doc.SetReference(req.Reference)
	doc.SetNotes(req.Notes)

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save document", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Document created",
		zap.Uint("document_id", doc.ID),
		zap.String("type", doc.Type.String()),
		zap.String("status", doc.Status.String()))

	response := ToDocumentResponse(doc)
	return &response, nil
}

// GetByID retrieves a document by ID
func (s *DocumentService) GetByID(ctx context.Context, id uint) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToDocumentResponse(doc)
	return &response, nil
}

// List returns documents matching the filter. An unknown status filter
// is rejected; a storage failure degrades to an empty list.
func (s *DocumentService) List(ctx context.Context, filter ListFilter) ([]DocumentResponse, error) {
	domainFilter := document.Filter{}
	if filter.Status != "" {
		status, err := document.ParseStatus(filter.Status)
		if err != nil {
			return nil, err
		}
		domainFilter.Status = &status
	}
	if filter.Number != "" {
		number := filter.Number
		domainFilter.Number = &number
	}
	if filter.CustomerID != 0 {
		customerID := filter.CustomerID
		domainFilter.CustomerID = &customerID
	}

	documents, err := s.documentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		s.logger.Error("Failed to list documents", zap.Error(err))
		return []DocumentResponse{}, nil
	}
	return ToDocumentResponses(documents), nil
}

// Update applies a partial update to a document
func (s *DocumentService) Update(ctx context.Context, id uint, req UpdateDocumentRequest) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status, err := document.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		if err := doc.ChangeStatus(status); err != nil {
			return nil, err
		}
	}
	if req.Number != nil && *req.Number != doc.Number {
		if *req.Number != "" {
			if err := s.checkNumberUnique(ctx, doc.Type, *req.Number); err != nil {
				return nil, err
			}
		}
		if err := doc.AssignNumber(*req.Number); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		doc.SetDueDate(req.DueDate)
	}
	if req.DeliveryDate != nil {
		if err := doc.SetDeliveryDate(req.DeliveryDate); err != nil {
			return nil, err
		}
	}
	if req.Reference != nil {
		doc.SetReference(*req.Reference)
	}
	if req.Notes != nil {
		doc.SetNotes(*req.Notes)
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to update document", zap.Uint("document_id", id), zap.Error(err))
		return nil, err
	}

	response := ToDocumentResponse(doc)
	return &response, nil
}

// Delete removes a document together with its line items
func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.documentRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.documentRepo.Delete(ctx, id)
}

func (s *DocumentService) checkNumberUnique(ctx context.Context, docType document.Type, number string) error {
	exists, err := s.documentRepo.ExistsByNumber(ctx, docType, number)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewConflictError("Document number already in use for this type")
	}
	return nil
}
