package partner

import (
	"context"

	"github.com/fakturo/backend/internal/domain/document"
	"github.com/fakturo/backend/internal/domain/partner"
	"github.com/fakturo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	documentRepo document.Repository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo partner.CustomerRepository,
	documentRepo document.Repository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		documentRepo: documentRepo,
		logger:       logger,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.CompanyName)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		if err := customer.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	customer.SetPhone(req.Phone)
	customer.SetAddress(req.Address)
	customer.SetTaxID(req.TaxID)
	if req.Notes != "" {
		customer.SetNotes(req.Notes)
	}

	if err := s.checkUniqueness(ctx, customer, 0); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to save customer", zap.Error(err))
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List returns all customers. A storage failure degrades to an empty
// list rather than an error so read-only listings stay available.
func (s *CustomerService) List(ctx context.Context) []CustomerResponse {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list customers", zap.Error(err))
		return []CustomerResponse{}
	}
	return ToCustomerResponses(customers)
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, id uint, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.CompanyName != nil {
		name := customer.Name
		companyName := customer.CompanyName
		if req.Name != nil {
			name = *req.Name
		}
		if req.CompanyName != nil {
			companyName = *req.CompanyName
		}
		if err := customer.Rename(name, companyName); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := customer.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil {
		customer.SetPhone(*req.Phone)
	}
	if req.Address != nil {
		customer.SetAddress(*req.Address)
	}
	if req.TaxID != nil {
		customer.SetTaxID(*req.TaxID)
	}
	if req.Notes != nil {
		customer.SetNotes(*req.Notes)
	}

	if err := s.checkUniqueness(ctx, customer, customer.ID); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to update customer", zap.Uint("customer_id", id), zap.Error(err))
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer. Customers referenced by documents cannot
// be deleted.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.documentRepo.ExistsForCustomer(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewConflictError("Customer is referenced by existing documents")
	}

	return s.customerRepo.Delete(ctx, id)
}

// checkUniqueness verifies that email, phone, company name and tax ID
// do not collide with another customer.
func (s *CustomerService) checkUniqueness(ctx context.Context, customer *partner.Customer, excludeID uint) error {
	if customer.Email != "" {
		exists, err := s.customerRepo.ExistsByEmail(ctx, customer.Email, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewConflictError("Customer with this email already exists")
		}
	}
	if customer.Phone != "" {
		exists, err := s.customerRepo.ExistsByPhone(ctx, customer.Phone, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewConflictError("Customer with this phone already exists")
		}
	}
	if customer.CompanyName != "" {
		exists, err := s.customerRepo.ExistsByCompanyName(ctx, customer.CompanyName, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewConflictError("Customer with this company name already exists")
		}
	}
	if customer.TaxID != "" {
		exists, err := s.customerRepo.ExistsByTaxID(ctx, customer.TaxID, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewConflictError("Customer with this tax ID already exists")
		}
	}
	return nil
}
