package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/fakturo/backend/internal/domain/shared"
)

// Document represents a commercial document (order, quotation or invoice)
// owned by a customer and issued by a user. It owns a collection of line
// items which are deleted with it.
type Document struct {
	shared.BaseEntity
	Type         Type
	CustomerID   uint
	UserID       uint
	IssueDate    time.Time
	DueDate      *time.Time
	DeliveryDate *time.Time
	Number       string
	Status       Status
	Reference    string
	Notes        string
}

// New creates a new document in the given initial status. The status must be
// a member of the type's vocabulary; uniqueness of the optional number is
// checked by the application service.
func New(docType Type, customerID, userID uint, issueDate time.Time, status Status) (*Document, error) {
	if !docType.IsValid() {
		return nil, shared.NewValidationError("Invalid document type: " + string(docType))
	}
	if customerID == 0 {
		return nil, shared.NewValidationError("Customer reference is required")
	}
	if userID == 0 {
		return nil, shared.NewValidationError("Issuing user reference is required")
	}
	if issueDate.IsZero() {
		return nil, shared.NewValidationError("Issue date is required")
	}
	if !status.IsValid() {
		return nil, shared.NewValidationError("Invalid document status: " + string(status))
	}
	if !docType.AllowsStatus(status) {
		return nil, shared.NewValidationError(
			fmt.Sprintf("Status %s is not allowed for document type %s", status, docType))
	}

	return &Document{
		BaseEntity: shared.NewBaseEntity(),
		Type:       docType,
		CustomerID: customerID,
		UserID:     userID,
		IssueDate:  issueDate,
		Status:     status,
	}, nil
}

// ChangeStatus transitions the document to a new status. The only constraint
// is membership in the type's vocabulary; any allowed status may follow any
// other.
func (d *Document) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewValidationError("Invalid document status: " + string(status))
	}
	if !d.Type.AllowsStatus(status) {
		return shared.NewValidationError(
			fmt.Sprintf("Status %s is not allowed for document type %s", status, d.Type))
	}
	d.Status = status
	d.Touch()
	return nil
}

// AssignNumber sets the human-facing document number. Uniqueness per type is
// checked by the application service.
func (d *Document) AssignNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.NewValidationError("Document number cannot be empty")
	}
	if len(number) > 50 {
		return shared.NewValidationError("Document number cannot exceed 50 characters")
	}
	d.Number = number
	d.Touch()
	return nil
}

// SetDueDate assigns or clears the due date.
func (d *Document) SetDueDate(dueDate *time.Time) {
	d.DueDate = dueDate
	d.Touch()
}

// SetDeliveryDate assigns or clears the delivery date. Only orders carry a
// delivery date.
func (d *Document) SetDeliveryDate(deliveryDate *time.Time) error {
	if deliveryDate != nil && d.Type != TypeOrder {
		return shared.NewValidationError("Delivery date is only allowed for orders")
	}
	d.DeliveryDate = deliveryDate
	d.Touch()
	return nil
}

// SetReference assigns the free-text reference.
func (d *Document) SetReference(reference string) {
	d.Reference = reference
	d.Touch()
}

// SetNotes assigns free-text notes.
func (d *Document) SetNotes(notes string) {
	d.Notes = notes
	d.Touch()
}

// CanModifyItems reports whether line items may currently be created,
// updated or deleted.
func (d *Document) CanModifyItems() bool {
	return d.Status.IsMutable()
}
