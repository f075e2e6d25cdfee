package document

import (
	"strings"

	"github.com/fakturo/backend/internal/domain/shared"
)

// Type represents the kind of commercial document
type Type string

const (
	TypeOrder     Type = "ORDER"
	TypeQuotation Type = "QUOTATION"
	TypeInvoice   Type = "INVOICE"
)

// Status represents the lifecycle state of a document
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusOpen       Status = "OPEN"
	StatusSent       Status = "SENT"
	StatusAccepted   Status = "ACCEPTED"
	StatusRejected   Status = "REJECTED"
	StatusExpired    Status = "EXPIRED"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusShipped    Status = "SHIPPED"
	StatusPaid       Status = "PAID"
	StatusOverdue    Status = "OVERDUE"
	StatusCancelled  Status = "CANCELLED"
)

// allStatuses is the global status vocabulary
var allStatuses = map[Status]struct{}{
	StatusDraft:      {},
	StatusOpen:       {},
	StatusSent:       {},
	StatusAccepted:   {},
	StatusRejected:   {},
	StatusExpired:    {},
	StatusProcessing: {},
	StatusCompleted:  {},
	StatusShipped:    {},
	StatusPaid:       {},
	StatusOverdue:    {},
	StatusCancelled:  {},
}

// statusVocabulary is the per-type allow-list. A document's status must be a
// member of its type's vocabulary at creation and after every transition.
var statusVocabulary = map[Type][]Status{
	TypeOrder:     {StatusDraft, StatusOpen, StatusProcessing, StatusCompleted, StatusShipped, StatusCancelled},
	TypeQuotation: {StatusDraft, StatusSent, StatusAccepted, StatusRejected, StatusExpired},
	TypeInvoice:   {StatusDraft, StatusOpen, StatusSent, StatusPaid, StatusOverdue},
}

// mutableStatuses are the states in which a document's items may be created,
// updated or deleted. Intersected with the type vocabulary, so quotations are
// item-mutable in DRAFT only.
var mutableStatuses = map[Status]struct{}{
	StatusDraft: {},
	StatusOpen:  {},
}

// IsValid checks if the type is a recognized document type
func (t Type) IsValid() bool {
	_, ok := statusVocabulary[t]
	return ok
}

// String returns the canonical string representation
func (t Type) String() string {
	return string(t)
}

// AllowsStatus reports whether the status is legal for this document type.
func (t Type) AllowsStatus(s Status) bool {
	for _, allowed := range statusVocabulary[t] {
		if allowed == s {
			return true
		}
	}
	return false
}

// AllowedStatuses returns the status vocabulary for a document type. The
// returned slice is a copy.
func AllowedStatuses(t Type) []Status {
	vocab := statusVocabulary[t]
	out := make([]Status, len(vocab))
	copy(out, vocab)
	return out
}

// IsValid checks if the status is a member of the global vocabulary
func (s Status) IsValid() bool {
	_, ok := allStatuses[s]
	return ok
}

// String returns the canonical string representation
func (s Status) String() string {
	return string(s)
}

// IsMutable reports whether document items may be changed in this status.
func (s Status) IsMutable() bool {
	_, ok := mutableStatuses[s]
	return ok
}

// ParseType parses a document type name case-insensitively.
func ParseType(s string) (Type, error) {
	docType := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !docType.IsValid() {
		return "", shared.NewValidationError("Invalid document type: " + s)
	}
	return docType, nil
}

// ParseStatus parses a status name case-insensitively against the global
// vocabulary. Membership in a specific type's vocabulary is a separate check.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", shared.NewValidationError("Invalid document status: " + s)
	}
	return status, nil
}
