package document

import (
	"time"

	"github.com/fakturo/backend/internal/domain/document"
	"github.com/shopspring/decimal"
)

// CreateDocumentRequest represents a request to create a new document
type CreateDocumentRequest struct {
	Type         string     `json:"type" binding:"required"`
	CustomerID   uint       `json:"customer_id" binding:"required"`
	UserID       uint       `json:"-"`
	IssueDate    time.Time  `json:"issue_date" binding:"required"`
	Status       string     `json:"status"`
	Number       string     `json:"number" binding:"max=50"`
	DueDate      *time.Time `json:"due_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Reference    string     `json:"reference" binding:"max=200"`
	Notes        string     `json:"notes"`
}

// UpdateDocumentRequest represents a partial update to a document
type UpdateDocumentRequest struct {
	Status       *string    `json:"status"`
	Number       *string    `json:"number" binding:"omitempty,max=50"`
	DueDate      *time.Time `json:"due_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Reference    *string    `json:"reference" binding:"omitempty,max=200"`
	Notes        *string    `json:"notes"`
}

// ListFilter carries the optional query filters for document listings
type ListFilter struct {
	Status     string `form:"status"`
	Number     string `form:"number"`
	CustomerID uint   `form:"customer_id"`
}

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	ID           uint       `json:"id"`
	Type         string     `json:"type"`
	CustomerID   uint       `json:"customer_id"`
	UserID       uint       `json:"user_id"`
	IssueDate    time.Time  `json:"issue_date"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Number       string     `json:"number"`
	Status       string     `json:"status"`
	Reference    string     `json:"reference"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToDocumentResponse converts a domain document to a response DTO
func ToDocumentResponse(d *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		Type:         d.Type.String(),
		CustomerID:   d.CustomerID,
		UserID:       d.UserID,
		IssueDate:    d.IssueDate,
		DueDate:      d.DueDate,
		DeliveryDate: d.DeliveryDate,
		Number:       d.Number,
		Status:       d.Status.String(),
		Reference:    d.Reference,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDocumentResponses converts a slice of domain documents
func ToDocumentResponses(documents []document.Document) []DocumentResponse {
	responses := make([]DocumentResponse, 0, len(documents))
	for i := range documents {
		responses = append(responses, ToDocumentResponse(&documents[i]))
	}
	return responses
}

// AddItemRequest represents a request to add a line item to a document.
// When unit_price is omitted the product's current price is captured.
type AddItemRequest struct {
	ProductID uint             `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// UpdateItemRequest represents a partial update to a line item
type UpdateItemRequest struct {
	Quantity  *decimal.Decimal `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// ItemResponse represents a line item in API responses
type ItemResponse struct {
	ID         uint            `json:"id"`
	DocumentID uint            `json:"document_id"`
	ProductID  uint            `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(i *document.Item) ItemResponse {
	return ItemResponse{
		ID:         i.ID,
		DocumentID: i.DocumentID,
		ProductID:  i.ProductID,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		LineTotal:  i.LineTotal(),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// ToItemResponses converts a slice of domain items
func ToItemResponses(items []document.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToItemResponse(&items[i]))
	}
	return responses
}
