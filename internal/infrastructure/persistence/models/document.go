package models

import (
	"time"

	"github.com/fakturo/backend/internal/domain/document"
	"github.com/shopspring/decimal"
)

// DocumentModel is the persistence model for the Document domain entity.
// The document number is unique per type; NULL numbers stay outside the
// constraint so unnumbered drafts can coexist.
type DocumentModel struct {
	BaseModel
	Type         string     `gorm:"type:varchar(20);not null;index;uniqueIndex:idx_documents_type_number,priority:1"`
	CustomerID   uint       `gorm:"not null;index"`
	UserID       uint       `gorm:"not null;index"`
	IssueDate    time.Time  `gorm:"not null"`
	DueDate      *time.Time `gorm:""`
	DeliveryDate *time.Time `gorm:""`
	Number       *string    `gorm:"type:varchar(50);uniqueIndex:idx_documents_type_number,priority:2"`
	Status       string     `gorm:"type:varchar(20);not null;index"`
	Reference    string     `gorm:"type:varchar(200)"`
	Notes        string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts the persistence model to a domain Document entity.
func (m *DocumentModel) ToDomain() *document.Document {
	number := ""
	if m.Number != nil {
		number = *m.Number
	}
	return &document.Document{
		BaseEntity:   m.BaseModel.ToDomain(),
		Type:         document.Type(m.Type),
		CustomerID:   m.CustomerID,
		UserID:       m.UserID,
		IssueDate:    m.IssueDate,
		DueDate:      m.DueDate,
		DeliveryDate: m.DeliveryDate,
		Number:       number,
		Status:       document.Status(m.Status),
		Reference:    m.Reference,
		Notes:        m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Document entity.
func (m *DocumentModel) FromDomain(d *document.Document) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.Type = d.Type.String()
	m.CustomerID = d.CustomerID
	m.UserID = d.UserID
	m.IssueDate = d.IssueDate
	m.DueDate = d.DueDate
	m.DeliveryDate = d.DeliveryDate
	if d.Number != "" {
		number := d.Number
		m.Number = &number
	} else {
		m.Number = nil
	}
	m.Status = d.Status.String()
	m.Reference = d.Reference
	m.Notes = d.Notes
}

// DocumentModelFromDomain creates a new persistence model from a domain Document entity.
func DocumentModelFromDomain(d *document.Document) *DocumentModel {
	m := &DocumentModel{}
	m.FromDomain(d)
	return m
}

// ItemModel is the persistence model for the document line item.
type ItemModel struct {
	BaseModel
	DocumentID uint            `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	ProductID  uint            `gorm:"not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "document_items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() *document.Item {
	return &document.Item{
		BaseEntity: m.BaseModel.ToDomain(),
		DocumentID: m.DocumentID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(i *document.Item) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.DocumentID = i.DocumentID
	m.ProductID = i.ProductID
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(i *document.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(i)
	return m
}
