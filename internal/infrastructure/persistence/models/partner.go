package models

import (
	"github.com/fakturo/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
// Optional contact fields use uniqueness indexes over non-empty values;
// empty strings are stored as-is and excluded from the checks by the
// repository queries.
type CustomerModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200)"`
	CompanyName string `gorm:"type:varchar(200);index"`
	Email       string `gorm:"type:varchar(200);index"`
	Phone       string `gorm:"type:varchar(50);index"`
	Address     string `gorm:"type:text"`
	TaxID       string `gorm:"type:varchar(50);index"`
	Notes       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		CompanyName: m.CompanyName,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		TaxID:       m.TaxID,
		Notes:       m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.CompanyName = c.CompanyName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.TaxID = c.TaxID
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
