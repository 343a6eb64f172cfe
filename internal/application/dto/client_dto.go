package dto

import "github.com/shopspring/decimal"

// ClientDTO entrada y salida de un cliente.
type ClientDTO struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name" validate:"required,max=50"`
	ContactFirstName string          `json:"contact_first_name" validate:"max=30"`
	ContactLastName  string          `json:"contact_last_name" validate:"max=30"`
	Phone            string          `json:"phone" validate:"required,max=15"`
	Fax              string          `json:"fax" validate:"max=15"`
	AddressLine1     string          `json:"address_line1" validate:"required,max=50"`
	AddressLine2     string          `json:"address_line2" validate:"max=50"`
	City             string          `json:"city" validate:"required,max=50"`
	Region           string          `json:"region" validate:"max=50"`
	Country          string          `json:"country" validate:"max=50"`
	PostalCode       string          `json:"postal_code" validate:"max=10"`
	SalesRepID       *int64          `json:"sales_rep_id,omitempty" validate:"omitempty,gt=0"`
	CreditLimit      decimal.Decimal `json:"credit_limit" swaggertype:"string"`
}

func (d ClientDTO) Identifier() int64 { return d.ID }
