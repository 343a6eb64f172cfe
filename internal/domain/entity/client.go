package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Client representa un cliente de la tienda. SalesRepID apunta al empleado
// que lo atiende (opcional).
type Client struct {
	bun.BaseModel `bun:"table:clients,alias:c"`

	ID               int64           `bun:"id,pk,autoincrement"`
	Name             string          `bun:"name,notnull"`
	ContactFirstName string          `bun:"contact_first_name"`
	ContactLastName  string          `bun:"contact_last_name"`
	Phone            string          `bun:"phone,notnull"`
	Fax              string          `bun:"fax"`
	AddressLine1     string          `bun:"address_line1,notnull"`
	AddressLine2     string          `bun:"address_line2"`
	City             string          `bun:"city,notnull"`
	Region           string          `bun:"region"`
	Country          string          `bun:"country"`
	PostalCode       string          `bun:"postal_code"`
	SalesRepID       *int64          `bun:"sales_rep_id"`
	CreditLimit      decimal.Decimal `bun:"credit_limit,type:decimal(15,2),notnull"`
}
