package entity

import "github.com/uptrace/bun"

// Office representa una oficina o sucursal de la empresa.
type Office struct {
	bun.BaseModel `bun:"table:offices,alias:ofc"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Code         string `bun:"code,notnull,unique"`
	City         string `bun:"city,notnull"`
	Country      string `bun:"country,notnull"`
	Region       string `bun:"region"`
	PostalCode   string `bun:"postal_code,notnull"`
	Phone        string `bun:"phone,notnull"`
	AddressLine1 string `bun:"address_line1,notnull"`
	AddressLine2 string `bun:"address_line2"`
}
