package entity

import "github.com/uptrace/bun"

// ProductLine representa una gama de productos (ornamentales, frutales, herramientas...).
type ProductLine struct {
	bun.BaseModel `bun:"table:product_lines,alias:pl"`

	ID              int64  `bun:"id,pk,autoincrement"`
	Name            string `bun:"name,notnull,unique"`
	DescriptionText string `bun:"description_text"`
	DescriptionHTML string `bun:"description_html"`
	Image           string `bun:"image"`
}
