package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Product representa un artículo del catálogo perteneciente a una gama.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID            int64           `bun:"id,pk,autoincrement"`
	Code          string          `bun:"code,notnull,unique"` // código de catálogo
	Name          string          `bun:"name,notnull"`
	ProductLineID int64           `bun:"product_line_id,notnull"`
	Dimensions    string          `bun:"dimensions"`
	Supplier      string          `bun:"supplier"`
	Description   string          `bun:"description"`
	StockQuantity int             `bun:"stock_quantity,notnull"`
	SalePrice     decimal.Decimal `bun:"sale_price,type:decimal(15,2),notnull"`
	SupplierPrice decimal.Decimal `bun:"supplier_price,type:decimal(15,2),notnull"`
}
