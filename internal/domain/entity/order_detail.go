package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// OrderDetail representa una línea de un pedido.
type OrderDetail struct {
	bun.BaseModel `bun:"table:order_details,alias:od"`

	ID         int64           `bun:"id,pk,autoincrement"`
	OrderID    int64           `bun:"order_id,notnull"`
	ProductID  int64           `bun:"product_id,notnull"`
	Quantity   int             `bun:"quantity,notnull"`
	UnitPrice  decimal.Decimal `bun:"unit_price,type:decimal(15,2),notnull"`
	LineNumber int             `bun:"line_number,notnull"`
}
