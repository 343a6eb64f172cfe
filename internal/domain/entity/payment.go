package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Payment representa un pago registrado por un cliente.
type Payment struct {
	bun.BaseModel `bun:"table:payments,alias:pa"`

	ID            int64           `bun:"id,pk,autoincrement"`
	ClientID      int64           `bun:"client_id,notnull"`
	PaymentMethod string          `bun:"payment_method,notnull"` // PayPal, Transferencia, Cheque
	TransactionID string          `bun:"transaction_id,notnull,unique"`
	PaymentDate   time.Time       `bun:"payment_date,notnull"`
	Total         decimal.Decimal `bun:"total,type:decimal(15,2),notnull"`
}
