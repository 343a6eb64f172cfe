package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDTO entrada y salida de un pago.
type PaymentDTO struct {
	ID            int64           `json:"id"`
	ClientID      int64           `json:"client_id" validate:"required,gt=0"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=40"`
	TransactionID string          `json:"transaction_id" validate:"required,max=50"`
	PaymentDate   time.Time       `json:"payment_date" validate:"required"`
	Total         decimal.Decimal `json:"total" swaggertype:"string"`
}

func (d PaymentDTO) Identifier() int64 { return d.ID }
