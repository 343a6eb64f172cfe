package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDTO entrada y salida de un pedido.
type OrderDTO struct {
	ID           int64      `json:"id"`
	OrderDate    time.Time  `json:"order_date" validate:"required"`
	ExpectedDate time.Time  `json:"expected_date" validate:"required"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Status       string     `json:"status" validate:"required,max=15"`
	Comments     string     `json:"comments"`
	ClientID     int64      `json:"client_id" validate:"required,gt=0"`
}

func (d OrderDTO) Identifier() int64 { return d.ID }

// OrderDetailDTO entrada y salida de una línea de pedido.
type OrderDetailDTO struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"order_id" validate:"required,gt=0"`
	ProductID  int64           `json:"product_id" validate:"required,gt=0"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price" swaggertype:"string"`
	LineNumber int             `json:"line_number" validate:"required,gt=0"`
}

func (d OrderDetailDTO) Identifier() int64 { return d.ID }

// OrderSheet datos de la hoja de pedido (PDF): cabecera, cliente y líneas con nombre de producto.
type OrderSheet struct {
	OrderID      int64
	OrderDate    time.Time
	ExpectedDate time.Time
	DeliveryDate *time.Time
	Status       string
	Comments     string
	ClientName   string
	ClientPhone  string
	ClientCity   string
	Lines        []OrderSheetLine
	Total        decimal.Decimal
}

// OrderSheetLine una línea de la hoja de pedido.
type OrderSheetLine struct {
	LineNumber  int
	ProductCode string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
