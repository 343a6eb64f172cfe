package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Estados habituales de un pedido.
const (
	OrderStatusPending   = "Pendiente"
	OrderStatusDelivered = "Entregado"
	OrderStatusRejected  = "Rechazado"
)

// Order representa un pedido de un cliente. DeliveryDate es nil mientras no se entregue.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID           int64      `bun:"id,pk,autoincrement"`
	OrderDate    time.Time  `bun:"order_date,notnull"`
	ExpectedDate time.Time  `bun:"expected_date,notnull"`
	DeliveryDate *time.Time `bun:"delivery_date"`
	Status       string     `bun:"status,notnull"`
	Comments     string     `bun:"comments"`
	ClientID     int64      `bun:"client_id,notnull"`
}
