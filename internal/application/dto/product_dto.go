package dto

import "github.com/shopspring/decimal"

// ProductDTO entrada y salida de un producto.
type ProductDTO struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code" validate:"required,max=15"`
	Name          string          `json:"name" validate:"required,max=70"`
	ProductLineID int64           `json:"product_line_id" validate:"required,gt=0"`
	Dimensions    string          `json:"dimensions" validate:"max=25"`
	Supplier      string          `json:"supplier" validate:"max=50"`
	Description   string          `json:"description"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	SalePrice     decimal.Decimal `json:"sale_price" swaggertype:"string"`
	SupplierPrice decimal.Decimal `json:"supplier_price" swaggertype:"string"`
}

func (d ProductDTO) Identifier() int64 { return d.ID }
