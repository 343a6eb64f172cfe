package dto

// ProductLineDTO entrada y salida de una gama de productos.
type ProductLineDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name" validate:"required,max=50"`
	DescriptionText string `json:"description_text"`
	DescriptionHTML string `json:"description_html"`
	Image           string `json:"image" validate:"max=256"`
}

func (d ProductLineDTO) Identifier() int64 { return d.ID }
