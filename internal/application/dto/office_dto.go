package dto

// OfficeDTO entrada y salida de una oficina.
type OfficeDTO struct {
	ID           int64  `json:"id"`
	Code         string `json:"code" validate:"required,max=10"`
	City         string `json:"city" validate:"required,max=30"`
	Country      string `json:"country" validate:"required,max=50"`
	Region       string `json:"region" validate:"max=50"`
	PostalCode   string `json:"postal_code" validate:"required,max=10"`
	Phone        string `json:"phone" validate:"required,max=20"`
	AddressLine1 string `json:"address_line1" validate:"required,max=50"`
	AddressLine2 string `json:"address_line2" validate:"max=50"`
}

func (d OfficeDTO) Identifier() int64 { return d.ID }
