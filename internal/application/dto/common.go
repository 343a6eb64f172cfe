package dto

// Identified lo implementan todos los DTO de entidades: expone el id recibido en el cuerpo.
type Identified interface {
	Identifier() int64
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse salida de /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
