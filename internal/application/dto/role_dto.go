package dto

// RoleDTO entrada y salida de un rol.
type RoleDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,min=1,max=50"`
}

func (d RoleDTO) Identifier() int64 { return d.ID }
