package dto

// UserDTO entrada y salida de un usuario.
// Password solo se recibe (se hashea con bcrypt); nunca se devuelve.
// En PUT una contraseña vacía conserva la actual.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	RoleID   int64  `json:"role_id" validate:"required,gt=0"`
}

func (d UserDTO) Identifier() int64 { return d.ID }
