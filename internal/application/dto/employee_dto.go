package dto

// EmployeeDTO entrada y salida de un empleado. BossID es opcional.
type EmployeeDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName1 string `json:"last_name1" validate:"required,max=50"`
	LastName2 string `json:"last_name2" validate:"max=50"`
	Extension string `json:"extension" validate:"required,max=10"`
	Email     string `json:"email" validate:"required,email,max=100"`
	JobTitle  string `json:"job_title" validate:"max=50"`
	OfficeID  int64  `json:"office_id" validate:"required,gt=0"`
	BossID    *int64 `json:"boss_id,omitempty" validate:"omitempty,gt=0"`
}

func (d EmployeeDTO) Identifier() int64 { return d.ID }
