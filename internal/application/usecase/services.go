package usecase

import (
	"github.com/jhoicas/garden-api/internal/application/dto"
	"github.com/jhoicas/garden-api/internal/application/mapper"
	"github.com/jhoicas/garden-api/internal/domain/entity"
	"github.com/jhoicas/garden-api/internal/domain/repository"
)

// Services agrupa los casos de uso CRUD de todas las entidades.
type Services struct {
	Roles        *CrudUseCase[entity.Role, dto.RoleDTO]
	Users        *CrudUseCase[entity.User, dto.UserDTO]
	Offices      *CrudUseCase[entity.Office, dto.OfficeDTO]
	Employees    *CrudUseCase[entity.Employee, dto.EmployeeDTO]
	Clients      *CrudUseCase[entity.Client, dto.ClientDTO]
	ProductLines *CrudUseCase[entity.ProductLine, dto.ProductLineDTO]
	Products     *CrudUseCase[entity.Product, dto.ProductDTO]
	Orders       *CrudUseCase[entity.Order, dto.OrderDTO]
	OrderDetails *CrudUseCase[entity.OrderDetail, dto.OrderDetailDTO]
	Payments     *CrudUseCase[entity.Payment, dto.PaymentDTO]
}

// NewServices construye todos los casos de uso sobre la misma factoría de unidades de trabajo.
func NewServices(uows repository.UnitOfWorkFactory) *Services {
	return &Services{
		Roles: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.Role] {
			return u.Roles()
		}, mapper.Role),
		Users: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.User] {
			return u.Users()
		}, mapper.User),
		Offices: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.Office] {
			return u.Offices()
		}, mapper.Office),
		Employees: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.Employee] {
			return u.Employees()
		}, mapper.Employee),
		Clients: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.Client] {
			return u.Clients()
		}, mapper.Client),
		ProductLines: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.ProductLine] {
			return u.ProductLines()
		}, mapper.ProductLine),
		Products: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.Product] {
			return u.Products()
		}, mapper.Product),
		Orders: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.Order] {
			return u.Orders()
		}, mapper.Order),
		OrderDetails: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.OrderDetail] {
			return u.OrderDetails()
		}, mapper.OrderDetail),
		Payments: NewCrudUseCase(uows, func(u repository.UnitOfWork) repository.Repository[entity.Payment] {
			return u.Payments()
		}, mapper.Payment),
	}
}
