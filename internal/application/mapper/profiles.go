package mapper

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/garden-api/internal/application/dto"
	"github.com/jhoicas/garden-api/internal/domain"
	"github.com/jhoicas/garden-api/internal/domain/entity"
)

// Los perfiles solo copian campos: la forma del cuerpo la valida el handler y la
// integridad (únicos, claves foráneas) la garantiza el esquema. La única regla propia
// es la contraseña de User, que se hashea y es obligatoria en el alta.

// PasswordCost coste de bcrypt para las contraseñas de usuario.
var PasswordCost = bcrypt.DefaultCost

var Role = Profile[entity.Role, dto.RoleDTO]{
	ToDTO: func(e *entity.Role) dto.RoleDTO {
		return dto.RoleDTO{ID: e.ID, Name: e.Name}
	},
	ToEntity: func(id int64, in dto.RoleDTO, _ *entity.Role) (*entity.Role, error) {
		return &entity.Role{ID: id, Name: in.Name}, nil
	},
}

var User = Profile[entity.User, dto.UserDTO]{
	ToDTO: func(e *entity.User) dto.UserDTO {
		return dto.UserDTO{ID: e.ID, Username: e.Username, Email: e.Email, RoleID: e.RoleID}
	},
	ToEntity: func(id int64, in dto.UserDTO, current *entity.User) (*entity.User, error) {
		u := &entity.User{ID: id, Username: in.Username, Email: in.Email, RoleID: in.RoleID}
		switch {
		case in.Password != "":
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
			if err != nil {
				return nil, fmt.Errorf("%w: password: %v", domain.ErrInvalidInput, err)
			}
			u.PasswordHash = string(hash)
		case current != nil:
			u.PasswordHash = current.PasswordHash
		default:
			return nil, fmt.Errorf("%w: password es requerido", domain.ErrInvalidInput)
		}
		return u, nil
	},
}

var Office = Profile[entity.Office, dto.OfficeDTO]{
	ToDTO: func(e *entity.Office) dto.OfficeDTO {
		return dto.OfficeDTO{
			ID: e.ID, Code: e.Code, City: e.City, Country: e.Country, Region: e.Region,
			PostalCode: e.PostalCode, Phone: e.Phone, AddressLine1: e.AddressLine1, AddressLine2: e.AddressLine2,
		}
	},
	ToEntity: func(id int64, in dto.OfficeDTO, _ *entity.Office) (*entity.Office, error) {
		return &entity.Office{
			ID: id, Code: in.Code, City: in.City, Country: in.Country, Region: in.Region,
			PostalCode: in.PostalCode, Phone: in.Phone, AddressLine1: in.AddressLine1, AddressLine2: in.AddressLine2,
		}, nil
	},
}

var Employee = Profile[entity.Employee, dto.EmployeeDTO]{
	ToDTO: func(e *entity.Employee) dto.EmployeeDTO {
		return dto.EmployeeDTO{
			ID: e.ID, FirstName: e.FirstName, LastName1: e.LastName1, LastName2: e.LastName2,
			Extension: e.Extension, Email: e.Email, JobTitle: e.JobTitle, OfficeID: e.OfficeID, BossID: e.BossID,
		}
	},
	ToEntity: func(id int64, in dto.EmployeeDTO, _ *entity.Employee) (*entity.Employee, error) {
		return &entity.Employee{
			ID: id, FirstName: in.FirstName, LastName1: in.LastName1, LastName2: in.LastName2,
			Extension: in.Extension, Email: in.Email, JobTitle: in.JobTitle, OfficeID: in.OfficeID, BossID: in.BossID,
		}, nil
	},
}

var Client = Profile[entity.Client, dto.ClientDTO]{
	ToDTO: func(e *entity.Client) dto.ClientDTO {
		return dto.ClientDTO{
			ID: e.ID, Name: e.Name, ContactFirstName: e.ContactFirstName, ContactLastName: e.ContactLastName,
			Phone: e.Phone, Fax: e.Fax, AddressLine1: e.AddressLine1, AddressLine2: e.AddressLine2,
			City: e.City, Region: e.Region, Country: e.Country, PostalCode: e.PostalCode,
			SalesRepID: e.SalesRepID, CreditLimit: e.CreditLimit,
		}
	},
	ToEntity: func(id int64, in dto.ClientDTO, _ *entity.Client) (*entity.Client, error) {
		return &entity.Client{
			ID: id, Name: in.Name, ContactFirstName: in.ContactFirstName, ContactLastName: in.ContactLastName,
			Phone: in.Phone, Fax: in.Fax, AddressLine1: in.AddressLine1, AddressLine2: in.AddressLine2,
			City: in.City, Region: in.Region, Country: in.Country, PostalCode: in.PostalCode,
			SalesRepID: in.SalesRepID, CreditLimit: in.CreditLimit,
		}, nil
	},
}

var ProductLine = Profile[entity.ProductLine, dto.ProductLineDTO]{
	ToDTO: func(e *entity.ProductLine) dto.ProductLineDTO {
		return dto.ProductLineDTO{
			ID: e.ID, Name: e.Name, DescriptionText: e.DescriptionText,
			DescriptionHTML: e.DescriptionHTML, Image: e.Image,
		}
	},
	ToEntity: func(id int64, in dto.ProductLineDTO, _ *entity.ProductLine) (*entity.ProductLine, error) {
		return &entity.ProductLine{
			ID: id, Name: in.Name, DescriptionText: in.DescriptionText,
			DescriptionHTML: in.DescriptionHTML, Image: in.Image,
		}, nil
	},
}

var Product = Profile[entity.Product, dto.ProductDTO]{
	ToDTO: func(e *entity.Product) dto.ProductDTO {
		return dto.ProductDTO{
			ID: e.ID, Code: e.Code, Name: e.Name, ProductLineID: e.ProductLineID,
			Dimensions: e.Dimensions, Supplier: e.Supplier, Description: e.Description,
			StockQuantity: e.StockQuantity, SalePrice: e.SalePrice, SupplierPrice: e.SupplierPrice,
		}
	},
	ToEntity: func(id int64, in dto.ProductDTO, _ *entity.Product) (*entity.Product, error) {
		return &entity.Product{
			ID: id, Code: in.Code, Name: in.Name, ProductLineID: in.ProductLineID,
			Dimensions: in.Dimensions, Supplier: in.Supplier, Description: in.Description,
			StockQuantity: in.StockQuantity, SalePrice: in.SalePrice, SupplierPrice: in.SupplierPrice,
		}, nil
	},
}

var Order = Profile[entity.Order, dto.OrderDTO]{
	ToDTO: func(e *entity.Order) dto.OrderDTO {
		return dto.OrderDTO{
			ID: e.ID, OrderDate: e.OrderDate, ExpectedDate: e.ExpectedDate, DeliveryDate: e.DeliveryDate,
			Status: e.Status, Comments: e.Comments, ClientID: e.ClientID,
		}
	},
	ToEntity: func(id int64, in dto.OrderDTO, _ *entity.Order) (*entity.Order, error) {
		return &entity.Order{
			ID: id, OrderDate: in.OrderDate, ExpectedDate: in.ExpectedDate, DeliveryDate: in.DeliveryDate,
			Status: in.Status, Comments: in.Comments, ClientID: in.ClientID,
		}, nil
	},
}

var OrderDetail = Profile[entity.OrderDetail, dto.OrderDetailDTO]{
	ToDTO: func(e *entity.OrderDetail) dto.OrderDetailDTO {
		return dto.OrderDetailDTO{
			ID: e.ID, OrderID: e.OrderID, ProductID: e.ProductID, Quantity: e.Quantity,
			UnitPrice: e.UnitPrice, LineNumber: e.LineNumber,
		}
	},
	ToEntity: func(id int64, in dto.OrderDetailDTO, _ *entity.OrderDetail) (*entity.OrderDetail, error) {
		return &entity.OrderDetail{
			ID: id, OrderID: in.OrderID, ProductID: in.ProductID, Quantity: in.Quantity,
			UnitPrice: in.UnitPrice, LineNumber: in.LineNumber,
		}, nil
	},
}

var Payment = Profile[entity.Payment, dto.PaymentDTO]{
	ToDTO: func(e *entity.Payment) dto.PaymentDTO {
		return dto.PaymentDTO{
			ID: e.ID, ClientID: e.ClientID, PaymentMethod: e.PaymentMethod,
			TransactionID: e.TransactionID, PaymentDate: e.PaymentDate, Total: e.Total,
		}
	},
	ToEntity: func(id int64, in dto.PaymentDTO, _ *entity.Payment) (*entity.Payment, error) {
		return &entity.Payment{
			ID: id, ClientID: in.ClientID, PaymentMethod: in.PaymentMethod,
			TransactionID: in.TransactionID, PaymentDate: in.PaymentDate, Total: in.Total,
		}, nil
	},
}
