package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/garden-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Services   *usecase.Services
	OrderSheet *usecase.OrderSheetUseCase
	Ping       func(ctx context.Context) error
	JWTSecret  string
	JWTIssuer  string
	Roles      []string // roles con acceso a /api
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Públicas
	app.Get("/health", HealthHandler(deps.Ping))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Rutas protegidas (Bearer Token + rol permitido)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(deps.Roles...))

	s := deps.Services
	NewCrudHandler(s.Roles, "/api/roles", "rol").register(api, "/roles")
	NewCrudHandler(s.Users, "/api/users", "usuario").register(api, "/users")
	NewCrudHandler(s.Clients, "/api/clients", "cliente").register(api, "/clients")
	NewCrudHandler(s.Employees, "/api/employees", "empleado").register(api, "/employees")
	NewCrudHandler(s.Offices, "/api/offices", "oficina").register(api, "/offices")
	NewCrudHandler(s.ProductLines, "/api/product-lines", "gama de productos").register(api, "/product-lines")
	NewCrudHandler(s.Products, "/api/products", "producto").register(api, "/products")
	NewCrudHandler(s.OrderDetails, "/api/order-details", "línea de pedido").register(api, "/order-details")
	NewCrudHandler(s.Payments, "/api/payments", "pago").register(api, "/payments")

	// Orders: CRUD + hoja de pedido en PDF
	NewCrudHandler(s.Orders, "/api/orders", "pedido").register(api, "/orders")
	if deps.OrderSheet != nil {
		api.Get("/orders/:id/pdf", NewOrderSheetHandler(deps.OrderSheet).Download)
	}
}
