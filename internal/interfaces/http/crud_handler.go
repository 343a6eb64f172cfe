package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/garden-api/internal/application/dto"
	"github.com/jhoicas/garden-api/internal/application/usecase"
)

// CrudHandler maneja las peticiones HTTP CRUD de una entidad (protegido).
// Los mismos cinco endpoints se registran para cada recurso bajo /api/{entity}.
type CrudHandler[E any, D dto.Identified] struct {
	uc       *usecase.CrudUseCase[E, D]
	basePath string // ruta pública del recurso, para el header Location
	resource string // nombre en los mensajes de error
}

// NewCrudHandler construye el handler.
func NewCrudHandler[E any, D dto.Identified](uc *usecase.CrudUseCase[E, D], basePath, resource string) *CrudHandler[E, D] {
	return &CrudHandler[E, D]{uc: uc, basePath: basePath, resource: resource}
}

// List godoc
// @Summary      Listar entidades
// @Description  Devuelve todos los registros del recurso ordenados por id.
// @Tags         crud
// @Security     Bearer
// @Produce      json
// @Param        entity  path  string  true  "Recurso"  Enums(roles, users, clients, employees, offices, orders, order-details, product-lines, products, payments)
// @Success      200  {array}   object
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/{entity} [get]
func (h *CrudHandler[E, D]) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, h.resource)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener por ID
// @Tags         crud
// @Security     Bearer
// @Produce      json
// @Param        entity  path  string  true  "Recurso"
// @Param        id      path  int     true  "ID"
// @Success      200  {object}  object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{entity}/{id} [get]
func (h *CrudHandler[E, D]) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, h.resource)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.resource + " no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear
// @Description  El id del cuerpo se ignora; la respuesta incluye el id generado y el header Location.
// @Tags         crud
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        entity  path  string  true  "Recurso"
// @Param        body    body  object  true  "DTO del recurso"
// @Success      201  {object}  object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/{entity} [post]
func (h *CrudHandler[E, D]) Create(c *fiber.Ctx) error {
	in, err := h.parseBody(c)
	if err != nil {
		return err
	}
	if in == nil {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), *in)
	if err != nil {
		return respondError(c, err, h.resource)
	}
	c.Location(h.basePath + "/" + strconv.FormatInt((*out).Identifier(), 10))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar
// @Description  Reemplazo completo. Si el cuerpo trae id debe coincidir con el de la ruta.
// @Tags         crud
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        entity  path  string  true  "Recurso"
// @Param        id      path  int     true  "ID"
// @Param        body    body  object  true  "DTO del recurso"
// @Success      200  {object}  object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/{entity}/{id} [put]
func (h *CrudHandler[E, D]) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	in, err := h.parseBody(c)
	if err != nil {
		return err
	}
	if in == nil {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), id, *in)
	if err != nil {
		return respondError(c, err, h.resource)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.resource + " no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar
// @Tags         crud
// @Security     Bearer
// @Param        entity  path  string  true  "Recurso"
// @Param        id      path  int     true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/{entity}/{id} [delete]
func (h *CrudHandler[E, D]) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, h.resource)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseBody decodifica y valida el cuerpo. Si devuelve (nil, nil) la respuesta 400 ya fue escrita.
func (h *CrudHandler[E, D]) parseBody(c *fiber.Ctx) (*D, error) {
	var in D
	if err := c.BodyParser(&in); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return &in, nil
}

// register monta los cinco endpoints del recurso en r.
func (h *CrudHandler[E, D]) register(r fiber.Router, path string) {
	g := r.Group(path)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
