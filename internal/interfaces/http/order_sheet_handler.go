package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/garden-api/internal/application/usecase"
)

// OrderSheetHandler descarga la hoja de pedido en PDF (protegido).
type OrderSheetHandler struct {
	uc *usecase.OrderSheetUseCase
}

// NewOrderSheetHandler construye el handler.
func NewOrderSheetHandler(uc *usecase.OrderSheetUseCase) *OrderSheetHandler {
	return &OrderSheetHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar hoja de pedido
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderSheetHandler) Download(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	pdfBytes, filename, err := h.uc.Render(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "pedido")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
