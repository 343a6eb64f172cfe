package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/garden-api/internal/application/dto"
	"github.com/jhoicas/garden-api/internal/domain"
	"github.com/jhoicas/garden-api/internal/domain/repository"
)

// OrderSheetRenderer genera el documento de una hoja de pedido (implementado en infrastructure/pdf).
type OrderSheetRenderer interface {
	RenderOrderSheet(ctx context.Context, sheet dto.OrderSheet) ([]byte, error)
}

// OrderSheetUseCase arma la hoja de pedido (pedido + cliente + líneas) y la renderiza.
type OrderSheetUseCase struct {
	uows     repository.UnitOfWorkFactory
	renderer OrderSheetRenderer
}

// NewOrderSheetUseCase construye el caso de uso.
func NewOrderSheetUseCase(uows repository.UnitOfWorkFactory, renderer OrderSheetRenderer) *OrderSheetUseCase {
	return &OrderSheetUseCase{uows: uows, renderer: renderer}
}

// Build carga los datos de la hoja. Devuelve domain.ErrNotFound si el pedido no existe.
func (uc *OrderSheetUseCase) Build(ctx context.Context, orderID int64) (*dto.OrderSheet, error) {
	uow := uc.uows.New()

	order, err := uow.Orders().GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("hoja de pedido: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	client, err := uow.Clients().GetByID(ctx, order.ClientID)
	if err != nil {
		return nil, fmt.Errorf("hoja de pedido: obtener cliente: %w", err)
	}

	details, err := uow.OrderDetails().Find(ctx, "order_id = ?", orderID)
	if err != nil {
		return nil, fmt.Errorf("hoja de pedido: obtener líneas: %w", err)
	}

	sheet := &dto.OrderSheet{
		OrderID:      order.ID,
		OrderDate:    order.OrderDate,
		ExpectedDate: order.ExpectedDate,
		DeliveryDate: order.DeliveryDate,
		Status:       order.Status,
		Comments:     order.Comments,
		Lines:        make([]dto.OrderSheetLine, 0, len(details)),
		Total:        decimal.Zero,
	}
	if client != nil {
		sheet.ClientName = client.Name
		sheet.ClientPhone = client.Phone
		sheet.ClientCity = client.City
	}

	for _, d := range details {
		line := dto.OrderSheetLine{
			LineNumber:  d.LineNumber,
			ProductName: fmt.Sprintf("Producto %d", d.ProductID), // fallback
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Subtotal:    d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))),
		}
		if p, pErr := uow.Products().GetByID(ctx, d.ProductID); pErr == nil && p != nil {
			line.ProductCode = p.Code
			line.ProductName = p.Name
		}
		sheet.Lines = append(sheet.Lines, line)
		sheet.Total = sheet.Total.Add(line.Subtotal)
	}
	slices.SortStableFunc(sheet.Lines, func(a, b dto.OrderSheetLine) int {
		return cmp.Compare(a.LineNumber, b.LineNumber)
	})
	return sheet, nil
}

// Render genera el PDF de la hoja de pedido y su nombre de archivo.
func (uc *OrderSheetUseCase) Render(ctx context.Context, orderID int64) (pdfBytes []byte, filename string, err error) {
	sheet, err := uc.Build(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.renderer.RenderOrderSheet(ctx, *sheet)
	if err != nil {
		return nil, "", fmt.Errorf("hoja de pedido: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido_%d.pdf", orderID), nil
}
