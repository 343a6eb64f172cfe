// Package pdf genera la hoja de pedido en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Pedido + Estado         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Tel / Ciudad                              │
//	│  FECHAS: Pedido / Prevista / Entrega                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Código | Producto | Cant | P.Unit | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + Comentarios                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/garden-api/internal/application/dto"
	"github.com/jhoicas/garden-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.OrderSheetRenderer = (*OrderSheetGenerator)(nil)

// OrderSheetGenerator implementa usecase.OrderSheetRenderer usando Maroto v2.
type OrderSheetGenerator struct {
	storeName string
}

// NewOrderSheetGenerator construye el generador; storeName aparece en la cabecera.
func NewOrderSheetGenerator(storeName string) *OrderSheetGenerator {
	return &OrderSheetGenerator{storeName: storeName}
}

// RenderOrderSheet genera el PDF y devuelve sus bytes.
func (g *OrderSheetGenerator) RenderOrderSheet(_ context.Context, sheet dto.OrderSheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Pedido %d", sheet.OrderID), true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(sheet))
	m.AddRows(datesRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(sheet.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sheet.Total))
	if sheet.Comments != "" {
		m.AddRows(commentsRow(sheet.Comments))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(storeName string, sheet dto.OrderSheet) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Hoja de pedido", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO N° "+strconv.FormatInt(sheet.OrderID, 10), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+sheet.Status, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func clientRow(sheet dto.OrderSheet) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sheet.ClientName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Ciudad: %s",
				nonEmpty(sheet.ClientPhone, "-"),
				nonEmpty(sheet.ClientCity, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func datesRow(sheet dto.OrderSheet) core.Row {
	delivery := "pendiente"
	if sheet.DeliveryDate != nil {
		delivery = formatDate(*sheet.DeliveryDate)
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Fecha pedido: %s   |   Fecha prevista: %s   |   Entrega: %s",
				formatDate(sheet.OrderDate), formatDate(sheet.ExpectedDate), delivery,
			), props.Text{Size: 8, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableDetailRows una fila por línea del pedido.
func tableDetailRows(lines []dto.OrderSheetLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(l.LineNumber), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.ProductCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(l.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func commentsRow(comments string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Comentarios: "+comments, props.Text{Size: 8, Top: 3, Color: colorGray}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// formatMoney formatea con dos decimales, puntos de miles y coma decimal.
// Ej: 1234567.5 → "1.234.567,50 €"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac + " €"
}
