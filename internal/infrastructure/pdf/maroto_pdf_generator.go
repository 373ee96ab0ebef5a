// Package pdf implementa los documentos imprimibles del sistema con Maroto v2:
// la guía de traslado de un movimiento entre almacenes y el comprobante de una
// orden de venta.
//
// Layout de la guía de traslado (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Folio del movimiento │ Estatus + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIGEN: almacén origen / DESTINO: almacén destino          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | SKU | Producto | Notas                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: notas del movimiento + firmas                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/almacen-pro/internal/application/documents"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var moneyPrinter = message.NewPrinter(language.Spanish)

var _ documents.Generator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa documents.Generator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateMovementPDF genera la guía de traslado del movimiento y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateMovementPDF(
	_ context.Context,
	movement *entity.Movement,
	origin, destination *entity.Warehouse,
	products map[string]*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Guía de Traslado "+movement.Serial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(movementHeaderRow(movement))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(warehousesRow(origin, destination))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(movement.Items, products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range movementFooterRows(movement) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar guía de traslado: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateOrderPDF genera el comprobante de la orden y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	branch *entity.Branch,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Orden", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(orderHeaderRow(order, branch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(orderTotalsRows(order)...)
	if order.Notas != "" {
		m.AddRows(line.NewRow(2))
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+order.Notas, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante de orden: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones: guía de traslado ───────────────────────────────────────────────

// movementHeaderRow: folio (izq) y estatus + fecha (der).
func movementHeaderRow(movement *entity.Movement) core.Row {
	fecha := movement.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("GUÍA DE TRASLADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(movement.Serial, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Estatus: "+movement.Status, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// warehousesRow: almacén origen (izq) y destino (der).
func warehousesRow(origin, destination *entity.Warehouse) core.Row {
	block := func(label string, w *entity.Warehouse, a align.Type) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: a, Top: 1,
			}),
			text.New(w.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: a, Top: 6,
			}),
			text.New(nonEmpty(w.Address, "—"), props.Text{
				Size: 8, Align: a, Top: 12, Color: colorGray,
			}),
		)
	}
	return row.New(18).Add(
		block("ORIGEN", origin, align.Left),
		block("DESTINO", destination, align.Right),
	)
}

// itemsHeaderRow: cabecera de la tabla de líneas.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("SKU", 2, align.Left),
		h("Producto", 5, align.Left),
		h("Notas", 4, align.Left),
	)
}

// itemRows: una fila por línea del movimiento. Si el producto ya no existe en
// el catálogo se imprime el id como referencia.
func itemRows(items []entity.MovementItem, products map[string]*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		sku, name := it.ProductID, it.ProductID
		if p, ok := products[it.ProductID]; ok && p != nil {
			sku, name = p.SKU, p.Name
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.FormatInt(it.Cantidad, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(sku, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(
				nonEmpty(it.Notas, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// movementFooterRows: notas generales + espacios de firma.
func movementFooterRows(movement *entity.Movement) []core.Row {
	rows := []core.Row{}
	if movement.Notas != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+movement.Notas, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows,
		row.New(20),
		row.New(10).Add(
			col.New(5).Add(
				text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 1}),
				text.New("Entrega", props.Text{Size: 8, Align: align.Center, Top: 6, Color: colorGray}),
			),
			col.New(2),
			col.New(5).Add(
				text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 1}),
				text.New("Recibe", props.Text{Size: 8, Align: align.Center, Top: 6, Color: colorGray}),
			),
		),
	)
	return rows
}

// ── Secciones: comprobante de orden ───────────────────────────────────────────

// orderHeaderRow: identificador (izq) y sucursal + fecha (der).
func orderHeaderRow(order *entity.Order, branch *entity.Branch) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")
	sucursal := "—"
	if branch != nil {
		sucursal = branch.Name
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE ORDEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Sucursal: "+sucursal, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// orderTotalsRows: desglose de la aritmética de la orden.
func orderTotalsRows(order *entity.Order) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	rowLine := func(l, v string) core.Row {
		return row.New(7).Add(
			col.New(6),
			col.New(3).Add(label(l)),
			col.New(3).Add(value(v)),
		)
	}

	descuento := "$" + formatMoney(order.Descuento)
	if order.TipoDescuento == entity.DiscountPorcentual {
		descuento = order.Descuento.StringFixed(2) + "%"
	}

	return []core.Row{
		rowLine("Subtotal:", "$"+formatMoney(order.Subtotal)),
		rowLine("Descuento:", descuento),
		rowLine("Impuesto:", order.ImpuestoPct.StringFixed(2)+"%"),
		rowLine("Crédito aplicado:", "$"+formatMoney(order.Credito)),
		row.New(10).Add(
			col.New(6),
			col.New(3).Add(grandLabel("TOTAL:")),
			col.New(3).Add(grandValue("$"+formatMoney(order.Total))),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea un decimal con separadores de miles en locale español.
// Ej: 25000 → "25.000,00"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("%.2f", f)
}
