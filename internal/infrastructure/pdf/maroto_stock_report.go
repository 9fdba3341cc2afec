// Package pdf genera la planilla de conteo físico del inventario: una tabla
// A4 con SKU, nombre, ubicación, cantidad actual, mínimo y valor por fila,
// pensada para imprimirse y marcarse en bodega.
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ inventory.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa inventory.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, items []repository.InventoryItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Planilla de Conteo de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	total := decimal.Zero
	for _, it := range items {
		value := it.Price.Mul(decimal.NewFromInt(it.Quantity))
		total = total.Add(value)
		m.AddRows(itemRow(it, value))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(items), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de inventario: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Planilla de Conteo de Inventario", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Size: 8, Style: fontstyle.Bold, Color: colorWhite,
		}))
	}
	r := row.New(7).Add(
		header(2, "SKU"),
		header(4, "Producto"),
		header(2, "Ubicación"),
		header(1, "Cant."),
		header(1, "Mín."),
		header(2, "Valor"),
	)
	r.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	return r
}

func itemRow(it repository.InventoryItem, value decimal.Decimal) core.Row {
	cell := func(size int, content string, a align.Type) core.Col {
		return col.New(size).Add(text.New(content, props.Text{Size: 8, Align: a}))
	}
	return row.New(6).Add(
		cell(2, it.SKU, align.Left),
		cell(4, it.ProductName, align.Left),
		cell(2, it.Location, align.Left),
		cell(1, fmt.Sprintf("%d", it.Quantity), align.Right),
		cell(1, fmt.Sprintf("%d", it.MinStockLevel), align.Right),
		cell(2, value.StringFixed(2), align.Right),
	)
}

func totalRow(count int, total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("%d productos", count), props.Text{Size: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Valor total: "+total.StringFixed(2), props.Text{
				Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
