// Package pdf renders the printable stock report with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Title                │  Generated at                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUMMARY: total items / low-stock count                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Name | Category | Qty | Unit | Min | Rack | Expiry  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LOW STOCK: items at or below their minimum level           │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/gudangapp/gudang-api/internal/application/report"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStockReport implements report.StockPDFGenerator using Maroto v2.
type MarotoStockReport struct{}

var _ report.StockPDFGenerator = (*MarotoStockReport)(nil)

func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport renders the report and returns its bytes.
func (g *MarotoStockReport) GenerateStockReport(
	_ context.Context,
	items []*entity.Item,
	lowStock []*entity.Item,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Warehouse Stock Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(len(items), len(lowStock)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it, false))
	}

	if len(lowStock) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(lowStockTitleRow())
		for _, it := range lowStock {
			m.AddRows(itemRow(it, true))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("WAREHOUSE STOCK REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func summaryRow(total, low int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Items in catalog: %d   |   At or below minimum stock: %d", total, low), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
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
		h("Item", 3, align.Left),
		h("Category", 2, align.Left),
		h("Qty", 1, align.Right),
		h("Unit", 1, align.Left),
		h("Min", 1, align.Right),
		h("Rack", 2, align.Left),
		h("Expiry", 2, align.Left),
	)
}

func lowStockTitleRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("LOW STOCK / REORDER NEEDED", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorAlert, Top: 1,
		}),
	))
}

func itemRow(it *entity.Item, alert bool) core.Row {
	color := (*props.Color)(nil)
	if alert {
		color = colorAlert
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
		}))
	}
	expiry := ""
	if it.ExpiryDate != nil {
		expiry = it.ExpiryDate.Format("2006-01-02")
	}
	return row.New(6).Add(
		cell(it.Name, 3, align.Left),
		cell(it.Category, 2, align.Left),
		cell(it.Quantity.String(), 1, align.Right),
		cell(it.Unit, 1, align.Left),
		cell(it.MinStock.String(), 1, align.Right),
		cell(it.RackLocation, 2, align.Left),
		cell(expiry, 2, align.Left),
	)
}
