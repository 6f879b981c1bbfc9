package report

import (
	"context"
	"time"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

// StockPDFGenerator renders the stock report. Implemented by the maroto
// adapter in infrastructure/pdf.
type StockPDFGenerator interface {
	GenerateStockReport(ctx context.Context, items, lowStock []*entity.Item, generatedAt time.Time) ([]byte, error)
}
