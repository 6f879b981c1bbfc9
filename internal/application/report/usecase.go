// Package report derives read-only views from the transaction log: periodic
// totals, filtered movement slices and the stock report. Nothing in here
// mutates the ledger.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

// Granularity selects the period bucket for totals.
type Granularity string

const (
	GranularityWeek  Granularity = "week"  // bucket (ISO year, ISO week)
	GranularityMonth Granularity = "month" // bucket (year, month)
)

// Movement is one ledger row enriched with the derived date fields the
// reports group on.
type Movement struct {
	entity.Transaction
	Date    time.Time // CreatedAt truncated to its day
	ISOYear int
	ISOWeek int
	Month   time.Month
	Year    int
}

// PeriodTotal is one grouped row of TotalsByPeriod.
type PeriodTotal struct {
	Period  string          `json:"period"` // "2024-W05" or "2024-01"
	Name    string          `json:"name"`
	Unit    string          `json:"unit"`
	TrxType string          `json:"trx_type"`
	Total   decimal.Decimal `json:"total"`
}

// ItemTotal is an all-time per-item sum, split by movement type.
type ItemTotal struct {
	Name    string          `json:"name"`
	Unit    string          `json:"unit"`
	TrxType string          `json:"trx_type"`
	Total   decimal.Decimal `json:"total"`
}

// ReportUseCase loads movements and serves the derived views.
type ReportUseCase struct {
	trxs  repository.TransactionRepository
	items repository.ItemRepository
	pdf   StockPDFGenerator
}

// NewReportUseCase builds the use case. pdf may be nil when PDF output is not
// wired (tests).
func NewReportUseCase(trxs repository.TransactionRepository, items repository.ItemRepository, pdf StockPDFGenerator) *ReportUseCase {
	return &ReportUseCase{trxs: trxs, items: items, pdf: pdf}
}

// LoadMovements returns the full transaction history ascending by creation
// time, with the derived date/week/month fields filled in.
func (uc *ReportUseCase) LoadMovements(ctx context.Context) ([]Movement, error) {
	rows, err := uc.trxs.ListAsc(ctx)
	if err != nil {
		return nil, err
	}
	return enrich(rows), nil
}

// RecentMovements returns at most limit rows, newest first.
func (uc *ReportUseCase) RecentMovements(ctx context.Context, limit int) ([]Movement, error) {
	rows, err := uc.trxs.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return enrich(rows), nil
}

func enrich(rows []*entity.Transaction) []Movement {
	movs := make([]Movement, 0, len(rows))
	for _, row := range rows {
		isoYear, isoWeek := row.CreatedAt.ISOWeek()
		movs = append(movs, Movement{
			Transaction: *row,
			Date:        dayOf(row.CreatedAt),
			ISOYear:     isoYear,
			ISOWeek:     isoWeek,
			Month:       row.CreatedAt.Month(),
			Year:        row.CreatedAt.Year(),
		})
	}
	return movs
}

// TotalsByPeriod groups movements by (period bucket, name, unit, movement
// type) and sums the quantity. from/to bound the derived date inclusively
// when given. Empty input yields an empty result.
func TotalsByPeriod(movs []Movement, g Granularity, from, to *time.Time) []PeriodTotal {
	type key struct {
		period  string
		name    string
		unit    string
		trxType string
	}
	sums := map[key]decimal.Decimal{}
	for _, m := range movs {
		if !inRange(m.Date, from, to) {
			continue
		}
		k := key{period: bucket(m, g), name: m.Name, unit: m.Unit, trxType: m.TrxType}
		sums[k] = sums[k].Add(m.Quantity)
	}

	out := make([]PeriodTotal, 0, len(sums))
	for k, total := range sums {
		out = append(out, PeriodTotal{Period: k.period, Name: k.name, Unit: k.unit, TrxType: k.trxType, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Period != b.Period {
			return a.Period < b.Period
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return a.TrxType < b.TrxType
	})
	return out
}

func bucket(m Movement, g Granularity) string {
	if g == GranularityWeek {
		return fmt.Sprintf("%04d-W%02d", m.ISOYear, m.ISOWeek)
	}
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FilterByTypeAndRange slices movements of one type whose derived date falls
// inside [from, to], both inclusive.
func FilterByTypeAndRange(movs []Movement, trxType string, from, to time.Time) []Movement {
	out := make([]Movement, 0)
	for _, m := range movs {
		if m.TrxType != trxType {
			continue
		}
		if !inRange(m.Date, &from, &to) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// TotalsByItem sums all-time quantities per (name, unit, movement type), for
// the dashboard charts.
func TotalsByItem(movs []Movement) []ItemTotal {
	type key struct {
		name    string
		unit    string
		trxType string
	}
	sums := map[key]decimal.Decimal{}
	for _, m := range movs {
		k := key{name: m.Name, unit: m.Unit, trxType: m.TrxType}
		sums[k] = sums[k].Add(m.Quantity)
	}
	out := make([]ItemTotal, 0, len(sums))
	for k, total := range sums {
		out = append(out, ItemTotal{Name: k.name, Unit: k.unit, TrxType: k.trxType, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return a.TrxType < b.TrxType
	})
	return out
}

func inRange(d time.Time, from, to *time.Time) bool {
	if from != nil && d.Before(dayOf(*from)) {
		return false
	}
	if to != nil && d.After(dayOf(*to)) {
		return false
	}
	return true
}

// dayOf floors t to midnight in its own location; the derived date always
// stays on the timestamp's local calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StockReportPDF renders the current inventory snapshot plus the low-stock
// section as a PDF.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	low, err := uc.items.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReport(ctx, items, low, time.Now())
}
