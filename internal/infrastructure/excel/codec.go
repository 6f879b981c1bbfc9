package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/gudangapp/gudang-api/internal/application/ledger"
	"github.com/gudangapp/gudang-api/internal/application/transfer"
	"github.com/gudangapp/gudang-api/internal/domain"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

const (
	inventorySheet    = "inventory"
	transactionsSheet = "transactions"
)

// Codec reads and writes inventory workbooks with excelize. CSV uploads
// are accepted too and parsed with the same header rules.
type Codec struct{}

var _ transfer.Codec = (*Codec)(nil)

func NewCodec() *Codec {
	return &Codec{}
}

// ReadInventory parses r into inbound lines. Column headers are matched
// case-insensitively; name, quantity and unit are required, the rest are
// optional. A missing required column aborts before any row is parsed.
func (c *Codec) ReadInventory(r io.Reader, filename string) ([]ledger.InboundLine, error) {
	var rows [][]string
	var err error
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		rows, err = readCSV(r)
	} else {
		rows, err = readWorkbook(r)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", domain.ErrImportFormat)
	}

	cols, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	var lines []ledger.InboundLine
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line, err := parseRow(cols, row, i+2)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	return rows, nil
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	defer f.Close()

	sheet := pickSheet(f)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	return rows, nil
}

// pickSheet prefers a sheet named "inventory" so our own exports can be
// re-imported; otherwise the first sheet is used.
func pickSheet(f *excelize.File) string {
	list := f.GetSheetList()
	for _, name := range list {
		if strings.EqualFold(name, inventorySheet) {
			return name
		}
	}
	return list[0]
}

type columns struct {
	name     int
	quantity int
	unit     int
	category int
	minStock int
	rack     int
	expiry   int
}

func mapHeader(header []string) (columns, error) {
	cols := columns{name: -1, quantity: -1, unit: -1, category: -1, minStock: -1, rack: -1, expiry: -1}
	for i, h := range header {
		switch normalizeHeader(h) {
		case "name", "item_name":
			cols.name = i
		case "quantity", "qty":
			cols.quantity = i
		case "unit":
			cols.unit = i
		case "category":
			cols.category = i
		case "min_stock", "minimum_stock":
			cols.minStock = i
		case "rack_location", "rack", "location":
			cols.rack = i
		case "expiry_date", "expiry", "expired_date":
			cols.expiry = i
		}
	}
	for _, req := range []struct {
		idx  int
		name string
	}{{cols.name, "name"}, {cols.quantity, "quantity"}, {cols.unit, "unit"}} {
		if req.idx < 0 {
			return cols, fmt.Errorf("%w: missing required column %q", domain.ErrImportFormat, req.name)
		}
	}
	return cols, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

func parseRow(cols columns, row []string, rowNum int) (ledger.InboundLine, error) {
	line := ledger.InboundLine{
		Name:         cell(row, cols.name),
		Unit:         cell(row, cols.unit),
		Category:     cell(row, cols.category),
		RackLocation: cell(row, cols.rack),
		ExpiryDate:   parseDate(cell(row, cols.expiry)),
	}

	qty, err := parseDecimal(cell(row, cols.quantity))
	if err != nil {
		return line, fmt.Errorf("%w: row %d: bad quantity %q", domain.ErrImportFormat, rowNum, cell(row, cols.quantity))
	}
	line.Quantity = qty

	minStock, err := parseDecimal(cell(row, cols.minStock))
	if err != nil {
		return line, fmt.Errorf("%w: row %d: bad min_stock %q", domain.ErrImportFormat, rowNum, cell(row, cols.minStock))
	}
	line.MinStock = minStock

	return line, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDecimal treats an empty cell as zero.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02-01-2006",
	time.RFC3339,
	"01-02-06", // excelize default short date rendering
}

// parseDate returns nil for empty or unparseable values. A bad date is
// not worth failing an import over.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// WriteSnapshot renders the two-sheet export workbook: the inventory
// sheet first (so the file round-trips through ReadInventory), then the
// full transaction history.
func (c *Codec) WriteSnapshot(w io.Writer, items []*entity.Item, trxs []*entity.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		return err
	}
	header := []interface{}{"name", "category", "quantity", "unit", "min_stock", "rack_location", "expiry_date", "created_at", "updated_at"}
	if err := f.SetSheetRow(inventorySheet, "A1", &header); err != nil {
		return err
	}
	for i, it := range items {
		row := []interface{}{
			it.Name,
			it.Category,
			it.Quantity.String(),
			it.Unit,
			it.MinStock.String(),
			it.RackLocation,
			formatDate(it.ExpiryDate),
			it.CreatedAt.Format(time.RFC3339),
			it.UpdatedAt.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(inventorySheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return err
	}
	trxHeader := []interface{}{"trx_code", "bundle_code", "trx_type", "name", "quantity", "unit", "requester", "supplier", "note", "expiry_date", "created_at"}
	if err := f.SetSheetRow(transactionsSheet, "A1", &trxHeader); err != nil {
		return err
	}
	for i, t := range trxs {
		row := []interface{}{
			t.TrxCode,
			t.BundleCode,
			t.TrxType,
			t.Name,
			t.Quantity.String(),
			t.Unit,
			t.Requester,
			t.Supplier,
			t.Note,
			formatDate(t.ExpiryDate),
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(transactionsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
