package transfer

import (
	"io"

	"github.com/gudangapp/gudang-api/internal/application/ledger"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

// Codec parses uploaded inventory files and renders the export workbook.
// Implemented by the excelize adapter in infrastructure/excel.
type Codec interface {
	// ReadInventory parses a spreadsheet or delimited file into inbound
	// lines. Header names match case-insensitively; a missing required
	// column fails with domain.ErrImportFormat before any row is returned.
	ReadInventory(r io.Reader, filename string) ([]ledger.InboundLine, error)
	// WriteSnapshot renders the two-sheet export: current items plus the
	// full transaction history.
	WriteSnapshot(w io.Writer, items []*entity.Item, trxs []*entity.Transaction) error
}
