// Package ledger holds the pure domain rules of the stock ledger: transaction
// code generation and the (name, unit) key that identifies an inventory line.
package ledger

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// NewTrxCode builds a human-readable transaction code such as
// TRX-IN-20240131-154502-739. The random suffix makes collisions unlikely but
// not impossible; the code is an audit label, never a primary key.
func NewTrxCode(trxType string, now time.Time) string {
	return fmt.Sprintf("TRX-%s-%s-%03d",
		strings.ToUpper(trxType),
		now.Format("20060102-150405"),
		100+rand.IntN(900))
}
