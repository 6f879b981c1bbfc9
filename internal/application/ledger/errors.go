package ledger

import (
	"fmt"
	"strings"
)

// LineError is one rejected batch line with a human-readable reason.
type LineError struct {
	Line   int    `json:"line"` // 1-based position in the submitted batch
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// BatchError rejects a whole batch: it lists every offending line and
// unwraps to the sentinel that classifies the failure (domain.ErrInvalidInput,
// domain.ErrInsufficientStock or domain.ErrImportFormat).
type BatchError struct {
	Lines    []LineError
	sentinel error
}

func newBatchError(sentinel error, lines []LineError) *BatchError {
	return &BatchError{Lines: lines, sentinel: sentinel}
}

func (e *BatchError) Error() string {
	reasons := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		reasons = append(reasons, fmt.Sprintf("line %d (%s): %s", l.Line, l.Name, l.Reason))
	}
	return fmt.Sprintf("%v: %s", e.sentinel, strings.Join(reasons, "; "))
}

func (e *BatchError) Unwrap() error { return e.sentinel }
