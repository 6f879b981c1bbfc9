package ledger

import (
	"strings"

	"golang.org/x/text/cases"
)

// ItemKey is the identity of an inventory line: normalized name plus unit.
type ItemKey struct {
	Name string
	Unit string
}

// Normalize trims surrounding whitespace and Unicode-case-folds the value, so
// "Gloves " and "gloves" resolve to the same inventory line instead of
// silently creating a duplicate.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// KeyOf builds the normalized key for a name/unit pair.
func KeyOf(name, unit string) ItemKey {
	return ItemKey{Name: Normalize(name), Unit: Normalize(unit)}
}
