package labor

import "fmt"

// FormatDocumentNumber renders PREFIX-YYYY-NNN, zero padded to three digits.
// Sequences past 999 keep growing in width.
func FormatDocumentNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%03d", prefix, year, seq)
}

// SequenceName is the counter key for a per-year document sequence.
func SequenceName(prefix string, year int) string {
	return fmt.Sprintf("%s#%04d", prefix, year)
}
