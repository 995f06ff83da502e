package booking

import "fmt"

// Sequence scopes for document numbering
const (
	SequenceScopeQuote   = "quote"
	SequenceScopeBooking = "booking"
	SequenceScopePayment = "payment"
)

// Document number prefixes
const (
	NumberPrefixQuote   = "Q"
	NumberPrefixBooking = "B"
	NumberPrefixPayment = "P"
)

// FormatDocumentNumber renders a document number as {prefix}-{year}-{NNNNN}
// with the sequence value zero-padded to five digits, e.g. Q-2026-00042.
func FormatDocumentNumber(prefix string, year int, value int64) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, value)
}
