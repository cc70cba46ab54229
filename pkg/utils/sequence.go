package utils

import "fmt"

// FormatSequenceNumber renders a document number from a database sequence
// value, e.g. ("TXN", 42) -> "TXN-000042". Values past six digits keep all
// their digits.
func FormatSequenceNumber(prefix string, value uint64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}
