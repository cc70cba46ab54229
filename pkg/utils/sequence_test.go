package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSequenceNumber(t *testing.T) {
	assert.Equal(t, "TXN-000042", FormatSequenceNumber("TXN", 42))
	assert.Equal(t, "INV-000001", FormatSequenceNumber("INV", 1))
	assert.Equal(t, "DST-123456", FormatSequenceNumber("DST", 123456))
}

func TestFormatSequenceNumberPastSixDigits(t *testing.T) {
	// The pad is a minimum width, not a truncation.
	assert.Equal(t, "TXN-1234567", FormatSequenceNumber("TXN", 1234567))
}
