package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDisabledMailerReportsNotDelivered(t *testing.T) {
	m := NewSMTPMailer("", "", "noreply@refill.local", zap.NewNop())

	err := m.Send("customer@example.com", "Invoice INV-000001", "body")
	assert.ErrorIs(t, err, ErrMailerDisabled)
}
