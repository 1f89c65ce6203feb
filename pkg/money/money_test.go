package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Estacionamento-api/pkg/money"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 12,50", money.FormatBRL(decimal.RequireFromString("12.5")))
	assert.Equal(t, "R$ 0,00", money.FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 1.234.567,50", money.FormatBRL(decimal.RequireFromString("1234567.499")))
}
