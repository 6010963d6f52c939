package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nexus-pos/pkg/money"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "R 1,234.50", money.Format(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "R 9.99", money.Format(decimal.NewFromFloat(9.99)))
	assert.Equal(t, "R 0.00", money.Format(decimal.Zero))
	assert.Equal(t, "R 1,000,000.00", money.Format(decimal.NewFromInt(1000000)))
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "287.50", money.FormatPlain(decimal.NewFromFloat(287.5)))
	assert.Equal(t, "12,345.68", money.FormatPlain(decimal.NewFromFloat(12345.678)))
}
