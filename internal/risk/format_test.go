package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "1.23%", FormatPercent(fp(0.0123), 2))
	assert.Equal(t, "-4.00%", FormatPercent(fp(-0.04), 2))
	assert.Equal(t, "-", FormatPercent(nil, 2))
	assert.Equal(t, "2.50%", FormatPercentPoints(fp(2.5), 2))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.234.567,89", FormatCurrency(fp(1234567.89)))
	assert.Equal(t, "R$ 0,50", FormatCurrency(fp(0.5)))
	assert.Equal(t, "-R$ 999,99", FormatCurrency(fp(-999.99)))
	assert.Equal(t, "R$ 1.000,00", FormatCurrency(fp(999.999)))
	assert.Equal(t, "-", FormatCurrency(nil))
}

func TestAbbreviateNumber(t *testing.T) {
	assert.Equal(t, "1.2M", AbbreviateNumber(fp(1234567)))
	assert.Equal(t, "3.5B", AbbreviateNumber(fp(3.5e9)))
	assert.Equal(t, "1.5K", AbbreviateNumber(fp(1500)))
	assert.Equal(t, "999", AbbreviateNumber(fp(999)))
	assert.Equal(t, "-2.0K", AbbreviateNumber(fp(-2000)))
	assert.Equal(t, "-", AbbreviateNumber(nil))
}
