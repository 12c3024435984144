package formatting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		opts     []CurrencyOption
		expected string
	}{
		{name: "nil", value: nil, expected: "$0.00"},
		{name: "nil without symbol", value: nil, opts: []CurrencyOption{WithoutSymbol()}, expected: "0.00"},
		{name: "NaN", value: ptr(math.NaN()), expected: "$0.00"},
		{name: "NaN ignores currency", value: ptr(math.NaN()), opts: []CurrencyOption{WithCurrency("eur")}, expected: "$0.00"},
		{name: "grouping", value: ptr(1234.5), opts: []CurrencyOption{WithDigits(2), WithCurrency("USD")}, expected: "$1,234.50"},
		{name: "millions", value: ptr(1234567.891), expected: "$1,234,567.89"},
		{name: "small", value: ptr(0.5), expected: "$0.50"},
		{name: "zero digits", value: ptr(1999.5), opts: []CurrencyOption{WithDigits(0)}, expected: "$2,000"},
		{name: "more digits", value: ptr(0.000123), opts: []CurrencyOption{WithDigits(6)}, expected: "$0.000123"},
		{name: "no scientific notation", value: ptr(1e21), expected: "$1,000,000,000,000,000,000,000.00"},
		{name: "negative", value: ptr(-1234.5), expected: "-$1,234.50"},
		{name: "negative rounds to zero", value: ptr(-0.001), expected: "-$0.00"},
		{name: "without symbol", value: ptr(98765.4321), opts: []CurrencyOption{WithoutSymbol()}, expected: "98,765.43"},
		{name: "lowercase code", value: ptr(10), opts: []CurrencyOption{WithCurrency("eur")}, expected: "€10.00"},
		{name: "pound", value: ptr(10), opts: []CurrencyOption{WithCurrency("GBP")}, expected: "£10.00"},
		{name: "unknown code falls back to dollar", value: ptr(10), opts: []CurrencyOption{WithCurrency("NOPE")}, expected: "$10.00"},
		{name: "rounds half away from zero", value: ptr(2.345), expected: "$2.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value, tt.opts...))
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$42.00", Currency(42))
	assert.Contains(t, Currency(1234.5, WithCurrency("usd")), "1,234.50")
}

func TestGroupThousands(t *testing.T) {
	tests := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1,000",
		"12345.67":   "12,345.67",
		"123456":     "123,456",
		"1234567.00": "1,234,567.00",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, groupThousands(in), in)
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		expected string
	}{
		{"nil", nil, "0.0%"},
		{"NaN", ptr(math.NaN()), "0.0%"},
		{"rounds down", ptr(2.34), "2.3%"},
		{"rounds up", ptr(2.36), "2.4%"},
		{"exact tie rounds away from zero", ptr(0.25), "0.3%"},
		{"exact tie 0.75", ptr(0.75), "0.8%"},
		{"negative exact tie", ptr(-1.25), "-1.3%"},
		{"1.15 is stored below the tie", ptr(1.15), "1.1%"},
		{"2.65 is stored below the tie", ptr(2.65), "2.6%"},
		{"0.35 is stored below the tie", ptr(0.35), "0.3%"},
		{"negative below the tie", ptr(-1.15), "-1.1%"},
		{"infinity", ptr(math.Inf(1)), "∞%"},
		{"negative", ptr(-5.67), "-5.7%"},
		{"zero", ptr(0), "0.0%"},
		{"large", ptr(1234.5), "1234.5%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercentage(tt.value))
		})
	}

	assert.Equal(t, "2.3%", Percentage(2.34))
}

func TestTrendDirection(t *testing.T) {
	assert.Equal(t, TrendUp, TrendDirection(0.01))
	assert.Equal(t, TrendDown, TrendDirection(0))
	assert.Equal(t, TrendDown, TrendDirection(-3))
	assert.True(t, TrendDirection(5).IsUp())
	assert.False(t, TrendDirection(math.NaN()).IsUp())
}
