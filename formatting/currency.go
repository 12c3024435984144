package formatting

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	DefaultCurrency = "USD"
	DefaultDigits   = 2

	// maxDigits mirrors the upper bound locale formatters accept for fraction digits
	maxDigits = 20
)

type currencyOptions struct {
	digits     int
	currency   string
	showSymbol bool
}

// CurrencyOption customizes FormatCurrency
type CurrencyOption func(*currencyOptions)

// WithDigits sets the number of fraction digits, used as both minimum and maximum
func WithDigits(digits int) CurrencyOption {
	return func(o *currencyOptions) {
		o.digits = digits
	}
}

// WithCurrency sets the ISO 4217 currency code, case insensitive
func WithCurrency(code string) CurrencyOption {
	return func(o *currencyOptions) {
		if code = strings.TrimSpace(code); code != "" {
			o.currency = strings.ToUpper(code)
		}
	}
}

// WithoutSymbol renders a plain grouped number
func WithoutSymbol() CurrencyOption {
	return func(o *currencyOptions) {
		o.showSymbol = false
	}
}

// FormatCurrency renders value with fixed fraction digits and thousands
// separators, e.g. "$1,234.50" or "-€12.00". nil and NaN render as "$0.00",
// or "0.00" without a symbol.
func FormatCurrency(value *float64, opts ...CurrencyOption) string {
	o := currencyOptions{
		digits:     DefaultDigits,
		currency:   DefaultCurrency,
		showSymbol: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if value == nil || math.IsNaN(*value) {
		if o.showSymbol {
			return "$0.00"
		}
		return "0.00"
	}

	digits := clampDigits(o.digits)
	number, negative := formatFixed(*value, digits)
	number = groupThousands(number)

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	if o.showSymbol {
		sb.WriteString(currencySymbol(o.currency))
	}
	sb.WriteString(number)
	return sb.String()
}

// Currency is FormatCurrency for a non-pointer value
func Currency(value float64, opts ...CurrencyOption) string {
	return FormatCurrency(&value, opts...)
}

// symbols for the currencies the dashboard offers
var knownSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// currencySymbol returns the narrow symbol ("$", "€") or the ISO code followed
// by a space when the currency has no distinct symbol. Unknown codes use USD.
func currencySymbol(code string) string {
	if symbol, ok := knownSymbols[code]; ok {
		return symbol
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return knownSymbols[DefaultCurrency]
	}

	symbol := fmt.Sprint(currency.NarrowSymbol(unit))
	if symbol == "" || symbol == unit.String() {
		return unit.String() + " "
	}
	return symbol
}

// formatFixed rounds half away from zero to digits and returns the absolute
// value. negative follows the sign of the input, so -0.001 stays negative.
func formatFixed(value float64, digits int) (string, bool) {
	if math.IsInf(value, 0) {
		return "∞", value < 0
	}

	negative := value < 0
	return decimal.NewFromFloat(math.Abs(value)).StringFixed(int32(digits)), negative
}

func groupThousands(number string) string {
	intPart, fracPart, hasFrac := strings.Cut(number, ".")
	if len(intPart) <= 3 {
		return number
	}

	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}

	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(fracPart)
	}
	return sb.String()
}

func clampDigits(digits int) int {
	if digits < 0 {
		return 0
	}
	if digits > maxDigits {
		return maxDigits
	}
	return digits
}
