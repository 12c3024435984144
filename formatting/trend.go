package formatting

// Trend tags a change as rising or falling so views can pick their own styling
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// TrendDirection returns TrendUp for strictly positive values and TrendDown otherwise, zero included
func TrendDirection(value float64) Trend {
	if value > 0 {
		return TrendUp
	}
	return TrendDown
}

// IsUp reports whether t is TrendUp
func (t Trend) IsUp() bool {
	return t == TrendUp
}
