package formatting

// OHLCPoint is a single candle, Time as upstream reports it (epoch milliseconds for CoinGecko)
type OHLCPoint struct {
	Time  int64   `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// NormalizeOHLC converts raw [time, open, high, low, close] rows into points.
// A row whose time equals the previously kept point's time is dropped, so the
// first occurrence wins. Input order is preserved; rows with fewer than five
// values are skipped.
func NormalizeOHLC(raw [][]float64) []OHLCPoint {
	points := make([]OHLCPoint, 0, len(raw))

	for _, row := range raw {
		if len(row) < 5 {
			continue
		}

		point := OHLCPoint{
			Time:  int64(row[0]),
			Open:  row[1],
			High:  row[2],
			Low:   row[3],
			Close: row[4],
		}

		if n := len(points); n > 0 && points[n-1].Time == point.Time {
			continue
		}
		points = append(points, point)
	}

	return points
}
