package ticket

import (
	"math"
	"sort"
)

// PriceStats is the price distribution summary. Values keep full float64
// precision; the renderer formats them to exactly two decimal places.
type PriceStats struct {
	Mean       float64
	Median     float64
	Difference float64
}

// SortedPrices extracts every retained ticket price in ascending order,
// duplicates included.
func SortedPrices(tickets []Ticket) []float64 {
	prices := make([]float64, len(tickets))
	for i, t := range tickets {
		prices[i] = t.Price
	}

	sort.Float64s(prices)

	return prices
}

// ComputePriceStats computes mean, median and their absolute difference
// over an ascending price sequence. The second return value is false for
// an empty sequence, so no caller ever divides by zero.
func ComputePriceStats(prices []float64) (PriceStats, bool) {
	if len(prices) == 0 {
		return PriceStats{}, false
	}

	var sum float64
	for _, p := range prices {
		sum += p
	}
	mean := sum / float64(len(prices))

	var median float64
	mid := len(prices) / 2
	if len(prices)%2 == 0 {
		median = (prices[mid-1] + prices[mid]) / 2
	} else {
		median = prices[mid]
	}

	return PriceStats{
		Mean:       mean,
		Median:     median,
		Difference: math.Abs(mean - median),
	}, true
}
