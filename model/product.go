package model

import (
	"slices"
)

// Product is a tracked product as listed on the dashboard.
type Product struct {
	ID           *ProductID `json:"id,omitempty"`
	Name         string     `json:"productName"`
	CurrentPrice float64    `json:"currentPrice"`
	URL          string     `json:"productUrl"`
	LastChecked  *Time      `json:"lastChecked,omitempty"`
}

// ProductDetails is a single tracked product with its full price history.
type ProductDetails struct {
	ID           ProductID    `json:"id"`
	Name         string       `json:"productName"`
	URL          string       `json:"productUrl"`
	CurrentPrice float64      `json:"currentPrice"`
	UserEmail    string       `json:"userEmail"`
	PriceHistory []PricePoint `json:"priceHistory"`
}

// PricePoint is one price check. It is never changed client-side, only reordered for display.
type PricePoint struct {
	Price     float64 `json:"price"`
	CheckedAt Time    `json:"checkedAt"`
}

// LowestPrice seen in the history.
// With no history, it's the current price, and for a nil product it's 0.
func (p *ProductDetails) LowestPrice() float64 {
	if p == nil {
		return 0
	}
	if len(p.PriceHistory) == 0 {
		return p.CurrentPrice
	}

	lowest := p.PriceHistory[0].Price
	for _, point := range p.PriceHistory[1:] {
		lowest = min(lowest, point.Price)
	}
	return lowest
}

// LastChecked is the time of the most recent price check, or nil without history.
func (p *ProductDetails) LastChecked() *Time {
	if p == nil || len(p.PriceHistory) == 0 {
		return nil
	}

	latest := p.PriceHistory[0].CheckedAt
	for _, point := range p.PriceHistory[1:] {
		if point.CheckedAt.T.After(latest.T) {
			latest = point.CheckedAt
		}
	}
	return &latest
}

// ChartSeries is the price history prepared for a line chart.
// Labels[i] belongs to Prices[i].
type ChartSeries struct {
	Labels []string
	Prices []float64
}

// NewChartSeries sorts a copy of the points by check time, oldest first, and maps them to chart labels and prices.
// Points with equal check times keep their original order.
func NewChartSeries(points []PricePoint) ChartSeries {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b PricePoint) int {
		return a.CheckedAt.T.Compare(b.CheckedAt.T)
	})

	s := ChartSeries{
		Labels: make([]string, 0, len(sorted)),
		Prices: make([]float64, 0, len(sorted)),
	}
	for _, point := range sorted {
		s.Labels = append(s.Labels, point.CheckedAt.ChartLabel())
		s.Prices = append(s.Prices, point.Price)
	}
	return s
}
