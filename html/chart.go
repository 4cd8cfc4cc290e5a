package html

import (
	"fmt"
	"strings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pricenotifier/web/model"
)

const (
	chartWidth   = 800
	chartHeight  = 300
	chartPadding = 48
)

// PriceChart draws the series as an SVG line chart, oldest point on the left.
func PriceChart(s model.ChartSeries) Node {
	if len(s.Prices) == 0 {
		return P(Class("text-center text-gray-500"), Text("Brak historii cen."))
	}

	lowest, highest := s.Prices[0], s.Prices[0]
	for _, p := range s.Prices[1:] {
		lowest = min(lowest, p)
		highest = max(highest, p)
	}
	// Flat series are drawn in the middle of the chart
	if lowest == highest {
		lowest--
		highest++
	}

	x := func(i int) float64 {
		if len(s.Prices) == 1 {
			return chartWidth / 2
		}
		return chartPadding + float64(i)*(chartWidth-2*chartPadding)/float64(len(s.Prices)-1)
	}
	y := func(price float64) float64 {
		return chartHeight - chartPadding - (price-lowest)/(highest-lowest)*(chartHeight-2*chartPadding)
	}

	points := make([]string, 0, len(s.Prices))
	for i, p := range s.Prices {
		points = append(points, fmt.Sprintf("%.1f,%.1f", x(i), y(p)))
	}

	return El("svg",
		Attr("viewBox", fmt.Sprintf("0 0 %d %d", chartWidth, chartHeight)),
		Attr("role", "img"),
		Aria("label", "Cena (PLN)"),
		Class("w-full h-72"),

		svgLine(chartPadding, chartHeight-chartPadding, chartWidth-chartPadding, chartHeight-chartPadding),
		svgLine(chartPadding, chartPadding, chartPadding, chartHeight-chartPadding),
		svgText(chartPadding-6, y(highest), "end", fmt.Sprintf("%.2f", highest)),
		svgText(chartPadding-6, y(lowest), "end", fmt.Sprintf("%.2f", lowest)),

		El("polyline",
			Attr("points", strings.Join(points, " ")),
			Attr("fill", "none"),
			Attr("stroke", "#3f51b5"),
			Attr("stroke-width", "2"),
		),

		Map(indexes(len(s.Prices)), func(i int) Node {
			return El("circle",
				Attr("cx", fmt.Sprintf("%.1f", x(i))),
				Attr("cy", fmt.Sprintf("%.1f", y(s.Prices[i]))),
				Attr("r", "4"),
				Attr("fill", "#3f51b5"),
				El("title", Textf("%v: %v", s.Labels[i], FormatPrice(s.Prices[i]))),
			)
		}),

		Map(labelIndexes(len(s.Labels)), func(i int) Node {
			return svgText(x(i), chartHeight-chartPadding+20, "middle", s.Labels[i])
		}),
	)
}

func svgLine(x1, y1, x2, y2 float64) Node {
	return El("line",
		Attr("x1", fmt.Sprintf("%.1f", x1)),
		Attr("y1", fmt.Sprintf("%.1f", y1)),
		Attr("x2", fmt.Sprintf("%.1f", x2)),
		Attr("y2", fmt.Sprintf("%.1f", y2)),
		Attr("stroke", "#d1d5db"),
	)
}

func svgText(x, y float64, anchor, text string) Node {
	return El("text",
		Attr("x", fmt.Sprintf("%.1f", x)),
		Attr("y", fmt.Sprintf("%.1f", y)),
		Attr("text-anchor", anchor),
		Attr("font-size", "12"),
		Attr("fill", "#6b7280"),
		Text(text),
	)
}

func indexes(n int) []int {
	idx := make([]int, n)
	for i := range n {
		idx[i] = i
	}
	return idx
}

// labelIndexes picks at most five evenly spread label positions, always including the first and last.
func labelIndexes(n int) []int {
	const maxLabels = 5

	if n <= maxLabels {
		return indexes(n)
	}

	idx := make([]int, 0, maxLabels)
	for i := range maxLabels {
		idx = append(idx, i*(n-1)/(maxLabels-1))
	}
	return idx
}
