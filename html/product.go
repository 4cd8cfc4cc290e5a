package html

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pricenotifier/web/model"
)

// ProductPage with price stats and the price history chart.
func ProductPage(props PageProps, p *model.ProductDetails) Node {
	props.Title = "Historia cen: " + p.Name

	return Page(props,
		Div(Class("space-y-6"),
			A(Href("/dashboard"), Class("text-sm text-indigo-600 hover:underline"), Text("← Wróć do listy")),

			H1(Class("text-2xl font-bold"), Text("Historia cen: "+p.Name)),

			Dl(Class("grid gap-4 md:grid-cols-3"),
				stat("Aktualna Cena", FormatPrice(p.CurrentPrice)),
				stat("Najniższa (Hist.)", FormatPrice(p.LowestPrice())),
				stat("Ostatni pomiar", p.LastChecked().Pretty()),
			),

			Card(
				H2(Class("text-lg font-semibold mb-4"), Text("Historia Cen")),
				PriceChart(model.NewChartSeries(p.PriceHistory)),
			),

			If(p.URL != "",
				A(Href(p.URL), Target("_blank"), Rel("noopener noreferrer"),
					Class("inline-block px-4 py-2 text-sm font-medium text-white bg-indigo-600 hover:bg-indigo-700 rounded-md"),
					Text("Przejdź do oferty na Ceneo ↗"),
				),
			),
		),
	)
}

func stat(label, value string) Node {
	return Card(
		Dt(Class("text-sm text-gray-500"), Text(label)),
		Dd(Class("text-xl font-bold"), Text(value)),
	)
}
