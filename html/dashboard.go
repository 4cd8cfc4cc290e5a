package html

import (
	"fmt"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pricenotifier/web/model"
)

const confirmDeleteMessage = "Czy na pewno chcesz usunąć ten produkt i jego historię?"

// DashboardPage with forms to add products, and one page of the tracked products.
func DashboardPage(props PageProps, products []model.Product, total, limit, offset int) Node {
	props.Title = "Moje produkty"

	return Page(props,
		Div(Class("space-y-8"),
			Div(Class("grid gap-4 md:grid-cols-2"),
				addProductForm("Dodaj po nazwie", "/products/search", "productName", "text", "np. PlayStation 5", "Szukaj"),
				addProductForm("Dodaj link Ceneo", "/products/url", "productUrl", "url", "Link do Ceneo", "Link"),
			),

			If(total == 0,
				P(Class("text-center text-gray-500"), Text("Brak produktów. Dodaj coś powyżej!")),
			),

			If(total > 0,
				Div(Class("space-y-4"),
					Ul(Class("grid gap-4 md:grid-cols-2 lg:grid-cols-3"),
						Map(products, productCard),
					),
					If(total > limit, Pagination("/dashboard?", total, limit, offset)),
				),
			),
		),
	)
}

func addProductForm(title, action, name, typ, placeholder, button string) Node {
	return Card(
		Form(Method("post"), Action(action), Class("space-y-2"),
			FormLabel(name, title),
			Div(Class("flex gap-2"),
				FormInput(name, typ, name, "", placeholder, true),
				ButtonPrimary(button, false),
			),
		),
	)
}

func productCard(p model.Product) Node {
	var href string
	if p.ID != nil {
		href = "/products/" + p.ID.String()
	}

	return Li(
		Card(
			Div(Class("space-y-2"),
				Div(Class("flex items-start justify-between gap-2"),
					Iff(href != "", func() Node {
						return A(Href(href), Class("font-semibold hover:underline"), Text(p.Name))
					}),
					If(href == "", Span(Class("font-semibold"), Text(p.Name))),

					Iff(href != "", func() Node {
						return Form(Method("post"), Action(href+"/delete"),
							Attr("onsubmit", fmt.Sprintf("return confirm(%q)", confirmDeleteMessage)),
							Button(Type("submit"), Attr("title", "Usuń produkt"), Class("text-gray-400 hover:text-red-600"), Text("🗑")),
						)
					}),
				),

				P(Class("text-xl font-bold text-indigo-600"), Text(FormatPrice(p.CurrentPrice))),

				P(Class("text-xs text-gray-500"),
					Text("Ost. sprawdzenie: "),
					Text(p.LastChecked.Pretty()),
					If(p.LastChecked != nil, Textf(" (%v)", p.LastChecked.Ago())),
				),

				If(p.URL != "",
					A(Href(p.URL), Target("_blank"), Rel("noopener noreferrer"), Class("text-sm text-indigo-600 hover:underline"), Text("Oferta Ceneo ↗")),
				),
			),
		),
	)
}

// FormatPrice in PLN with two decimals.
func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f PLN", v)
}
