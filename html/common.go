package html

import (
	"context"
	"net/http"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const appTitle = "Price Notifier 🛒"

type PageProps struct {
	Title       string
	Description string
	Ctx         context.Context
	R           *http.Request
	W           http.ResponseWriter
	// Authenticated is whether the browser has a session token.
	Authenticated bool
	Email         string
	// Notification holds the current error message for this browser, if any.
	Notification messager
}

type messager interface {
	Message() (string, bool)
}

type PageFunc = func(props PageProps, children ...Node) Node

func FavIcons(name string) Node {
	return Group{
		// <link rel="icon" type="image/svg+xml" href="/favicon.svg" />
		Link(Rel("icon"), Type("image/svg+xml"), Href("/favicon.svg")),

		// <meta name="apple-mobile-web-app-title" content="name" />
		Meta(Name("apple-mobile-web-app-title"), Content(name)),
	}
}

func Container(padX, padY bool, children ...Node) Node {
	return Div(
		Classes{
			"max-w-7xl mx-auto":     true,
			"px-4 md:px-8 lg:px-16": padX,
			"py-4 md:py-8":          padY,
		},
		Group(children),
	)
}

func Card(children ...Node) Node {
	return Div(Class("bg-white rounded-lg shadow p-4 md:p-6"), Group(children))
}

func FormLabel(id, text string) Node {
	return Label(For(id), Class("block text-sm font-medium text-gray-700"), Text(text))
}

func FormInput(id, typ, name, value, placeholder string, required bool) Node {
	return Input(ID(id), Type(typ), Name(name), Value(value), Placeholder(placeholder),
		If(required, Required()),
		Class("mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 focus:border-indigo-500 focus:outline-none"),
	)
}

func ButtonPrimary(text string, fullWidth bool) Node {
	class := "px-4 py-2 text-sm font-medium text-white bg-indigo-600 hover:bg-indigo-700 rounded-md"
	if fullWidth {
		class += " w-full"
	}
	return Button(Type("submit"), Class(class), Text(text))
}

func ErrorText(text string) Node {
	return P(Class("text-sm text-red-600"), Role("alert"), Text(text))
}
