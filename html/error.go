package html

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFoundPage(props PageProps) Node {
	props.Title = "Nie znaleziono"

	return Page(props,
		errorContent("Nie znaleziono strony", "Strona, której szukasz, nie istnieje."),
	)
}

func ErrorPage(props PageProps) Node {
	props.Title = "Błąd"

	return Page(props,
		errorContent("Coś poszło nie tak", "Wystąpił nieoczekiwany błąd. Spróbuj ponownie później."),
	)
}

func errorContent(title, text string) Node {
	return Div(Class("text-center space-y-4 py-16"),
		H1(Class("text-3xl font-bold"), Text(title)),
		P(Class("text-gray-600"), Text(text)),
		A(Href("/dashboard"), Class("text-indigo-600 hover:underline"), Text("← Wróć do listy")),
	)
}
