package html

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Page is the layout for every HTML page, with the header and the current notification.
func Page(props PageProps, children ...Node) Node {
	title := appTitle
	if props.Title != "" {
		title = props.Title + " · " + appTitle
	}

	return HTML5(HTML5Props{
		Title:       title,
		Description: props.Description,
		Language:    "pl",
		Head: []Node{
			FavIcons(appTitle),
			Script(Src("https://cdn.tailwindcss.com")),
		},
		Body: []Node{Class("bg-gray-50 text-gray-900 min-h-screen"),
			pageHeader(props),
			Notification(props),
			Main(Container(true, true, Group(children))),
		},
	})
}

func pageHeader(props PageProps) Node {
	return Header(Class("bg-white shadow"),
		Container(true, false,
			Div(Class("flex items-center justify-between h-16"),
				A(Href("/dashboard"), Class("text-lg font-bold"), Text(appTitle)),

				If(props.Authenticated,
					Div(Class("flex items-center gap-4"),
						If(props.Email != "", Span(Class("text-sm text-gray-600"), Text(props.Email))),
						Form(Method("post"), Action("/logout"),
							Button(Type("submit"), Class("px-3 py-2 text-sm font-medium text-gray-700 hover:bg-gray-100 rounded-md"), Text("Wyloguj")),
						),
					),
				),
			),
		),
	)
}

// Notification shows the current error message with a dismiss button.
// The script removes it once the message has expired server-side.
func Notification(props PageProps) Node {
	if props.Notification == nil {
		return nil
	}
	message, ok := props.Notification.Message()
	if !ok {
		return nil
	}

	redirect := "/"
	if props.R != nil {
		redirect = props.R.URL.RequestURI()
	}

	return Div(ID("notification"), Role("alert"),
		Class("fixed top-4 right-4 z-50 max-w-sm flex items-start gap-3 rounded-md bg-red-600 px-4 py-3 text-white shadow-lg"),

		P(Class("text-sm"), Text(message)),

		Form(Method("post"), Action("/notification/clear"),
			Input(Type("hidden"), Name("redirect"), Value(redirect)),
			Button(Type("submit"), Aria("label", "Zamknij"), Class("text-white/80 hover:text-white"), Text("✕")),
		),

		Script(Raw(notificationScript)),
	)
}

const notificationScript = `(function () {
  var el = document.getElementById("notification");
  var t = setInterval(function () {
    fetch("/notification", {credentials: "same-origin"})
      .then(function (r) { return r.json(); })
      .then(function (d) { if (!d.message) { el.remove(); clearInterval(t); } });
  }, 1000);
})();`
