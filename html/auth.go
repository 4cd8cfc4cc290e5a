package html

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pricenotifier/web/model"
)

const (
	LoginFailedMessage         = "Nieprawidłowy email lub hasło"
	RegisterFailedMessage      = "Rejestracja nieudana. Możliwe, że email jest już zajęty."
	RegisterInvalidFormMessage = "Proszę poprawnie wypełnić wymagane pola."
)

// LoginPage with the email prefilled, and an inline error message if not empty.
func LoginPage(props PageProps, email, errorMessage string) Node {
	props.Title = "Zaloguj się"

	return Page(props,
		authCard("Zaloguj się",
			Form(Method("post"), Action("/login"), Class("space-y-4"),
				If(errorMessage != "", ErrorText(errorMessage)),
				Div(
					FormLabel("email", "Email"),
					FormInput("email", "email", "email", email, "np. admin@test.pl", true),
				),
				Div(
					FormLabel("password", "Hasło"),
					FormInput("password", "password", "password", "", "", true),
				),
				ButtonPrimary("Wejdź", true),
			),
			P(Class("text-sm text-gray-600 text-center"),
				Text("Nie masz konta? "),
				A(Href("/register"), Class("text-indigo-600 hover:underline"), Text("Zarejestruj się")),
			),
		),
	)
}

// RegisterPage with the submitted values prefilled except the password, and an inline error message if not empty.
func RegisterPage(props PageProps, req model.RegisterRequest, errorMessage string) Node {
	props.Title = "Załóż konto"

	return Page(props,
		authCard("Załóż konto",
			Form(Method("post"), Action("/register"), Class("space-y-4"),
				If(errorMessage != "", ErrorText(errorMessage)),
				Div(Class("grid grid-cols-2 gap-4"),
					Div(
						FormLabel("firstName", "Imię"),
						FormInput("firstName", "text", "firstName", req.FirstName, "", false),
					),
					Div(
						FormLabel("lastName", "Nazwisko"),
						FormInput("lastName", "text", "lastName", req.LastName, "", false),
					),
				),
				Div(
					FormLabel("email", "Email *"),
					FormInput("email", "email", "email", req.Email.String(), "", true),
				),
				Div(
					FormLabel("password", "Hasło *"),
					FormInput("password", "password", "password", "", "", true),
				),
				ButtonPrimary("Zarejestruj się", true),
			),
			P(Class("text-sm text-gray-600 text-center"),
				Text("Masz już konto? "),
				A(Href("/login"), Class("text-indigo-600 hover:underline"), Text("Zaloguj się")),
			),
		),
	)
}

func authCard(title string, children ...Node) Node {
	return Div(Class("max-w-md mx-auto"),
		Card(
			Div(Class("space-y-6"),
				H1(Class("text-2xl font-bold text-center"), Text(title)),
				Group(children),
			),
		),
	)
}
