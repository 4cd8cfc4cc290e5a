package model

// ErrorCode is one of the closed set of failure categories the backend reports in its error bodies.
type ErrorCode string

const (
	ErrorCodeAuthInvalidCredentials ErrorCode = "AUTH_INVALID_CREDENTIALS"
	ErrorCodeAuthUserAlreadyExists  ErrorCode = "AUTH_USER_ALREADY_EXISTS"
	ErrorCodeProductNotFound        ErrorCode = "PRODUCT_NOT_FOUND"
	ErrorCodeProductNotInStore      ErrorCode = "PRODUCT_NOT_IN_STORE"
	ErrorCodeValidationFailed       ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInternalServerError    ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrorCodeUserCredentialsInvalid ErrorCode = "USER_CREDENTIALS_INVALID"
)

var errorMessages = map[ErrorCode]string{
	ErrorCodeAuthInvalidCredentials: "Podany e-mail lub hasło są nieprawidłowe.",
	ErrorCodeAuthUserAlreadyExists:  "Użytkownik o takim adresie e-mail już istnieje.",
	ErrorCodeProductNotFound:        "Nie znaleziono takiego produktu w naszej bazie.",
	ErrorCodeProductNotInStore:      "Produkt nie został odnaleziony w sklepie zewnętrznym (sprawdź link).",
	ErrorCodeValidationFailed:       "Formularz zawiera błędy. Sprawdź poprawność danych.",
	ErrorCodeInternalServerError:    "Wystąpił błąd serwera. Spróbuj ponownie później.",
	ErrorCodeUserCredentialsInvalid: "Błąd autoryzacji, zaloguj się ponownie.",
}

// ErrorCodes in the catalog, in declaration order.
func ErrorCodes() []ErrorCode {
	return []ErrorCode{
		ErrorCodeAuthInvalidCredentials,
		ErrorCodeAuthUserAlreadyExists,
		ErrorCodeProductNotFound,
		ErrorCodeProductNotInStore,
		ErrorCodeValidationFailed,
		ErrorCodeInternalServerError,
		ErrorCodeUserCredentialsInvalid,
	}
}

// Known reports whether the code is part of the catalog.
func (c ErrorCode) Known() bool {
	_, ok := errorMessages[c]
	return ok
}

// Message for the code, shown to users.
// Codes outside the catalog get the message for [ErrorCodeInternalServerError].
func (c ErrorCode) Message() string {
	if m, ok := errorMessages[c]; ok {
		return m
	}
	return errorMessages[ErrorCodeInternalServerError]
}

// ErrorResponse is the body the backend may send with any non-2xx response.
// All fields are optional, and Code may be outside the catalog.
type ErrorResponse struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Status     int       `json:"status"`
	StatusCode int       `json:"statusCode"`
	Timestamp  string    `json:"timestamp"`
}
