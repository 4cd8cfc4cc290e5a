package model

type LoginRequest struct {
	Email    EmailAddress `json:"email"`
	Password string       `json:"password"`
}

type RegisterRequest struct {
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     EmailAddress `json:"email"`
	Password  string       `json:"password"`
}

// AuthResponse is returned by the backend on successful login and registration.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	// ExpiresIn is in milliseconds.
	ExpiresIn int64 `json:"expires_in"`
}
