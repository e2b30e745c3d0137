package model

import "regexp"

// TokenPair is the credential issued by the identity endpoints: a signed JWT
// access token plus the opaque refresh token used to obtain a new pair.
type TokenPair struct {
	JWT          string `json:"jwt"`
	RefreshToken string `json:"refreshToken"`
}

// LoginData carries the credentials for the login endpoint.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate reports every field violation on the login form.
func (d LoginData) Validate() error {
	var fields []FieldError
	if !emailRe.MatchString(d.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "Invalid email address"})
	}
	fields = append(fields, passwordViolations("password", d.Password)...)
	return newValidationError(fields)
}

// RegisterData carries the fields for the account registration endpoint.
type RegisterData struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	ConfirmedPassword string `json:"confirmedPassword"`
}

// Validate reports every field violation on the registration form.
func (d RegisterData) Validate() error {
	var fields []FieldError
	if d.FirstName == "" {
		fields = append(fields, FieldError{Field: "firstName", Message: "First name is required"})
	}
	if d.LastName == "" {
		fields = append(fields, FieldError{Field: "lastName", Message: "Last name is required"})
	}
	if !emailRe.MatchString(d.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "Invalid email address"})
	}
	fields = append(fields, passwordViolations("password", d.Password)...)
	if d.Password != d.ConfirmedPassword {
		fields = append(fields, FieldError{Field: "confirmedPassword", Message: "Passwords don't match"})
	}
	return newValidationError(fields)
}

var (
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	digitRe    = regexp.MustCompile(`\d`)
	nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

func passwordViolations(field, password string) []FieldError {
	var fields []FieldError
	if len(password) < 6 {
		fields = append(fields, FieldError{Field: field, Message: "Password must be at least 6 characters long"})
	}
	if !upperRe.MatchString(password) {
		fields = append(fields, FieldError{Field: field, Message: "Password must contain at least one uppercase character"})
	}
	if !lowerRe.MatchString(password) {
		fields = append(fields, FieldError{Field: field, Message: "Password must contain at least one lowercase character"})
	}
	if !digitRe.MatchString(password) {
		fields = append(fields, FieldError{Field: field, Message: "Password must contain at least one digit"})
	}
	if !nonAlnumRe.MatchString(password) {
		fields = append(fields, FieldError{Field: field, Message: "Password must contain at least one non-alphanumeric character"})
	}
	return fields
}
