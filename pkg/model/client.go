package model

// Client is a hotel guest record managed through the admin screens.
type Client struct {
	BaseEntity
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PersonalCode string `json:"personalCode"`
}

// Validate reports every field violation on the client record.
func (c Client) Validate() error {
	var fields []FieldError
	if c.FirstName == "" {
		fields = append(fields, FieldError{Field: "firstName", Message: "First name is required"})
	}
	if c.LastName == "" {
		fields = append(fields, FieldError{Field: "lastName", Message: "Last name is required"})
	}
	if !emailRe.MatchString(c.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "Invalid email address"})
	}
	if c.PersonalCode == "" {
		fields = append(fields, FieldError{Field: "personalCode", Message: "Personal code is required"})
	}
	return newValidationError(fields)
}
