package model

// Hotel is a property that owns rooms.
type Hotel struct {
	BaseEntity
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// Validate reports every field violation on the hotel.
func (h Hotel) Validate() error {
	var fields []FieldError
	if h.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}
	if h.Address == "" {
		fields = append(fields, FieldError{Field: "address", Message: "Address is required"})
	}
	if !phoneRe.MatchString(h.PhoneNumber) {
		fields = append(fields, FieldError{Field: "phoneNumber", Message: "Invalid phone number"})
	}
	if !emailRe.MatchString(h.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "Invalid email address"})
	}
	return newValidationError(fields)
}
