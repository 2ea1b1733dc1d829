package models

import "strings"

// NoAddress is the display value for a user without any address sub-fields.
// It is a real string so callers can render it directly.
const NoAddress = "No address"

// Address returns the optional mailing-address sub-fields of the user.
func (u *User) Address() Address {
	return Address{
		Street:  u.Street,
		State:   u.State,
		City:    u.City,
		Zipcode: u.Zipcode,
	}
}

// Format joins the present sub-fields in street, state, city, zipcode order
// separated by ", ". It returns NoAddress when every field is empty.
func (a Address) Format() string {
	parts := make([]string, 0, 4)
	for _, field := range []string{a.Street, a.State, a.City, a.Zipcode} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	if len(parts) == 0 {
		return NoAddress
	}
	return strings.Join(parts, ", ")
}

// Validate checks that a user row read from storage is well formed.
func (u *User) Validate() error {
	return validate.Struct(u)
}
