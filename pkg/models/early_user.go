package models

// EarlyUser represents an individual requesting early access
type EarlyUser struct {
	FirstName any    `json:"first_name"`
	LastName  any    `json:"last_name"`
	Email     string `json:"email"`
}

// ParseEarlyUser extracts an EarlyUser from a decoded submission
func ParseEarlyUser(f Fields) (EarlyUser, error) {
	if !f.Present("email") {
		return EarlyUser{}, ErrMissingFields
	}

	return EarlyUser{
		FirstName: f.Optional("first_name"),
		LastName:  f.Optional("last_name"),
		Email:     f.Text("email"),
	}, nil
}

// Record builds the row inserted into the early users collection
func (u EarlyUser) Record() map[string]any {
	return map[string]any{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
	}
}
