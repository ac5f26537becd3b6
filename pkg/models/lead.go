package models

// Lead represents a business interested in joining the platform.
// Optional fields hold the submitted JSON value unchanged, nil when unset.
type Lead struct {
	BusinessName    string `json:"business_name"`
	Email           string `json:"email"`
	Phone           any    `json:"phone"`
	ServiceCategory any    `json:"service_category,omitempty"`
	Source          any    `json:"source"`
}

// ParseLead extracts a Lead from a decoded submission
func ParseLead(f Fields) (Lead, error) {
	if !f.Present("business_name") || !f.Present("email") {
		return Lead{}, ErrMissingFields
	}

	return Lead{
		BusinessName:    f.Text("business_name"),
		Email:           f.Text("email"),
		Phone:           f.Optional("phone"),
		ServiceCategory: f.Given("service_category"),
		Source:          f.Optional("source"),
	}, nil
}

// Record builds the row inserted into the leads collection. Phone and
// source are always present (null when unset); service_category is only
// sent when the submitter supplied one.
func (l Lead) Record() map[string]any {
	record := map[string]any{
		"business_name": l.BusinessName,
		"email":         l.Email,
		"phone":         l.Phone,
		"source":        l.Source,
	}
	if l.ServiceCategory != nil {
		record["service_category"] = l.ServiceCategory
	}
	return record
}
