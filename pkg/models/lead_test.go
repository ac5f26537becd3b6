package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLead_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
	}{
		{"no business name", Fields{"email": "joe@example.com"}},
		{"empty business name", Fields{"business_name": "", "email": "joe@example.com"}},
		{"null business name", Fields{"business_name": nil, "email": "joe@example.com"}},
		{"no email", Fields{"business_name": "Joe's Plumbing"}},
		{"empty email", Fields{"business_name": "Joe's Plumbing", "email": ""}},
		{"false email", Fields{"business_name": "Joe's Plumbing", "email": false}},
		{"nothing", Fields{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLead(tt.fields)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestParseLead_DefaultsToNull(t *testing.T) {
	lead, err := ParseLead(Fields{"business_name": "Joe's Plumbing", "email": "joe@example.com"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"business_name": "Joe's Plumbing",
		"email":         "joe@example.com",
		"phone":         nil,
		"source":        nil,
	}, lead.Record())
}

func TestParseLead_AllFields(t *testing.T) {
	lead, err := ParseLead(Fields{
		"business_name":    "Joe's Plumbing",
		"email":            "joe@example.com",
		"phone":            "555-0100",
		"service_category": "Home Services",
		"source":           "Word of Mouth",
		"ignored":          "x",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"business_name":    "Joe's Plumbing",
		"email":            "joe@example.com",
		"phone":            "555-0100",
		"service_category": "Home Services",
		"source":           "Word of Mouth",
	}, lead.Record())
}

func TestParseLead_FalsyOptionals(t *testing.T) {
	lead, err := ParseLead(Fields{
		"business_name":    "Joe's Plumbing",
		"email":            "joe@example.com",
		"phone":            "",
		"service_category": "",
		"source":           0.0,
	})
	require.NoError(t, err)

	record := lead.Record()
	assert.Nil(t, record["phone"])
	assert.Nil(t, record["source"])
	// service_category is forwarded as given
	assert.Equal(t, "", record["service_category"])
}

func TestParseLead_ForwardsValuesUnchanged(t *testing.T) {
	category := map[string]any{"group": "Home Services"}
	lead, err := ParseLead(Fields{
		"business_name":    "Joe's Plumbing",
		"email":            "joe@example.com",
		"phone":            5551234.0,
		"service_category": category,
		"source":           true,
	})
	require.NoError(t, err)

	record := lead.Record()
	assert.Equal(t, 5551234.0, record["phone"])
	assert.Equal(t, category, record["service_category"])
	assert.Equal(t, true, record["source"])
}

func TestParseLead_NullCategoryOmitted(t *testing.T) {
	lead, err := ParseLead(Fields{
		"business_name":    "Joe's Plumbing",
		"email":            "joe@example.com",
		"service_category": nil,
	})
	require.NoError(t, err)

	assert.NotContains(t, lead.Record(), "service_category")
}

func TestParseEarlyUser(t *testing.T) {
	user, err := ParseEarlyUser(Fields{"first_name": "Ada", "email": "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"first_name": "Ada",
		"last_name":  nil,
		"email":      "ada@example.com",
	}, user.Record())

	_, err = ParseEarlyUser(Fields{"first_name": "Ada", "email": ""})
	assert.ErrorIs(t, err, ErrMissingFields)
}
