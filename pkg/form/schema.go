package form

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Endpoints the forms submit to
const (
	LeadPath      = "/api/submit-lead"
	EarlyUserPath = "/api/submit-early-user"
)

// LeadForm is the business signup form
type LeadForm struct {
	BusinessName    string `json:"business_name" form:"business_name" validate:"required,min=2"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Phone           string `json:"phone,omitempty" form:"phone"`
	ServiceCategory string `json:"service_category" form:"service_category" validate:"required"`
	Source          string `json:"source,omitempty" form:"source"`
}

// EarlyAccessForm is the early access and newsletter form
type EarlyAccessForm struct {
	FirstName string `json:"first_name,omitempty" form:"first_name"`
	LastName  string `json:"last_name,omitempty" form:"last_name"`
	Email     string `json:"email" form:"email" validate:"required,email"`
}

// NewLeadForm creates the business signup form
func NewLeadForm(submitter Submitter) *Form[LeadForm] {
	return New[LeadForm](LeadPath, submitter)
}

// NewEarlyAccessForm creates the early access form
func NewEarlyAccessForm(submitter Submitter) *Form[EarlyAccessForm] {
	return New[EarlyAccessForm](EarlyUserPath, submitter)
}

// Categories offered by the business signup form
var Categories = []string{
	"Home Services",
	"Beauty & Wellness",
	"Professional Services",
	"Events & Entertainment",
	"Auto Services",
	"Pet Care",
	"Health & Medical",
	"Education",
	"Fitness",
	"Other",
}

// Sources offered for "how did you hear about us"
var Sources = []string{
	"Social Media",
	"Search Engine",
	"Word of Mouth",
	"Advertisement",
	"Other",
}

// messages keyed by "field.tag", falling back to "field"
var messages = map[string]string{
	"business_name":     "Business name is required",
	"email":             "Please enter a valid email",
	"service_category":  "Please select a category",
	"business_name.min": "Business name is required",
}

// ValidationError lists the fields that failed local validation
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks data against its validate tags
func Validate(data any) error {
	err := getValidator().Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = message(fe.Field(), fe.Tag())
	}
	return out
}

func message(field, tag string) string {
	if m, ok := messages[field+"."+tag]; ok {
		return m
	}
	if m, ok := messages[field]; ok {
		return m
	}
	return "Invalid value"
}
