package forms

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"
)

// Form wraps submitted urlencoded data with chainable validators. Validation
// errors are collected per field rather than raised, so handlers can re-render
// the form with the submitted values and inline messages.
type Form struct {
	data   map[string]string
	errors map[string][]string
}

// New builds a form from raw values, keeping the first value of multi-value
// fields.
func New(values map[string][]string) *Form {
	data := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			data[k] = v[0]
		}
	}
	return &Form{data: data, errors: make(map[string][]string)}
}

// FromRequest parses the request body as an HTML form. Parse failures come
// back as an empty form; required-field validators will report the gaps.
func FromRequest(r *http.Request) *Form {
	if err := r.ParseForm(); err != nil {
		return New(nil)
	}
	return New(r.PostForm)
}

// Valid reports whether all validators passed so far.
func (f *Form) Valid() bool { return len(f.errors) == 0 }

// Get returns the submitted value for a field, "" when absent.
func (f *Form) Get(field string) string { return f.data[field] }

// Values returns a copy of the submitted data for re-display.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.data))
	for k, v := range f.data {
		out[k] = v
	}
	return out
}

// Errors returns all field errors collected so far.
func (f *Form) Errors() map[string][]string { return f.errors }

// ErrorsFor returns the error messages for one field.
func (f *Form) ErrorsFor(field string) []string { return f.errors[field] }

// Require marks fields invalid when empty or whitespace-only.
func (f *Form) Require(fields ...string) *Form {
	for _, field := range fields {
		if strings.TrimSpace(f.data[field]) == "" {
			f.addError(field, "required")
		}
	}
	return f
}

// MinLen marks a field invalid when shorter than n characters.
func (f *Form) MinLen(field string, n int) *Form {
	if len(f.data[field]) < n {
		f.addError(field, fmt.Sprintf("must be at least %d characters", n))
	}
	return f
}

// Email validates a field as an email address. Empty values pass; combine
// with Require for mandatory email fields.
func (f *Form) Email(field string) *Form {
	v := strings.TrimSpace(f.data[field])
	if v == "" {
		return f
	}
	if _, err := mail.ParseAddress(v); err != nil {
		f.addError(field, "invalid email address")
	}
	return f
}

func (f *Form) addError(field, msg string) {
	f.errors[field] = append(f.errors[field], msg)
}
