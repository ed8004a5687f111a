// Package validate holds the sanitization and field validation rules shared
// by every entry point, so the form and JSON paths enforce identical rules.
package validate

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// FieldError is a user-correctable problem with a single input field. The
// message is shown to the user verbatim.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Errors collects field errors for one submission.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, " ")
}

// Add appends a field error.
func (e *Errors) Add(field, format string, args ...any) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Err returns the collection as an error, or nil when every field passed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var (
	tagPattern = regexp.MustCompile(`<[^>]*>`)
	// Simple address grammar: one @, a non-empty local part, and a dotted
	// domain. Deliverability is not checked.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Sanitize normalizes one user-supplied string: surrounding whitespace is
// trimmed, markup tags are stripped, and characters meaningful to an HTML
// renderer are escaped. It never fails, only transforms.
func Sanitize(s string) string {
	return html.EscapeString(tagPattern.ReplaceAllString(strings.TrimSpace(s), ""))
}

// SanitizeAll applies Sanitize element-wise.
func SanitizeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Sanitize(v)
	}
	return out
}

// Email reports whether s matches the accepted address grammar.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// LengthBetween reports whether s has between min and max characters
// inclusive, counted in bytes as stored.
func LengthBetween(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

// Rating reports whether r is a valid star rating.
func Rating(r int) bool {
	return r >= 1 && r <= 5
}
