// Package form validates contact drafts. Validation is a pure function of
// the draft: every rule is evaluated independently and the result maps each
// failing field to its message.
package form

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrijs2005/contacto/internal/client/models"
)

// Field names a form field.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

const (
	MsgRequired      = "required"
	MsgInvalidFormat = "invalid format"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

// Errors maps a field to its error message. A nil or empty map means the
// draft is valid.
type Errors map[Field]string

// Err returns a *ValidationError for a non-empty set, nil otherwise.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return &ValidationError{Fields: e}
}

// ValidationError is returned when a draft is submitted with field errors.
// It never leaves the client.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, ", ")
}

// Validate checks every field of d.
func Validate(d models.ContactDraft) Errors {
	errs := Errors{}
	for _, f := range Fields {
		if msg := ValidateField(f, Value(d, f)); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}

// ValidateField checks a single value and returns its error message, or ""
// when it is valid.
func ValidateField(f Field, value string) string {
	switch f {
	case FieldName, FieldMessage:
		if strings.TrimSpace(value) == "" {
			return MsgRequired
		}
	case FieldEmail:
		if value == "" {
			return MsgRequired
		}
		if !emailPattern.MatchString(value) {
			return MsgInvalidFormat
		}
	}
	return ""
}

// Value reads field f of d.
func Value(d models.ContactDraft, f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldMessage:
		return d.Message
	}
	return ""
}

// Set returns d with field f replaced by value. Unknown fields leave d unchanged.
func Set(d models.ContactDraft, f Field, value string) models.ContactDraft {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldMessage:
		d.Message = value
	}
	return d
}
