// Package models defines the client-side contact types.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the DD/MM/YYYY layout used when displaying contact dates.
const DateLayout = "02/01/2006"

// Contact is a record owned by the remote service. ID is assigned by the
// server and never changes.
type Contact struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// UnmarshalJSON decodes c, accepting any date form ParseDate understands.
func (c *Contact) UnmarshalJSON(b []byte) error {
	type plain Contact
	var raw struct {
		plain
		Date *string `json:"date"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = Contact(raw.plain)
	c.Date = time.Time{}
	if raw.Date == nil || *raw.Date == "" {
		return nil
	}

	t, err := ParseDate(*raw.Date)
	if err != nil {
		return err
	}
	c.Date = t
	return nil
}

// dateLayouts are tried in order. Values without an offset are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 timestamp or calendar date and returns it in
// UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// Draft returns the editable subset of c.
func (c Contact) Draft() ContactDraft {
	return ContactDraft{Name: c.Name, Email: c.Email, Message: c.Message}
}

// Row returns the display form of c.
func (c Contact) Row() ContactRow {
	return ContactRow{
		ID:      strconv.FormatInt(c.ID, 10),
		Name:    c.Name,
		Email:   c.Email,
		Message: c.Message,
		Date:    FormatDate(c.Date),
	}
}

// ContactDraft is the unsaved form data of a contact being added or edited.
type ContactDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactRow is a contact formatted for a list view.
type ContactRow struct {
	ID      string
	Name    string
	Email   string
	Message string
	Date    string
}

// FormatDate renders t as DD/MM/YYYY using its UTC calendar fields, so the
// displayed day does not depend on the local time zone.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
