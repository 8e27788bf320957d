// Package contact validates contact form submissions. Nothing is sent or stored.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned when a required field is empty
var ErrMissingField = errors.New("required field is empty")

// Message is one contact form submission
type Message struct {
	Name  string
	Email string
	Body  string
}

// Normalize trims surrounding whitespace from every field
func (m Message) Normalize() Message {
	return Message{
		Name:  strings.TrimSpace(m.Name),
		Email: strings.TrimSpace(m.Email),
		Body:  strings.TrimSpace(m.Body),
	}
}

// Missing returns the form names of the empty fields
func (m Message) Missing() []string {
	m = m.Normalize()
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Email == "" {
		missing = append(missing, "email")
	}
	if m.Body == "" {
		missing = append(missing, "message")
	}
	return missing
}

// Validate checks that every field is non-empty
func (m Message) Validate() error {
	if missing := m.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// Acknowledge returns the thank-you notice shown after a submission
func Acknowledge(m Message) string {
	return fmt.Sprintf("Thank you, %s! Your message has been sent. I will get back to you soon.", m.Normalize().Name)
}
