package model

import "errors"

// ErrMissingFields is returned when a contact submission lacks a name, email
// or message.
var ErrMissingFields = errors.New("missing required fields")

// ContactMessage is a visitor's contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks that all three fields are present. Formats are not checked.
func (m ContactMessage) Validate() error {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return ErrMissingFields
	}
	return nil
}

// Email is an outgoing plain-text mail.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}
