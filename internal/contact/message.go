package contact

import (
	"time"

	"skc.dev/internal/mailer"
)

const (
	// DefaultSubject is used when the visitor leaves the subject empty
	DefaultSubject = "Portfolio Contact"

	// DateLayout renders e.g. "October 18, 2026 at 09:30 AM"
	DateLayout = "January 2, 2006 at 03:04 PM"
)

// NewMessage builds the provider payload for validated fields
func NewMessage(f Fields, now time.Time) mailer.Message {
	subject := f.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	return mailer.Message{
		Name:    f.Name,
		Email:   f.Email,
		Subject: subject,
		Message: f.Message,
		Date:    now.Format(DateLayout),
	}
}
