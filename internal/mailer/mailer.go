// Package mailer relays contact form messages to an email provider.
package mailer

import (
	"context"
	"fmt"
)

// FallbackMessage is shown when the provider gives no usable error text
const FallbackMessage = "Failed to send message. Please try again later."

// Message is the fixed-shape payload delivered for one contact submission
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Sender delivers a message to the provider
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to the Sender interface
type SenderFunc func(ctx context.Context, msg Message) error

// Send calls f(ctx, msg)
func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// DeliveryError reports a network or provider failure
type DeliveryError struct {
	Provider string
	Status   int    // HTTP status, 0 when the request never completed
	Text     string // provider-supplied error text, may be empty
	Err      error
}

func (e *DeliveryError) Error() string {
	switch {
	case e.Text != "" && e.Status != 0:
		return fmt.Sprintf("%s delivery failed (%d): %s", e.Provider, e.Status, e.Text)
	case e.Text != "":
		return fmt.Sprintf("%s delivery failed: %s", e.Provider, e.Text)
	case e.Err != nil:
		return fmt.Sprintf("%s delivery failed: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s delivery failed (%d)", e.Provider, e.Status)
	}
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text to show the visitor
func (e *DeliveryError) UserMessage() string {
	if e.Text != "" {
		return e.Text
	}
	return FallbackMessage
}
