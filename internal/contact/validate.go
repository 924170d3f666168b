package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// User-facing validation messages
const (
	MsgMissingRequired = "Please fill in all required fields"
	MsgInvalidEmail    = "Please enter a valid email address"
)

// ValidationKind identifies which validation rule failed
type ValidationKind int

const (
	MissingRequired ValidationKind = iota + 1
	InvalidEmail
)

func (k ValidationKind) String() string {
	switch k {
	case MissingRequired:
		return "missing_required"
	case InvalidEmail:
		return "invalid_email"
	default:
		return "unknown"
	}
}

// ValidationError is returned when the form is rejected before any delivery attempt
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// emailShape is deliberately loose: something@something.something
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

type requiredFields struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("email_shape", EmailShape)
	return v
}

// EmailShape validates that a string looks like an email address
func EmailShape(fl validator.FieldLevel) bool {
	return emailShape.MatchString(fl.Field().String())
}

// Validate checks required fields first, then the email shape.
// Required fields are checked after trimming; the email pattern is matched
// against the value as entered.
func Validate(f Fields) error {
	err := validate.Struct(requiredFields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	})
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Kind: MissingRequired, Message: MsgMissingRequired}
		}
		return err
	}

	if err := validate.Var(f.Email, "email_shape"); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Kind: InvalidEmail, Message: MsgInvalidEmail}
		}
		return err
	}

	return nil
}
