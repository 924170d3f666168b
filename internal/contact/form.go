package contact

import (
	"errors"
	"fmt"

	"skc.dev/internal/mailer"
)

var (
	ErrSubmitting        = errors.New("submission already in progress")
	ErrSubmitted         = errors.New("message already sent")
	ErrInvalidTransition = errors.New("invalid contact form transition")
	ErrUnknownField      = errors.New("unknown contact field")
)

// Field names a contact form input
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// ParseField maps an input name to a Field
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldSubject, FieldMessage:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// Fields holds the visitor's input
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (f *Fields) set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	}
}

// Get returns the value of one field
func (f Fields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// State is the contact form's lifecycle state
type State int

const (
	Idle State = iota
	Submitting
	Submitted
	Failed
)

var stateNames = [...]string{
	Idle:       "idle",
	Submitting: "submitting",
	Submitted:  "submitted",
	Failed:     "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Form is the contact form state machine:
//
//	Idle ⇄ Submitting → Submitted → (timer) Idle
//	                  → Failed → (edit) Idle
//	                           → (submit) Submitting
//
// Form is not safe for concurrent use; Session wraps it with a lock.
type Form struct {
	state  State
	fields Fields
	err    string
}

func (f *Form) State() State { return f.state }

func (f *Form) Fields() Fields { return f.fields }

func (f *Form) ErrorMessage() string { return f.err }

// Locked reports whether inputs and the submit control are disabled
func (f *Form) Locked() bool {
	return f.state == Submitting
}

// Edit applies a field edit and clears any displayed error
func (f *Form) Edit(field Field, value string) error {
	switch f.state {
	case Submitting:
		return ErrSubmitting
	case Submitted:
		return ErrSubmitted
	}

	f.fields.set(field, value)
	f.err = ""
	f.state = Idle
	return nil
}

// BeginSubmit validates the fields and locks the form. On validation failure
// the form moves to Failed with the validation message and stays editable.
func (f *Form) BeginSubmit() (Fields, error) {
	switch f.state {
	case Submitting:
		return Fields{}, ErrSubmitting
	case Submitted:
		return Fields{}, ErrSubmitted
	}

	if err := Validate(f.fields); err != nil {
		f.state = Failed
		f.err = UserMessage(err)
		return Fields{}, err
	}

	f.state = Submitting
	f.err = ""
	return f.fields, nil
}

// Succeed records provider success and clears every field
func (f *Form) Succeed() error {
	if f.state != Submitting {
		return fmt.Errorf("%w: succeed from %s", ErrInvalidTransition, f.state)
	}
	f.state = Submitted
	f.fields = Fields{}
	f.err = ""
	return nil
}

// Fail records a delivery failure; field values are preserved
func (f *Form) Fail(err error) error {
	if f.state != Submitting {
		return fmt.Errorf("%w: fail from %s", ErrInvalidTransition, f.state)
	}
	f.state = Failed
	f.err = UserMessage(err)
	return nil
}

// Reset returns a submitted form to idle once the success notice has expired
func (f *Form) Reset() error {
	if f.state != Submitted {
		return fmt.Errorf("%w: reset from %s", ErrInvalidTransition, f.state)
	}
	f.state = Idle
	return nil
}

// UserMessage returns the text to display for err
func UserMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var derr *mailer.DeliveryError
	if errors.As(err, &derr) {
		return derr.UserMessage()
	}
	return mailer.FallbackMessage
}
