package animation

import (
	"errors"
	"fmt"
)

// Method selects how a tween's vars are applied
type Method string

const (
	From   Method = "from"   // animate from Vars to the element's natural state
	To     Method = "to"     // animate to Vars
	FromTo Method = "fromTo" // animate from Vars to ToVars
)

// Vars are the animated properties. Nil fields are left alone.
type Vars struct {
	Opacity *float64 `json:"opacity,omitempty"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Scale   *float64 `json:"scale,omitempty"`
	Width   *float64 `json:"width,omitempty"`
}

// Trigger ties a group to a scroll band
type Trigger struct {
	// Selector is the trigger element. Empty means each target triggers itself.
	Selector string   `json:"trigger,omitempty"`
	Start    Position `json:"start"`
	// End defaults to the element's bottom leaving the viewport top.
	End     *Position     `json:"end,omitempty"`
	Actions ToggleActions `json:"toggleActions"`
}

// Group is one animated set of elements
type Group struct {
	Name     string  `json:"name"`
	Targets  string  `json:"targets"`
	Method   Method  `json:"method"`
	Vars     Vars    `json:"vars"`
	ToVars   *Vars   `json:"toVars,omitempty"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay,omitempty"`
	Stagger  float64 `json:"stagger,omitempty"`
	// IndexDelay adds index*IndexDelay seconds to each target that triggers
	// itself. Stagger applies only when the group animates as one tween.
	IndexDelay float64  `json:"indexDelay,omitempty"`
	Ease       string   `json:"ease,omitempty"`
	Repeat     int      `json:"repeat,omitempty"`
	Yoyo       bool     `json:"yoyo,omitempty"`
	Scroll     *Trigger `json:"scrollTrigger,omitempty"`
}

// SelfTriggered reports whether each target runs its own tween on its own
// scroll trigger
func (g Group) SelfTriggered() bool {
	return g.Scroll != nil && g.Scroll.Selector == ""
}

var (
	ErrDuplicateGroup = errors.New("duplicate animation group")
	ErrInvalidGroup   = errors.New("invalid animation group")
)

// Validate checks a registry for unique names and complete definitions
func Validate(groups []Group) error {
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if g.Name == "" || g.Targets == "" {
			return fmt.Errorf("%w: name and targets are required", ErrInvalidGroup)
		}
		if _, dup := seen[g.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateGroup, g.Name)
		}
		seen[g.Name] = struct{}{}

		switch g.Method {
		case From, To:
		case FromTo:
			if g.ToVars == nil {
				return fmt.Errorf("%w: %s: fromTo needs toVars", ErrInvalidGroup, g.Name)
			}
		default:
			return fmt.Errorf("%w: %s: unknown method %q", ErrInvalidGroup, g.Name, g.Method)
		}
		if g.Duration < 0 || g.Delay < 0 || g.Stagger < 0 || g.IndexDelay < 0 {
			return fmt.Errorf("%w: %s: negative timing", ErrInvalidGroup, g.Name)
		}
		if g.SelfTriggered() && g.Stagger > 0 {
			return fmt.Errorf("%w: %s: stagger needs a shared trigger", ErrInvalidGroup, g.Name)
		}
		if !g.SelfTriggered() && g.IndexDelay > 0 {
			return fmt.Errorf("%w: %s: indexDelay needs self-triggered targets", ErrInvalidGroup, g.Name)
		}
	}
	return nil
}

func f(v float64) *float64 { return &v }
