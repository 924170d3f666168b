// Package animation describes the page's scroll-triggered entrance animations.
//
// Groups are declarative: the server publishes them as JSON and the browser
// hands them to the animation library, which owns the scroll runtime. The
// types here parse and validate that JSON.
package animation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidPosition = errors.New("invalid trigger position")
	ErrInvalidActions  = errors.New("invalid toggle actions")
)

// Edge is a reference line on the trigger element
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeCenter Edge = "center"
	EdgeBottom Edge = "bottom"
)

// Position pairs an element edge with a line in the viewport, e.g. "top 80%"
// fires when the element's top reaches 80% of the viewport height.
type Position struct {
	Edge   Edge
	Offset float64
	Pixels bool // Offset is px from the viewport top instead of a percentage
}

// ParsePosition parses "<edge> <viewport>" where viewport is top, center,
// bottom, a percentage or a pixel offset.
func ParsePosition(s string) (Position, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	edge, ok := parseEdge(parts[0])
	if !ok {
		return Position{}, fmt.Errorf("%w: unknown edge %q", ErrInvalidPosition, parts[0])
	}

	p := Position{Edge: edge}
	v := parts[1]
	switch {
	case v == "top":
		p.Offset = 0
	case v == "center":
		p.Offset = 50
	case v == "bottom":
		p.Offset = 100
	case strings.HasSuffix(v, "%"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
		}
		p.Offset = n
	case strings.HasSuffix(v, "px"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
		if err != nil {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
		}
		p.Offset, p.Pixels = n, true
	default:
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return p, nil
}

// MustPosition is ParsePosition for literals
func MustPosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseEdge(s string) (Edge, bool) {
	switch e := Edge(s); e {
	case EdgeTop, EdgeCenter, EdgeBottom:
		return e, true
	}
	return "", false
}

func (p Position) String() string {
	unit := "%"
	if p.Pixels {
		unit = "px"
	}
	return string(p.Edge) + " " + strconv.FormatFloat(p.Offset, 'f', -1, 64) + unit
}

func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(b []byte) error {
	parsed, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Action is what the animation does on a transition
type Action string

const (
	ActionPlay     Action = "play"
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionReverse  Action = "reverse"
	ActionRestart  Action = "restart"
	ActionReset    Action = "reset"
	ActionComplete Action = "complete"
	ActionNone     Action = "none"
)

func validAction(a Action) bool {
	switch a {
	case ActionPlay, ActionPause, ActionResume, ActionReverse,
		ActionRestart, ActionReset, ActionComplete, ActionNone:
		return true
	}
	return false
}

// ToggleActions maps the four transitions to actions, in the order
// enter, leave, enter-back, leave-back.
type ToggleActions struct {
	OnEnter     Action
	OnLeave     Action
	OnEnterBack Action
	OnLeaveBack Action
}

// PlayReverse plays forward on enter and reverses when scrolled back above the start
var PlayReverse = ToggleActions{
	OnEnter:     ActionPlay,
	OnLeave:     ActionNone,
	OnEnterBack: ActionNone,
	OnLeaveBack: ActionReverse,
}

// ParseToggleActions parses four space-separated actions
func ParseToggleActions(s string) (ToggleActions, error) {
	parts := strings.Fields(s)
	if len(parts) != 4 {
		return ToggleActions{}, fmt.Errorf("%w: %q", ErrInvalidActions, s)
	}
	for _, p := range parts {
		if !validAction(Action(p)) {
			return ToggleActions{}, fmt.Errorf("%w: unknown action %q", ErrInvalidActions, p)
		}
	}
	return ToggleActions{
		OnEnter:     Action(parts[0]),
		OnLeave:     Action(parts[1]),
		OnEnterBack: Action(parts[2]),
		OnLeaveBack: Action(parts[3]),
	}, nil
}

func (t ToggleActions) String() string {
	return strings.Join([]string{
		string(t.OnEnter), string(t.OnLeave), string(t.OnEnterBack), string(t.OnLeaveBack),
	}, " ")
}

func (t ToggleActions) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ToggleActions) UnmarshalText(b []byte) error {
	parsed, err := ParseToggleActions(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
