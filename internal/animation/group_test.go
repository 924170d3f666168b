package animation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(t *testing.T, name string) Group {
	t.Helper()
	for _, g := range Page() {
		if g.Name == name {
			return g
		}
	}
	t.Fatalf("group %q not registered", name)
	return Group{}
}

func TestPage_IsValid(t *testing.T) {
	require.NoError(t, Validate(Page()))
}

func TestPage_TimingMatchesTweenMode(t *testing.T) {
	for _, g := range Page() {
		if g.SelfTriggered() {
			assert.Zero(t, g.Stagger, g.Name)
		} else {
			assert.Zero(t, g.IndexDelay, g.Name)
		}
	}
	assert.True(t, byName(t, "project-cards").SelfTriggered())
	assert.False(t, byName(t, "skill-bars").SelfTriggered())
	assert.False(t, byName(t, "nav-items").SelfTriggered(), "no scroll trigger")
}

func TestPage_ScrollBands(t *testing.T) {
	tests := []struct {
		group, trigger, start, end string
	}{
		{"about-content", "#about", "top 80%", "bottom 20%"},
		{"section-title", "#projects", "top 75%", ""},
		{"project-cards", "", "top 80%", "bottom 20%"},
		{"skill-bars", "#skills", "top 70%", "bottom 30%"},
		{"certification-items", "#experience", "top 70%", "bottom 20%"},
		{"contact-items", "#contact", "top 80%", "bottom 20%"},
	}

	for _, tc := range tests {
		t.Run(tc.group, func(t *testing.T) {
			g := byName(t, tc.group)
			require.NotNil(t, g.Scroll)
			assert.Equal(t, tc.trigger, g.Scroll.Selector)
			assert.Equal(t, tc.start, g.Scroll.Start.String())
			if tc.end == "" {
				assert.Nil(t, g.Scroll.End)
			} else {
				require.NotNil(t, g.Scroll.End)
				assert.Equal(t, tc.end, g.Scroll.End.String())
			}
			assert.Equal(t, PlayReverse, g.Scroll.Actions)
		})
	}
}

func TestGroup_JSON(t *testing.T) {
	b, err := json.Marshal(byName(t, "skill-bars"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "skill-bars",
		"targets": ".skill-bar-fill",
		"method": "from",
		"vars": {"width": 0},
		"duration": 1.5,
		"stagger": 0.1,
		"ease": "power3.out",
		"scrollTrigger": {
			"trigger": "#skills",
			"start": "top 70%",
			"end": "bottom 30%",
			"toggleActions": "play none none reverse"
		}
	}`, string(b))

	var back Group
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, byName(t, "skill-bars"), back)
}

func TestValidate_Errors(t *testing.T) {
	ok := Group{Name: "a", Targets: ".a", Method: From}

	assert.ErrorIs(t, Validate([]Group{ok, ok}), ErrDuplicateGroup)
	assert.ErrorIs(t, Validate([]Group{{Name: "a", Method: From}}), ErrInvalidGroup)
	assert.ErrorIs(t, Validate([]Group{{Name: "a", Targets: ".a", Method: FromTo}}), ErrInvalidGroup)
	assert.ErrorIs(t, Validate([]Group{{Name: "a", Targets: ".a", Method: "spin"}}), ErrInvalidGroup)
	assert.ErrorIs(t, Validate([]Group{{Name: "a", Targets: ".a", Method: From, Delay: -1}}), ErrInvalidGroup)
}

func TestValidate_TimingForTweenMode(t *testing.T) {
	self := &Trigger{Start: MustPosition("top 80%"), Actions: PlayReverse}
	shared := &Trigger{Selector: "#a", Start: MustPosition("top 80%"), Actions: PlayReverse}

	tests := []struct {
		name  string
		group Group
		ok    bool
	}{
		{"index delay on self-triggered targets", Group{IndexDelay: 0.1, Scroll: self}, true},
		{"stagger on shared trigger", Group{Stagger: 0.2, Scroll: shared}, true},
		{"stagger without trigger", Group{Stagger: 0.2}, true},
		{"stagger on self-triggered targets", Group{Stagger: 0.2, Scroll: self}, false},
		{"index delay on shared trigger", Group{IndexDelay: 0.1, Scroll: shared}, false},
		{"index delay without trigger", Group{IndexDelay: 0.1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.group
			g.Name, g.Targets, g.Method = "a", ".a", From
			err := Validate([]Group{g})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidGroup)
			}
		})
	}
}
