package game

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pixil98/go-errors"
)

// Verbs is the fixed usage vocabulary, in match order. "put" and "remove" are
// containment verbs handled by the dispatcher itself; everything else only
// works on things whose definition declares a use for it.
var Verbs = []string{
	"eat",
	"drink",
	"dry",
	"cut",
	"put",
	"turn on",
	"turn off",
	"remove",
}

func verbKnown(verb string) bool {
	for _, v := range Verbs {
		if v == verb {
			return true
		}
	}
	return false
}

// UseEffect is the state change a use applies after its narration.
type UseEffect string

const (
	EffectNone      UseEffect = ""          // narration only
	EffectConsume   UseEffect = "consume"   // thing leaves the game
	EffectGain      UseEffect = "gain"      // thing gains the property in Value
	EffectTransform UseEffect = "transform" // thing is replaced by the thing id in Value
	EffectPowerOn   UseEffect = "power-on"  // heat source turns on
	EffectPowerOff  UseEffect = "power-off" // heat source turns off
)

// UseSpec defines one verb a thing responds to. The narration is a template
// executed with the thing's display fields (.Name, .Article).
type UseSpec struct {
	Verb      string    `json:"verb"`
	Narration string    `json:"narration"`
	Effect    UseEffect `json:"effect,omitempty"`
	Value     string    `json:"value,omitempty"`
}

// CookingTimes are the minute offsets at which a thing's cooked state
// advances. Below Cooked it is raw, below Burnt it is cooked, then burnt.
type CookingTimes struct {
	Cooked int `json:"cooked"`
	Burnt  int `json:"burnt"`
}

// SteepSpec makes a thing accumulate steeping time while its top-level
// container also holds a thing tagged with the matching reagent. Crossing
// Minutes grants the Gains property (marinating, pickling).
type SteepSpec struct {
	Reagent string `json:"reagent"`
	Minutes int    `json:"minutes"`
	Gains   string `json:"gains"`
}

// Thing defines an interactive object loaded from asset files: ingredients,
// containers, appliances, furnishings. One instance is spawned per session.
type Thing struct {
	Article     string `json:"article"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Stationary   bool `json:"stationary,omitempty"`
	Container    bool `json:"container,omitempty"`
	Purchaseable bool `json:"purchaseable,omitempty"`

	// HeatSource marks a container whose contents accrue cooking time while
	// it is turned on.
	HeatSource bool `json:"heat_source,omitempty"`

	// SmellRooms are the room ids that notice this heat source burning its
	// contents.
	SmellRooms []string `json:"smell_rooms,omitempty"`

	// Reagent tags this thing as a steeping agent (e.g. "soy", "vinegar").
	Reagent string `json:"reagent,omitempty"`

	CookingTimes *CookingTimes `json:"cooking_times,omitempty"`
	Steep        *SteepSpec    `json:"steep,omitempty"`

	Uses []UseSpec `json:"uses,omitempty"`
}

// UseFor returns the use spec for a verb, or nil if the thing doesn't
// respond to it.
func (t *Thing) UseFor(verb string) *UseSpec {
	for i := range t.Uses {
		if t.Uses[i].Verb == verb {
			return &t.Uses[i]
		}
	}
	return nil
}

// AllowedVerbs returns the verbs this thing accepts: the shared containment
// verbs plus whatever its uses declare.
func (t *Thing) AllowedVerbs() []string {
	verbs := []string{"put", "remove"}
	for _, u := range t.Uses {
		verbs = append(verbs, u.Verb)
	}
	return verbs
}

// Validate satisfies storage.ValidatingSpec
func (t *Thing) Validate() error {
	el := errors.NewErrorList()

	if t.Article == "" {
		el.Add(fmt.Errorf("thing article is required"))
	}
	if t.Name == "" {
		el.Add(fmt.Errorf("thing name is required"))
	}
	if t.Description == "" {
		el.Add(fmt.Errorf("thing description is required"))
	}
	if t.HeatSource && !t.Container {
		el.Add(fmt.Errorf("a heat source must be a container"))
	}

	if ct := t.CookingTimes; ct != nil {
		if ct.Cooked <= 0 {
			el.Add(fmt.Errorf("cooking_times.cooked must be positive"))
		}
		if ct.Burnt <= ct.Cooked {
			el.Add(fmt.Errorf("cooking_times.burnt must be greater than cooked"))
		}
	}

	if st := t.Steep; st != nil {
		if st.Reagent == "" {
			el.Add(fmt.Errorf("steep.reagent is required"))
		}
		if st.Minutes <= 0 {
			el.Add(fmt.Errorf("steep.minutes must be positive"))
		}
		if st.Gains == "" {
			el.Add(fmt.Errorf("steep.gains is required"))
		}
	}

	seen := map[string]bool{}
	for i, u := range t.Uses {
		if err := u.validate(t); err != nil {
			el.Add(fmt.Errorf("use %d: %w", i, err))
		}
		if seen[u.Verb] {
			el.Add(fmt.Errorf("use %d: duplicate verb %q", i, u.Verb))
		}
		seen[u.Verb] = true
	}

	return el.Err()
}

func (u *UseSpec) validate(t *Thing) error {
	el := errors.NewErrorList()

	if !verbKnown(u.Verb) {
		el.Add(fmt.Errorf("unknown verb %q", u.Verb))
	}
	if u.Verb == "put" || u.Verb == "remove" {
		el.Add(fmt.Errorf("verb %q is built in and cannot be redefined", u.Verb))
	}
	if u.Narration == "" {
		el.Add(fmt.Errorf("narration is required"))
	} else if _, err := template.New("").Parse(u.Narration); err != nil {
		el.Add(fmt.Errorf("parsing narration template: %w", err))
	}

	switch u.Effect {
	case EffectNone, EffectConsume:
		if u.Value != "" {
			el.Add(fmt.Errorf("effect %q takes no value", u.Effect))
		}
	case EffectGain:
		if u.Value == "" {
			el.Add(fmt.Errorf("effect gain requires a property value"))
		}
	case EffectTransform:
		if u.Value == "" {
			el.Add(fmt.Errorf("effect transform requires a thing id value"))
		}
	case EffectPowerOn, EffectPowerOff:
		if !t.HeatSource {
			el.Add(fmt.Errorf("effect %q requires heat_source", u.Effect))
		}
	default:
		el.Add(fmt.Errorf("unknown effect %q", u.Effect))
	}

	return el.Err()
}

// Matches reports whether a player's name fragment refers to this thing.
// Matching is a case-insensitive substring check, so ambiguous fragments
// resolve to whichever thing is found first in enumeration order.
func (t *Thing) Matches(fragment string) bool {
	return strings.Contains(strings.ToLower(t.Name), strings.ToLower(fragment))
}
