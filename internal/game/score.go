package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ScoreCheck is the condition a scoring rule tests on a thing.
type ScoreCheck string

const (
	CheckExists      ScoreCheck = "exists"       // the thing is still in the game
	CheckProperty    ScoreCheck = "property"     // the thing has the named property
	CheckCookedState ScoreCheck = "cooked-state" // the thing's cooked state matches
	CheckContainedBy ScoreCheck = "contained-by" // the thing sits directly in the named container
)

// ScoreRule awards points when any of its candidate things passes the check.
// The scoring table is content, not logic: rules live in asset files.
type ScoreRule struct {
	Name   string     `json:"name"`
	Points int        `json:"points"`
	Things []string   `json:"things"` // candidate thing ids; any match scores
	Check  ScoreCheck `json:"check"`
	Value  string     `json:"value,omitempty"`
}

// Validate satisfies storage.ValidatingSpec
func (r *ScoreRule) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("rule name is required"))
	}
	if r.Points == 0 {
		el.Add(fmt.Errorf("rule points must be non-zero"))
	}
	if len(r.Things) == 0 {
		el.Add(fmt.Errorf("rule needs at least one thing id"))
	}

	switch r.Check {
	case CheckExists:
		if r.Value != "" {
			el.Add(fmt.Errorf("check %q takes no value", r.Check))
		}
	case CheckProperty, CheckCookedState, CheckContainedBy:
		if r.Value == "" {
			el.Add(fmt.Errorf("check %q requires a value", r.Check))
		}
	default:
		el.Add(fmt.Errorf("unknown check %q", r.Check))
	}

	return el.Err()
}

// ScorePart is one satisfied rule in the final breakdown.
type ScorePart struct {
	Name   string
	Points int
}

// Score evaluates the scenario's scoring rules against the current world
// state. The maximum is the sum of every positive rule; penalties can drag
// the total negative.
func (s *Session) Score() (total, max int, parts []ScorePart) {
	for _, rule := range s.rules {
		if rule.Points > 0 {
			max += rule.Points
		}
		if s.ruleMet(rule) {
			total += rule.Points
			parts = append(parts, ScorePart{Name: rule.Name, Points: rule.Points})
		}
	}
	return total, max, parts
}

func (s *Session) ruleMet(rule *ScoreRule) bool {
	for _, id := range rule.Things {
		t := s.findByDefId(id)
		if t == nil {
			continue
		}
		switch rule.Check {
		case CheckExists:
			return true
		case CheckProperty:
			if t.HasProperty(rule.Value) {
				return true
			}
		case CheckCookedState:
			if string(t.CookedState()) == rule.Value {
				return true
			}
		case CheckContainedBy:
			if t.ContainedBy != nil && t.ContainedBy.DefId == rule.Value {
				return true
			}
		}
	}
	return false
}
