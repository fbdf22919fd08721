package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// clockLayout is the format scenario clocks are written in.
const clockLayout = "15:04"

// Endings are the closing vignettes, picked by score fraction: High at 80%
// or better, Mid at 50%, Low otherwise.
type Endings struct {
	High string `json:"high"`
	Mid  string `json:"mid"`
	Low  string `json:"low"`
}

// Scenario defines one playable game: which rooms exist (in enumeration
// order), where the player starts, the clock, and the ending content.
type Scenario struct {
	Title      string   `json:"title"`
	Intro      []string `json:"intro"`
	Rooms      []string `json:"rooms"` // room ids; order decides first-match lookups
	StartRoom  string   `json:"start_room"`
	ClockStart string   `json:"clock_start"` // wall-clock time at minute zero, HH:MM
	TimeLimit  int      `json:"time_limit"`  // minutes until the game ends
	Transition string   `json:"transition"`  // narrated when the time limit is reached
	Endings    Endings  `json:"endings"`
	ScoreRules []string `json:"score_rules"` // rule ids, in breakdown order
}

// Validate satisfies storage.ValidatingSpec
func (s *Scenario) Validate() error {
	el := errors.NewErrorList()

	if s.Title == "" {
		el.Add(fmt.Errorf("scenario title is required"))
	}
	if len(s.Rooms) == 0 {
		el.Add(fmt.Errorf("scenario needs at least one room"))
	}
	if s.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}
	if s.TimeLimit <= 0 {
		el.Add(fmt.Errorf("time_limit must be positive"))
	}
	if s.Transition == "" {
		el.Add(fmt.Errorf("transition is required"))
	}
	if s.Endings.High == "" || s.Endings.Mid == "" || s.Endings.Low == "" {
		el.Add(fmt.Errorf("all three endings are required"))
	}

	if _, err := time.Parse(clockLayout, s.ClockStart); err != nil {
		el.Add(fmt.Errorf("parsing clock_start: %w", err))
	}

	return el.Err()
}
