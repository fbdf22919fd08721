package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is one player's entire world: room instances, inventory, clock,
// and narration sink. Nothing is shared between sessions, so concurrent
// connections never see each other's state.
type Session struct {
	Id string

	dict     *Dictionary
	scenario *Scenario
	rules    []*ScoreRule

	rooms     []*RoomInstance // scenario order; first-match lookups depend on it
	current   *RoomInstance
	inventory []*ThingInstance

	clock    int // minutes since the game started
	gameOver bool

	say func(string)
}

// NewSession instantiates the scenario's world. The dictionary must already
// be resolved; unknown ids here are programmer errors, not player errors.
func NewSession(dict *Dictionary, scenarioId string) (*Session, error) {
	scenario := dict.Scenarios.Get(scenarioId)
	if scenario == nil {
		return nil, fmt.Errorf("scenario %q not found", scenarioId)
	}

	s := &Session{
		Id:       uuid.NewString(),
		dict:     dict,
		scenario: scenario,
	}

	for _, roomId := range scenario.Rooms {
		room := dict.Rooms.Get(roomId)
		if room == nil {
			return nil, fmt.Errorf("room %q not found", roomId)
		}
		ri := &RoomInstance{Id: roomId, Def: room}
		for _, thingId := range room.Things {
			def := dict.Things.Get(thingId)
			if def == nil {
				return nil, fmt.Errorf("thing %q not found", thingId)
			}
			ri.AddThing(NewThingInstance(thingId, def))
		}
		s.rooms = append(s.rooms, ri)
		if roomId == scenario.StartRoom {
			s.current = ri
		}
	}
	if s.current == nil {
		return nil, fmt.Errorf("start room %q not in scenario rooms", scenario.StartRoom)
	}

	for _, ruleId := range scenario.ScoreRules {
		rule := dict.Scoring.Get(ruleId)
		if rule == nil {
			return nil, fmt.Errorf("score rule %q not found", ruleId)
		}
		s.rules = append(s.rules, rule)
	}

	return s, nil
}

// BindSink points narration at the caller's callback for the duration of one
// command. Each Execute call rebinds it, so independent callers never
// cross-talk.
func (s *Session) BindSink(say func(string)) {
	s.say = say
}

// Say emits one narration line through the current sink.
func (s *Session) Say(msg string) {
	if s.say != nil {
		s.say(msg)
	}
}

// Sayf is Say with formatting.
func (s *Session) Sayf(format string, args ...any) {
	s.Say(fmt.Sprintf(format, args...))
}

func (s *Session) Scenario() *Scenario        { return s.scenario }
func (s *Session) Rooms() []*RoomInstance     { return s.rooms }
func (s *Session) CurrentRoom() *RoomInstance { return s.current }
func (s *Session) Inventory() []*ThingInstance {
	return s.inventory
}
func (s *Session) Time() int      { return s.clock }
func (s *Session) TimeLimit() int { return s.scenario.TimeLimit }
func (s *Session) GameOver() bool { return s.gameOver }

// SetGameOver latches the terminal state. One-way: nothing resets it short
// of a new session.
func (s *Session) SetGameOver() {
	s.gameOver = true
}

// MoveTo changes the player's location.
func (s *Session) MoveTo(room *RoomInstance) {
	s.current = room
}

// RoomByName resolves an exit name to a room by exact case-insensitive name
// match, the counterpart of Dictionary.resolveExit.
func (s *Session) RoomByName(name string) *RoomInstance {
	for _, r := range s.rooms {
		if strings.EqualFold(r.Def.Name, name) {
			return r
		}
	}
	return nil
}

// FindInRoom searches the current room recursively for a name fragment.
func (s *Session) FindInRoom(fragment string) *ThingInstance {
	return s.current.FindThing(fragment)
}

// FindInInventory searches carried things recursively: carried things first,
// in order, then inside each one.
func (s *Session) FindInInventory(fragment string) *ThingInstance {
	for _, t := range s.inventory {
		if t.Def.Matches(fragment) {
			return t
		}
	}
	for _, t := range s.inventory {
		if found := t.FindInContents(fragment); found != nil {
			return found
		}
	}
	return nil
}

// FindVisible resolves a usage-command target: inventory first, then the
// current room, both recursive.
func (s *Session) FindVisible(fragment string) *ThingInstance {
	if t := s.FindInInventory(fragment); t != nil {
		return t
	}
	return s.FindInRoom(fragment)
}

// findByDefId locates a thing anywhere in the world by definition id, for
// scoring. Enumeration order: rooms in scenario order, then inventory.
func (s *Session) findByDefId(defId string) *ThingInstance {
	var walk func(ts []*ThingInstance) *ThingInstance
	walk = func(ts []*ThingInstance) *ThingInstance {
		for _, t := range ts {
			if t.DefId == defId {
				return t
			}
		}
		for _, t := range ts {
			if found := walk(t.Contents); found != nil {
				return found
			}
		}
		return nil
	}

	for _, r := range s.rooms {
		if found := walk(r.Things); found != nil {
			return found
		}
	}
	return walk(s.inventory)
}

// carrying reports whether an instance sits directly in the inventory.
func (s *Session) carrying(target *ThingInstance) bool {
	for _, t := range s.inventory {
		if t == target {
			return true
		}
	}
	return false
}

// CarryingNamed reports whether a thing with the exact name (case-insensitive)
// sits directly in the inventory. Purchases check for a wallet this way.
func (s *Session) CarryingNamed(name string) bool {
	for _, t := range s.inventory {
		if strings.EqualFold(t.Def.Name, name) {
			return true
		}
	}
	return false
}

// Detach removes an instance from whichever collection currently holds it:
// its container, the inventory, or a room floor. Centralizing this keeps the
// containment forest's single-parent invariant in one place.
func (s *Session) Detach(target *ThingInstance) {
	if target.ContainedBy != nil {
		target.ContainedBy.removeContent(target)
		target.ContainedBy = nil
		return
	}
	for i, t := range s.inventory {
		if t == target {
			s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			return
		}
	}
	for _, r := range s.rooms {
		if r.RemoveThing(target) {
			return
		}
	}
}

// addToInventory appends to the carried list. Callers detach first.
func (s *Session) addToInventory(t *ThingInstance) {
	s.inventory = append(s.inventory, t)
}

// Advance moves the clock and ticks every thing in the world. Each top-level
// thing recurses into its own contents, so rooms and inventory only tick
// their direct members.
func (s *Session) Advance(minutes int) {
	s.clock += minutes

	for _, r := range s.rooms {
		for _, t := range r.Things {
			t.Tick(s, minutes)
		}
	}
	for _, t := range s.inventory {
		t.Tick(s, minutes)
	}
}

// TimeString formats the wall clock plus remaining minutes, e.g.
// "17:15 (45 minutes remaining)".
func (s *Session) TimeString() string {
	start, err := time.Parse(clockLayout, s.scenario.ClockStart)
	if err != nil {
		// Validated at load time; keep the clock usable regardless.
		start = time.Time{}
	}
	now := start.Add(time.Duration(s.clock) * time.Minute)

	remaining := s.scenario.TimeLimit - s.clock
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%s (%d minutes remaining)", now.Format(clockLayout), remaining)
}
