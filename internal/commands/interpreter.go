package commands

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/pixil98/go-feast/internal/display"
	"github.com/pixil98/go-feast/internal/game"
)

// Interpreter executes player input against one session. It owns the
// command-level narration; state changes live on the game types.
type Interpreter struct {
	session *game.Session
}

func NewInterpreter(session *game.Session) *Interpreter {
	return &Interpreter{session: session}
}

// Intro returns the lines narrated when a session starts: the scenario intro
// followed by the starting room.
func (i *Interpreter) Intro() []string {
	lines := append([]string{}, i.session.Scenario().Intro...)
	lines = append(lines, display.Title(i.session.CurrentRoom().Def.Name))
	lines = append(lines, i.session.CurrentRoom().Describe()...)
	return lines
}

// Execute runs one line of player input, narrating through say. The clock
// only advances for commands that act on the world; rejected input is free.
func (i *Interpreter) Execute(line string, say func(string)) {
	s := i.session
	s.BindSink(say)

	if s.GameOver() {
		s.Say("The game is over. You've had your fun, now let me nap.")
		return
	}

	cmd, err := Parse(line)
	if err != nil {
		var ue *UserError
		if errors.As(err, &ue) {
			s.Say(ue.Message)
			return
		}
		s.Say("I don't know how to do that.")
		return
	}

	if cmd.Builtin != BuiltinNone {
		i.executeBuiltin(cmd)
	} else {
		i.executeUsage(cmd)
	}

	i.checkEnding()
}

func (i *Interpreter) executeBuiltin(cmd *Command) {
	s := i.session

	switch cmd.Builtin {
	case BuiltinHelp:
		s.Say("Available commands are: look, time, examine, go, take, drop, buy, wait, inventory, " +
			strings.Join(game.Verbs, ", ") + ".")

	case BuiltinTime:
		s.Say(s.TimeString())

	case BuiltinLook:
		i.look(cmd.Args)

	case BuiltinExamine:
		i.describeThing(strings.Join(cmd.Args, " "), "Examine what?")

	case BuiltinGo:
		i.move(cmd.Args)

	case BuiltinTake:
		fragment := strings.Join(cmd.Args, " ")
		if fragment == "" {
			s.Say("Take what?")
			return
		}
		t := i.findOnFloor(fragment)
		if t == nil {
			s.Say("You can't take that.")
			return
		}
		t.Take(s)
		s.Advance(1)

	case BuiltinDrop:
		fragment := strings.Join(cmd.Args, " ")
		if fragment == "" {
			s.Say("Drop what?")
			return
		}
		t := i.findCarried(fragment)
		if t == nil {
			s.Say("You can't drop that.")
			return
		}
		t.Drop(s)
		s.Advance(1)

	case BuiltinBuy:
		fragment := strings.Join(cmd.Args, " ")
		if fragment == "" {
			s.Say("Buy what?")
			return
		}
		t := i.findOnFloor(fragment)
		if t == nil {
			s.Say("You can't buy that.")
			return
		}
		t.Buy(s)
		s.Advance(1)

	case BuiltinWait:
		minutes := 0
		if len(cmd.Args) > 0 {
			minutes, _ = strconv.Atoi(cmd.Args[0])
		}
		if minutes <= 0 {
			s.Say("Wait for how many minutes?")
			return
		}
		s.Advance(minutes)
		s.Say("Time passes.")

	case BuiltinInventory:
		inv := s.Inventory()
		if len(inv) == 0 {
			s.Say("You're carrying nothing.")
			return
		}
		names := make([]string, len(inv))
		for n, t := range inv {
			names[n] = t.FullName()
		}
		s.Say("You're carrying: " + strings.Join(names, ", "))

	case BuiltinState:
		i.dumpState()

	case BuiltinKill:
		if len(cmd.Args) > 0 && cmd.Args[0] == "jester" {
			s.Say("Jingle is dead. Game over.")
			s.SetGameOver()
			return
		}
		s.Say("You can't kill that.")
	}
}

// look handles both "look" (the room) and "look at <thing>".
func (i *Interpreter) look(args []string) {
	s := i.session

	if len(args) == 0 {
		s.Say(display.Title(s.CurrentRoom().Def.Name))
		for _, line := range s.CurrentRoom().Describe() {
			s.Say(line)
		}
		s.Advance(1)
		return
	}

	if args[0] != "at" {
		s.Say("Look where?")
		return
	}
	i.describeThing(strings.Join(args[1:], " "), "Look at what?")
}

// describeThing narrates a thing found on the current room's floor or in the
// inventory. Examining costs a minute.
func (i *Interpreter) describeThing(fragment, emptyPrompt string) {
	s := i.session
	if fragment == "" {
		s.Say(emptyPrompt)
		return
	}

	t := i.findOnFloor(fragment)
	if t == nil {
		t = i.findCarried(fragment)
	}
	if t == nil {
		s.Say("You can't see that.")
		return
	}
	s.Say(t.Describe())
	s.Advance(1)
}

// move handles "go <direction>", tolerating a leading "to".
func (i *Interpreter) move(args []string) {
	s := i.session

	var parts []string
	for _, arg := range args {
		if arg != "to" {
			parts = append(parts, arg)
		}
	}
	direction := strings.Join(parts, " ")
	if direction == "" {
		s.Say("Go where?")
		return
	}

	exit := s.CurrentRoom().MatchExit(direction)
	if exit == "" {
		s.Say("You can't go that way.")
		return
	}
	room := s.RoomByName(exit)
	if room == nil {
		s.Say("You can't go that way.")
		return
	}

	s.Sayf("You go to the %s...", exit)
	s.MoveTo(room)
	for _, line := range room.Describe() {
		s.Say(line)
	}
	s.Advance(1)
}

// executeUsage dispatches a verb command. The subject resolves against the
// inventory first, then the current room recursively; put's container
// resolves the same way. Resolution failures don't cost time, invoked
// behaviors do, even when the behavior itself refuses.
func (i *Interpreter) executeUsage(cmd *Command) {
	s := i.session

	subject := i.findCarried(cmd.Subject)
	if subject == nil {
		subject = s.FindInRoom(cmd.Subject)
	}
	if subject == nil {
		s.Say("You can't do that.")
		return
	}

	var object *game.ThingInstance
	if cmd.Object != "" {
		object = i.findCarried(cmd.Object)
		if object == nil {
			object = s.FindInRoom(cmd.Object)
		}
		if object == nil {
			s.Say("You can't do that.")
			return
		}
	}

	subject.Use(s, cmd.Verb, object)
	s.Advance(1)
}

// findOnFloor matches a fragment against things lying directly in the
// current room.
func (i *Interpreter) findOnFloor(fragment string) *game.ThingInstance {
	for _, t := range i.session.CurrentRoom().Things {
		if t.Def.Matches(fragment) {
			return t
		}
	}
	return nil
}

// findCarried matches a fragment against things carried directly.
func (i *Interpreter) findCarried(fragment string) *game.ThingInstance {
	for _, t := range i.session.Inventory() {
		if t.Def.Matches(fragment) {
			return t
		}
	}
	return nil
}

// dumpState narrates a JSON snapshot of the session, for debugging.
func (i *Interpreter) dumpState() {
	s := i.session

	type thingState struct {
		Id         string       `json:"id"`
		Properties []string     `json:"properties,omitempty"`
		CookedFor  int          `json:"cooked_for,omitempty"`
		SteepedFor int          `json:"steeped_for,omitempty"`
		On         bool         `json:"on,omitempty"`
		Contents   []thingState `json:"contents,omitempty"`
	}
	var snapshot func(ts []*game.ThingInstance) []thingState
	snapshot = func(ts []*game.ThingInstance) []thingState {
		var out []thingState
		for _, t := range ts {
			out = append(out, thingState{
				Id:         t.DefId,
				Properties: t.Properties,
				CookedFor:  t.CookedFor,
				SteepedFor: t.SteepedFor,
				On:         t.On,
				Contents:   snapshot(t.Contents),
			})
		}
		return out
	}

	state := struct {
		Time        int                     `json:"time"`
		TimeLimit   int                     `json:"time_limit"`
		CurrentRoom string                  `json:"current_room"`
		GameOver    bool                    `json:"game_over"`
		Inventory   []thingState            `json:"inventory"`
		Rooms       map[string][]thingState `json:"rooms"`
	}{
		Time:        s.Time(),
		TimeLimit:   s.TimeLimit(),
		CurrentRoom: s.CurrentRoom().Id,
		GameOver:    s.GameOver(),
		Inventory:   snapshot(s.Inventory()),
		Rooms:       map[string][]thingState{},
	}
	for _, r := range s.Rooms() {
		state.Rooms[r.Id] = snapshot(r.Things)
	}

	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		s.Say("The state is too confusing to describe.")
		return
	}
	s.Say(string(out))
}

// checkEnding finishes the game once the clock passes the scenario's limit:
// transition, score, ending vignette, breakdown.
func (i *Interpreter) checkEnding() {
	s := i.session
	if s.Time() < s.TimeLimit() || s.GameOver() {
		return
	}

	scenario := s.Scenario()
	s.Say(scenario.Transition)

	total, max, parts := s.Score()
	s.Sayf("You scored %d out of %d points.", total, max)

	switch {
	case float64(total) >= float64(max)*0.8:
		s.Say(scenario.Endings.High)
	case float64(total) >= float64(max)*0.5:
		s.Say(scenario.Endings.Mid)
	default:
		s.Say(scenario.Endings.Low)
	}

	s.Say("Score breakdown:")
	for _, part := range parts {
		s.Sayf("%s: %d", part.Name, part.Points)
	}

	s.SetGameOver()
}