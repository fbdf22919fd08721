package commands

import (
	"strings"
	"testing"

	"github.com/pixil98/go-feast/internal/game"
	"github.com/pixil98/go-feast/internal/storage"
	"github.com/pixil98/go-testutil"
)

type mapStore[T storage.ValidatingSpec] struct {
	m map[string]T
}

func (s mapStore[T]) Get(id string) T {
	return s.m[id]
}

func (s mapStore[T]) GetAll() map[string]T {
	return s.m
}

func testDictionary(t *testing.T) *game.Dictionary {
	t.Helper()

	things := map[string]*game.Thing{
		"oven": {
			Article: "an", Name: "oven", Description: "A very hot box.",
			Stationary: true, Container: true, HeatSource: true,
			SmellRooms: []string{"kitchen"},
			Uses: []game.UseSpec{
				{Verb: "turn on", Narration: "The {{ .Name }} hums to life.", Effect: game.EffectPowerOn},
				{Verb: "turn off", Narration: "The {{ .Name }} dies down.", Effect: game.EffectPowerOff},
			},
		},
		"block-of-tofu": {
			Article: "a", Name: "block of tofu", Description: "It wobbles.",
			CookingTimes: &game.CookingTimes{Cooked: 30, Burnt: 60},
			Steep:        &game.SteepSpec{Reagent: "soy", Minutes: 30, Gains: "marinated"},
			Uses: []game.UseSpec{
				{Verb: "eat", Narration: "You eat the tofu.", Effect: game.EffectConsume},
				{Verb: "dry", Narration: "You pat the tofu dry.", Effect: game.EffectGain, Value: "dry"},
				{Verb: "cut", Narration: "You cut the tofu into cubes.", Effect: game.EffectTransform, Value: "cubes-of-tofu"},
			},
		},
		"cubes-of-tofu": {
			Article: "some", Name: "cubes of tofu", Description: "Perfect cubes.",
			CookingTimes: &game.CookingTimes{Cooked: 20, Burnt: 40},
			Steep:        &game.SteepSpec{Reagent: "soy", Minutes: 30, Gains: "marinated"},
			Uses: []game.UseSpec{
				{Verb: "eat", Narration: "You snack on the cubes.", Effect: game.EffectConsume},
			},
		},
		"marinating-bowl": {
			Article: "a", Name: "marinating bowl", Description: "For marinating only.",
			Container: true,
		},
		"soy-sauce": {
			Article: "some", Name: "soy sauce", Description: "Salty.",
			Reagent: "soy",
			Uses: []game.UseSpec{
				{Verb: "drink", Narration: "You drink the soy sauce.", Effect: game.EffectConsume},
			},
		},
		"wallet": {
			Article: "a", Name: "wallet", Description: "Full of loyalty cards.",
		},
		"fresh-ginger": {
			Article: "some", Name: "fresh ginger", Description: "A tangy tuber.",
			Purchaseable: true,
		},
	}

	rooms := map[string]*game.Room{
		"kitchen": {
			Name: "Kitchen", Description: "Brushed steel everywhere.",
			Exits:  []string{"hall"},
			Things: []string{"oven", "block-of-tofu", "marinating-bowl", "soy-sauce"},
		},
		"hall": {
			Name: "Hall", Description: "A regular hall.",
			Exits:  []string{"kitchen", "shop"},
			Things: []string{"wallet"},
		},
		"shop": {
			Name: "Shop", Description: "A little shop.",
			Exits:  []string{"hall"},
			Things: []string{"fresh-ginger"},
		},
	}

	scoring := map[string]*game.ScoreRule{
		"tofu-cut": {
			Name: "Tofu cut", Points: 10,
			Things: []string{"cubes-of-tofu"}, Check: game.CheckExists,
		},
		"tofu-marinated": {
			Name: "Tofu marinated", Points: 30,
			Things: []string{"block-of-tofu", "cubes-of-tofu"},
			Check:  game.CheckProperty, Value: "marinated",
		},
	}

	scenarios := map[string]*game.Scenario{
		"test-party": {
			Title:      "Test Party",
			Intro:      []string{"Welcome."},
			Rooms:      []string{"kitchen", "hall", "shop"},
			StartRoom:  "kitchen",
			ClockStart: "16:30",
			TimeLimit:  90,
			Transition: "Time's up!",
			Endings:    game.Endings{High: "Great.", Mid: "Fine.", Low: "Awful."},
			ScoreRules: []string{"tofu-cut", "tofu-marinated"},
		},
	}

	dict := &game.Dictionary{
		Rooms:     mapStore[*game.Room]{m: rooms},
		Things:    mapStore[*game.Thing]{m: things},
		Scoring:   mapStore[*game.ScoreRule]{m: scoring},
		Scenarios: mapStore[*game.Scenario]{m: scenarios},
	}

	if err := dict.Resolve(); err != nil {
		t.Fatalf("resolving test dictionary: %v", err)
	}

	return dict
}

// play runs a sequence of commands and returns the session and everything
// narrated, in order.
func play(t *testing.T, lines ...string) (*game.Session, []string) {
	t.Helper()

	sess, err := game.NewSession(testDictionary(t), "test-party")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	interp := NewInterpreter(sess)

	var out []string
	for _, line := range lines {
		interp.Execute(line, func(msg string) {
			out = append(out, msg)
		})
	}
	return sess, out
}

func contains(out []string, want string) bool {
	for _, line := range out {
		if line == want {
			return true
		}
	}
	return false
}

func TestExecute_Help(t *testing.T) {
	_, out := play(t, "help")
	if len(out) != 1 {
		t.Fatalf("expected one line, got %d", len(out))
	}
	for _, word := range []string{"look", "wait", "turn on", "remove"} {
		if !strings.Contains(out[0], word) {
			t.Errorf("help missing %q: %s", word, out[0])
		}
	}
}

func TestExecute_RejectionsDontTick(t *testing.T) {
	tests := map[string]string{
		"unknown command":    "xyzzy",
		"unknown verb":       "juggle tofu",
		"missing subject":    "eat",
		"unresolved subject": "eat zebra",
		"unresolved take":    "take zebra",
		"wait without count": "wait",
		"wait negative":      "wait -5",
		"bad look":           "look behind you",
	}

	for name, line := range tests {
		t.Run(name, func(t *testing.T) {
			sess, _ := play(t, line)
			testutil.AssertEqual(t, "clock", sess.Time(), 0)
		})
	}
}

func TestExecute_BehaviorsTick(t *testing.T) {
	tests := map[string]struct {
		lines []string
		exp   int
	}{
		"look":             {lines: []string{"look"}, exp: 1},
		"examine":          {lines: []string{"examine oven"}, exp: 1},
		"go":               {lines: []string{"go to hall"}, exp: 1},
		"take":             {lines: []string{"take block of tofu"}, exp: 1},
		"refused take":     {lines: []string{"take oven"}, exp: 1},
		"wait":             {lines: []string{"wait 30"}, exp: 30},
		"usage":            {lines: []string{"take block of tofu", "dry tofu"}, exp: 2},
		"time is free":     {lines: []string{"time"}, exp: 0},
		"help is free":     {lines: []string{"help"}, exp: 0},
		"carrying is free": {lines: []string{"inventory"}, exp: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sess, _ := play(t, tt.lines...)
			testutil.AssertEqual(t, "clock", sess.Time(), tt.exp)
		})
	}
}

func TestExecute_Time(t *testing.T) {
	_, out := play(t, "wait 45", "time")
	testutil.AssertEqual(t, "time", out[len(out)-1], "17:15 (45 minutes remaining)")
}

func TestExecute_Movement(t *testing.T) {
	sess, out := play(t, "go to hall")
	testutil.AssertEqual(t, "room", sess.CurrentRoom().Id, "hall")
	if !contains(out, "You go to the hall...") {
		t.Errorf("missing transition narration: %v", out)
	}
	if !contains(out, "A regular hall.") {
		t.Errorf("missing room description: %v", out)
	}

	_, out = play(t, "go to narnia")
	testutil.AssertEqual(t, "refusal", out[len(out)-1], "You can't go that way.")
}

func TestExecute_TofuPrep(t *testing.T) {
	sess, out := play(t,
		"take block of tofu",
		"dry tofu",
		"cut tofu",
	)

	if !contains(out, "You pat the tofu dry.") || !contains(out, "You cut the tofu into cubes.") {
		t.Fatalf("missing prep narration: %v", out)
	}

	cubes := sess.FindInInventory("cubes")
	if cubes == nil {
		t.Fatal("expected cubes in inventory")
	}
	testutil.AssertEqual(t, "inherited dry", cubes.HasProperty("dry"), true)
}

func TestExecute_Marinating(t *testing.T) {
	sess, _ := play(t,
		"take soy sauce",
		"put soy sauce in marinating bowl",
		"take block of tofu",
		"put tofu in marinating bowl",
		"wait 28",
	)
	tofu := sess.FindInRoom("tofu")
	if tofu == nil {
		t.Fatal("expected tofu in the bowl")
	}
	// The put command itself ticked one minute of steeping
	testutil.AssertEqual(t, "not yet marinated", tofu.HasProperty("marinated"), false)

	sess, _ = play(t,
		"take soy sauce",
		"put soy sauce in marinating bowl",
		"take block of tofu",
		"put tofu in marinating bowl",
		"wait 29",
	)
	tofu = sess.FindInRoom("tofu")
	testutil.AssertEqual(t, "marinated", tofu.HasProperty("marinated"), true)
}

func TestExecute_OvenBurnsTofu(t *testing.T) {
	sess, out := play(t,
		"take block of tofu",
		"put tofu in oven",
		"turn on oven",
		"wait 60",
	)

	if !contains(out, "You know the oven is off, right?") {
		t.Errorf("missing off-oven warning: %v", out)
	}
	if !contains(out, "An unpleasant burning smell wafts from the oven.") {
		t.Errorf("missing burning smell: %v", out)
	}

	tofu := sess.FindInRoom("tofu")
	testutil.AssertEqual(t, "burnt", tofu.CookedState(), game.CookedStateBurnt)
}

func TestExecute_Buying(t *testing.T) {
	_, out := play(t, "go to hall", "go to shop", "buy ginger")
	testutil.AssertEqual(t, "no wallet", out[len(out)-1],
		"You don't have any money, and apparently this is set in 2013 or something so you can't pay with your phone.")

	sess, out := play(t,
		"go to hall",
		"take wallet",
		"go to shop",
		"buy ginger",
	)
	if !contains(out, "You buy the fresh ginger.") {
		t.Errorf("missing purchase narration: %v", out)
	}
	if sess.FindInInventory("ginger") == nil {
		t.Error("expected ginger in inventory")
	}
}

func TestExecute_Ending(t *testing.T) {
	sess, out := play(t,
		"take block of tofu",
		"cut tofu",
		"wait 89",
	)

	testutil.AssertEqual(t, "game over", sess.GameOver(), true)
	if !contains(out, "Time's up!") {
		t.Errorf("missing transition: %v", out)
	}
	// 10 of 40 possible points is a low-tier ending
	if !contains(out, "You scored 10 out of 40 points.") {
		t.Errorf("missing score line: %v", out)
	}
	if !contains(out, "Awful.") {
		t.Errorf("missing ending vignette: %v", out)
	}
	if !contains(out, "Score breakdown:") || !contains(out, "Tofu cut: 10") {
		t.Errorf("missing breakdown: %v", out)
	}
}

func TestExecute_TerminalSessionIsInert(t *testing.T) {
	sess, err := game.NewSession(testDictionary(t), "test-party")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	interp := NewInterpreter(sess)

	var out []string
	say := func(msg string) { out = append(out, msg) }

	interp.Execute("kill jester", say)
	testutil.AssertEqual(t, "game over", sess.GameOver(), true)
	if !contains(out, "Jingle is dead. Game over.") {
		t.Fatalf("missing kill narration: %v", out)
	}

	out = nil
	interp.Execute("take block of tofu", say)
	testutil.AssertEqual(t, "nap line", out[len(out)-1],
		"The game is over. You've had your fun, now let me nap.")
	testutil.AssertEqual(t, "no tick", sess.Time(), 0)
	testutil.AssertEqual(t, "nothing taken", len(sess.Inventory()), 0)
}

func TestExecute_InventoryListing(t *testing.T) {
	_, out := play(t, "inventory")
	testutil.AssertEqual(t, "empty", out[len(out)-1], "You're carrying nothing.")

	_, out = play(t, "take block of tofu", "inventory")
	testutil.AssertEqual(t, "listing", out[len(out)-1], "You're carrying: a block of tofu (raw)")
}

func TestExecute_LookAt(t *testing.T) {
	_, out := play(t, "look at oven")
	testutil.AssertEqual(t, "description", out[len(out)-1], "A very hot box.")

	_, out = play(t, "look at zebra")
	testutil.AssertEqual(t, "unseen", out[len(out)-1], "You can't see that.")

	_, out = play(t, "look at")
	testutil.AssertEqual(t, "prompt", out[len(out)-1], "Look at what?")
}
