package game

import (
	"testing"

	"github.com/pixil98/go-feast/internal/storage"
)

// mapStore is an in-memory Storer for tests.
type mapStore[T storage.ValidatingSpec] struct {
	m map[string]T
}

func (s mapStore[T]) Get(id string) T {
	return s.m[id]
}

func (s mapStore[T]) GetAll() map[string]T {
	return s.m
}

// testDictionary builds a compact world: a kitchen with an oven, tofu,
// a marinating bowl and soy sauce, a shop with purchaseable ginger, and a
// hall holding the wallet.
func testDictionary(t *testing.T) *Dictionary {
	t.Helper()

	things := map[string]*Thing{
		"oven": {
			Article:     "an",
			Name:        "oven",
			Description: "A very hot box.",
			Stationary:  true,
			Container:   true,
			HeatSource:  true,
			SmellRooms:  []string{"kitchen"},
			Uses: []UseSpec{
				{Verb: "turn on", Narration: "The {{ .Name }} hums to life.", Effect: EffectPowerOn},
				{Verb: "turn off", Narration: "The {{ .Name }} dies down.", Effect: EffectPowerOff},
			},
		},
		"block-of-tofu": {
			Article:      "a",
			Name:         "block of tofu",
			Description:  "It wobbles.",
			CookingTimes: &CookingTimes{Cooked: 30, Burnt: 60},
			Steep:        &SteepSpec{Reagent: "soy", Minutes: 30, Gains: "marinated"},
			Uses: []UseSpec{
				{Verb: "eat", Narration: "You eat the tofu.", Effect: EffectConsume},
				{Verb: "dry", Narration: "You pat the tofu dry.", Effect: EffectGain, Value: "dry"},
				{Verb: "cut", Narration: "You cut the tofu into cubes.", Effect: EffectTransform, Value: "cubes-of-tofu"},
			},
		},
		"cubes-of-tofu": {
			Article:      "some",
			Name:         "cubes of tofu",
			Description:  "Perfect cubes.",
			CookingTimes: &CookingTimes{Cooked: 20, Burnt: 40},
			Steep:        &SteepSpec{Reagent: "soy", Minutes: 30, Gains: "marinated"},
			Uses: []UseSpec{
				{Verb: "eat", Narration: "You snack on the cubes.", Effect: EffectConsume},
			},
		},
		"marinating-bowl": {
			Article:     "a",
			Name:        "marinating bowl",
			Description: "For marinating only.",
			Container:   true,
		},
		"soy-sauce": {
			Article:     "some",
			Name:        "soy sauce",
			Description: "Salty.",
			Reagent:     "soy",
			Uses: []UseSpec{
				{Verb: "drink", Narration: "You drink the soy sauce.", Effect: EffectConsume},
			},
		},
		"fresh-ginger": {
			Article:      "some",
			Name:         "fresh ginger",
			Description:  "A tangy tuber.",
			Purchaseable: true,
			Steep:        &SteepSpec{Reagent: "vinegar", Minutes: 20, Gains: "pickled"},
		},
		"red-wine-vinegar": {
			Article:     "some",
			Name:        "red wine vinegar",
			Description: "Very sour.",
			Reagent:     "vinegar",
		},
		"wallet": {
			Article:     "a",
			Name:        "wallet",
			Description: "Full of loyalty cards.",
		},
		"platter": {
			Article:     "a",
			Name:        "platter",
			Description: "A big plate.",
			Container:   true,
		},
	}

	rooms := map[string]*Room{
		"kitchen": {
			Name:        "Kitchen",
			Description: "Brushed steel everywhere.",
			Exits:       []string{"hall"},
			Things: []string{
				"oven", "block-of-tofu", "marinating-bowl",
				"soy-sauce", "red-wine-vinegar", "platter",
			},
		},
		"hall": {
			Name:        "Hall",
			Description: "A regular hall.",
			Exits:       []string{"kitchen", "shop"},
			Things:      []string{"wallet"},
		},
		"shop": {
			Name:        "Shop",
			Description: "A little shop.",
			Exits:       []string{"hall"},
			Things:      []string{"fresh-ginger"},
		},
	}

	scoring := map[string]*ScoreRule{
		"tofu-cut": {
			Name:   "Tofu cut",
			Points: 10,
			Things: []string{"cubes-of-tofu"},
			Check:  CheckExists,
		},
		"tofu-marinated": {
			Name:   "Tofu marinated",
			Points: 30,
			Things: []string{"block-of-tofu", "cubes-of-tofu"},
			Check:  CheckProperty,
			Value:  "marinated",
		},
		"tofu-cooked": {
			Name:   "Tofu cooked",
			Points: 30,
			Things: []string{"block-of-tofu", "cubes-of-tofu"},
			Check:  CheckCookedState,
			Value:  "cooked",
		},
		"tofu-burnt": {
			Name:   "Tofu burnt",
			Points: -30,
			Things: []string{"block-of-tofu", "cubes-of-tofu"},
			Check:  CheckCookedState,
			Value:  "burnt",
		},
		"tofu-on-platter": {
			Name:   "Tofu on platter",
			Points: 15,
			Things: []string{"block-of-tofu", "cubes-of-tofu"},
			Check:  CheckContainedBy,
			Value:  "platter",
		},
	}

	scenarios := map[string]*Scenario{
		"test-party": {
			Title:      "Test Party",
			Intro:      []string{"Welcome."},
			Rooms:      []string{"kitchen", "hall", "shop"},
			StartRoom:  "kitchen",
			ClockStart: "16:30",
			TimeLimit:  90,
			Transition: "Time's up!",
			Endings:    Endings{High: "Great.", Mid: "Fine.", Low: "Awful."},
			ScoreRules: []string{
				"tofu-cut", "tofu-marinated", "tofu-cooked",
				"tofu-burnt", "tofu-on-platter",
			},
		},
	}

	dict := &Dictionary{
		Rooms:     mapStore[*Room]{m: rooms},
		Things:    mapStore[*Thing]{m: things},
		Scoring:   mapStore[*ScoreRule]{m: scoring},
		Scenarios: mapStore[*Scenario]{m: scenarios},
	}

	if err := dict.Resolve(); err != nil {
		t.Fatalf("resolving test dictionary: %v", err)
	}

	return dict
}

// testSession builds a session over the test dictionary with narration
// collected into the returned slice.
func testSession(t *testing.T) (*Session, *[]string) {
	t.Helper()

	sess, err := NewSession(testDictionary(t), "test-party")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	lines := &[]string{}
	sess.BindSink(func(msg string) {
		*lines = append(*lines, msg)
	})

	return sess, lines
}
