package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-feast/internal/storage"
)

// Dictionary holds all game definition stores. It provides a single
// reference sessions are built from.
type Dictionary struct {
	Rooms     storage.Storer[*Room]
	Things    storage.Storer[*Thing]
	Scoring   storage.Storer[*ScoreRule]
	Scenarios storage.Storer[*Scenario]
}

// Resolve cross-validates references between stores. Unmatched exits, unknown
// thing ids, and ambiguous exit names are configuration errors caught here,
// never at runtime.
func (d *Dictionary) Resolve() error {
	el := errors.NewErrorList()

	placed := map[string]string{}
	for id, room := range d.Rooms.GetAll() {
		for _, exit := range room.Exits {
			if err := d.resolveExit(exit); err != nil {
				el.Add(fmt.Errorf("room %s: %w", id, err))
			}
		}
		for _, thingId := range room.Things {
			if d.Things.Get(thingId) == nil {
				el.Add(fmt.Errorf("room %s: unknown thing %q", id, thingId))
				continue
			}
			if other, ok := placed[thingId]; ok {
				el.Add(fmt.Errorf("thing %q placed in both %s and %s", thingId, other, id))
			}
			placed[thingId] = id
		}
	}

	for id, thing := range d.Things.GetAll() {
		for _, u := range thing.Uses {
			if u.Effect == EffectTransform && d.Things.Get(u.Value) == nil {
				el.Add(fmt.Errorf("thing %s: transform target %q not found", id, u.Value))
			}
		}
		if thing.HeatSource {
			for _, roomId := range thing.SmellRooms {
				if d.Rooms.Get(roomId) == nil {
					el.Add(fmt.Errorf("thing %s: smell room %q not found", id, roomId))
				}
			}
		}
	}

	for id, rule := range d.Scoring.GetAll() {
		for _, thingId := range rule.Things {
			if d.Things.Get(thingId) == nil {
				el.Add(fmt.Errorf("rule %s: unknown thing %q", id, thingId))
			}
		}
		if rule.Check == CheckContainedBy && d.Things.Get(rule.Value) == nil {
			el.Add(fmt.Errorf("rule %s: unknown container %q", id, rule.Value))
		}
	}

	for id, sc := range d.Scenarios.GetAll() {
		for _, roomId := range sc.Rooms {
			if d.Rooms.Get(roomId) == nil {
				el.Add(fmt.Errorf("scenario %s: unknown room %q", id, roomId))
			}
		}
		if d.Rooms.Get(sc.StartRoom) == nil {
			el.Add(fmt.Errorf("scenario %s: unknown start room %q", id, sc.StartRoom))
		}
		for _, ruleId := range sc.ScoreRules {
			if d.Scoring.Get(ruleId) == nil {
				el.Add(fmt.Errorf("scenario %s: unknown score rule %q", id, ruleId))
			}
		}
	}

	return el.Err()
}

// resolveExit checks that an exit name matches exactly one room name,
// case-insensitively. This is what the go command relies on at runtime.
func (d *Dictionary) resolveExit(exit string) error {
	matches := 0
	for _, room := range d.Rooms.GetAll() {
		if strings.EqualFold(room.Name, exit) {
			matches++
		}
	}
	switch matches {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("exit %q matches no room", exit)
	default:
		return fmt.Errorf("exit %q matches %d rooms", exit, matches)
	}
}
