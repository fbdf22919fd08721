package game

import (
	"strings"
)

// RoomInstance is a session's copy of a room: the immutable definition plus
// the mutable, ordered list of things currently on its floor.
type RoomInstance struct {
	Id     string
	Def    *Room
	Things []*ThingInstance
}

// FindThing searches the room for a name fragment: things on the floor
// first, in order, then recursively inside each one.
func (r *RoomInstance) FindThing(fragment string) *ThingInstance {
	for _, t := range r.Things {
		if t.Def.Matches(fragment) {
			return t
		}
	}
	for _, t := range r.Things {
		if found := t.FindInContents(fragment); found != nil {
			return found
		}
	}
	return nil
}

// MatchExit resolves a typed direction against the room's exits by
// case-insensitive substring. First listed exit wins on ambiguity.
func (r *RoomInstance) MatchExit(direction string) string {
	lower := strings.ToLower(direction)
	for _, exit := range r.Def.Exits {
		if strings.Contains(strings.ToLower(exit), lower) {
			return exit
		}
	}
	return ""
}

// AddThing puts an instance on the room floor.
func (r *RoomInstance) AddThing(t *ThingInstance) {
	r.Things = append(r.Things, t)
}

// RemoveThing detaches an instance from the room floor by identity.
// Returns true if it was present.
func (r *RoomInstance) RemoveThing(target *ThingInstance) bool {
	for i, t := range r.Things {
		if t == target {
			r.Things = append(r.Things[:i], r.Things[i+1:]...)
			return true
		}
	}
	return false
}

// Describe returns the narration lines for entering or looking at the room.
func (r *RoomInstance) Describe() []string {
	lines := []string{r.Def.Description}

	if len(r.Things) > 0 {
		names := make([]string, len(r.Things))
		for i, t := range r.Things {
			names[i] = t.FullName()
		}
		lines = append(lines, "You can see: "+strings.Join(names, ", "))
	}

	if len(r.Def.Exits) > 0 {
		lines = append(lines, "Exits: "+strings.Join(r.Def.Exits, ", "))
	}

	return lines
}
