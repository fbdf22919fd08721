package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Room represents a location. Exits name other rooms; a direction the player
// types is matched against exit names by case-insensitive substring, and the
// exit name must resolve to exactly one room (validated at load time by
// Dictionary.Resolve).
type Room struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Exits       []string `json:"exits"`
	Things      []string `json:"things,omitempty"` // thing ids present at session start, in order
}

// Validate satisfies storage.ValidatingSpec
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	for i, exit := range r.Exits {
		if exit == "" {
			el.Add(fmt.Errorf("exit %d: name is required", i))
		}
	}

	return el.Err()
}
