package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CookedState classifies cumulative heat exposure against a thing's
// cooking thresholds.
type CookedState string

const (
	CookedStateNone   CookedState = "" // the thing has no cooking profile
	CookedStateRaw    CookedState = "raw"
	CookedStateCooked CookedState = "cooked"
	CookedStateBurnt  CookedState = "burnt"
)

// ThingInstance is a single session's copy of a thing definition plus all of
// its mutable state. Containment forms a forest: an instance sits in a room,
// in the inventory, or inside exactly one other instance.
type ThingInstance struct {
	InstanceId string
	DefId      string
	Def        *Thing

	Properties []string
	Contents   []*ThingInstance

	// ContainedBy points at the instance currently holding this one, or nil.
	ContainedBy *ThingInstance

	// CookedFor is cumulative minutes spent in an active heat source.
	CookedFor int

	// SteepedFor is cumulative minutes spent alongside the steeping reagent.
	SteepedFor int

	// Heat source state.
	On       bool
	OnAtTime int
}

func NewThingInstance(defId string, def *Thing) *ThingInstance {
	return &ThingInstance{
		InstanceId: uuid.NewString(),
		DefId:      defId,
		Def:        def,
	}
}

// CookedState derives raw/cooked/burnt from cumulative minutes. Monotonic in
// CookedFor; things without a cooking profile have no cooked state.
func (t *ThingInstance) CookedState() CookedState {
	ct := t.Def.CookingTimes
	if ct == nil {
		return CookedStateNone
	}
	switch {
	case t.CookedFor < ct.Cooked:
		return CookedStateRaw
	case t.CookedFor < ct.Burnt:
		return CookedStateCooked
	default:
		return CookedStateBurnt
	}
}

func (t *ThingInstance) HasProperty(property string) bool {
	for _, p := range t.Properties {
		if p == property {
			return true
		}
	}
	return false
}

// AddProperty appends a property tag. Properties are a set; adding one the
// thing already has is a no-op.
func (t *ThingInstance) AddProperty(property string) {
	if t.HasProperty(property) {
		return
	}
	t.Properties = append(t.Properties, property)
}

// TopLevel follows container back-references to the root of this instance's
// containment chain. An uncontained instance is its own top level.
func (t *ThingInstance) TopLevel() *ThingInstance {
	top := t
	for top.ContainedBy != nil {
		top = top.ContainedBy
	}
	return top
}

// HasAncestor reports whether other appears anywhere on this instance's
// containment chain.
func (t *ThingInstance) HasAncestor(other *ThingInstance) bool {
	for c := t.ContainedBy; c != nil; c = c.ContainedBy {
		if c == other {
			return true
		}
	}
	return false
}

// holdsReagent reports whether any direct content carries the reagent tag.
func (t *ThingInstance) holdsReagent(reagent string) bool {
	for _, c := range t.Contents {
		if c.Def.Reagent == reagent {
			return true
		}
	}
	return false
}

// FindInContents searches this instance's contents for a name fragment:
// direct contents first, then each content's own contents, depth-first.
func (t *ThingInstance) FindInContents(fragment string) *ThingInstance {
	for _, c := range t.Contents {
		if c.Def.Matches(fragment) {
			return c
		}
	}
	for _, c := range t.Contents {
		if found := c.FindInContents(fragment); found != nil {
			return found
		}
	}
	return nil
}

// removeContent detaches a direct content by identity. Returns true if it
// was present.
func (t *ThingInstance) removeContent(target *ThingInstance) bool {
	for i, c := range t.Contents {
		if c == target {
			t.Contents = append(t.Contents[:i], t.Contents[i+1:]...)
			return true
		}
	}
	return false
}

// FullName is the inventory/room listing form: article, name, cooked or
// power state, contents, properties.
func (t *ThingInstance) FullName() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", t.Def.Article, t.Def.Name)

	if t.Def.HeatSource {
		if t.On {
			b.WriteString(" (on)")
		} else {
			b.WriteString(" (off)")
		}
	} else if state := t.CookedState(); state != CookedStateNone {
		fmt.Fprintf(&b, " (%s)", state)
	}

	if len(t.Contents) > 0 {
		names := make([]string, len(t.Contents))
		for i, c := range t.Contents {
			names[i] = c.FullName()
		}
		fmt.Fprintf(&b, " (containing: %s)", strings.Join(names, ", "))
	}

	if len(t.Properties) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(t.Properties, ", "))
	}

	return b.String()
}

// Describe is the look/examine form: description, contents, properties.
func (t *ThingInstance) Describe() string {
	var b strings.Builder
	b.WriteString(t.Def.Description)

	if len(t.Contents) > 0 {
		names := make([]string, len(t.Contents))
		for i, c := range t.Contents {
			names[i] = c.FullName()
		}
		fmt.Fprintf(&b, " (containing: %s)", strings.Join(names, ", "))
	}

	if len(t.Properties) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(t.Properties, ", "))
	}

	return b.String()
}
