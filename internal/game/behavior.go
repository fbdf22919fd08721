package game

import (
	"github.com/pixil98/go-feast/internal/display"
)

// Tick advances this instance's time-dependent processes by the given number
// of minutes, then recurses into its contents.
func (t *ThingInstance) Tick(s *Session, minutes int) {
	for _, c := range t.Contents {
		c.Tick(s, minutes)
	}

	top := t.TopLevel()

	if t.Def.CookingTimes != nil && top != t && top.Def.HeatSource && top.On {
		t.CookedFor += minutes
		if t.CookedState() == CookedStateBurnt {
			for _, roomId := range top.Def.SmellRooms {
				if s.CurrentRoom().Id == roomId {
					s.Say("An unpleasant burning smell wafts from the " + top.Def.Name + ".")
					break
				}
			}
		}
	}

	if st := t.Def.Steep; st != nil && top != t && top.holdsReagent(st.Reagent) {
		t.SteepedFor += minutes
		if t.SteepedFor >= st.Minutes {
			t.AddProperty(st.Gains)
		}
	}
}

// Take moves a thing from the current room into the inventory, narrating the
// refusals the room's furniture and merchandise earn.
func (t *ThingInstance) Take(s *Session) {
	if t.Def.Stationary {
		s.Sayf("The %s is too heavy to pick up.", t.Def.Name)
		return
	}
	if t.Def.Purchaseable {
		s.Say("You're not a thief! Except for that one time when Mahesh and Raph made you steal a hairclip in Accessorize, but you felt really bad about that afterwards.")
		return
	}
	s.Sayf("You take the %s.", t.Def.Name)
	s.Detach(t)
	s.addToInventory(t)
}

// Buy moves a purchaseable thing into the inventory, provided the player is
// carrying a wallet.
func (t *ThingInstance) Buy(s *Session) {
	if !t.Def.Purchaseable {
		s.Say("You already own that. Congratulations! You're moving up in the world!")
		return
	}
	if !s.CarryingNamed("wallet") {
		s.Say("You don't have any money, and apparently this is set in 2013 or something so you can't pay with your phone.")
		return
	}
	s.Sayf("You buy the %s.", t.Def.Name)
	s.Detach(t)
	s.addToInventory(t)
}

// Drop moves a carried thing onto the current room's floor.
func (t *ThingInstance) Drop(s *Session) {
	s.Sayf("You drop the %s.", t.Def.Name)
	s.Detach(t)
	s.CurrentRoom().AddThing(t)
}

// Use applies a usage verb to this thing. "put" and "remove" are containment
// operations shared by every thing; the rest come from the definition's uses.
// The object, when present, is put's container and is ignored otherwise.
func (t *ThingInstance) Use(s *Session, verb string, object *ThingInstance) {
	switch verb {
	case "put":
		if object == nil {
			s.Sayf("Put the %s in what?", t.Def.Name)
			return
		}
		t.putIn(s, object)
		return
	case "remove":
		t.removeFromContainer(s)
		return
	}

	use := t.Def.UseFor(verb)
	if use == nil {
		s.Sayf("You can't %s the %s.", verb, t.Def.Name)
		return
	}

	narration, err := display.ExpandTemplate(use.Narration, map[string]string{
		"Name":    t.Def.Name,
		"Article": t.Def.Article,
	})
	if err != nil {
		narration = use.Narration
	}
	s.Say(narration)

	switch use.Effect {
	case EffectConsume:
		s.Detach(t)
	case EffectGain:
		t.AddProperty(use.Value)
	case EffectTransform:
		s.Detach(t)
		replacement := NewThingInstance(use.Value, s.dict.Things.Get(use.Value))
		replacement.Properties = append(replacement.Properties, t.Properties...)
		s.addToInventory(replacement)
	case EffectPowerOn:
		t.On = true
		t.OnAtTime = s.Time()
	case EffectPowerOff:
		t.On = false
	}
}

// putIn places a carried thing inside a container. Containing a thing in
// itself, directly or through a cycle, ends the game.
func (t *ThingInstance) putIn(s *Session, container *ThingInstance) {
	if !s.carrying(t) {
		s.Say("You aren't carrying that.")
		return
	}
	if !container.Def.Container {
		s.Sayf("You can't put things in the %s.", container.Def.Name)
		return
	}
	if container == t || container.HasAncestor(t) {
		s.Sayf("You put the %s in itself. The universe gently explodes around you.", t.Def.Name)
		s.Say("Game over.")
		s.SetGameOver()
		return
	}

	s.Detach(t)
	container.Contents = append(container.Contents, t)
	t.ContainedBy = container

	s.Sayf("You put the %s in the %s.", t.Def.Name, container.Def.Name)

	if container.Def.HeatSource && !container.On {
		s.Sayf("You know the %s is off, right?", container.Def.Name)
	}
}

// removeFromContainer takes a thing out of whatever holds it and puts it in
// the inventory.
func (t *ThingInstance) removeFromContainer(s *Session) {
	container := t.ContainedBy
	if container == nil {
		s.Sayf("The %s isn't inside anything.", t.Def.Name)
		return
	}
	s.Sayf("You take the %s out of the %s.", t.Def.Name, container.Def.Name)
	s.Detach(t)
	s.addToInventory(t)
}
