package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestThingInstance_CookedState(t *testing.T) {
	tests := map[string]struct {
		times     *CookingTimes
		cookedFor int
		exp       CookedState
	}{
		"no cooking profile": {
			times:     nil,
			cookedFor: 100,
			exp:       CookedStateNone,
		},
		"raw at zero": {
			times: &CookingTimes{Cooked: 30, Burnt: 60},
			exp:   CookedStateRaw,
		},
		"raw just under threshold": {
			times:     &CookingTimes{Cooked: 30, Burnt: 60},
			cookedFor: 29,
			exp:       CookedStateRaw,
		},
		"cooked at threshold": {
			times:     &CookingTimes{Cooked: 30, Burnt: 60},
			cookedFor: 30,
			exp:       CookedStateCooked,
		},
		"burnt at threshold": {
			times:     &CookingTimes{Cooked: 30, Burnt: 60},
			cookedFor: 60,
			exp:       CookedStateBurnt,
		},
		"burnt stays burnt": {
			times:     &CookingTimes{Cooked: 30, Burnt: 60},
			cookedFor: 500,
			exp:       CookedStateBurnt,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ti := NewThingInstance("x", &Thing{Article: "a", Name: "x", Description: "x", CookingTimes: tt.times})
			ti.CookedFor = tt.cookedFor
			testutil.AssertEqual(t, "cooked state", ti.CookedState(), tt.exp)
		})
	}
}

func TestThingInstance_AddProperty(t *testing.T) {
	ti := NewThingInstance("x", &Thing{Article: "a", Name: "x", Description: "x"})

	ti.AddProperty("dry")
	ti.AddProperty("dry")
	ti.AddProperty("marinated")

	testutil.AssertEqual(t, "property count", len(ti.Properties), 2)
	testutil.AssertEqual(t, "has dry", ti.HasProperty("dry"), true)
	testutil.AssertEqual(t, "has marinated", ti.HasProperty("marinated"), true)
	testutil.AssertEqual(t, "has pickled", ti.HasProperty("pickled"), false)
}

func TestThingInstance_TopLevel(t *testing.T) {
	outer := NewThingInstance("outer", &Thing{Article: "a", Name: "outer", Description: "x", Container: true})
	middle := NewThingInstance("middle", &Thing{Article: "a", Name: "middle", Description: "x", Container: true})
	inner := NewThingInstance("inner", &Thing{Article: "an", Name: "inner", Description: "x"})

	outer.Contents = append(outer.Contents, middle)
	middle.ContainedBy = outer
	middle.Contents = append(middle.Contents, inner)
	inner.ContainedBy = middle

	testutil.AssertEqual(t, "inner top level", inner.TopLevel(), outer)
	testutil.AssertEqual(t, "outer top level", outer.TopLevel(), outer)
	testutil.AssertEqual(t, "inner has outer ancestor", inner.HasAncestor(outer), true)
	testutil.AssertEqual(t, "outer has inner ancestor", outer.HasAncestor(inner), false)
}

func TestThingInstance_FullName(t *testing.T) {
	oven := NewThingInstance("oven", &Thing{
		Article: "an", Name: "oven", Description: "x",
		Container: true, HeatSource: true,
	})
	testutil.AssertEqual(t, "oven off", oven.FullName(), "an oven (off)")

	oven.On = true
	testutil.AssertEqual(t, "oven on", oven.FullName(), "an oven (on)")

	tofu := NewThingInstance("tofu", &Thing{
		Article: "a", Name: "block of tofu", Description: "x",
		CookingTimes: &CookingTimes{Cooked: 30, Burnt: 60},
	})
	tofu.AddProperty("dry")
	testutil.AssertEqual(t, "raw with property", tofu.FullName(), "a block of tofu (raw) (dry)")

	oven.Contents = append(oven.Contents, tofu)
	tofu.ContainedBy = oven
	testutil.AssertEqual(t, "oven with contents", oven.FullName(),
		"an oven (on) (containing: a block of tofu (raw) (dry))")
}

func TestThingInstance_FindInContents(t *testing.T) {
	bowl := NewThingInstance("bowl", &Thing{Article: "a", Name: "bowl", Description: "x", Container: true})
	jar := NewThingInstance("jar", &Thing{Article: "a", Name: "jar", Description: "x", Container: true})
	nut := NewThingInstance("nut", &Thing{Article: "a", Name: "nut", Description: "x"})

	bowl.Contents = append(bowl.Contents, jar)
	jar.ContainedBy = bowl
	jar.Contents = append(jar.Contents, nut)
	nut.ContainedBy = jar

	testutil.AssertEqual(t, "direct match", bowl.FindInContents("jar"), jar)
	testutil.AssertEqual(t, "nested match", bowl.FindInContents("nut"), nut)
	if got := bowl.FindInContents("missing"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
