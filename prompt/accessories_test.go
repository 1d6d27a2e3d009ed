package prompt

import (
	"reflect"
	"testing"
)

func TestClassifyAccessory(t *testing.T) {
	cases := map[string]string{
		"pearl necklace":    "NECKLACES",
		"gold hoop":         "EARRINGS",
		"tennis bracelet":   "BRACELETS",
		"velvet scrunchie":  "HAIR ACCESSORIES",
		"bucket hat":        "HATS",
		"obi belt":          "BELTS",
		"silk scarf":        "SCARVES",
		"mystery trinket":   "ACCESSORIES",
		// "chain" matches necklaces before bracelets and belts.
		"chain belt": "NECKLACES",
	}
	for in, want := range cases {
		if got := classifyAccessory(in); got != want {
			t.Errorf("classifyAccessory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGroupAccessoriesOrder(t *testing.T) {
	groups := GroupAccessories([]string{"gold hoop", "pearl necklace", "diamond stud", " ", ""})

	want := []AccessoryGroup{
		{Category: "EARRINGS", Items: []string{"gold hoop", "diamond stud"}},
		{Category: "NECKLACES", Items: []string{"pearl necklace"}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("groups = %+v, want %+v", groups, want)
	}
}

func TestGroupAccessoriesEmpty(t *testing.T) {
	if groups := GroupAccessories(nil); groups != nil {
		t.Errorf("expected nil groups, got %+v", groups)
	}
}
