package prompt

import "strings"

// AccessoryGroup is a display category with the accessories that matched it,
// in their original order.
type AccessoryGroup struct {
	Category string
	Items    []string
}

type accessoryRule struct {
	category string
	keywords []string
}

// Accessory classification rules. First keyword match wins, and rules are
// checked in this order, so "chain" classifies as a necklace even though
// bracelets and belts also list it.
var accessoryRules = []accessoryRule{
	{"NECKLACES", []string{"pendant", "chain", "choker", "locket", "layer", "statement", "pearl", "name", "zodiac"}},
	{"EARRINGS", []string{"stud", "hoop", "drop", "chandelier", "huggie", "threader", "cluster", "tassel"}},
	{"BRACELETS", []string{"bangle", "cuff", "chain", "beaded", "tennis", "charm", "wrap", "minimalist"}},
	{"HAIR ACCESSORIES", []string{"hairpins", "clips", "headband", "scrunchie", "claw", "stick", "wrap", "barrette"}},
	{"HATS", []string{"beanie", "cap", "fedora", "beret", "bucket", "brim", "straw", "visor"}},
	{"BELTS", []string{"leather", "chain", "fabric", "corset", "obi", "elastic", "cinch"}},
	{"SCARVES", []string{"knit", "silk", "shawl", "infinity", "bandana", "tie", "collar"}},
}

const accessoryCategoryOther = "ACCESSORIES"

func classifyAccessory(accessory string) string {
	acc := strings.ToLower(accessory)
	for _, rule := range accessoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(acc, kw) {
				return rule.category
			}
		}
	}
	return accessoryCategoryOther
}

// GroupAccessories buckets accessories by display category. Groups appear in
// the order their first member appeared in the input.
func GroupAccessories(accessories []string) []AccessoryGroup {
	var groups []AccessoryGroup
	index := map[string]int{}
	for _, acc := range accessories {
		acc = strings.TrimSpace(acc)
		if acc == "" {
			continue
		}
		category := classifyAccessory(acc)
		if i, ok := index[category]; ok {
			groups[i].Items = append(groups[i].Items, acc)
			continue
		}
		index[category] = len(groups)
		groups = append(groups, AccessoryGroup{Category: category, Items: []string{acc}})
	}
	return groups
}
