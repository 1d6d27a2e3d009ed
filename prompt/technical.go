package prompt

import "sort"

// kv is an ordered technical detail pair. Fallback tables keep their declared
// order; details loaded from catalog options render sorted by key so the same
// option always produces the same prompt text.
type kv struct {
	Key   string
	Value string
}

type detailTable struct {
	value   string
	details []kv
}

// Built-in technical details used when a scene or lighting option has none of
// its own. Values mirror the seeded catalog.
var sceneDetailTables = []detailTable{
	{"studio", []kv{{"background", "white seamless paper"}, {"floor", "reflective"}, {"space", "10x10 feet"}}},
	{"white-background", []kv{{"background", "pure white #FFFFFF"}, {"lighting", "even, no shadows"}, {"post", "white balance critical"}}},
	{"urban-street", []kv{{"location", "downtown area"}, {"time", "golden hour"}, {"elements", "architecture, street art"}}},
	{"minimalist-indoor", []kv{{"background", "neutral gray"}, {"furniture", "minimal"}, {"lighting", "soft, diffused"}}},
	{"cafe", []kv{{"setting", "cozy coffee shop"}, {"props", "wooden table, coffee cup"}, {"ambiance", "warm, inviting"}}},
	{"outdoor-park", []kv{{"location", "lush green park"}, {"lighting", "natural sunlight"}, {"elements", "trees, grass, benches"}}},
	{"office", []kv{{"setting", "modern corporate office"}, {"furniture", "desk, chair, computer"}, {"lighting", "fluorescent"}}},
	{"luxury-interior", []kv{{"decor", "high-end furniture, artwork"}, {"materials", "marble, wood, metal"}, {"lighting", "chandelier, accent lights"}}},
	{"rooftop", []kv{{"view", "city skyline"}, {"surface", "concrete or wooden deck"}, {"elements", "railings, lounge chairs"}}},
}

var lightingDetailTables = []detailTable{
	{"soft-diffused", []kv{{"key_light", "2x3 foot softbox, 45° angle, 2m high"}, {"fill", "reflector opposite side"}, {"ratio", "1:2"}, {"power", "400W"}}},
	{"natural-window", []kv{{"source", "large window or open shade"}, {"time", "morning or late afternoon"}, {"quality", "soft, indirect"}}},
	{"golden-hour", []kv{{"direction", "low angle, warm"}, {"intensity", "medium"}, {"color_temp", "3200K"}}},
	{"dramatic-rembrandt", []kv{{"key_light", "strong single source, 45° high"}, {"fill", "minimal"}, {"shadows", "deep, defined"}, {"ratio", "1:4"}}},
	{"high-key", []kv{{"setup", "multiple soft sources"}, {"intensity", "bright"}, {"shadows", "minimal"}, {"ratio", "1:1"}}},
	{"backlit", []kv{{"rim_light", "from behind subject"}, {"intensity", "medium to high"}, {"effect", "silhouette, rim glow"}}},
	{"neon-colored", []kv{{"gels", "RGB LED panels"}, {"colors", "vibrant"}, {"intensity", "medium"}, {"mood", "creative, energetic"}}},
	{"overcast-outdoor", []kv{{"source", "cloudy sky"}, {"quality", "even, soft"}, {"direction", "diffused"}, {"shadows", "soft"}}},
}

func fallbackTechnicalDetails(category, value string) []kv {
	var tables []detailTable
	switch category {
	case "scene":
		tables = sceneDetailTables
	case "lighting":
		tables = lightingDetailTables
	default:
		return nil
	}
	for _, table := range tables {
		if table.value == value {
			return table.details
		}
	}
	return nil
}

func sortedPairs(m map[string]string) []kv {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]kv, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, kv{Key: k, Value: m[k]})
	}
	return pairs
}
