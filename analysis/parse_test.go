package analysis

import "testing"

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"chatty", `Sure! Here is the analysis: {"a":1} Hope that helps.`, `{"a":1}`},
		{"nested", `prefix {"a":{"b":2}} suffix`, `{"a":{"b":2}}`},
	}
	for _, c := range cases {
		got, err := ExtractJSONObject(c.raw)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestExtractJSONObjectNoJSON(t *testing.T) {
	if _, err := ExtractJSONObject("no json here at all"); err == nil {
		t.Errorf("expected error for response without JSON")
	}
}

func TestDecodeJSONObject(t *testing.T) {
	var out struct {
		UserType string `json:"user_type"`
	}
	raw := "```json\n{\"user_type\": \"creative\"}\n```"
	if err := DecodeJSONObject(raw, &out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if out.UserType != "creative" {
		t.Errorf("user_type = %q, want creative", out.UserType)
	}

	if err := DecodeJSONObject(`{"user_type": truncated`, &out); err == nil {
		t.Errorf("expected error for invalid JSON")
	}
}

func TestClassifyUserType(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{0, "casual"},
		{10, "casual"},
		{11, "creative"},
		{50, "creative"},
		{51, "professional"},
		{500, "professional"},
	}
	for _, c := range cases {
		if got := ClassifyUserType(c.total); got != c.want {
			t.Errorf("ClassifyUserType(%d) = %q, want %q", c.total, got, c.want)
		}
	}
}
