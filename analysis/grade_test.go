package analysis

import "testing"

func TestScoreToGradeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{10, "A+"},
		{9, "A+"},
		{8.999, "A"},
		{8, "A"},
		{7.5, "B"},
		{7, "B"},
		{6, "C"},
		{5.0, "D"},
		{4.999, "F"},
		{1, "F"},
	}
	for _, c := range cases {
		if got := ScoreToGrade(c.score); got != c.want {
			t.Errorf("ScoreToGrade(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}
