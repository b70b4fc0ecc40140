package engine

import "testing"

func TestEffectiveDifficulty_NoVotes(t *testing.T) {
	if got := EffectiveDifficulty(3, nil); got != 3.0 {
		t.Fatalf("expected 3.0, got %v", got)
	}
	if got := EffectiveDifficulty(5, map[string]int{}); got != 5.0 {
		t.Fatalf("expected 5.0, got %v", got)
	}
}

func TestEffectiveDifficulty_Blend(t *testing.T) {
	// Two peers both vote 5 on a declared 1: avg 5, (1+5)/2 = 3.0.
	got := EffectiveDifficulty(1, map[string]int{"u2": 5, "u3": 5})
	if got != 3.0 {
		t.Fatalf("expected 3.0, got %v", got)
	}
}

func TestEffectiveDifficulty_RoundsToOneDecimal(t *testing.T) {
	// avg = (2+3+3)/3 = 2.666..., (4+2.666)/2 = 3.333... -> 3.3
	got := EffectiveDifficulty(4, map[string]int{"a": 2, "b": 3, "c": 3})
	if got != 3.3 {
		t.Fatalf("expected 3.3, got %v", got)
	}
}

func TestEffectiveDifficulty_Bounds(t *testing.T) {
	// For any declared and votes in [1,5] the result stays in [1,5].
	for declared := 1; declared <= 5; declared++ {
		for v1 := 1; v1 <= 5; v1++ {
			for v2 := 1; v2 <= 5; v2++ {
				got := EffectiveDifficulty(declared, map[string]int{"a": v1, "b": v2})
				if got < 1.0 || got > 5.0 {
					t.Fatalf("declared=%d votes=%d,%d: %v out of [1,5]", declared, v1, v2, got)
				}
			}
		}
	}
}

func TestEffectiveDifficulty_RevoteIdempotent(t *testing.T) {
	// Overwriting a vote with the same value changes nothing.
	votes := map[string]int{"u2": 4}
	first := EffectiveDifficulty(2, votes)
	votes["u2"] = 4
	second := EffectiveDifficulty(2, votes)
	if first != second {
		t.Fatalf("revote not idempotent: %v then %v", first, second)
	}
}

func TestPointValue_HalfUp(t *testing.T) {
	cases := []struct {
		effective float64
		want      int
	}{
		{1.0, 1},
		{2.4, 2},
		{2.5, 3},
		{3.0, 3},
		{4.9, 5},
	}
	for _, tc := range cases {
		if got := PointValue(tc.effective); got != tc.want {
			t.Fatalf("PointValue(%v): expected %d, got %d", tc.effective, tc.want, got)
		}
	}
}
