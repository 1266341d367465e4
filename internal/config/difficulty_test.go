package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "solved", MaxAt: 10},
	}
	d := NewDifficultyManager(cfg, JumbleConfig{MinChance: 0.2, MaxChance: 0.8})

	tests := []struct {
		solved   int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.solved); !approx(got, tc.expected) {
			t.Errorf("Level(%d) = %v, expected %v", tc.solved, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "solved", MaxAt: 10},
	}
	d := NewDifficultyManager(cfg, JumbleConfig{MinChance: 0.2, MaxChance: 0.8})

	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(100); got != 0.3 {
		t.Errorf("disabled Level = %v, expected initial 0.3", got)
	}
}

func TestJumbleChanceFollowsSolved(t *testing.T) {
	jumble := JumbleConfig{MinChance: 0.2, MaxChance: 0.8}
	solved := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "solved", MaxAt: 100},
	}, jumble)
	if got := solved.JumbleChance(0); !approx(got, 0.2) {
		t.Errorf("JumbleChance(0) = %v, expected 0.2", got)
	}
	if got := solved.JumbleChance(50); !approx(got, 0.5) {
		t.Errorf("JumbleChance(50) = %v, expected 0.5", got)
	}
	if got := solved.JumbleChance(100); !approx(got, 0.8) {
		t.Errorf("JumbleChance(100) = %v, expected 0.8", got)
	}

	pinned := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "none", MaxAt: 100},
	}, jumble)
	if pinned.IsEnabled() {
		t.Error("progression type none should disable the manager")
	}
	for _, n := range []int{0, 100, 1000} {
		if got := pinned.JumbleChance(n); !approx(got, 0.5) {
			t.Errorf("pinned JumbleChance(%d) = %v, expected 0.5", n, got)
		}
	}
}

func TestJumbleChanceMonotonicAndBounded(t *testing.T) {
	def := DefaultLoop8Config()
	d := NewDifficultyManager(def.Difficulty, def.Jumble)

	prev := 0.0
	for solved := -3; solved <= 100; solved++ {
		p := d.JumbleChance(solved)
		if p < def.Jumble.MinChance || p > def.Jumble.MaxChance {
			t.Fatalf("JumbleChance(%d) = %v outside [%v, %v]", solved, p, def.Jumble.MinChance, def.Jumble.MaxChance)
		}
		if p < prev {
			t.Fatalf("JumbleChance(%d) = %v decreased from %v", solved, p, prev)
		}
		prev = p
	}

	if got := d.JumbleChance(0); !approx(got, 0.2) {
		t.Errorf("JumbleChance(0) = %v, expected 0.2", got)
	}
	if got := d.JumbleChance(1000); !approx(got, 0.8) {
		t.Errorf("JumbleChance(1000) = %v, expected 0.8", got)
	}
}

func TestInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{InitialLevel: 2.0, Progression: ProgressionConfig{Type: "none"}},
		JumbleConfig{MinChance: 0.1, MaxChance: 0.9})

	if got := d.Level(0); got != 1.0 {
		t.Errorf("Level with initial_level 2.0 = %v, expected 1.0", got)
	}
	if got := d.JumbleChance(0); !approx(got, 0.9) {
		t.Errorf("JumbleChance at level 1 = %v, expected 0.9", got)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
