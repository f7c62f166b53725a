package book

import "testing"

func TestLineCounterStartsAtOne(t *testing.T) {
	c := NewLineCounter()
	if c.Current() != 1 {
		t.Errorf("Current() = %d, want 1", c.Current())
	}
}

func TestLineCounterLabel(t *testing.T) {
	tests := []struct {
		advances int
		want     string
	}{
		{0, "   1 "},
		{1, "   2 "},
		{9, "  10 "},
		{99, " 100 "},
		{999, "1000 "},
	}

	for _, tt := range tests {
		c := NewLineCounter()
		for i := 0; i < tt.advances; i++ {
			c.Advance()
		}
		if got := c.Label(); got != tt.want {
			t.Errorf("after %d advances Label() = %q, want %q", tt.advances, got, tt.want)
		}
	}
}

func TestLineCounterLabelDoesNotAdvance(t *testing.T) {
	c := NewLineCounter()
	_ = c.Label()
	_ = c.Label()
	if c.Current() != 1 {
		t.Errorf("Current() = %d after Label() calls, want 1", c.Current())
	}
}

func TestLineCounterAdvanceIsMonotonic(t *testing.T) {
	c := NewLineCounter()
	for i := 2; i <= 50; i++ {
		c.Advance()
		if c.Current() != i {
			t.Fatalf("Current() = %d, want %d", c.Current(), i)
		}
	}
}
