package code

import "testing"

func TestIndexIsDenseAndOrdered(t *testing.T) {
	all := All()
	if len(all) != NumCodes {
		t.Fatalf("expected %d codes, got %d", NumCodes, len(all))
	}
	for i, c := range all {
		if c.Index() != i {
			t.Fatalf("code %s at position %d has index %d", c, i, c.Index())
		}
	}
}

func TestIndexBounds(t *testing.T) {
	testcases := []struct {
		code     Code
		expected int
	}{
		{New(1, 1, 1), 0},
		{New(1, 1, 2), 1},
		{New(1, 2, 1), 5},
		{New(2, 1, 1), 25},
		{New(5, 5, 5), 124},
	}

	for _, tc := range testcases {
		if got := tc.code.Index(); got != tc.expected {
			t.Fatalf("%s: expected index %d, got %d", tc.code, tc.expected, got)
		}
	}
}

func TestEqual(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2, 3)
	c := New(3, 2, 1)

	if !a.Equal(b) {
		t.Fatalf("expected %s == %s", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("expected %s != %s", a, c)
	}
}

func TestSumAndCount(t *testing.T) {
	c := New(2, 4, 5)

	if got := c.Sum(); got != 11 {
		t.Fatalf("expected sum 11, got %d", got)
	}

	even := func(d Digit) bool { return d%2 == 0 }
	if got := c.Count(even); got != 2 {
		t.Fatalf("expected 2 even digits, got %d", got)
	}
}

func TestNumDistinct(t *testing.T) {
	testcases := []struct {
		code     Code
		expected int
	}{
		{New(1, 1, 1), 1},
		{New(1, 1, 2), 2},
		{New(1, 2, 3), 3},
	}

	for _, tc := range testcases {
		if got := tc.code.NumDistinct(); got != tc.expected {
			t.Fatalf("%s: expected %d distinct digits, got %d", tc.code, tc.expected, got)
		}
	}
}

func TestCountAdjacent(t *testing.T) {
	c := New(1, 2, 3)
	stepUp := func(a, b Digit) bool { return a+1 == b }
	if got := c.CountAdjacent(stepUp); got != 2 {
		t.Fatalf("expected 2 step-ups, got %d", got)
	}
}

func TestAllSymbolPairs(t *testing.T) {
	pairs := AllSymbolPairs()
	if len(pairs) != 3 {
		t.Fatalf("expected 3 symbol pairs, got %d", len(pairs))
	}
}
