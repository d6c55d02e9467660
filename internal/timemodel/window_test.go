package timemodel

import "testing"

func TestTimeWindowIntersects(t *testing.T) {
	cases := []struct {
		name     string
		a, b     TimeWindow
		want     bool
		wantExcl bool
	}{
		{"disjoint", TimeWindow{0, 5}, TimeWindow{10, 15}, false, false},
		{"touching", TimeWindow{0, 5}, TimeWindow{5, 10}, true, false},
		{"overlap", TimeWindow{0, 10}, TimeWindow{5, 15}, true, true},
		{"contained", TimeWindow{0, 10}, TimeWindow{2, 3}, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Errorf("Intersects() = %v, want %v", got, c.want)
			}
			if got := c.a.IntersectsExclusive(c.b); got != c.wantExcl {
				t.Errorf("IntersectsExclusive() = %v, want %v", got, c.wantExcl)
			}
		})
	}
}

func TestTimeWindowOverlapping(t *testing.T) {
	a := TimeWindow{0, 10}
	b := TimeWindow{5, 15}
	got, ok := a.Overlapping(b)
	if !ok {
		t.Fatalf("expected overlap")
	}
	if got != (TimeWindow{5, 10}) {
		t.Errorf("Overlapping() = %+v, want {5 10}", got)
	}

	if _, ok := (TimeWindow{0, 1}).Overlapping(TimeWindow{5, 6}); ok {
		t.Errorf("expected no overlap")
	}
}

func TestNewTimeWindowClampsInverted(t *testing.T) {
	w := NewTimeWindow(10, 5)
	if w.Start != 10 || w.End != 10 {
		t.Errorf("NewTimeWindow(10,5) = %+v, want {10 10}", w)
	}
}

func TestTimeWindowShift(t *testing.T) {
	w := TimeWindow{Start: 5, End: 10}.Shift(3)
	if w != (TimeWindow{8, 13}) {
		t.Errorf("Shift(3) = %+v, want {8 13}", w)
	}
}
