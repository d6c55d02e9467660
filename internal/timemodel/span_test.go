package timemodel

import "testing"

func TestSpanMaterialize(t *testing.T) {
	abs := NewAbsoluteSpan(10, 20)
	if got := abs.Materialize(1000); got != (TimeWindow{10, 20}) {
		t.Errorf("absolute span ignores anchor, got %+v", got)
	}

	off := NewOffsetSpan(4, 40)
	if got := off.Materialize(100); got != (TimeWindow{104, 140}) {
		t.Errorf("offset span, got %+v want {104 140}", got)
	}
}

func TestReservedTimeSpanResolve(t *testing.T) {
	r := ReservedTimeSpan{Time: NewOffsetSpan(4, 40), Duration: 2}
	resolved := r.Resolve(10)
	if resolved.Window != (TimeWindow{14, 50}) {
		t.Fatalf("resolved window = %+v", resolved.Window)
	}
	interval := resolved.Interval()
	if interval != (TimeWindow{14, 16}) {
		t.Errorf("interval = %+v, want {14 16}", interval)
	}
}

func TestOptionalBreakShouldAssign(t *testing.T) {
	b := OptionalBreak{Time: NewAbsoluteSpan(10, 20), Duration: 5, Policy: SkipIfNoIntersection}
	resolved := b.Time.Materialize(0)

	if !b.ShouldAssign(resolved, 15) {
		t.Errorf("expected assignment when arrival(15) > resolved.Start(10)")
	}
	if b.ShouldAssign(resolved, 5) {
		t.Errorf("expected skip when arrival(5) <= resolved.Start(10)")
	}

	b2 := OptionalBreak{Time: NewAbsoluteSpan(10, 20), Duration: 5, Policy: SkipIfArrivalBeforeEnd}
	resolved2 := b2.Time.Materialize(0)
	if b2.ShouldAssign(resolved2, 15) {
		t.Errorf("expected skip when arrival(15) <= resolved.End(20)")
	}
	if !b2.ShouldAssign(resolved2, 25) {
		t.Errorf("expected assignment when arrival(25) > resolved.End(20)")
	}
}
