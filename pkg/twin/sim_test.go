package twin

import (
	"fmt"
	"testing"
)

func TestAdvanceFirstTick(t *testing.T) {
	tw := motorTwin(t)

	// 10.5 + sin(0.3)*5.0 = 11.9776..., rounded to two decimals.
	if got := tw.Advance(); got != "Live RPM: 11.98 (tick: 1)" {
		t.Errorf("unexpected first advance: %q", got)
	}
	if tw.TickCount() != 1 {
		t.Errorf("expected tick 1, got %d", tw.TickCount())
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	tw := motorTwin(t)

	prev := tw.RPM()
	for i := 1; i <= 50; i++ {
		out := tw.Advance()

		if tw.TickCount() != uint32(i) {
			t.Fatalf("expected tick %d, got %d", i, tw.TickCount())
		}
		// Each step adds at least 10.5 - 5.0 = 5.5.
		if tw.RPM() <= prev {
			t.Fatalf("RPM did not increase at tick %d: %f <= %f", i, tw.RPM(), prev)
		}
		want := fmt.Sprintf("Live RPM: %.2f (tick: %d)", tw.RPM(), i)
		if out != want {
			t.Fatalf("output mismatch at tick %d: %q != %q", i, out, want)
		}
		prev = tw.RPM()
	}
}

func TestAdvanceDeterministic(t *testing.T) {
	a := motorTwin(t)
	b := motorTwin(t)

	for i := 0; i < 100; i++ {
		if outA, outB := a.Advance(), b.Advance(); outA != outB {
			t.Fatalf("runs diverged at step %d: %q != %q", i, outA, outB)
		}
	}
}

func TestReset(t *testing.T) {
	tw := motorTwin(t)

	firstRun := make([]string, 5)
	for i := range firstRun {
		firstRun[i] = tw.Advance()
	}

	tw.Reset()
	if tw.RPM() != 0.0 || tw.TickCount() != 0 {
		t.Fatalf("expected zeroed state after reset, got rpm=%f tick=%d", tw.RPM(), tw.TickCount())
	}

	// Advancing after reset reproduces the original sequence exactly.
	for i := range firstRun {
		if got := tw.Advance(); got != firstRun[i] {
			t.Errorf("post-reset step %d diverged: %q != %q", i, got, firstRun[i])
		}
	}
}

func TestResetIdempotent(t *testing.T) {
	tw := motorTwin(t)

	tw.Reset()
	tw.Reset()
	if tw.RPM() != 0.0 || tw.TickCount() != 0 {
		t.Errorf("repeated reset changed state: rpm=%f tick=%d", tw.RPM(), tw.TickCount())
	}

	if got := tw.Advance(); got != "Live RPM: 11.98 (tick: 1)" {
		t.Errorf("unexpected advance after reset: %q", got)
	}
}

func TestSimulationDoesNotTouchShell(t *testing.T) {
	tw := motorTwin(t)

	before := tw.ExportJSON()
	for i := 0; i < 10; i++ {
		tw.Advance()
	}
	tw.Reset()
	tw.Advance()

	if after := tw.ExportJSON(); after != before {
		t.Errorf("simulation altered the shell document:\nbefore: %s\nafter:  %s", before, after)
	}
}
