package zedgraph

import (
	"testing"

	"gonum.org/v1/plot/plotter"
)

func testPane(xs ...float64) *Pane {
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i] = plotter.XY{X: x, Y: float64(i) * 10}
	}
	p := &Pane{}
	p.Add(&Curve{Label: "data", Points: pts})
	return p
}

func TestLinearAsOrdinalLabels(t *testing.T) {
	p := testPane(1, 5, 100)
	s := NewLinearAsOrdinalScale()
	s.PickScale(p, RoleX)

	// Positions are ordinal regardless of the data spacing.
	if st := s.State(); st.Min != 0.5 || st.Max != 3.5 {
		t.Errorf("range = [%v, %v], expected [0.5, 3.5]", st.Min, st.Max)
	}

	table := []struct {
		val   float64
		label string
	}{
		{1, "1"},
		{2, "5"},
		{3, "100"},
		{0, ""},
		{-1, ""},
		{4, ""},
	}

	for _, row := range table {
		if got := s.Label(p, 0, row.val); got != row.label {
			t.Errorf("Label(%v) = %q, expected %q", row.val, got, row.label)
		}
	}
}

func TestLinearAsOrdinalEmptyPane(t *testing.T) {
	p := &Pane{}
	s := NewLinearAsOrdinalScale()
	s.PickScale(p, RoleX)

	// Bounds stay at their zero values; the magnitude pass sees a zero
	// range. Inherited boundary condition, not an error.
	if st := s.State(); st.Min != 0 || st.Max != 0 || st.Mag != 0 {
		t.Errorf("state after empty pick: %+v", *st)
	}

	for _, val := range []float64{-1, 0, 1, 2} {
		if got := s.Label(p, 0, val); got != "" {
			t.Errorf("Label(%v) on empty pane = %q, expected empty", val, got)
		}
	}
}

func TestLinearAsOrdinalMagnitude(t *testing.T) {
	p := testPane(10000, 20000, 50000, 90000)
	s := NewLinearAsOrdinalScale()
	s.PickScale(p, RoleX)

	if got := s.State().Mag; got != 4 {
		t.Errorf("Mag = %d, expected 4", got)
	}
	// Labels are divided down by the magnitude.
	if got := s.Label(p, 0, 3); got != "5" {
		t.Errorf("Label(3) = %q, expected %q", got, "5")
	}
}

func TestLinearAsOrdinalMagnitudeUsesAxisRange(t *testing.T) {
	pts := plotter.XYs{{X: 1, Y: 10000}, {X: 2, Y: 50000}, {X: 3, Y: 90000}}
	p := &Pane{}
	p.Add(&Curve{Label: "data", Points: pts})

	// On a Y axis the magnitude comes from the curve's Y range, not from X.
	s := NewLinearAsOrdinalScale()
	s.PickScale(p, RoleY)
	if got := s.State().Mag; got != 4 {
		t.Errorf("Mag = %d, expected 4", got)
	}
}

func TestLinearAsOrdinalClone(t *testing.T) {
	p := testPane(1, 5, 100)
	s := NewLinearAsOrdinalScale()
	s.PickScale(p, RoleX)

	c := CloneScale(s).(*LinearAsOrdinalScale)
	if *c.State() != *s.State() {
		t.Errorf("clone state %+v, expected %+v", *c.State(), *s.State())
	}

	c.State().Format = "%e"
	c.State().Mag = 5
	if s.State().Format == "%e" || s.State().Mag == 5 {
		t.Errorf("mutating the clone affected the original: %+v", *s.State())
	}
}
