package zedgraph

import (
	"fmt"
	"testing"

	"gonum.org/v1/plot/plotter"
)

func TestOrdinalPick(t *testing.T) {
	p := &Pane{}
	p.Add(&Curve{Label: "a", Points: plotter.XYs{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}})
	p.Add(&Curve{Label: "b", Points: plotter.XYs{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: 5}}, Y2: true})

	s := NewOrdinalScale()
	s.PickScale(p, RoleX)

	st := s.State()
	// The longest curve on the axis sets the domain.
	if st.Min != 0.5 || st.Max != 5.5 {
		t.Errorf("range = [%v, %v], expected [0.5, 5.5]", st.Min, st.Max)
	}
	if st.MajorStep != 1 || st.MinorStep != 1 {
		t.Errorf("steps = %v/%v, expected 1/1", st.MajorStep, st.MinorStep)
	}
	if st.Mag != 0 {
		t.Errorf("Mag = %d, expected 0", st.Mag)
	}

	for i, want := range []string{"1", "2", "3", "4", "5"} {
		if got := s.Label(p, i, float64(i+1)); got != want {
			t.Errorf("Label(%d) = %q, expected %q", i+1, got, want)
		}
	}
}

func TestOrdinalPickRoles(t *testing.T) {
	p := &Pane{}
	p.Add(&Curve{Label: "primary", Points: plotter.XYs{{X: 1, Y: 1}, {X: 2, Y: 2}}})
	p.Add(&Curve{Label: "secondary", Points: plotter.XYs{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}, Y2: true})

	table := []struct {
		role Role
		max  float64
	}{
		{RoleX, 3.5},
		{RoleY, 2.5},
		{RoleY2, 3.5},
	}

	for _, row := range table {
		s := NewOrdinalScale()
		s.PickScale(p, row.role)
		if got := s.State().Max; got != row.max {
			t.Errorf("role %v: Max = %v, expected %v", row.role, got, row.max)
		}
	}
}

func TestTextScaleLabels(t *testing.T) {
	s := NewTextScale("jan", "feb", "mar")
	s.PickScale(&Pane{}, RoleX)

	if st := s.State(); st.Min != 0.5 || st.Max != 3.5 {
		t.Errorf("range = [%v, %v], expected [0.5, 3.5]", st.Min, st.Max)
	}

	table := []struct {
		val   float64
		label string
	}{
		{1, "jan"},
		{2, "feb"},
		{3, "mar"},
		{3.4, "mar"},
		{0, ""},
		{4, ""},
	}

	for _, row := range table {
		if got := s.Label(nil, 0, row.val); got != row.label {
			t.Errorf("Label(%v) = %q, expected %q", row.val, got, row.label)
		}
	}
}

func TestTextScaleStepCoversLabels(t *testing.T) {
	labels := make([]string, 40)
	for i := range labels {
		labels[i] = fmt.Sprintf("s%d", i+1)
	}

	s := NewTextScale(labels...)
	s.PickScale(&Pane{}, RoleX)

	st := s.State()
	if st.Min != 0.5 || st.Max != 40.5 {
		t.Errorf("range = [%v, %v], expected [0.5, 40.5]", st.Min, st.Max)
	}
	// The step follows the label list, not the (empty) curve domain.
	if st.MajorStep != 10 {
		t.Errorf("MajorStep = %v, expected 10", st.MajorStep)
	}
}

func TestTextScaleCloneIndependentLabels(t *testing.T) {
	s := NewTextScale("a", "b")
	c := s.Clone().(*TextScale)
	c.Labels[0] = "z"
	if s.Labels[0] != "a" {
		t.Errorf("mutating the clone's labels affected the original: %v", s.Labels)
	}
}
