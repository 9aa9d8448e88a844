package zedgraph

import "math"

// OrdinalScale positions points by their 1-based index, ignoring the data
// values along the axis. Labels are the ordinal numbers themselves.
type OrdinalScale struct {
	state State
}

// NewOrdinalScale returns an ordinal scale with every field on auto.
func NewOrdinalScale() *OrdinalScale {
	return &OrdinalScale{state: DefaultState()}
}

func (s *OrdinalScale) Kind() Kind    { return KindOrdinal }
func (s *OrdinalScale) State() *State { return &s.state }

// PickScale sets the range to the ordinal position domain of the axis.
func (s *OrdinalScale) PickScale(p *Pane, role Role) {
	pickOrdinal(&s.state, p, role)
}

// Label renders the ordinal number at the tick.
func (s *OrdinalScale) Label(_ *Pane, _ int, val float64) string {
	return s.state.formatValue(val)
}

// Clone returns an independent copy of the scale.
func (s *OrdinalScale) Clone() Scale {
	c := *s
	return &c
}

// pickOrdinal overrides the bounds with the ordinal position domain
// 0.5 .. n+0.5, where n is the largest point count among the curves on the
// axis, and snaps the steps to whole ordinals. The as-ordinal kinds run it
// after their own base pass. A pane with no matching curve leaves the
// bounds at their previous values.
func pickOrdinal(s *State, p *Pane, role Role) {
	n := 0
	for _, c := range p.Curves {
		if !c.matches(role) || c.Points == nil {
			continue
		}
		if l := c.Points.Len(); l > n {
			n = l
		}
	}

	if n > 0 {
		if s.MinAuto {
			s.Min = 0.5
		}
		if s.MaxAuto {
			s.Max = float64(n) + 0.5
		}
	}
	if s.MajorStepAuto {
		s.MajorStep = math.Max(1, math.Round(calcStepSize(s.Max-s.Min, targetMajorSteps)))
	}
	if s.MinorStepAuto {
		s.MinorStep = 1
	}
	if s.MagAuto {
		s.Mag = 0
	}
	if s.FormatAuto {
		s.Format = "%.0f"
	}
}
