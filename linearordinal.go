package zedgraph

import "math"

// LinearAsOrdinalScale displays linear data values at evenly spaced ordinal
// positions: points are laid out by index like an ordinal axis, but the
// major tick labels show the first curve's X values. Useful when samples
// are ordered and roughly evenly spaced and the exact spacing carries no
// meaning.
type LinearAsOrdinalScale struct {
	state State
}

// NewLinearAsOrdinalScale returns a linear-as-ordinal scale with every
// field on auto.
func NewLinearAsOrdinalScale() *LinearAsOrdinalScale {
	return &LinearAsOrdinalScale{state: DefaultState()}
}

func (s *LinearAsOrdinalScale) Kind() Kind    { return KindLinearAsOrdinal }
func (s *LinearAsOrdinalScale) State() *State { return &s.state }

// PickScale runs the generic linear pass, overrides the bounds with the
// ordinal position domain, then derives the magnitude and format from the
// first curve's range along the owning axis over the major step target. A
// pane with no matching curve leaves the bounds at their previous values
// and the magnitude pass sees a zero range; that boundary condition is
// deliberate.
func (s *LinearAsOrdinalScale) PickScale(p *Pane, role Role) {
	st := &s.state
	st.pickLinear(p, role)

	var tMin, tMax float64
	if c := p.FirstCurve(role); c != nil {
		tMin, tMax = c.Range(role)
	}

	pickOrdinal(st, p, role)
	st.setScaleMag(tMin, tMax, (tMax-tMin)/targetMajorSteps)
}

// Label shows the first curve's X value for the point at ordinal position
// val, scaled down by the display magnitude. Positions outside the first
// curve's points, and panes with no curves, yield an empty label.
func (s *LinearAsOrdinalScale) Label(p *Pane, _ int, val float64) string {
	if p == nil || len(p.Curves) == 0 {
		return ""
	}
	c := p.Curves[0]
	i := int(val) - 1
	if c.Points == nil || i < 0 || i >= c.Points.Len() {
		return ""
	}
	x, _ := c.Points.XY(i)
	return s.state.formatValue(x / math.Pow10(s.state.Mag))
}

// Clone returns an independent copy of the scale.
func (s *LinearAsOrdinalScale) Clone() Scale {
	c := *s
	return &c
}
