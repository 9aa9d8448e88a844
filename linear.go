package zedgraph

import "math"

// LinearScale positions values proportionally along the axis. It is the
// plain numeric axis and the base computation the other kinds start from.
type LinearScale struct {
	state State
}

// NewLinearScale returns a linear scale with every field on auto.
func NewLinearScale() *LinearScale {
	return &LinearScale{state: DefaultState()}
}

func (s *LinearScale) Kind() Kind    { return KindLinear }
func (s *LinearScale) State() *State { return &s.state }

// PickScale computes the range from the first curve on the axis.
func (s *LinearScale) PickScale(p *Pane, role Role) {
	s.state.pickLinear(p, role)
}

// Label renders the tick value scaled down by the display magnitude.
func (s *LinearScale) Label(_ *Pane, _ int, val float64) string {
	return s.state.formatValue(val / math.Pow10(s.state.Mag))
}

// Clone returns an independent copy of the scale.
func (s *LinearScale) Clone() Scale {
	c := *s
	return &c
}
