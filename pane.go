package zedgraph

import "gonum.org/v1/plot/plotter"

// Role names the axis a scale belongs to.
type Role int

const (
	RoleX Role = iota
	RoleY
	RoleY2
)

// Curve is one named data series on a pane. Points may be any plotter.XYer;
// Y2 selects the secondary Y axis.
type Curve struct {
	Label  string
	Points plotter.XYer
	Y2     bool
}

// matches reports whether the curve is drawn against the given axis role.
// Every curve shares the X axis.
func (c *Curve) matches(role Role) bool {
	switch role {
	case RoleY:
		return !c.Y2
	case RoleY2:
		return c.Y2
	}
	return true
}

// Range returns the data extent of the curve along role. A curve with no
// points reports a zero range.
func (c *Curve) Range(role Role) (min, max float64) {
	if c.Points == nil || c.Points.Len() == 0 {
		return 0, 0
	}
	if role == RoleX {
		return plotter.Range(plotter.XValues{XYer: c.Points})
	}
	return plotter.Range(plotter.YValues{XYer: c.Points})
}

// Pane owns an ordered list of curves. Scales read the pane; they never
// modify it.
type Pane struct {
	Curves []*Curve
}

// Add appends a curve to the pane.
func (p *Pane) Add(c *Curve) {
	p.Curves = append(p.Curves, c)
}

// FirstCurve returns the first curve drawn against role, or nil.
func (p *Pane) FirstCurve(role Role) *Curve {
	for _, c := range p.Curves {
		if c.matches(role) {
			return c
		}
	}
	return nil
}

// OrdinalPoints presents an XYer's points at 1-based ordinal X positions,
// preserving Y. Plot data through this adapter when the X axis uses one of
// the ordinal scale kinds, so the drawn positions line up with the ticks.
type OrdinalPoints struct {
	plotter.XYer
}

// XY returns the i'th point at its ordinal position.
func (o OrdinalPoints) XY(i int) (x, y float64) {
	_, y = o.XYer.XY(i)
	return float64(i + 1), y
}
