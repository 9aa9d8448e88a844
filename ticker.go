package zedgraph

import "gonum.org/v1/plot"

// Ticker adapts a Scale to gonum's plot.Ticker so it can drive an Axis:
//
//	p.X.Tick.Marker = zedgraph.Ticker{Scale: scale, Pane: pane, Role: zedgraph.RoleX}
type Ticker struct {
	Scale Scale
	Pane  *Pane
	Role  Role
}

// Ticks recomputes the scale against the pane and emits its tick marks.
// The min/max arguments are ignored in favor of the picked range so that
// the ordinal kinds stay anchored to point indices.
func (t Ticker) Ticks(_, _ float64) []plot.Tick {
	t.Scale.PickScale(t.Pane, t.Role)
	return t.Scale.State().ticks(func(i int, v float64) string {
		return t.Scale.Label(t.Pane, i, v)
	})
}
