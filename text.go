package zedgraph

import (
	"math"
	"slices"
)

// TextScale positions points ordinally and draws labels from a fixed list
// rather than from the data. Ticks beyond the label list are unlabelled.
type TextScale struct {
	state  State
	Labels []string
}

// NewTextScale returns a text scale over the given labels with every state
// field on auto.
func NewTextScale(labels ...string) *TextScale {
	return &TextScale{state: DefaultState(), Labels: labels}
}

func (s *TextScale) Kind() Kind    { return KindText }
func (s *TextScale) State() *State { return &s.state }

// PickScale sets the range to cover the label list, falling back to the
// curves' ordinal domain when no labels are set.
func (s *TextScale) PickScale(p *Pane, role Role) {
	st := &s.state
	pickOrdinal(st, p, role)
	if n := len(s.Labels); n > 0 {
		if st.MinAuto {
			st.Min = 0.5
		}
		if st.MaxAuto {
			st.Max = float64(n) + 0.5
		}
		// The label list can be wider than the curves, so the step has to
		// be rederived over the widened bounds.
		if st.MajorStepAuto {
			st.MajorStep = math.Max(1, math.Round(calcStepSize(st.Max-st.Min, targetMajorSteps)))
		}
	}
}

// Label returns the configured label at ordinal position val, or "" when
// the position is outside the list.
func (s *TextScale) Label(_ *Pane, _ int, val float64) string {
	i := int(math.Round(val)) - 1
	if i < 0 || i >= len(s.Labels) {
		return ""
	}
	return s.Labels[i]
}

// Clone returns an independent copy of the scale, label list included.
func (s *TextScale) Clone() Scale {
	return &TextScale{state: s.state, Labels: slices.Clone(s.Labels)}
}
