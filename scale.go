// Package zedgraph implements axis scale policies for gonum/plot. A Scale
// decides how an axis maps data to positions and what the tick labels say:
// linear axes show values where they fall, ordinal axes space points evenly
// by index, and the linear-as-ordinal kind spaces points evenly while
// labeling them with the real data values.
package zedgraph

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

// Kind identifies one of the scale policies. The set is closed: every kind
// shares the same State record and differs only in how it picks ranges and
// renders labels.
type Kind int

const (
	KindLinear Kind = iota
	KindOrdinal
	KindLinearAsOrdinal
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindOrdinal:
		return "ordinal"
	case KindLinearAsOrdinal:
		return "linearordinal"
	case KindText:
		return "text"
	}
	return "unknown"
}

// State holds the range and formatting fields shared by every scale kind.
// Each field guarded by an auto flag is recomputed from the pane data on
// PickScale when the flag is set, and left alone otherwise.
type State struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	MajorStep float64 `json:"majorStep"`
	MinorStep float64 `json:"minorStep"`

	// Mag is a power-of-ten exponent divided out of values before display,
	// keeping labels in a readable range. Format is the fmt verb used to
	// render the scaled value; empty means humanized SI notation.
	Mag    int    `json:"mag"`
	Format string `json:"format"`

	MinAuto       bool `json:"minAuto"`
	MaxAuto       bool `json:"maxAuto"`
	MajorStepAuto bool `json:"majorStepAuto"`
	MinorStepAuto bool `json:"minorStepAuto"`
	MagAuto       bool `json:"magAuto"`
	FormatAuto    bool `json:"formatAuto"`
}

// DefaultState returns a State with every auto flag set.
func DefaultState() State {
	return State{
		MinAuto:       true,
		MaxAuto:       true,
		MajorStepAuto: true,
		MinorStepAuto: true,
		MagAuto:       true,
		FormatAuto:    true,
	}
}

// Scale is one axis scaling policy bound to a single axis of a Pane.
// PickScale computes the range fields from the pane's curves, and Label
// renders the text for the i'th major tick at value val.
type Scale interface {
	Kind() Kind
	State() *State
	PickScale(p *Pane, role Role)
	Label(p *Pane, i int, val float64) string
	Clone() Scale
}

// CloneScale returns an independent deep copy of s. Mutating the copy's
// state never affects the original.
func CloneScale(s Scale) Scale {
	return s.Clone()
}

const (
	targetMajorSteps = 7
	targetMinorSteps = 5
)

// calcStepSize picks a step of the form {1,2,5}·10^n such that rng/step is
// close to target. Degenerate ranges get a step of 1.
func calcStepSize(rng, target float64) float64 {
	if rng <= 0 || target <= 0 || math.IsNaN(rng) || math.IsInf(rng, 0) {
		return 1
	}

	tempStep := rng / target
	mag := math.Floor(math.Log10(tempStep))
	magPow := math.Pow10(int(mag))

	msd := tempStep / magPow
	switch {
	case msd > 5:
		msd = 10
	case msd > 2:
		msd = 5
	case msd > 1:
		msd = 2
	default:
		msd = 1
	}
	return msd * magPow
}

// calcMag returns the display magnitude for the bounds: the power of ten of
// the larger absolute bound, collapsed to zero when the values are already
// small enough to read unscaled.
func calcMag(min, max float64) int {
	absMax := math.Max(math.Abs(min), math.Abs(max))
	if absMax == 0 || math.IsNaN(absMax) || math.IsInf(absMax, 0) {
		return 0
	}
	mag := int(math.Floor(math.Log10(absMax)))
	if mag >= -3 && mag <= 3 {
		return 0
	}
	return mag
}

// calcFormat derives a fixed-point verb with enough decimal places to tell
// adjacent ticks of size step apart once values are scaled by 10^-mag.
func calcFormat(step float64, mag int) string {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return "%g"
	}
	dec := mag - int(math.Floor(math.Log10(step)))
	if dec < 0 {
		dec = 0
	}
	return "%." + strconv.Itoa(dec) + "f"
}

// setScaleMag runs the magnitude and format pass over the observed bounds
// and step hint, honoring the auto flags.
func (s *State) setScaleMag(min, max, step float64) {
	if s.MagAuto {
		s.Mag = calcMag(min, max)
	}
	if s.FormatAuto {
		s.Format = calcFormat(step, s.Mag)
	}
}

// formatValue renders an already-scaled value with the configured format.
func (s *State) formatValue(v float64) string {
	if s.Format == "" {
		return humanize.SI(v, "")
	}
	return fmt.Sprintf(s.Format, v)
}

// pickLinear is the generic range computation shared by every kind: bounds
// from the first curve on the axis, steps from the 2-5-10 ladder, then the
// magnitude and format pass. A pane with no matching curve leaves the
// bounds at their previous values.
func (s *State) pickLinear(p *Pane, role Role) {
	if c := p.FirstCurve(role); c != nil {
		min, max := c.Range(role)
		if s.MinAuto {
			s.Min = min
		}
		if s.MaxAuto {
			s.Max = max
		}
	}
	if s.MajorStepAuto {
		s.MajorStep = calcStepSize(s.Max-s.Min, targetMajorSteps)
	}
	if s.MinorStepAuto {
		s.MinorStep = calcStepSize(s.MajorStep, targetMinorSteps)
	}
	s.setScaleMag(s.Min, s.Max, s.MajorStep)
}

// ticks walks [Min, Max] by MinorStep, emitting a labelled major tick at
// every multiple of MajorStep. label receives the zero-based major tick
// index and the tick value.
func (s *State) ticks(label func(i int, v float64) string) []plot.Tick {
	minor := s.MinorStep
	if minor <= 0 {
		minor = s.MajorStep
	}
	if minor <= 0 || s.Max < s.Min {
		return nil
	}

	ratio := int(math.Round(s.MajorStep / minor))
	if ratio < 1 {
		ratio = 1
	}

	lo := int(math.Ceil(s.Min/minor - 1e-9))
	hi := int(math.Floor(s.Max/minor + 1e-9))

	ret := make([]plot.Tick, 0, hi-lo+1)
	n := 0
	for i := lo; i <= hi; i++ {
		t := plot.Tick{Value: float64(i) * minor}
		if i%ratio == 0 {
			t.Label = label(n, t.Value)
			n++
		}
		ret = append(ret, t)
	}
	return ret
}
