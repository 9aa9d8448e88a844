package zedgraph

import (
	"encoding/binary"
	"fmt"
	"os"

	"gonum.org/v1/plot/plotter"
)

// Trace is a time-series measurement buffer from a test instrument or data
// acquisition source with a fixed sample rate. It implements plotter.XYer
// using the sample rate to calculate X-values in seconds starting from 0.
type Trace struct {
	Samples    []float64
	SampleRate float64 // samples per second
}

var _ plotter.XYer = (*Trace)(nil)

// Len returns the number of x, y pairs.
func (t *Trace) Len() int {
	return len(t.Samples)
}

// XY returns an x, y pair.
func (t *Trace) XY(i int) (x, y float64) {
	return float64(i) / t.SampleRate, t.Samples[i]
}

// ReadTrace loads a big-endian binary file containing size float64 values
// and constructs a Trace with the given sample rate in samples per second.
func ReadTrace(path string, size int, rate float64) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := make([]float64, size)
	if err := binary.Read(f, binary.BigEndian, &p); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Trace{
		Samples:    p,
		SampleRate: rate,
	}, nil
}
