package zedgraph

import (
	"encoding/json"
	"fmt"
)

// Schema tags written alongside each kind's state. Read and discarded on
// load; reserved for compatibility branching if a kind's on-disk shape
// ever changes.
const (
	linearSchema          = 10
	ordinalSchema         = 10
	linearAsOrdinalSchema = 10
	textSchema            = 10
)

func schemaFor(k Kind) int {
	switch k {
	case KindOrdinal:
		return ordinalSchema
	case KindLinearAsOrdinal:
		return linearAsOrdinalSchema
	case KindText:
		return textSchema
	}
	return linearSchema
}

type scaleEnvelope struct {
	Kind   string   `json:"kind"`
	State  State    `json:"state"`
	Labels []string `json:"labels,omitempty"`
	Schema int      `json:"schema"`
}

// MarshalScale encodes s as a JSON envelope: the kind discriminator, the
// shared state keyed by field name, then the kind's schema tag.
func MarshalScale(s Scale) ([]byte, error) {
	env := scaleEnvelope{
		Kind:   s.Kind().String(),
		State:  *s.State(),
		Schema: schemaFor(s.Kind()),
	}
	if ts, ok := s.(*TextScale); ok {
		env.Labels = ts.Labels
	}
	return json.Marshal(env)
}

// UnmarshalScale decodes an envelope produced by MarshalScale and rebuilds
// the scale it describes. The schema tag is accepted and ignored.
func UnmarshalScale(data []byte) (Scale, error) {
	var env scaleEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("zedgraph: decode scale: %w", err)
	}

	switch env.Kind {
	case KindLinear.String():
		return &LinearScale{state: env.State}, nil
	case KindOrdinal.String():
		return &OrdinalScale{state: env.State}, nil
	case KindLinearAsOrdinal.String():
		return &LinearAsOrdinalScale{state: env.State}, nil
	case KindText.String():
		return &TextScale{state: env.State, Labels: env.Labels}, nil
	}
	return nil, fmt.Errorf("zedgraph: unknown scale kind %q", env.Kind)
}
