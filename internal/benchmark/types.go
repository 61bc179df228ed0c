package benchmark

import (
	"encoding/json"
	"strconv"
)

// Result represents a single benchmark measurement from the results document.
//
// Method may be absent in the input; it decodes to the empty string and is
// carried through lookup and reporting unchanged. Mean defaults to zero when
// the field is absent or not coercible to a number.
type Result struct {
	Method string    `json:"method"`
	Mean   MeanNanos `json:"mean"`
}

// resultsDocument is the wire shape of the results file.
type resultsDocument struct {
	Benchmarks []Result `json:"benchmarks"`
}

// Baseline maps a method name to its recorded mean duration in nanoseconds.
// It is loaded once per invocation and never mutated.
type Baseline map[string]float64

// MeanNanos is a mean duration in nanoseconds that tolerates loosely-typed
// input: JSON numbers decode directly, numeric strings are parsed, and
// anything else defaults to zero.
type MeanNanos float64

func (m *MeanNanos) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = MeanNanos(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*m = MeanNanos(v)
			return nil
		}
	}

	*m = 0
	return nil
}
