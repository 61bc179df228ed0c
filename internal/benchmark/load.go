package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrResultsNotFound indicates the results file does not exist. This is the
// only unconditional fatal precondition of the gate.
var ErrResultsNotFound = errors.New("benchmark results file not found")

// MalformedResultsError indicates the results file exists but could not be
// parsed. It wraps the underlying decode error.
type MalformedResultsError struct {
	Path string
	Err  error
}

func (e *MalformedResultsError) Error() string {
	return fmt.Sprintf("malformed results file %s: %v", e.Path, e.Err)
}

func (e *MalformedResultsError) Unwrap() error { return e.Err }

// LoadResults reads the benchmark results document. Entry order is preserved.
func LoadResults(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrResultsNotFound, path)
		}
		return nil, err
	}

	var doc resultsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedResultsError{Path: path, Err: err}
	}

	return doc.Benchmarks, nil
}

// LoadBaseline reads the baseline table. A missing file is not an error: the
// gate proceeds with an empty table and every benchmark classifies as new.
// A file that exists but cannot be parsed also yields an empty table, with a
// non-nil error the caller should surface as a warning.
func LoadBaseline(path string) (Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Baseline{}, nil
		}
		return Baseline{}, err
	}

	var table Baseline
	if err := json.Unmarshal(data, &table); err != nil {
		return Baseline{}, err
	}
	if table == nil {
		table = Baseline{}
	}

	return table, nil
}
