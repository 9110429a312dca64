package qblocks

import (
	"errors"
	"fmt"
	"math"
)

// ErrSizeMismatch is returned when a boolean vector's length is not the
// power of two matching its derived input qubit count.
var ErrSizeMismatch = errors.New("boolean vector length does not match 2^qubits")

// numInputQubits recovers k from a vector length N = 2^k. The -0.5
// offset keeps the float log from rounding down at exact powers of two;
// callers must still verify N == 1<<k.
func numInputQubits(n int) int {
	return int(math.Log2(float64(n)-0.5) + 1.0)
}

// BooleanOracle flips its output qubit wherever the input register
// encodes a true entry of the boolean vector. Inputs occupy the low
// qubits (bit 0 of the index on qubit 0), the output qubit is last.
type BooleanOracle struct {
	vector    []bool
	numInputs int
}

func NewBooleanOracle(vector []bool) (*BooleanOracle, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrSizeMismatch)
	}
	k := numInputQubits(len(vector))
	if len(vector) != 1<<k {
		return nil, fmt.Errorf("%w: %d entries for %d input qubits", ErrSizeMismatch, len(vector), k)
	}
	return &BooleanOracle{vector: vector, numInputs: k}, nil
}

func (g *BooleanOracle) Name() string   { return "oracle" }
func (g *BooleanOracle) NumQubits() int { return g.numInputs + 1 }

// NumInputs returns the number of input qubits (excludes the output).
func (g *BooleanOracle) NumInputs() int { return g.numInputs }

// Definition appends one polarity-controlled X per true entry, keyed to
// that entry's little-endian bit pattern.
func (g *BooleanOracle) Definition() []Instruction {
	var def []Instruction
	qubits := qrange(0, g.numInputs+1)

	for idx, v := range g.vector {
		if !v {
			continue
		}
		var pattern []bool
		if g.numInputs > 0 {
			pattern = make([]bool, g.numInputs)
			for b := range pattern {
				pattern[b] = idx>>b&1 == 1
			}
		}
		def = append(def, Instruction{Gate: NewPatternMCX(g.numInputs, pattern), Qubits: qubits})
	}

	return def
}

// zeroStateVector marks only the all-zero state over numQubits inputs.
func zeroStateVector(numQubits int) []bool {
	v := make([]bool, 1<<numQubits)
	v[0] = true
	return v
}
