package qblocks

import (
	"fmt"
	"math"
)

// QFT implements the standard quantum Fourier transform. With DoSwaps
// (the default) the output qubit order matches the little-endian DFT;
// without it the output comes out bit-reversed, which saves the swap
// network when a caller can account for the reversal itself.
type QFT struct {
	numQubits int
	DoSwaps   bool
}

func NewQFT(numQubits int) *QFT {
	return &QFT{numQubits: numQubits, DoSwaps: true}
}

func (g *QFT) Name() string   { return fmt.Sprintf("qft%d", g.numQubits) }
func (g *QFT) NumQubits() int { return g.numQubits }

// Definition processes qubits from most to least significant: Hadamard,
// then a controlled phase of pi/2^(i-j) from each lower qubit j.
func (g *QFT) Definition() []Instruction {
	var def []Instruction

	for i := g.numQubits - 1; i >= 0; i-- {
		def = append(def, Instruction{Gate: H(), Qubits: []int{i}})
		for j := 0; j < i; j++ {
			theta := math.Pi / math.Pow(2, float64(i-j))
			def = append(def, Instruction{Gate: CU1(theta), Qubits: []int{j, i}})
		}
	}

	if g.DoSwaps {
		for i := 0; i < g.numQubits/2; i++ {
			def = append(def, Instruction{Gate: Swap(), Qubits: []int{i, g.numQubits - 1 - i}})
		}
	}

	return def
}
