package qblocks

import "fmt"

// PhaseEstimation reads the eigenphase of a unitary into a register of
// phase qubits. Phase qubits occupy the low indices, the unitary's own
// qubits sit above them. The controlled unitary for phase qubit i is
// applied 2^i times; the iterated form trades depth for not needing a
// closed-form power of the unitary.
type PhaseEstimation struct {
	numPhaseQubits int
	unitary        Gate
}

func NewPhaseEstimation(numPhaseQubits int, unitary Gate) *PhaseEstimation {
	return &PhaseEstimation{numPhaseQubits: numPhaseQubits, unitary: unitary}
}

func (g *PhaseEstimation) Name() string { return fmt.Sprintf("qpe%d", g.numPhaseQubits) }

func (g *PhaseEstimation) NumQubits() int {
	return g.numPhaseQubits + g.unitary.NumQubits()
}

func (g *PhaseEstimation) Definition() []Instruction {
	var def []Instruction

	stateQubits := qrange(g.numPhaseQubits, g.NumQubits())
	controlled := Controlled(g.unitary, 1)

	for i := 0; i < g.numPhaseQubits; i++ {
		def = append(def, Instruction{Gate: H(), Qubits: []int{i}})
		qubits := append([]int{i}, stateQubits...)
		for rep := 0; rep < 1<<i; rep++ {
			def = append(def, Instruction{Gate: controlled, Qubits: qubits})
		}
	}

	def = append(def, Instruction{
		Gate:   Inverse(NewQFT(g.numPhaseQubits)),
		Qubits: qrange(0, g.numPhaseQubits),
	})

	return def
}
