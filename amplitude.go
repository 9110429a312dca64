package qblocks

import "fmt"

// Uniform prepares the uniform superposition over n qubits: a Hadamard
// on every qubit. It is the canonical state-preparation algorithm for
// Grover search and amplitude estimation.
type Uniform struct {
	numQubits int
}

func NewUniform(numQubits int) *Uniform { return &Uniform{numQubits: numQubits} }

func (g *Uniform) Name() string   { return "uniform" }
func (g *Uniform) NumQubits() int { return g.numQubits }

func (g *Uniform) Definition() []Instruction {
	def := make([]Instruction, g.numQubits)
	for i := range def {
		def[i] = Instruction{Gate: H(), Qubits: []int{i}}
	}
	return def
}

// AmplitudeEstimation composes phase estimation over the Grover
// diffusion of the supplied algorithm and oracle: the canonical circuit
// for estimating the probability the algorithm lands in a marked state.
// Layout: phase qubits at the low indices, then the algorithm qubits,
// then the diffusion auxiliary.
type AmplitudeEstimation struct {
	numPhaseQubits int
	algorithm      Gate
	diffusion      *GroverDiffusion
}

func NewAmplitudeEstimation(numPhaseQubits int, algorithm Gate, oracle []bool, oracleQubits []int) (*AmplitudeEstimation, error) {
	diffusion, err := NewGroverDiffusion(algorithm.NumQubits(), algorithm, oracle, oracleQubits)
	if err != nil {
		return nil, err
	}
	return &AmplitudeEstimation{
		numPhaseQubits: numPhaseQubits,
		algorithm:      algorithm,
		diffusion:      diffusion,
	}, nil
}

func (g *AmplitudeEstimation) Name() string { return fmt.Sprintf("qae%d", g.numPhaseQubits) }

func (g *AmplitudeEstimation) NumQubits() int {
	return g.numPhaseQubits + g.diffusion.NumQubits()
}

// NumPhaseQubits returns the size of the phase readout register.
func (g *AmplitudeEstimation) NumPhaseQubits() int { return g.numPhaseQubits }

func (g *AmplitudeEstimation) Definition() []Instruction {
	p := g.numPhaseQubits
	stateQubits := qrange(p, p+g.algorithm.NumQubits())

	return []Instruction{
		{Gate: g.algorithm, Qubits: stateQubits},
		{Gate: NewPhaseEstimation(p, g.diffusion), Qubits: qrange(0, g.NumQubits())},
	}
}
