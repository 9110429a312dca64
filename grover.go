package qblocks

import "fmt"

// GroverDiffusion is the amplitude-amplification step of Grover's
// algorithm, generalized to an arbitrary state-preparation gate and an
// arbitrary boolean marking function over a subset of its qubits. It
// spans numQubits+1 qubits; the extra auxiliary qubit (highest index)
// is prepared into |−⟩ so that both oracles act as phase oracles via
// kickback, and is restored to |0⟩ at the end.
type GroverDiffusion struct {
	numQubits    int // excludes the auxiliary qubit
	algorithm    Gate
	oracle       *BooleanOracle
	oracleQubits []int
}

// NewGroverDiffusion builds the diffusion operator for the given
// state-preparation algorithm and marking oracle. oracleQubits names the
// algorithm qubits the oracle reads, in bit order.
func NewGroverDiffusion(numQubits int, algorithm Gate, oracle []bool, oracleQubits []int) (*GroverDiffusion, error) {
	marking, err := NewBooleanOracle(oracle)
	if err != nil {
		return nil, err
	}
	if len(oracleQubits) != marking.NumInputs() {
		return nil, fmt.Errorf("oracle reads %d qubits, got %d oracle qubits", marking.NumInputs(), len(oracleQubits))
	}
	if algorithm.NumQubits() != numQubits {
		return nil, fmt.Errorf("algorithm spans %d qubits, want %d", algorithm.NumQubits(), numQubits)
	}
	return &GroverDiffusion{
		numQubits:    numQubits,
		algorithm:    algorithm,
		oracle:       marking,
		oracleQubits: oracleQubits,
	}, nil
}

func (g *GroverDiffusion) Name() string   { return "diffusion" }
func (g *GroverDiffusion) NumQubits() int { return g.numQubits + 1 }

func (g *GroverDiffusion) Definition() []Instruction {
	aux := g.numQubits
	state := qrange(0, g.numQubits)

	// The zero-state oracle reads every algorithm qubit and targets the
	// auxiliary, phase-flipping |0...0⟩ and nothing else: the inversion
	// about the mean, up to global phase.
	zeroOracle, _ := NewBooleanOracle(zeroStateVector(g.numQubits))

	def := []Instruction{
		// Prepare the auxiliary qubit into |−⟩.
		{Gate: H(), Qubits: []int{aux}},
		{Gate: Z(), Qubits: []int{aux}},

		// Marking oracle, phase-flipping via the auxiliary qubit.
		{Gate: g.oracle, Qubits: append(append([]int{}, g.oracleQubits...), aux)},

		{Gate: Inverse(g.algorithm), Qubits: state},

		{Gate: zeroOracle, Qubits: qrange(0, g.numQubits+1)},

		{Gate: g.algorithm, Qubits: state},

		// Restore the auxiliary qubit to |0⟩.
		{Gate: Z(), Qubits: []int{aux}},
		{Gate: H(), Qubits: []int{aux}},
	}

	return def
}
