package qblocks

import (
	"math"
	"math/cmplx"
)

type Complex = complex128

// StateVector holds the amplitudes of an n-qubit register. Qubit q maps
// to bit q of the basis-state index (little-endian).
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Apply runs a gate on the given qubits, recursively expanding composite
// gates down to primitives.
func (s *StateVector) Apply(g Gate, qubits []int) {
	s.applyGate(g, qubits, 0)
}

// applyGate walks the decomposition tree. ctrl is a bitmask of qubits
// that must all read 1 for anything to fire; controlled wrappers add
// their control qubits to it on the way down.
func (s *StateVector) applyGate(g Gate, qubits []int, ctrl int) {
	switch g := g.(type) {
	case Prim:
		s.applyPrim(g, qubits, ctrl)
		return
	case *controlledGate:
		for _, q := range qubits[:g.numControls] {
			ctrl |= 1 << q
		}
		s.applyGate(g.base, qubits[g.numControls:], ctrl)
		return
	}
	for _, inst := range g.Definition() {
		mapped := make([]int, len(inst.Qubits))
		for i, q := range inst.Qubits {
			mapped[i] = qubits[q]
		}
		s.applyGate(inst.Gate, mapped, ctrl)
	}
}

func (s *StateVector) applyPrim(p Prim, qubits []int, ctrl int) {
	switch p.Type {
	case "H":
		s.applyH(qubits[0], ctrl)
	case "X":
		s.applyX(qubits[0], ctrl)
	case "Y":
		s.applyY(qubits[0], ctrl)
	case "Z":
		s.applyZ(qubits[0], ctrl)
	case "S":
		if p.Dagger {
			s.applyPhase(qubits[0], -math.Pi/2, ctrl)
		} else {
			s.applyPhase(qubits[0], math.Pi/2, ctrl)
		}
	case "T":
		if p.Dagger {
			s.applyPhase(qubits[0], -math.Pi/4, ctrl)
		} else {
			s.applyPhase(qubits[0], math.Pi/4, ctrl)
		}
	case "RX":
		s.applyRX(qubits[0], p.Params[0], ctrl)
	case "RY":
		s.applyRY(qubits[0], p.Params[0], ctrl)
	case "RZ":
		s.applyRZ(qubits[0], p.Params[0], ctrl)
	case "U1":
		s.applyPhase(qubits[0], p.Params[0], ctrl)
	case "CU1":
		s.applyPhase(qubits[1], p.Params[0], ctrl|1<<qubits[0])
	case "SWAP":
		s.applySwap(qubits[0], qubits[1], ctrl)
	case "MCX":
		k := p.Arity - 1
		for _, q := range qubits[:k] {
			ctrl |= 1 << q
		}
		s.applyX(qubits[k], ctrl)
	}
}

func (s *StateVector) applyH(q, ctrl int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	newAmps := make([]Complex, n)
	copy(newAmps, s.Amplitudes)
	for i := 0; i < n; i++ {
		if i&bit == 0 && i&ctrl == ctrl {
			j := i | bit
			newAmps[i] = hFactor * (s.Amplitudes[i] + s.Amplitudes[j])
			newAmps[j] = hFactor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyX(q, ctrl int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 && i&ctrl == ctrl {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyY(q, ctrl int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 && i&ctrl == ctrl {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = -1i*s.Amplitudes[j], 1i*s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyZ(q, ctrl int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit != 0 && i&ctrl == ctrl {
			s.Amplitudes[i] *= -1
		}
	}
}

// applyPhase multiplies the |1⟩ component of qubit q by e^(i*theta).
// S, T, U1 and CU1 all reduce to it.
func (s *StateVector) applyPhase(q int, theta float64, ctrl int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	factor := cmplx.Exp(complex(0, theta))
	for i := 0; i < n; i++ {
		if i&bit != 0 && i&ctrl == ctrl {
			s.Amplitudes[i] *= factor
		}
	}
}

func (s *StateVector) applyRX(q int, theta float64, ctrl int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	newAmps := make([]Complex, n)
	copy(newAmps, s.Amplitudes)
	for i := 0; i < n; i++ {
		if i&bit == 0 && i&ctrl == ctrl {
			j := i | bit
			newAmps[i] = c*s.Amplitudes[i] + js*s.Amplitudes[j]
			newAmps[j] = js*s.Amplitudes[i] + c*s.Amplitudes[j]
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyRY(q int, theta float64, ctrl int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	s_ := complex(math.Sin(theta/2), 0)
	newAmps := make([]Complex, n)
	copy(newAmps, s.Amplitudes)
	for i := 0; i < n; i++ {
		if i&bit == 0 && i&ctrl == ctrl {
			j := i | bit
			newAmps[i] = c*s.Amplitudes[i] - s_*s.Amplitudes[j]
			newAmps[j] = s_*s.Amplitudes[i] + c*s.Amplitudes[j]
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyRZ(q int, theta float64, ctrl int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	for i := 0; i < n; i++ {
		if i&ctrl != ctrl {
			continue
		}
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		} else {
			s.Amplitudes[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *StateVector) applySwap(q1, q2, ctrl int) {
	n := len(s.Amplitudes)
	bit1 := 1 << q1
	bit2 := 1 << q2
	for i := 0; i < n; i++ {
		if i&bit1 != 0 && i&bit2 == 0 && i&ctrl == ctrl {
			j := (i & ^bit1) | bit2
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal |0⟩/|1⟩ probabilities per qubit.
func (s *StateVector) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	n := len(s.Amplitudes)

	for i := 0; i < n; i++ {
		prob := real(s.Amplitudes[i] * cmplx.Conj(s.Amplitudes[i]))
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}

	return probs
}

// Probability returns |amplitude|^2 of a single basis state.
func (s *StateVector) Probability(basisState int) float64 {
	amp := s.Amplitudes[basisState]
	return real(amp * cmplx.Conj(amp))
}

// BasisState describes one nonzero component of the statevector.
type BasisState struct {
	Index     int
	Amplitude Complex
	Prob      float64
	Phase     float64
}

// NonzeroStates lists the basis states holding measurable probability.
func (s *StateVector) NonzeroStates() []BasisState {
	n := len(s.Amplitudes)
	states := make([]BasisState, 0, n)

	for i := 0; i < n; i++ {
		amp := s.Amplitudes[i]
		prob := real(amp * cmplx.Conj(amp))

		if prob > 1e-10 {
			states = append(states, BasisState{
				Index:     i,
				Amplitude: amp,
				Prob:      prob,
				Phase:     cmplx.Phase(amp),
			})
		}
	}

	return states
}
