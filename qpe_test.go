package qblocks

import (
	"math"
	"testing"
)

func TestPhaseEstimationExactPhases(t *testing.T) {
	// A U1(2*pi*j/2^p) has eigenstate |1⟩ with eigenphase j/2^p, exactly
	// representable in p bits: the readout must be deterministic.
	for p := 1; p <= 3; p++ {
		for j := 0; j < 1<<p; j++ {
			theta := 2 * math.Pi * float64(j) / float64(int(1)<<p)
			qpe := NewPhaseEstimation(p, U1(theta))

			if qpe.NumQubits() != p+1 {
				t.Fatalf("p=%d: gate spans %d qubits", p, qpe.NumQubits())
			}

			s := prepareBasis(p+1, 1<<p) // eigenstate |1⟩ on the state qubit
			s.Apply(qpe, qrange(0, p+1))

			want := j | 1<<p
			if prob := s.Probability(want); math.Abs(prob-1) > 1e-6 {
				t.Errorf("p=%d j=%d: P(|%b⟩) = %g, want 1", p, j, want, prob)
			}
		}
	}
}

func TestPhaseEstimationZeroEigenstate(t *testing.T) {
	// |0⟩ has eigenphase 0 under U1: the phase register must read 0.
	p := 3
	qpe := NewPhaseEstimation(p, U1(2*math.Pi*5/8))

	s := NewStateVector(p + 1)
	s.Apply(qpe, qrange(0, p+1))

	if prob := s.Probability(0); math.Abs(prob-1) > 1e-6 {
		t.Errorf("P(|0⟩) = %g, want 1", prob)
	}
}

func TestPhaseEstimationMultiQubitUnitary(t *testing.T) {
	// CU1 over two state qubits, eigenstate |11⟩ with phase 1/4.
	p := 2
	theta := 2 * math.Pi / 4
	qpe := NewPhaseEstimation(p, CU1(theta))

	s := prepareBasis(p+2, 0b11<<p)
	s.Apply(qpe, qrange(0, p+2))

	want := 1 | 0b11<<p
	if prob := s.Probability(want); math.Abs(prob-1) > 1e-6 {
		t.Errorf("P(|%b⟩) = %g, want 1", want, prob)
	}
}
