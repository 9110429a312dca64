package qblocks

import (
	"errors"
	"math"
	"testing"
)

func TestUniform(t *testing.T) {
	n := 3
	s := NewStateVector(n)
	s.Apply(NewUniform(n), qrange(0, n))

	want := 1.0 / float64(int(1)<<n)
	for i := 0; i < 1<<n; i++ {
		if math.Abs(s.Probability(i)-want) > tolerance {
			t.Fatalf("P(|%d⟩) = %g, want %g", i, s.Probability(i), want)
		}
	}
}

func TestAmplitudeEstimationExactHalf(t *testing.T) {
	// a = 1/2 over a single-qubit uniform algorithm: the diffusion
	// operator's eigenphases are exactly ±1/4, so with two phase qubits
	// the readout concentrates on j = 1 and j = 3.
	qae, err := NewAmplitudeEstimation(2, NewUniform(1), []bool{false, true}, []int{0})
	if err != nil {
		t.Fatal(err)
	}
	if qae.NumQubits() != 4 { // 2 phase + 1 state + 1 auxiliary
		t.Fatalf("gate spans %d qubits, want 4", qae.NumQubits())
	}

	s := NewStateVector(4)
	s.Apply(qae, qrange(0, 4))

	// Marginal of the phase register (qubits 0 and 1).
	phaseProb := make([]float64, 4)
	for _, bs := range s.NonzeroStates() {
		phaseProb[bs.Index&0b11] += bs.Prob
	}

	if got := phaseProb[1] + phaseProb[3]; got < 0.999 {
		t.Errorf("P(j=1) + P(j=3) = %g, want ~1 (distribution: %v)", got, phaseProb)
	}
}

func TestAmplitudeEstimationReadoutMapsToAmplitude(t *testing.T) {
	// sin(pi*j/2^p)^2 recovers a from the readout: both exact peaks for
	// a = 1/2 map back to 1/2.
	p := 2
	for _, j := range []int{1, 3} {
		a := math.Pow(math.Sin(math.Pi*float64(j)/float64(int(1)<<p)), 2)
		if math.Abs(a-0.5) > tolerance {
			t.Errorf("j=%d maps to a = %g, want 0.5", j, a)
		}
	}
}

func TestAmplitudeEstimationValidation(t *testing.T) {
	if _, err := NewAmplitudeEstimation(2, NewUniform(1), make([]bool, 3), []int{0}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("bad oracle length: err = %v, want ErrSizeMismatch", err)
	}
}
