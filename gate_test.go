package qblocks

import (
	"math"
	"math/cmplx"
	"testing"
)

const tolerance = 1e-9

// prepareBasis returns a statevector holding |index⟩ over numQubits.
func prepareBasis(numQubits, index int) *StateVector {
	s := NewStateVector(numQubits)
	for q := 0; q < numQubits; q++ {
		if index>>q&1 == 1 {
			s.applyX(q, 0)
		}
	}
	return s
}

// assertBasis fails unless the state is |index⟩ up to global phase.
func assertBasis(t *testing.T, s *StateVector, index int) {
	t.Helper()
	for i, amp := range s.Amplitudes {
		mag := cmplx.Abs(amp)
		if i == index {
			if math.Abs(mag-1) > tolerance {
				t.Fatalf("basis state %d: |amp| = %g, want 1", i, mag)
			}
		} else if mag > tolerance {
			t.Fatalf("basis state %d: |amp| = %g, want 0", i, mag)
		}
	}
}

func TestPrimInverse(t *testing.T) {
	gates := []Gate{H(), X(), Y(), Z(), S(), T(), RX(0.3), RY(1.1), RZ(-0.7), U1(0.5)}

	for _, g := range gates {
		for basis := 0; basis < 2; basis++ {
			s := prepareBasis(1, basis)
			s.Apply(g, []int{0})
			s.Apply(Inverse(g), []int{0})
			assertBasis(t, s, basis)
		}
	}
}

func TestDoubleInverse(t *testing.T) {
	qft := NewQFT(3)
	if Inverse(Inverse(qft)) != Gate(qft) {
		t.Error("double inversion of a composite should unwrap to the original")
	}

	s := S()
	if back, ok := Inverse(Inverse(s)).(Prim); !ok || back.Dagger {
		t.Error("double inversion of S should yield S, not S†")
	}
}

func TestControlledArity(t *testing.T) {
	g := Controlled(NewQFT(2), 1)
	if g.NumQubits() != 3 {
		t.Errorf("controlled QFT2 spans %d qubits, want 3", g.NumQubits())
	}

	// Nesting merges into a single wrapper.
	gg := Controlled(g, 2)
	if gg.NumQubits() != 5 {
		t.Errorf("doubly-wrapped gate spans %d qubits, want 5", gg.NumQubits())
	}
	if c, ok := gg.(*controlledGate); !ok || c.numControls != 3 {
		t.Errorf("nested controls should merge into one wrapper")
	}
}

func TestControlledFires(t *testing.T) {
	// With the control in (|0⟩+|1⟩)/√2, a controlled primitive leaves
	// the control-0 branch untouched and writes the gate's exact matrix
	// column — relative phase included — into the control-1 branch. A
	// kernel that is only correct up to global phase fails here.
	inv := complex(1/math.Sqrt2, 0)
	cos, sin := complex(math.Cos(0.35), 0), complex(math.Sin(0.35), 0)
	phase := func(theta float64) Complex { return cmplx.Exp(complex(0, theta)) }

	tests := []struct {
		name string
		gate Gate
		cols [2][2]Complex // cols[b] = gate|b⟩ as (amp of |0⟩, amp of |1⟩)
	}{
		{"X", X(), [2][2]Complex{{0, 1}, {1, 0}}},
		{"Y", Y(), [2][2]Complex{{0, 1i}, {-1i, 0}}},
		{"Z", Z(), [2][2]Complex{{1, 0}, {0, -1}}},
		{"H", H(), [2][2]Complex{{inv, inv}, {inv, -inv}}},
		{"S", S(), [2][2]Complex{{1, 0}, {0, 1i}}},
		{"T", T(), [2][2]Complex{{1, 0}, {0, phase(math.Pi / 4)}}},
		{"RX", RX(0.7), [2][2]Complex{{cos, -1i * sin}, {-1i * sin, cos}}},
		{"RY", RY(0.7), [2][2]Complex{{cos, sin}, {-sin, cos}}},
		{"RZ", RZ(0.7), [2][2]Complex{{phase(-0.35), 0}, {0, phase(0.35)}}},
		{"U1", U1(0.7), [2][2]Complex{{1, 0}, {0, phase(0.7)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cg := Controlled(tt.gate, 1)
			for b := 0; b < 2; b++ {
				s := prepareBasis(2, b<<1)
				s.Apply(H(), []int{0})
				s.Apply(cg, []int{0, 1})

				var want [4]Complex
				want[b<<1] = inv
				want[0b01] = inv * tt.cols[b][0]
				want[0b11] = inv * tt.cols[b][1]

				for i, amp := range s.Amplitudes {
					if cmplx.Abs(amp-want[i]) > tolerance {
						t.Errorf("target |%d⟩: amp[%d] = %v, want %v", b, i, amp, want[i])
					}
				}
			}
		})
	}
}

func TestControlledComposite(t *testing.T) {
	// A controlled composite must leave the state alone when the
	// control is 0, regardless of what the base gate does.
	oracle, err := NewBooleanOracle([]bool{true, true})
	if err != nil {
		t.Fatal(err)
	}
	g := Controlled(oracle, 1)

	s := prepareBasis(3, 0)
	s.Apply(g, []int{0, 1, 2})
	assertBasis(t, s, 0)

	// Control at 1: the oracle flips its output for every input.
	s = prepareBasis(3, 1)
	s.Apply(g, []int{0, 1, 2})
	assertBasis(t, s, 0b101)
}

func TestBellState(t *testing.T) {
	s := NewStateVector(2)
	s.Apply(H(), []int{0})
	s.Apply(MCX(1), []int{0, 1})

	want := complex(1/math.Sqrt2, 0)
	if cmplx.Abs(s.Amplitudes[0]-want) > tolerance || cmplx.Abs(s.Amplitudes[3]-want) > tolerance {
		t.Errorf("bell state amplitudes: %v", s.Amplitudes)
	}
	if cmplx.Abs(s.Amplitudes[1]) > tolerance || cmplx.Abs(s.Amplitudes[2]) > tolerance {
		t.Errorf("bell state has leakage: %v", s.Amplitudes)
	}
}

func TestQubitProbabilities(t *testing.T) {
	s := NewStateVector(2)
	s.Apply(H(), []int{0})

	probs := s.QubitProbabilities()
	if math.Abs(probs[0].Prob0-0.5) > tolerance || math.Abs(probs[0].Prob1-0.5) > tolerance {
		t.Errorf("qubit 0: %+v, want 50/50", probs[0])
	}
	if math.Abs(probs[1].Prob0-1) > tolerance {
		t.Errorf("qubit 1: %+v, want certain 0", probs[1])
	}
}
