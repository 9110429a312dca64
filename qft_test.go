package qblocks

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestQFTMatchesDFT(t *testing.T) {
	// QFT|x⟩ must equal the little-endian DFT column:
	// amplitude e^(2*pi*i*x*y/N)/sqrt(N) at |y⟩.
	for n := 1; n <= 3; n++ {
		qft := NewQFT(n)
		N := 1 << n

		for x := 0; x < N; x++ {
			s := prepareBasis(n, x)
			s.Apply(qft, qrange(0, n))

			for y := 0; y < N; y++ {
				want := cmplx.Exp(complex(0, 2*math.Pi*float64(x*y)/float64(N))) / complex(math.Sqrt(float64(N)), 0)
				if cmplx.Abs(s.Amplitudes[y]-want) > tolerance {
					t.Fatalf("n=%d QFT|%d⟩: amplitude[%d] = %v, want %v", n, x, y, s.Amplitudes[y], want)
				}
			}
		}
	}
}

func TestQFTInverseIsIdentity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		qft := NewQFT(n)
		inv := Inverse(qft)

		for x := 0; x < 1<<n; x++ {
			s := prepareBasis(n, x)
			s.Apply(qft, qrange(0, n))
			s.Apply(inv, qrange(0, n))
			assertBasis(t, s, x)
		}
	}
}

func TestQFTNoSwapsIsBitReversed(t *testing.T) {
	// Without the final swap network the output register comes out in
	// reversed qubit order.
	n := 3
	plain := NewQFT(n)
	noSwaps := NewQFT(n)
	noSwaps.DoSwaps = false

	for x := 0; x < 1<<n; x++ {
		a := prepareBasis(n, x)
		a.Apply(plain, qrange(0, n))

		b := prepareBasis(n, x)
		b.Apply(noSwaps, qrange(0, n))

		for y := 0; y < 1<<n; y++ {
			rev := reverseBits(y, n)
			if cmplx.Abs(a.Amplitudes[y]-b.Amplitudes[rev]) > tolerance {
				t.Fatalf("x=%d: swapped[%d] != unswapped[%d]", x, y, rev)
			}
		}
	}
}

func reverseBits(x, n int) int {
	out := 0
	for b := 0; b < n; b++ {
		if x>>b&1 == 1 {
			out |= 1 << (n - 1 - b)
		}
	}
	return out
}

func TestQFTSingleQubitIsHadamard(t *testing.T) {
	s := NewStateVector(1)
	s.Apply(NewQFT(1), []int{0})

	want := complex(1/math.Sqrt2, 0)
	for i := 0; i < 2; i++ {
		if cmplx.Abs(s.Amplitudes[i]-want) > tolerance {
			t.Errorf("amplitude[%d] = %v, want %v", i, s.Amplitudes[i], want)
		}
	}
}
