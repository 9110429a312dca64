package qblocks

import (
	"errors"
	"testing"
)

func TestBooleanOracleTruthTable(t *testing.T) {
	vectors := [][]bool{
		{true},
		{false, true},
		{true, false},
		{true, true},
		{false, true, false, true},
		{true, false, false, true},
		{false, false, false, false},
		{true, true, true, true},
		{false, false, true, false, false, true, false, true},
	}

	for _, vector := range vectors {
		oracle, err := NewBooleanOracle(vector)
		if err != nil {
			t.Fatalf("vector %v: %v", vector, err)
		}
		k := oracle.NumInputs()
		if len(vector) != 1<<k {
			t.Fatalf("vector %v: derived %d input qubits", vector, k)
		}

		for i, want := range vector {
			s := prepareBasis(k+1, i)
			s.Apply(oracle, qrange(0, k+1))

			expect := i
			if want {
				expect |= 1 << k
			}
			assertBasis(t, s, expect)
		}
	}
}

func TestBooleanOracleOutputAlreadySet(t *testing.T) {
	// A true entry toggles the output, it does not force it to 1.
	oracle, err := NewBooleanOracle([]bool{false, true})
	if err != nil {
		t.Fatal(err)
	}

	s := prepareBasis(2, 0b11) // input 1, output 1
	s.Apply(oracle, []int{0, 1})
	assertBasis(t, s, 0b01)
}

func TestBooleanOracleSizeMismatch(t *testing.T) {
	for _, n := range []int{0, 3, 5, 6, 7, 9} {
		_, err := NewBooleanOracle(make([]bool, n))
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("length %d: err = %v, want ErrSizeMismatch", n, err)
		}
	}
}

func TestNumInputQubits(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{2, 1},
		{4, 2},
		{8, 3},
		{16, 4},
		{1024, 10},
	}

	for _, tt := range tests {
		if got := numInputQubits(tt.n); got != tt.want {
			t.Errorf("numInputQubits(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
