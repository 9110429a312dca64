package qblocks

// Gate is a named unitary over a fixed number of qubits, possibly
// decomposable into simpler gates.
type Gate interface {
	Name() string
	NumQubits() int
	// Definition returns the decomposition as (sub-gate, qubit-mapping)
	// pairs, or nil for a primitive gate.
	Definition() []Instruction
}

// Instruction maps a sub-gate onto qubit indices of the enclosing gate.
type Instruction struct {
	Gate   Gate
	Qubits []int
}

// Prim is a primitive gate identified by a type string, in the same style
// the circuit layer uses for flattened operations.
type Prim struct {
	Type   string
	Arity  int
	Params []float64
	Dagger bool
}

func (p Prim) Name() string {
	if p.Dagger {
		return p.Type + "dg"
	}
	return p.Type
}

func (p Prim) NumQubits() int { return p.Arity }

func (p Prim) Definition() []Instruction { return nil }

// Single-qubit primitives.
func H() Prim { return Prim{Type: "H", Arity: 1} }
func X() Prim { return Prim{Type: "X", Arity: 1} }
func Y() Prim { return Prim{Type: "Y", Arity: 1} }
func Z() Prim { return Prim{Type: "Z", Arity: 1} }
func S() Prim { return Prim{Type: "S", Arity: 1} }
func T() Prim { return Prim{Type: "T", Arity: 1} }

// Rotation and phase primitives.
func RX(theta float64) Prim { return Prim{Type: "RX", Arity: 1, Params: []float64{theta}} }
func RY(theta float64) Prim { return Prim{Type: "RY", Arity: 1, Params: []float64{theta}} }
func RZ(theta float64) Prim { return Prim{Type: "RZ", Arity: 1, Params: []float64{theta}} }

// U1 shifts the phase of |1⟩ by theta. Unlike RZ it is not global-phase
// free, which matters once the gate is controlled.
func U1(theta float64) Prim { return Prim{Type: "U1", Arity: 1, Params: []float64{theta}} }

// CU1 is the controlled phase gate: qubit 0 controls, qubit 1 is shifted.
func CU1(theta float64) Prim { return Prim{Type: "CU1", Arity: 2, Params: []float64{theta}} }

// Swap exchanges two qubits.
func Swap() Prim { return Prim{Type: "SWAP", Arity: 2} }

// MCX is the multi-controlled X gate: the first numControls qubits
// control, the last is the target. MCX(0) degenerates to a plain X.
func MCX(numControls int) Prim { return Prim{Type: "MCX", Arity: numControls + 1} }

// inverse returns the adjoint of a primitive gate.
func (p Prim) inverse() Prim {
	switch p.Type {
	case "S", "T":
		p.Dagger = !p.Dagger
	case "RX", "RY", "RZ", "U1", "CU1":
		p.Params = []float64{-p.Params[0]}
	}
	// H, X, Y, Z, SWAP and MCX are self-inverse.
	return p
}

// Inverse returns the adjoint of a gate. Primitives invert in place;
// composite gates get a wrapper whose definition is the reversed,
// child-inverted list, so inversion recurses through the whole tree.
func Inverse(g Gate) Gate {
	switch g := g.(type) {
	case Prim:
		return g.inverse()
	case *inverseGate:
		return g.base
	case *controlledGate:
		return Controlled(Inverse(g.base), g.numControls)
	}
	return &inverseGate{base: g}
}

type inverseGate struct {
	base Gate
}

func (g *inverseGate) Name() string   { return g.base.Name() + "dg" }
func (g *inverseGate) NumQubits() int { return g.base.NumQubits() }

func (g *inverseGate) Definition() []Instruction {
	def := g.base.Definition()
	out := make([]Instruction, 0, len(def))
	for i := len(def) - 1; i >= 0; i-- {
		out = append(out, Instruction{Gate: Inverse(def[i].Gate), Qubits: def[i].Qubits})
	}
	return out
}

// Controlled returns the controlled version of an arbitrary gate, with
// numControls control qubits at the low indices of the wrapper followed
// by the base gate's qubits. The construction distributes the controls
// over every operation of the base gate's decomposition, which is valid
// for any unitary product: with a control at 0 nothing fires, with all
// controls at 1 everything does.
func Controlled(g Gate, numControls int) Gate {
	if numControls == 0 {
		return g
	}
	if c, ok := g.(*controlledGate); ok {
		return &controlledGate{base: c.base, numControls: c.numControls + numControls}
	}
	return &controlledGate{base: g, numControls: numControls}
}

type controlledGate struct {
	base        Gate
	numControls int
}

func (g *controlledGate) Name() string   { return "c" + g.base.Name() }
func (g *controlledGate) NumQubits() int { return g.numControls + g.base.NumQubits() }

// Definition is nil: the circuit and simulation layers peel controlled
// wrappers and carry the control set down to the primitives.
func (g *controlledGate) Definition() []Instruction { return nil }

// qrange returns the qubit indices [lo, hi).
func qrange(lo, hi int) []int {
	qs := make([]int, 0, hi-lo)
	for q := lo; q < hi; q++ {
		qs = append(qs, q)
	}
	return qs
}
