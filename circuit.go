package qblocks

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Operation is a primitive gate placed on the circuit.
type Operation struct {
	Type     string
	Target   int
	Control  int       // partner qubit for SWAP, control for CU1, -1 otherwise
	Controls []int     // additional control qubits (MCX, controlled wrappers)
	Params   []float64 // parameters for parameterized gates
	Dagger   bool      // true for S†/T†
	Step     int       // position in circuit timeline
}

// Qubits returns every qubit the operation touches.
func (op Operation) Qubits() []int {
	qs := []int{op.Target}
	if op.Control >= 0 {
		qs = append(qs, op.Control)
	}
	return append(qs, op.Controls...)
}

// controlMask returns the bitmask of qubits that must read 1 for the
// operation to fire. For SWAP the Control field is the partner qubit,
// not a condition, so it is excluded.
func (op Operation) controlMask() int {
	mask := 0
	for _, c := range op.Controls {
		mask |= 1 << c
	}
	if op.Control >= 0 && op.Type == "CU1" {
		mask |= 1 << op.Control
	}
	return mask
}

// Circuit holds a flattened gate sequence. Operations are placed at the
// earliest step whose qubits are all free, so independent gates share a
// step column.
type Circuit struct {
	NumQubits int
	Ops       []Operation
	MaxSteps  int

	frontier []int // next free step per qubit
}

// NewCircuit returns an empty circuit over numQubits qubits.
func NewCircuit(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

// FlattenGate builds a circuit holding the full primitive expansion of a
// single gate over its own qubits.
func FlattenGate(g Gate) *Circuit {
	c := NewCircuit(g.NumQubits())
	c.Append(g, qrange(0, g.NumQubits()))
	return c
}

// Append expands a gate onto the given qubits of the circuit.
func (c *Circuit) Append(g Gate, qubits []int) {
	c.appendGate(g, qubits, nil)
}

func (c *Circuit) appendGate(g Gate, qubits []int, extraControls []int) {
	switch g := g.(type) {
	case Prim:
		c.place(g, qubits, extraControls)
		return
	case *controlledGate:
		controls := append(slices.Clone(extraControls), qubits[:g.numControls]...)
		c.appendGate(g.base, qubits[g.numControls:], controls)
		return
	}
	for _, inst := range g.Definition() {
		mapped := make([]int, len(inst.Qubits))
		for i, q := range inst.Qubits {
			mapped[i] = qubits[q]
		}
		c.appendGate(inst.Gate, mapped, extraControls)
	}
}

// place records one primitive as an Operation at the earliest free step.
func (c *Circuit) place(p Prim, qubits []int, extraControls []int) {
	op := Operation{
		Type:     p.Type,
		Control:  -1,
		Controls: slices.Clone(extraControls),
		Params:   slices.Clone(p.Params),
		Dagger:   p.Dagger,
	}
	switch p.Type {
	case "CU1", "SWAP":
		op.Control = qubits[0]
		op.Target = qubits[1]
	case "MCX":
		k := p.Arity - 1
		op.Controls = append(op.Controls, qubits[:k]...)
		op.Target = qubits[k]
		if len(op.Controls) == 0 {
			op.Type = "X" // MCX with no controls is a plain X
		}
	default:
		op.Target = qubits[0]
	}

	op.Step = c.stepFor(op.Qubits())
	c.Ops = append(c.Ops, op)
	if op.Step >= c.MaxSteps {
		c.MaxSteps = op.Step + 1
	}
}

// stepFor returns the earliest step where all the given qubits are free
// and advances their frontiers past it.
func (c *Circuit) stepFor(qubits []int) int {
	maxQ := 0
	for _, q := range qubits {
		maxQ = max(maxQ, q)
	}
	for len(c.frontier) <= maxQ {
		c.frontier = append(c.frontier, 0)
	}
	if maxQ >= c.NumQubits {
		c.NumQubits = maxQ + 1
	}

	step := 0
	for _, q := range qubits {
		step = max(step, c.frontier[q])
	}
	for _, q := range qubits {
		c.frontier[q] = step + 1
	}
	return step
}

// OpAt returns the operation touching the given step and qubit, or nil.
func (c *Circuit) OpAt(step, qubit int) *Operation {
	for i := range c.Ops {
		op := &c.Ops[i]
		if op.Step == step && slices.Contains(op.Qubits(), qubit) {
			return op
		}
	}
	return nil
}

// Simulate runs the circuit on |0...0⟩ and returns the statevector.
// Operations past upToStep are skipped; pass a negative upToStep to run
// the whole circuit.
func (c *Circuit) Simulate(upToStep int) *StateVector {
	if c.NumQubits == 0 {
		return NewStateVector(1)
	}
	state := NewStateVector(c.NumQubits)

	ops := slices.Clone(c.Ops)
	slices.SortStableFunc(ops, func(a, b Operation) int {
		return a.Step - b.Step
	})

	for _, op := range ops {
		if upToStep >= 0 && op.Step > upToStep {
			continue
		}
		state.applyOp(op)
	}

	return state
}

// applyOp dispatches a flattened operation through the primitive kernels.
func (s *StateVector) applyOp(op Operation) {
	ctrl := op.controlMask()
	switch op.Type {
	case "H":
		s.applyH(op.Target, ctrl)
	case "X":
		s.applyX(op.Target, ctrl)
	case "Y":
		s.applyY(op.Target, ctrl)
	case "Z":
		s.applyZ(op.Target, ctrl)
	case "S":
		s.applyPhase(op.Target, daggered(math.Pi/2, op.Dagger), ctrl)
	case "T":
		s.applyPhase(op.Target, daggered(math.Pi/4, op.Dagger), ctrl)
	case "RX":
		s.applyRX(op.Target, op.Params[0], ctrl)
	case "RY":
		s.applyRY(op.Target, op.Params[0], ctrl)
	case "RZ":
		s.applyRZ(op.Target, op.Params[0], ctrl)
	case "U1", "CU1":
		s.applyPhase(op.Target, op.Params[0], ctrl)
	case "SWAP":
		s.applySwap(op.Control, op.Target, ctrl)
	case "MCX":
		s.applyX(op.Target, ctrl)
	}
}

func daggered(theta float64, dagger bool) float64 {
	if dagger {
		return -theta
	}
	return theta
}

// ToQASM generates OpenQASM 2.0 output for the circuit.
func (c *Circuit) ToQASM() string {
	numQubits := max(c.NumQubits, 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", numQubits)

	for step := 0; step < c.MaxSteps; step++ {
		for _, op := range c.Ops {
			if op.Step != step {
				continue
			}
			writeOpQASM(&sb, op)
		}
	}

	return sb.String()
}

func writeOpQASM(sb *strings.Builder, op Operation) {
	switch {
	case op.Type == "CU1":
		if len(op.Controls) == 0 {
			fmt.Fprintf(sb, "cu1(%s) q[%d], q[%d];\n", FormatAngle(op.Params[0]), op.Control, op.Target)
		} else {
			// qelib has no multi-controlled phase primitive.
			controls := append([]int{op.Control}, op.Controls...)
			fmt.Fprintf(sb, "// mcu1(%s) %s, q[%d]\n", FormatAngle(op.Params[0]), qasmList(controls), op.Target)
		}
	case op.Type == "SWAP":
		switch len(op.Controls) {
		case 0:
			fmt.Fprintf(sb, "swap q[%d], q[%d];\n", op.Control, op.Target)
		case 1:
			fmt.Fprintf(sb, "cswap q[%d], q[%d], q[%d];\n", op.Controls[0], op.Control, op.Target)
		default:
			// qelib has no multi-controlled swap primitive.
			fmt.Fprintf(sb, "// mcswap %s, q[%d], q[%d]\n", qasmList(op.Controls), op.Control, op.Target)
		}
	case op.Type == "MCX" || (op.Type == "X" && len(op.Controls) > 0):
		switch len(op.Controls) {
		case 1:
			fmt.Fprintf(sb, "cx q[%d], q[%d];\n", op.Controls[0], op.Target)
		case 2:
			fmt.Fprintf(sb, "ccx q[%d], q[%d], q[%d];\n", op.Controls[0], op.Controls[1], op.Target)
		default:
			fmt.Fprintf(sb, "mcx %s, q[%d];\n", qasmList(op.Controls), op.Target)
		}
	case len(op.Controls) == 1 && (op.Type == "Z" || op.Type == "H"):
		fmt.Fprintf(sb, "c%s q[%d], q[%d];\n", strings.ToLower(op.Type), op.Controls[0], op.Target)
	case len(op.Controls) == 1:
		gateType := strings.ToLower(op.Type)
		if op.Dagger {
			gateType += "dg"
		}
		if len(op.Params) > 0 {
			fmt.Fprintf(sb, "c%s(%s) q[%d], q[%d];\n", gateType, FormatAngle(op.Params[0]), op.Controls[0], op.Target)
		} else {
			fmt.Fprintf(sb, "c%s q[%d], q[%d];\n", gateType, op.Controls[0], op.Target)
		}
	case len(op.Controls) > 1:
		// qelib has no multi-controlled form of the remaining gates.
		gateType := strings.ToLower(op.Type)
		if op.Dagger {
			gateType += "dg"
		}
		if len(op.Params) > 0 {
			fmt.Fprintf(sb, "// mc%s(%s) %s, q[%d]\n", gateType, FormatAngle(op.Params[0]), qasmList(op.Controls), op.Target)
		} else {
			fmt.Fprintf(sb, "// mc%s %s, q[%d]\n", gateType, qasmList(op.Controls), op.Target)
		}
	case len(op.Params) > 0:
		fmt.Fprintf(sb, "%s(%s) q[%d];\n", strings.ToLower(op.Type), FormatAngle(op.Params[0]), op.Target)
	case op.Dagger:
		fmt.Fprintf(sb, "%sdg q[%d];\n", strings.ToLower(op.Type), op.Target)
	default:
		fmt.Fprintf(sb, "%s q[%d];\n", strings.ToLower(op.Type), op.Target)
	}
}

func qasmList(qubits []int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = fmt.Sprintf("q[%d]", q)
	}
	return strings.Join(parts, ", ")
}
