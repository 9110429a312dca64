package qblocks

// PatternMCX is a multi-controlled X gate with configurable control
// polarity. The first numControls qubits control, the last is the
// target; a control whose pattern entry is false must read 0 instead of
// 1 for the gate to fire. A nil pattern means all controls fire on 1.
type PatternMCX struct {
	numControls int
	pattern     []bool
}

func NewPatternMCX(numControls int, pattern []bool) *PatternMCX {
	return &PatternMCX{numControls: numControls, pattern: pattern}
}

func (g *PatternMCX) Name() string   { return "pmcx" }
func (g *PatternMCX) NumQubits() int { return g.numControls + 1 }

// Definition flips the zero-polarity controls with X, applies a plain
// multi-controlled X, then undoes the flips.
func (g *PatternMCX) Definition() []Instruction {
	var def []Instruction

	for i, v := range g.pattern {
		if !v {
			def = append(def, Instruction{Gate: X(), Qubits: []int{i}})
		}
	}

	def = append(def, Instruction{Gate: MCX(g.numControls), Qubits: qrange(0, g.numControls+1)})

	for i, v := range g.pattern {
		if !v {
			def = append(def, Instruction{Gate: X(), Qubits: []int{i}})
		}
	}

	return def
}
