package main

import (
	"fmt"
	"math"

	"qblocks"
)

// demoParam is one tunable value of a demo, edited and stored as text.
// Values parse through qblocks.ParseAngle so pi expressions work
// anywhere a plain number does.
type demoParam struct {
	name  string
	value string
	hint  string
}

// demo ties a named circuit builder to its tunable parameters.
type demo struct {
	name   string
	title  string
	desc   string
	build  func(vals []float64) (*qblocks.Circuit, error)
	params []demoParam
}

// seq returns the qubit indices [0, n).
func seq(n int) []int {
	qs := make([]int, n)
	for i := range qs {
		qs[i] = i
	}
	return qs
}

func demoList() []demo {
	return []demo{
		{
			name:  "oracle",
			title: "Boolean Oracle",
			desc:  "Uniform inputs through an oracle marking one basis state",
			params: []demoParam{
				{name: "inputs", value: "2", hint: "input qubits (1-6)"},
				{name: "marked", value: "2", hint: "marked basis state"},
			},
			build: buildOracleDemo,
		},
		{
			name:  "grover",
			title: "Grover Search",
			desc:  "Diffusion iterations boosting one marked state",
			params: []demoParam{
				{name: "qubits", value: "2", hint: "search qubits (1-6)"},
				{name: "marked", value: "3", hint: "marked basis state"},
				{name: "iterations", value: "1", hint: "diffusion rounds"},
			},
			build: buildGroverDemo,
		},
		{
			name:  "qpe",
			title: "Phase Estimation",
			desc:  "Reading an exact eigenphase into the phase register",
			params: []demoParam{
				{name: "bits", value: "3", hint: "phase qubits (1-6)"},
				{name: "numerator", value: "3", hint: "phase = numerator/2^bits"},
			},
			build: buildQPEDemo,
		},
		{
			name:  "qae",
			title: "Amplitude Estimation",
			desc:  "QPE over the diffusion of an RY(theta) preparation",
			params: []demoParam{
				{name: "bits", value: "2", hint: "phase qubits (1-5)"},
				{name: "theta", value: "pi/2", hint: "RY angle, a = sin(theta/2)^2"},
			},
			build: buildQAEDemo,
		},
	}
}

func findDemo(demos []demo, name string) (*demo, error) {
	for i := range demos {
		if demos[i].name == name {
			return &demos[i], nil
		}
	}
	return nil, fmt.Errorf("unknown demo %q", name)
}

// paramValues parses every parameter's text into a float.
func (d *demo) paramValues() ([]float64, error) {
	vals := make([]float64, len(d.params))
	for i, p := range d.params {
		v, ok := qblocks.ParseAngle(p.value)
		if !ok {
			return nil, fmt.Errorf("%s: cannot parse %q", p.name, p.value)
		}
		vals[i] = v
	}
	return vals, nil
}

// buildCircuit parses the current parameters and runs the builder.
func (d *demo) buildCircuit() (*qblocks.Circuit, error) {
	vals, err := d.paramValues()
	if err != nil {
		return nil, err
	}
	return d.build(vals)
}

func intParam(v float64, name string, lo, hi int) (int, error) {
	n := int(v)
	if float64(n) != v || n < lo || n > hi {
		return 0, fmt.Errorf("%s must be an integer in [%d, %d]", name, lo, hi)
	}
	return n, nil
}

func buildOracleDemo(vals []float64) (*qblocks.Circuit, error) {
	k, err := intParam(vals[0], "inputs", 1, 6)
	if err != nil {
		return nil, err
	}
	marked, err := intParam(vals[1], "marked", 0, 1<<k-1)
	if err != nil {
		return nil, err
	}

	vector := make([]bool, 1<<k)
	vector[marked] = true
	oracle, err := qblocks.NewBooleanOracle(vector)
	if err != nil {
		return nil, err
	}

	c := qblocks.NewCircuit(k + 1)
	c.Append(qblocks.NewUniform(k), seq(k))
	c.Append(oracle, seq(k+1))
	return c, nil
}

func buildGroverDemo(vals []float64) (*qblocks.Circuit, error) {
	n, err := intParam(vals[0], "qubits", 1, 6)
	if err != nil {
		return nil, err
	}
	marked, err := intParam(vals[1], "marked", 0, 1<<n-1)
	if err != nil {
		return nil, err
	}
	iterations, err := intParam(vals[2], "iterations", 1, 32)
	if err != nil {
		return nil, err
	}

	vector := make([]bool, 1<<n)
	vector[marked] = true
	algorithm := qblocks.NewUniform(n)
	diffusion, err := qblocks.NewGroverDiffusion(n, algorithm, vector, seq(n))
	if err != nil {
		return nil, err
	}

	c := qblocks.NewCircuit(n + 1)
	c.Append(algorithm, seq(n))
	for it := 0; it < iterations; it++ {
		c.Append(diffusion, seq(n+1))
	}
	return c, nil
}

func buildQPEDemo(vals []float64) (*qblocks.Circuit, error) {
	p, err := intParam(vals[0], "bits", 1, 6)
	if err != nil {
		return nil, err
	}
	j, err := intParam(vals[1], "numerator", 0, 1<<p-1)
	if err != nil {
		return nil, err
	}

	theta := 2 * math.Pi * float64(j) / float64(int(1)<<p)
	qpe := qblocks.NewPhaseEstimation(p, qblocks.U1(theta))

	c := qblocks.NewCircuit(p + 1)
	c.Append(qblocks.X(), []int{p}) // eigenstate |1⟩
	c.Append(qpe, seq(p+1))
	return c, nil
}

func buildQAEDemo(vals []float64) (*qblocks.Circuit, error) {
	p, err := intParam(vals[0], "bits", 1, 5)
	if err != nil {
		return nil, err
	}
	theta := vals[1]

	qae, err := qblocks.NewAmplitudeEstimation(p, qblocks.RY(theta), []bool{false, true}, []int{0})
	if err != nil {
		return nil, err
	}
	return qblocks.FlattenGate(qae), nil
}
