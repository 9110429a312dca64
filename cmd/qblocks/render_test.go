package main

import (
	"testing"

	"qblocks"
)

func TestStepOpsGroupsByStep(t *testing.T) {
	c := qblocks.NewCircuit(3)
	c.Append(qblocks.H(), []int{0})
	c.Append(qblocks.H(), []int{1})
	c.Append(qblocks.MCX(1), []int{0, 2})

	byStep := stepOps(c)
	if len(byStep) != c.MaxSteps {
		t.Fatalf("grouped %d steps, want %d", len(byStep), c.MaxSteps)
	}
	if len(byStep[0]) != 2 {
		t.Errorf("step 0 holds %d ops, want 2 parallel H's", len(byStep[0]))
	}
	if len(byStep[1]) != 1 || byStep[1][0].Type != "MCX" {
		t.Errorf("step 1 = %+v, want the controlled X", byStep[1])
	}
}

func TestGetCellInfoFlags(t *testing.T) {
	c := qblocks.NewCircuit(3)
	c.Append(qblocks.H(), []int{0})
	c.Append(qblocks.MCX(1), []int{0, 2})
	byStep := stepOps(c)

	// Step 0: a plain H on qubit 0, nothing on the other wires.
	if info := getCellInfo(byStep[0], 0); info.op == nil || info.op.Type != "H" || info.isControl || info.isTarget {
		t.Errorf("step 0 qubit 0: %+v, want a plain H box", info)
	}
	if info := getCellInfo(byStep[0], 1); info.op != nil || info.passThrough {
		t.Errorf("step 0 qubit 1: %+v, want an empty wire", info)
	}

	// Step 1: control on qubit 0, pass-through on 1, target on 2.
	if info := getCellInfo(byStep[1], 0); !info.isControl || !info.vertBelow {
		t.Errorf("step 1 qubit 0: %+v, want a control with a downward wire", info)
	}
	if info := getCellInfo(byStep[1], 1); !info.passThrough || !info.vertAbove || !info.vertBelow {
		t.Errorf("step 1 qubit 1: %+v, want a pass-through", info)
	}
	if info := getCellInfo(byStep[1], 2); !info.isTarget || !info.vertAbove || info.vertBelow {
		t.Errorf("step 1 qubit 2: %+v, want the target", info)
	}
}
