package main

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"qblocks"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// opDisplayName returns a short display name for an operation.
func opDisplayName(op *qblocks.Operation) string {
	name := op.Type
	if op.Dagger {
		name += "†"
	}
	return name
}

// cellInfo describes what occupies a single cell in the circuit grid.
type cellInfo struct {
	op          *qblocks.Operation
	isControl   bool
	isTarget    bool
	vertAbove   bool
	vertBelow   bool
	passThrough bool
}

// stepOps groups the circuit's operations by step, so the grid render
// looks at one column's operations per cell instead of rescanning the
// whole op list.
func stepOps(c *qblocks.Circuit) [][]*qblocks.Operation {
	byStep := make([][]*qblocks.Operation, c.MaxSteps)
	for i := range c.Ops {
		op := &c.Ops[i]
		byStep[op.Step] = append(byStep[op.Step], op)
	}
	return byStep
}

// getCellInfo returns rendering information for the cell at a given
// qubit, scanning only the operations of that cell's step column.
func getCellInfo(ops []*qblocks.Operation, qubit int) cellInfo {
	var info cellInfo

	for _, op := range ops {
		if !slices.Contains(op.Qubits(), qubit) {
			continue
		}
		info.op = op
		if op.Type == "SWAP" {
			info.isTarget = true
		} else {
			if op.Control == qubit {
				info.isControl = true
			}
			for _, ctrl := range op.Controls {
				if ctrl == qubit {
					info.isControl = true
				}
			}
			info.isTarget = op.Target == qubit && !info.isControl &&
				(op.Control >= 0 || len(op.Controls) > 0)
		}
		break
	}

	// Vertical connections for multi-qubit operations
	for _, g := range ops {
		qubits := g.Qubits()
		if len(qubits) < 2 {
			continue
		}
		minQ, maxQ := qubits[0], qubits[0]
		for _, q := range qubits {
			minQ, maxQ = min(minQ, q), max(maxQ, q)
		}
		if qubit >= minQ && qubit <= maxQ {
			if qubit > minQ {
				info.vertAbove = true
			}
			if qubit < maxQ {
				info.vertBelow = true
			}
			if info.op == nil && qubit > minQ && qubit < maxQ {
				info.passThrough = true
			}
		}
	}

	return info
}

// wireSymbol returns the on-wire symbol for a control or target position.
func wireSymbol(info cellInfo) string {
	if info.op.Type == "SWAP" {
		return "×"
	}
	if info.isControl {
		return "●"
	}
	switch info.op.Type {
	case "X", "MCX":
		return "⊕"
	case "Z":
		return "●"
	default:
		return ""
	}
}

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW visual characters wide.
func renderCell(info cellInfo, executed bool) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	style := gateStyle
	if !executed {
		style = dimStyle
	}

	switch {
	case info.op != nil && (info.isControl || (info.isTarget && wireSymbol(info) != "")):
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", dashL) + style.Render(wireSymbol(info)) + strings.Repeat("─", dashR)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}

	case info.op != nil:
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(opDisplayName(info.op), gateNameW)

		top = strings.Repeat(" ", margin) + style.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + style.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + style.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
		if info.vertAbove {
			top = strings.Repeat(" ", margin) + style.Render("┌"+strings.Repeat("─", halfW-margin-1)+"┴"+strings.Repeat("─", gateNameW-halfW+margin)+"┐") + strings.Repeat(" ", rightMargin)
		}
		if info.vertBelow {
			bot = strings.Repeat(" ", margin) + style.Render("└"+strings.Repeat("─", halfW-margin-1)+"┬"+strings.Repeat("─", gateNameW-halfW+margin)+"┘") + strings.Repeat(" ", rightMargin)
		}

	case info.passThrough:
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow

	default:
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", cellW)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}
	}

	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderDemosPanel renders the demo list with the selected demo's parameters.
func (m Model) renderDemosPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Demos"))
	sb.WriteString("\n\n")

	for i, d := range m.demos {
		if i == m.selected {
			sb.WriteString(menuSelectedStyle.Render("▶ " + d.title))
		} else {
			sb.WriteString(menuNormalStyle.Render("  " + d.title))
		}
		sb.WriteString("\n")
	}

	d := m.demos[m.selected]
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(d.desc))
	sb.WriteString("\n\n")
	sb.WriteString(titleStyle.Render("Parameters"))
	sb.WriteString("\n\n")

	for i, p := range d.params {
		label := fmt.Sprintf("%-10s", p.name)
		if m.focus == focusParams && i == m.paramIdx {
			sb.WriteString(menuSelectedStyle.Render("▶ "+label) + m.paramInput.View())
		} else {
			sb.WriteString("  " + menuNormalStyle.Render(label) + qubitLabelStyle.Render(p.value))
		}
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("    " + p.hint))
		sb.WriteString("\n")
	}

	if m.buildErr != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render("error: " + m.buildErr))
	}

	return demosStyle.Width(width).Height(height).Render(sb.String())
}

// renderCircuitPanel renders the circuit grid panel.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Circuit"))
	sb.WriteString("\n\n")

	if m.circuit == nil {
		sb.WriteString(dimStyle.Render("no circuit"))
		return circuitStyle.Width(width).Height(height).Render(sb.String())
	}

	availWidth := width - labelVisualW - 4
	maxSteps := max(availWidth/cellW, 1)

	// Keep the execution cursor in view
	startStep := 0
	if m.viewStep >= maxSteps {
		startStep = m.viewStep - maxSteps + 1
	}
	if startStep > 0 {
		fmt.Fprintf(&sb, "  ◀ showing steps %d–%d\n", startStep, startStep+maxSteps-1)
	}

	// Step number header
	header := strings.Repeat(" ", labelVisualW)
	for step := startStep; step < startStep+maxSteps; step++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	// Render each qubit as 3 lines
	byStep := stepOps(m.circuit)
	maxWires := max((height-8)/3, 1)
	for qubit := 0; qubit < m.circuit.NumQubits; qubit++ {
		if qubit >= maxWires {
			fmt.Fprintf(&sb, "  %s\n", dimStyle.Render(fmt.Sprintf("… %d more wires", m.circuit.NumQubits-maxWires)))
			break
		}

		topLine := strings.Repeat(" ", labelVisualW)
		label := fmt.Sprintf("q[%d]", qubit)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for step := startStep; step < startStep+maxSteps; step++ {
			var ops []*qblocks.Operation
			if step < len(byStep) {
				ops = byStep[step]
			}
			info := getCellInfo(ops, qubit)
			top, mid, bot := renderCell(info, step < m.viewStep)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	fmt.Fprintf(&sb, "\n  Executed: %d / %d steps", m.viewStep, m.circuit.MaxSteps)
	if m.statusMsg != "" {
		fmt.Fprintf(&sb, "  │  %s", activeGateStyle.Render(m.statusMsg))
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel renders the state-vector probability panel.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("State"))
	sb.WriteString("\n\n")

	if m.state == nil {
		sb.WriteString(dimStyle.Render("no state"))
		return stateStyle.Width(width).Height(height).Render(sb.String())
	}

	states := m.state.NonzeroStates()
	sort.Slice(states, func(i, j int) bool {
		if states[i].Prob != states[j].Prob {
			return states[i].Prob > states[j].Prob
		}
		return states[i].Index < states[j].Index
	})

	barW := max(width-m.state.NumQubits-18, 4)
	maxRows := max(height-6, 1)
	for i, bs := range states {
		if i >= maxRows {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(states)-maxRows)))
			sb.WriteString("\n")
			break
		}
		filled := int(bs.Prob*float64(barW) + 0.5)
		bar := strings.Repeat("▮", filled) + strings.Repeat("·", barW-filled)
		label := fmt.Sprintf("|%0*b⟩", m.state.NumQubits, bs.Index)
		fmt.Fprintf(&sb, "%s %s %5.1f%%\n",
			qubitLabelStyle.Render(label), barStyle.Render(bar), bs.Prob*100)
	}

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	if m.focus == focusParams {
		sb.WriteString(activeGateStyle.Render("Edit:     "))
		sb.WriteString("↑↓/Tab Switch param  Enter Apply  Esc Back")
	} else {
		sb.WriteString(activeGateStyle.Render("Navigate: "))
		sb.WriteString("↑↓/jk Select demo  ←→/hl Step through circuit  Home/End Jump\n")
		sb.WriteString(activeGateStyle.Render("Actions:  "))
		sb.WriteString("Tab/p Edit params  s Save QASM  q/^C Quit")
	}

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}
