package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qblocks"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusDemos focus = iota
	focusParams
)

// Model represents the TUI application state.
type Model struct {
	demos    []demo
	selected int

	circuit  *qblocks.Circuit
	state    *qblocks.StateVector
	viewStep int // ops up to viewStep-1 are applied; 0 shows |0...0⟩

	width  int
	height int

	focus      focus
	paramIdx   int
	paramInput textinput.Model

	statusMsg string
	buildErr  string
}

func initialModel() Model {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 16
	ti.Width = 12

	m := Model{
		demos:      demoList(),
		paramInput: ti,
	}
	m.rebuild()
	return m
}

// rebuild constructs the selected demo's circuit and re-simulates.
func (m *Model) rebuild() {
	m.buildErr = ""
	c, err := m.demos[m.selected].buildCircuit()
	if err != nil {
		m.buildErr = err.Error()
		m.circuit = nil
		m.state = nil
		return
	}
	m.circuit = c
	m.viewStep = c.MaxSteps
	m.resimulate()
}

func (m *Model) resimulate() {
	if m.circuit == nil {
		return
	}
	if m.viewStep == 0 {
		m.state = qblocks.NewStateVector(m.circuit.NumQubits)
		return
	}
	m.state = m.circuit.Simulate(m.viewStep - 1)
}

func (m *Model) currentDemo() *demo {
	return &m.demos[m.selected]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusDemos:
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.selected > 0 {
					m.selected--
					m.rebuild()
				}
			case "down", "j":
				if m.selected < len(m.demos)-1 {
					m.selected++
					m.rebuild()
				}
			case "left", "h":
				if m.viewStep > 0 {
					m.viewStep--
					m.resimulate()
				}
			case "right", "l":
				if m.circuit != nil && m.viewStep < m.circuit.MaxSteps {
					m.viewStep++
					m.resimulate()
				}
			case "home":
				m.viewStep = 0
				m.resimulate()
			case "end":
				if m.circuit != nil {
					m.viewStep = m.circuit.MaxSteps
					m.resimulate()
				}
			case "tab", "p", "enter":
				m.focus = focusParams
				m.paramIdx = 0
				m.startParamEdit()
			case "s":
				m.saveQASM()
			}

		case focusParams:
			switch key {
			case "esc":
				m.focus = focusDemos
				m.paramInput.Blur()
			case "up", "shift+tab":
				m.applyParamEdit()
				if m.paramIdx > 0 {
					m.paramIdx--
				}
				m.startParamEdit()
			case "down", "tab":
				m.applyParamEdit()
				if m.paramIdx < len(m.currentDemo().params)-1 {
					m.paramIdx++
				}
				m.startParamEdit()
			case "enter":
				m.applyParamEdit()
				m.focus = focusDemos
				m.paramInput.Blur()
			default:
				var cmd tea.Cmd
				m.paramInput, cmd = m.paramInput.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// startParamEdit loads the selected parameter into the text input.
func (m *Model) startParamEdit() {
	p := m.currentDemo().params[m.paramIdx]
	m.paramInput.SetValue(p.value)
	m.paramInput.CursorEnd()
	m.paramInput.Focus()
}

// applyParamEdit stores the edited text and rebuilds the circuit.
func (m *Model) applyParamEdit() {
	value := m.paramInput.Value()
	if value == "" {
		return
	}
	if _, ok := qblocks.ParseAngle(value); !ok {
		m.statusMsg = fmt.Sprintf("invalid value %q — use numbers or pi expressions (e.g. pi/2)", value)
		return
	}
	m.currentDemo().params[m.paramIdx].value = value
	m.rebuild()
}

func (m *Model) saveQASM() {
	if m.circuit == nil {
		return
	}
	name := m.currentDemo().name + ".qasm"
	if err := os.WriteFile(name, []byte(m.circuit.ToQASM()), 0644); err != nil {
		m.statusMsg = fmt.Sprintf("save error: %v", err)
	} else {
		m.statusMsg = "saved " + name
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sideWidth := m.width / 4
	stateWidth := m.width / 4
	circuitWidth := m.width - sideWidth - stateWidth - 6
	controlsHeight := 5
	panelHeight := max(m.height-controlsHeight-2, 8)

	demosPanel := m.renderDemosPanel(sideWidth, panelHeight)
	circuitPanel := m.renderCircuitPanel(circuitWidth, panelHeight)
	statePanel := m.renderStatePanel(stateWidth, panelHeight)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, demosPanel, circuitPanel, statePanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)
}
