package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"qblocks"
)

var paramFlags []string

// rootCmd launches the interactive demo browser.
var rootCmd = &cobra.Command{
	Use:   "qblocks",
	Short: "Browse and simulate quantum building-block circuits",
	Long: `qblocks builds circuits from reusable quantum gate blocks — boolean
oracles, Grover diffusion, quantum Fourier transform, phase estimation and
amplitude estimation — and lets you walk through their execution step by step.

Run without arguments to start the interactive browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(initialModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

// qasmCmd prints a demo circuit as OpenQASM 2.0.
var qasmCmd = &cobra.Command{
	Use:   "qasm <demo>",
	Short: "Print a demo circuit as OpenQASM 2.0",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildNamedDemo(args[0])
		if err != nil {
			return err
		}
		fmt.Print(c.ToQASM())
		return nil
	},
}

// simulateCmd runs a demo circuit and prints the resulting state.
var simulateCmd = &cobra.Command{
	Use:   "simulate <demo>",
	Short: "Simulate a demo circuit and print nonzero basis states",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildNamedDemo(args[0])
		if err != nil {
			return err
		}

		s := c.Simulate(-1)
		states := s.NonzeroStates()
		sort.Slice(states, func(i, j int) bool {
			if states[i].Prob != states[j].Prob {
				return states[i].Prob > states[j].Prob
			}
			return states[i].Index < states[j].Index
		})

		for _, bs := range states {
			fmt.Printf("|%0*b⟩  %8.4f%%  amp %.4f%+.4fi\n",
				s.NumQubits, bs.Index, bs.Prob*100,
				real(bs.Amplitude), imag(bs.Amplitude))
		}
		return nil
	},
}

// listCmd prints the available demos and their parameters.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demos",
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range demoList() {
			fmt.Printf("%-8s %s\n", d.name, d.desc)
			for _, p := range d.params {
				fmt.Printf("         --param %s=%s  (%s)\n", p.name, p.value, p.hint)
			}
		}
	},
}

// buildNamedDemo looks up a demo, applies --param overrides and builds it.
func buildNamedDemo(name string) (*qblocks.Circuit, error) {
	demos := demoList()
	d, err := findDemo(demos, name)
	if err != nil {
		return nil, err
	}

	for _, pf := range paramFlags {
		key, value, ok := strings.Cut(pf, "=")
		if !ok {
			return nil, fmt.Errorf("malformed --param %q, expected name=value", pf)
		}
		found := false
		for i := range d.params {
			if d.params[i].name == key {
				if _, ok := qblocks.ParseAngle(value); !ok {
					return nil, fmt.Errorf("parameter %s: cannot parse %q", key, value)
				}
				d.params[i].value = value
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("demo %q has no parameter %q", name, key)
		}
	}

	return d.buildCircuit()
}

func main() {
	qasmCmd.Flags().StringArrayVar(&paramFlags, "param", nil, "override a demo parameter (name=value, repeatable)")
	simulateCmd.Flags().StringArrayVar(&paramFlags, "param", nil, "override a demo parameter (name=value, repeatable)")
	rootCmd.AddCommand(qasmCmd, simulateCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}
