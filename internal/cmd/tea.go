package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type program struct {
	*tea.Program
}

func (p *program) Start() error {
	_, err := p.Program.Run()
	return err
}

func newProgram(cmd *cobra.Command, model tea.Model) *program {
	return &program{
		Program: tea.NewProgram(
			model,
			tea.WithOutput(cmd.OutOrStdout()),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		),
	}
}
