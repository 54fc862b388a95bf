package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdpane/internal/log"
	"github.com/iw2rmb/mdpane/preview"
)

func renderCmd(s *settings) *cobra.Command {
	var width int

	cmd := cobra.Command{
		Use:   "render [file|-]",
		Short: "Print the rendered preview of a Markdown file.",
		Long:  "Render parses the file (or stdin for \"-\") the way the editor's preview pane does and prints the result.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			src, err := readSource(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			doc := preview.NewDocument()
			if err := doc.Rebuild(src); err != nil {
				return err
			}
			log.Get().Debug("rendering", zap.String("path", path), zap.Int("items", len(doc.Items())))

			r := preview.NewRenderer(lipgloss.NewRenderer(cmd.OutOrStdout()), width)
			if s.cfg.Theme != "" {
				r.Theme = s.cfg.Theme
			}
			out := r.Render(doc).String()
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			_, err = cmd.OutOrStdout().Write([]byte(out))
			return errors.Wrap(err, "failed to write to stdout")
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap width; 0 disables wrapping.")

	return &cmd
}
