package cmd

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdpane/editor"
	"github.com/iw2rmb/mdpane/internal/log"
)

func editCmd(s *settings) *cobra.Command {
	cmd := cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a Markdown file beside its preview.",
		Long:  "Edit opens the file in a split editor. ctrl+s saves, ctrl+q quits. A missing file is created on save.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			text := ""
			if len(args) > 0 {
				path = args[0]
				var err error
				if text, err = readSource(path, cmd.InOrStdin()); err != nil {
					return err
				}
			}

			m := newEditModel(s, path, text)
			defer m.editor.Close()

			p := newProgram(cmd, m)
			return p.Start()
		},
	}
	return &cmd
}

type editKeyMap struct {
	Save key.Binding
	Quit key.Binding
}

func defaultEditKeyMap() editKeyMap {
	return editKeyMap{
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

type editModel struct {
	editor editor.Model
	keys   editKeyMap
	path   string
	saved  string
	logger *zap.Logger

	// quitArmed is set by a quit request with unsaved changes; the next
	// quit key exits.
	quitArmed bool
}

func newEditModel(s *settings, path, text string) editModel {
	logger := log.Get()

	cfg := editor.DefaultConfig()
	cfg.Text = text
	cfg.HistoryLimit = s.cfg.HistoryLimit
	cfg.Language = s.cfg.Language
	cfg.ShowLineNums = s.cfg.LineNumbers
	cfg.Theme = s.cfg.Theme
	cfg.Clipboard = systemClipboard{}
	cfg.Logger = logger

	return editModel{
		editor: editor.New(cfg),
		keys:   defaultEditKeyMap(),
		path:   path,
		saved:  text,
		logger: logger,
	}
}

func (m editModel) Init() tea.Cmd { return m.editor.Init() }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			if !m.dirty() || m.quitArmed {
				return m, tea.Quit
			}
			m.quitArmed = true
			m.editor = m.editor.SetStatus("unsaved changes; ctrl+q again to quit")
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.quitArmed = false
			return m.save(), nil
		}
		m.quitArmed = false
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m editModel) View() string { return m.editor.View() }

func (m editModel) dirty() bool { return m.editor.Text() != m.saved }

func (m editModel) save() editModel {
	if m.path == "" {
		m.editor = m.editor.SetStatus("no file name; start with mdpane edit <file>")
		return m
	}
	text := m.editor.Text()
	if err := writeSource(m.path, text); err != nil {
		m.logger.Error("save failed", zap.String("path", m.path), zap.Error(err))
		m.editor = m.editor.SetError(err)
		return m
	}
	m.saved = text
	m.logger.Info("saved", zap.String("path", m.path), zap.Int("bytes", len(text)))
	m.editor = m.editor.SetStatus("saved " + m.path)
	return m
}
