package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdpane/buffer"
	"github.com/iw2rmb/mdpane/composer"
	"github.com/iw2rmb/mdpane/preview"
)

// Pane identifies the half of the editor that receives keys.
type Pane int

const (
	PaneMarkdown Pane = iota
	PanePreview
)

// Model is a Bubble Tea component that edits Markdown beside its preview.
type Model struct {
	cfg    Config
	comp   *composer.Composer
	logger *zap.Logger

	focused bool
	pane    Pane

	width, height int

	viewport viewport.Model
	xOffset  int

	preview    viewport.Model
	renderer   *preview.Renderer
	rendered   preview.Rendered
	previewSel int

	prompt    textinput.Model
	prompting bool

	status    string
	statusErr bool

	mouseDragging bool
	mouseAnchor   buffer.Pos

	lastBufVersion uint64
	lastCursor     buffer.Pos
	lastGeneration uint64
}

func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}

	opts := composer.Options{Text: cfg.Text, HistoryLimit: cfg.HistoryLimit, Language: cfg.Language, Logger: logger}
	comp, langErr := composer.New(opts)
	if langErr != nil {
		logger.Warn("ignoring code block language", zap.String("language", cfg.Language), zap.Error(langErr))
		opts.Language = ""
		comp, _ = composer.New(opts)
	}

	out := cfg.PreviewRenderer
	if out == nil {
		out = lipgloss.DefaultRenderer()
	}
	renderer := preview.NewRenderer(out, 0)
	if cfg.Theme != "" {
		renderer.Theme = cfg.Theme
	}

	prompt := textinput.New()
	prompt.Prompt = "link url: "
	prompt.Placeholder = "https://"

	m := Model{
		cfg:        cfg,
		comp:       comp,
		logger:     logger,
		focused:    true,
		viewport:   viewport.New(0, 0),
		preview:    viewport.New(0, 0),
		renderer:   renderer,
		previewSel: -1,
		prompt:     prompt,
	}
	if langErr != nil {
		m.setError(langErr)
	}
	if cfg.OnChange != nil {
		onChange := cfg.OnChange
		buf := comp.Buffer()
		buf.OnUpdate(func(ch buffer.Change) {
			onChange(buildChangeEvent(buf, ch))
		})
	}

	m.lastBufVersion = comp.Buffer().Version()
	m.lastCursor = comp.Buffer().Cursor()
	m.rebuildContent()
	m.rebuildPreview(true)
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.comp.Buffer() }

func (m Model) Composer() *composer.Composer { return m.comp }

func (m Model) Text() string { return m.comp.Text() }

// Close detaches the composer's handlers and listeners.
func (m Model) Close() { m.comp.Close() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height

	body := maxInt(height-2, 0)
	left := maxInt((width-1)/2, 0)
	right := maxInt(width-1-left, 0)
	m.viewport.Width, m.viewport.Height = left, body
	m.preview.Width, m.preview.Height = right, body
	m.renderer.Width = right
	m.prompt.Width = maxInt(width-lipgloss.Width(m.prompt.Prompt)-1, 0)

	m.refresh(true)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
		m.setPreviewContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Pane returns the pane that receives keys.
func (m Model) Pane() Pane { return m.pane }

// Status returns the status line message and whether it reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		if m.prompting {
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
	}
	// Hosts may also mutate the buffer directly between messages.
	m.refresh(false)
	return m, cmd
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := []string{m.toolbarView()}
	if m.height > 2 {
		rows = append(rows, m.bodyView())
	}
	if m.height > 1 {
		rows = append(rows, m.statusView())
	}
	return strings.Join(rows, "\n")
}

func (m Model) bodyView() string {
	divider := make([]string, m.viewport.Height)
	for i := range divider {
		divider[i] = m.cfg.Style.Divider.Render("│")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		strings.Join(divider, "\n"),
		m.preview.View(),
	)
}

// refresh re-renders the Markdown pane when the buffer version or cursor
// moved since the last render, and the preview pane when the preview
// document was rebuilt.
func (m *Model) refresh(force bool) {
	buf := m.comp.Buffer()
	ver, cur := buf.Version(), buf.Cursor()
	if force || ver != m.lastBufVersion || cur != m.lastCursor {
		m.lastBufVersion, m.lastCursor = ver, cur
		m.followCursorX()
		m.rebuildContent()
		m.followCursorY()
	}
	m.rebuildPreview(force)
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursorY() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row, _ := m.cursorRowCol(splitDocLines(m.comp.Text()))

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m *Model) followCursorX() {
	lines := splitDocLines(m.comp.Text())
	w := m.contentWidth(len(lines))
	if w <= 0 {
		m.xOffset = 0
		return
	}
	row, col := m.cursorRowCol(lines)
	cell := cellForCol(lines[row].text, col, m.cfg.TabWidth)
	if cell < m.xOffset {
		m.xOffset = cell
	}
	if cell >= m.xOffset+w {
		m.xOffset = cell - w + 1
	}
}

// SetStatus shows s in the status line until the next command reports.
func (m Model) SetStatus(s string) Model {
	m.setStatus(s)
	return m
}

// SetError shows err in the status line with the error style.
func (m Model) SetError(err error) Model {
	m.setError(err)
	return m
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = err.Error(), true
}

func (m *Model) clearStatus() {
	m.status, m.statusErr = "", false
}
