// Package composer assembles one Markdown editor instance: a buffer, its
// command registry, the list and code-block plugins, and the preview
// sync. It has no UI; the editor package draws it and the toolbar calls
// Press.
package composer

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/mdpane/buffer"
	"github.com/iw2rmb/mdpane/command"
	"github.com/iw2rmb/mdpane/format"
	"github.com/iw2rmb/mdpane/plugins"
	"github.com/iw2rmb/mdpane/preview"
)

const tabText = "    "

type Options struct {
	// Text seeds the buffer.
	Text string
	// HistoryLimit is forwarded to buffer.Options.
	HistoryLimit int
	// Language preselects the code block language. Empty means
	// plugins.DefaultLanguage.
	Language string

	Logger *zap.Logger

	// OnChange receives the full text after every change to it.
	OnChange func(text string)
}

// Composer is one editor instance. It implements plugins.Host.
type Composer struct {
	buf    *buffer.Buffer
	reg    *command.Registry
	logger *zap.Logger
	sync   *preview.Sync

	language string
	onChange func(string)
	off      func()
}

func New(opt Options) (*Composer, error) {
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Composer{
		buf:      buffer.New(opt.Text, buffer.Options{HistoryLimit: opt.HistoryLimit}),
		reg:      command.NewRegistry(logger),
		logger:   logger,
		language: plugins.DefaultLanguage,
		onChange: opt.OnChange,
	}
	if opt.Language != "" {
		if err := c.SetLanguage(opt.Language); err != nil {
			return nil, err
		}
	}

	sync, offPreview := preview.Register(c, preview.NewDocument())
	c.sync = sync
	c.off = command.Merge(
		plugins.RegisterUnorderedList(c),
		plugins.RegisterCheckList(c),
		plugins.RegisterOrderedList(c),
		plugins.RegisterCodeBlock(c),
		offPreview,
		c.registerDefaults(),
		c.buf.OnUpdate(c.emitChange),
	)
	return c, nil
}

func (c *Composer) Buffer() *buffer.Buffer      { return c.buf }
func (c *Composer) Commands() *command.Registry { return c.reg }
func (c *Composer) Logger() *zap.Logger         { return c.logger }

// Preview returns the preview mirror of the buffer.
func (c *Composer) Preview() *preview.Sync { return c.sync }

func (c *Composer) Text() string { return c.buf.Text() }

// Close removes every handler and listener the composer installed.
func (c *Composer) Close() {
	if c.off != nil {
		c.off()
		c.off = nil
	}
}

func (c *Composer) emitChange(ch buffer.Change) {
	if ch.TextChanged && c.onChange != nil {
		c.onChange(c.buf.Text())
	}
}

// registerDefaults installs the editor-priority fallbacks that run when no
// plugin handles a key.
func (c *Composer) registerDefaults() func() {
	r := c.reg
	return command.Merge(
		command.Register(r, plugins.KeyEnter, command.PriorityEditor, func(struct{}) (bool, error) {
			c.buf.InsertNewline()
			return true, nil
		}),
		command.Register(r, plugins.KeyBackspace, command.PriorityEditor, func(struct{}) (bool, error) {
			c.buf.DeleteBackward()
			return true, nil
		}),
		command.Register(r, plugins.KeyTab, command.PriorityEditor, func(struct{}) (bool, error) {
			c.buf.InsertText(tabText)
			return true, nil
		}),
		command.Register(r, plugins.FormatQuote, command.PriorityEditor, func(struct{}) (bool, error) {
			return true, format.Quote(c.buf)
		}),
	)
}

// Key dispatches one of the plugins.Key* commands.
func (c *Composer) Key(cmd command.Command[struct{}]) (bool, error) {
	return command.Dispatch(c.reg, cmd, struct{}{})
}
