package preview

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/mdpane/buffer"
	"github.com/iw2rmb/mdpane/command"
	"github.com/iw2rmb/mdpane/format"
	"github.com/iw2rmb/mdpane/plugins"
)

// Sync mirrors the host buffer into a Document and routes inline format
// and link commands to the Markdown text engine.
type Sync struct {
	host   plugins.Host
	doc    *Document
	binder *Binder
}

// Register rebuilds doc from the host buffer now and after every text
// change, and installs the FormatText and ToggleLink handlers at high
// priority.
func Register(h plugins.Host, doc *Document) (*Sync, func()) {
	s := &Sync{
		host:   h,
		doc:    doc,
		binder: NewBinder(doc, h.Buffer(), h.Logger()),
	}
	s.rebuild()

	r := h.Commands()
	off := command.Merge(
		h.Buffer().OnUpdate(func(ch buffer.Change) {
			if ch.TextChanged {
				s.rebuild()
			}
		}),
		command.Register(r, plugins.FormatText, command.PriorityHigh, s.formatText),
		command.Register(r, plugins.ToggleLink, command.PriorityHigh, s.toggleLink),
	)
	return s, off
}

func (s *Sync) Document() *Document { return s.doc }

func (s *Sync) Binder() *Binder { return s.binder }

// Click toggles the checklist item id in the primary buffer.
func (s *Sync) Click(id ItemID) error {
	return s.binder.Click(id)
}

func (s *Sync) rebuild() {
	if err := s.doc.Rebuild(s.host.Buffer().Text()); err != nil {
		s.host.Logger().Error("preview rebuild failed", zap.Error(err))
	}
	s.binder.Bind()
}

func (s *Sync) formatText(kind format.Kind) (bool, error) {
	markers, ok := kind.Markers()
	if !ok {
		return false, nil
	}
	if _, err := format.Toggle(s.host.Buffer(), markers); err != nil {
		s.host.Logger().Warn("format toggle failed", zap.String("format", string(kind)), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *Sync) toggleLink(p plugins.LinkPayload) (bool, error) {
	return true, format.Link(s.host.Buffer(), p.URL)
}
