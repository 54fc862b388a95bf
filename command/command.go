// Package command is a per-instance command dispatch table.
//
// A Command is a typed identity. Handlers register against it with a
// Priority; Dispatch walks them from the highest priority down, in
// registration order within one priority, and stops at the first handler
// that reports the command as handled.
package command

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

type Priority int

const (
	PriorityEditor Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityEditor:
		return "editor"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

type key struct {
	name string
}

// Command identifies a command carrying a payload of type P. Two commands
// created by separate New calls are distinct even if their names match.
type Command[P any] struct {
	k *key
}

func New[P any](name string) Command[P] {
	return Command[P]{k: &key{name: name}}
}

func (c Command[P]) Name() string {
	if c.k == nil {
		return ""
	}
	return c.k.name
}

// Handler reports whether it handled the command. An error is only
// meaningful together with handled == true.
type Handler[P any] func(payload P) (handled bool, err error)

type entry struct {
	id   uint64
	prio Priority
	fn   func(payload any) (bool, error)
}

// Registry holds the handlers of one editor instance.
type Registry struct {
	logger  *zap.Logger
	entries map[*key][]entry
	nextID  uint64
}

func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger, entries: make(map[*key][]entry)}
}

// Register adds h for cmd and returns a function removing it again.
func Register[P any](r *Registry, cmd Command[P], prio Priority, h Handler[P]) (unregister func()) {
	if cmd.k == nil || h == nil {
		return func() {}
	}
	r.nextID++
	e := entry{
		id:   r.nextID,
		prio: prio,
		fn: func(payload any) (bool, error) {
			p, _ := payload.(P)
			return h(p)
		},
	}

	list := append(r.entries[cmd.k], e)
	sort.SliceStable(list, func(i, j int) bool { return list[i].prio > list[j].prio })
	r.entries[cmd.k] = list

	id := e.id
	return func() { r.remove(cmd.k, id) }
}

func (r *Registry) remove(k *key, id uint64) {
	list := r.entries[k]
	for i, e := range list {
		if e.id != id {
			continue
		}
		list = append(list[:i:i], list[i+1:]...)
		if len(list) == 0 {
			delete(r.entries, k)
		} else {
			r.entries[k] = list
		}
		return
	}
}

// Dispatch runs the handlers of cmd until one handles it. A panicking
// handler is logged and treated as unhandled. Handlers may register or
// unregister during dispatch; the walk uses the table as it was on entry.
func Dispatch[P any](r *Registry, cmd Command[P], payload P) (handled bool, err error) {
	if cmd.k == nil {
		return false, nil
	}
	list := append([]entry(nil), r.entries[cmd.k]...)
	for _, e := range list {
		ok, err := r.call(cmd.k.name, e, payload)
		if ok {
			return true, err
		}
		if err != nil {
			r.logger.Debug("unhandled command returned error",
				zap.String("command", cmd.k.name),
				zap.Stringer("priority", e.prio),
				zap.Error(err))
		}
	}
	return false, nil
}

func (r *Registry) call(name string, e entry, payload any) (handled bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("command handler panicked",
				zap.String("command", name),
				zap.Stringer("priority", e.prio),
				zap.Any("panic", rec))
			handled, err = false, nil
		}
	}()
	return e.fn(payload)
}

// Handlers reports how many handlers are registered for cmd.
func Handlers[P any](r *Registry, cmd Command[P]) int {
	if cmd.k == nil {
		return 0
	}
	return len(r.entries[cmd.k])
}

// Merge returns a function calling every fn in reverse order.
func Merge(fns ...func()) func() {
	return func() {
		for i := len(fns) - 1; i >= 0; i-- {
			if fns[i] != nil {
				fns[i]()
			}
		}
	}
}
