package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceHistory
)

// Change is a normalized, versioned description of one committed transaction.
type Change struct {
	Source          ChangeSource
	Tag             string
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	TextChanged     bool
}

// SelectionState captures the selection at a point in time.
type SelectionState struct {
	Active    bool
	Selection Selection
}

type changeBuilder struct {
	source          ChangeSource
	tag             string
	versionBefore   uint64
	selectionBefore SelectionState
}

type listener struct {
	id int
	fn func(Change)
}

// OnUpdate registers fn to run after every committed transaction that
// changed the buffer. Listeners run in registration order, outside the
// transaction, so they may start new transactions.
func (b *Buffer) OnUpdate(fn func(Change)) (remove func()) {
	b.nextLID++
	id := b.nextLID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// LastChange returns the most recent committed change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) selectionState() SelectionState {
	if !b.selActive {
		return SelectionState{}
	}
	return SelectionState{Active: true, Selection: b.sel}
}

func (b *Buffer) beginChange(source ChangeSource, tag string) changeBuilder {
	return changeBuilder{
		source:          source,
		tag:             tag,
		versionBefore:   b.version,
		selectionBefore: b.selectionState(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder, textChanged bool) {
	b.lastChange = Change{
		Source:          cb.source,
		Tag:             cb.tag,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.selectionState(),
		TextChanged:     textChanged,
	}
	b.hasLastChange = true
}

func (b *Buffer) notify(ch Change) {
	ls := append([]listener(nil), b.listeners...)
	for _, l := range ls {
		l.fn(ch)
	}
}
