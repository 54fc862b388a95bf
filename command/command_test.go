package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatch_WalksByPriorityThenRegistrationOrder(t *testing.T) {
	r := NewRegistry(nil)
	cmd := New[string]("test")
	var calls []string

	record := func(name string) Handler[string] {
		return func(string) (bool, error) {
			calls = append(calls, name)
			return false, nil
		}
	}
	Register(r, cmd, PriorityLow, record("low"))
	Register(r, cmd, PriorityHigh, record("high-1"))
	Register(r, cmd, PriorityEditor, record("editor"))
	Register(r, cmd, PriorityHigh, record("high-2"))
	Register(r, cmd, PriorityCritical, record("critical"))

	handled, err := Dispatch(r, cmd, "x")
	if handled || err != nil {
		t.Fatalf("dispatch: got (%v, %v), want (false, nil)", handled, err)
	}
	want := []string{"critical", "high-1", "high-2", "low", "editor"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatch_StopsAtFirstHandled(t *testing.T) {
	r := NewRegistry(nil)
	cmd := New[int]("stop")
	sentinel := errors.New("invalid")
	lowCalled := false

	Register(r, cmd, PriorityHigh, func(n int) (bool, error) {
		if n != 7 {
			t.Fatalf("payload: got %d, want 7", n)
		}
		return true, sentinel
	})
	Register(r, cmd, PriorityLow, func(int) (bool, error) {
		lowCalled = true
		return true, nil
	})

	handled, err := Dispatch(r, cmd, 7)
	if !handled || !errors.Is(err, sentinel) {
		t.Fatalf("dispatch: got (%v, %v), want (true, sentinel)", handled, err)
	}
	if lowCalled {
		t.Fatalf("lower priority handler ran after a handled result")
	}
}

func TestDispatch_RecoversPanicAndContinues(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := NewRegistry(zap.New(core))
	cmd := New[struct{}]("panic")

	Register(r, cmd, PriorityHigh, func(struct{}) (bool, error) {
		panic("bad document shape")
	})
	Register(r, cmd, PriorityLow, func(struct{}) (bool, error) {
		return true, nil
	})

	handled, err := Dispatch(r, cmd, struct{}{})
	if !handled || err != nil {
		t.Fatalf("dispatch: got (%v, %v), want (true, nil)", handled, err)
	}
	if got := logs.FilterMessage("command handler panicked").Len(); got != 1 {
		t.Fatalf("panic log entries: got %d, want 1", got)
	}
}

func TestRegister_UnregisterAndMerge(t *testing.T) {
	r := NewRegistry(nil)
	a := New[struct{}]("a")
	b := New[struct{}]("b")
	yes := func(struct{}) (bool, error) { return true, nil }

	off := Merge(
		Register(r, a, PriorityNormal, yes),
		Register(r, b, PriorityNormal, yes),
	)
	if Handlers(r, a) != 1 || Handlers(r, b) != 1 {
		t.Fatalf("expected one handler per command")
	}
	off()
	if Handlers(r, a) != 0 || Handlers(r, b) != 0 {
		t.Fatalf("expected handlers removed")
	}
	if handled, _ := Dispatch(r, a, struct{}{}); handled {
		t.Fatalf("dispatch after unregister reported handled")
	}
}

func TestNew_SameNameIsDistinctIdentity(t *testing.T) {
	r := NewRegistry(nil)
	first := New[struct{}]("dup")
	second := New[struct{}]("dup")
	Register(r, first, PriorityNormal, func(struct{}) (bool, error) { return true, nil })

	if handled, _ := Dispatch(r, second, struct{}{}); handled {
		t.Fatalf("handler for one command answered another with the same name")
	}
}

func TestRegistries_AreIndependent(t *testing.T) {
	cmd := New[struct{}]("shared")
	r1, r2 := NewRegistry(nil), NewRegistry(nil)
	Register(r1, cmd, PriorityNormal, func(struct{}) (bool, error) { return true, nil })

	if handled, _ := Dispatch(r2, cmd, struct{}{}); handled {
		t.Fatalf("registries share handlers")
	}
}

func TestDispatch_HandlerMayUnregisterItself(t *testing.T) {
	r := NewRegistry(nil)
	cmd := New[struct{}]("once")
	var off func()
	calls := 0
	off = Register(r, cmd, PriorityNormal, func(struct{}) (bool, error) {
		calls++
		off()
		return true, nil
	})

	Dispatch(r, cmd, struct{}{})
	Dispatch(r, cmd, struct{}{})
	if calls != 1 {
		t.Fatalf("calls: got %d, want 1", calls)
	}
}
