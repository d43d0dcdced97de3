package datemath

import (
	"errors"
	"testing"
)

func TestNewEngine(t *testing.T) {
	if e, err := NewEngine(""); err != nil {
		t.Fatalf("empty name: %v", err)
	} else if _, ok := e.(*WhenEngine); !ok {
		t.Errorf("empty name gave %T", e)
	}
	if e, err := NewEngine(EngineBasic); err != nil {
		t.Fatalf("basic: %v", err)
	} else if _, ok := e.(*BasicEngine); !ok {
		t.Errorf("basic gave %T", e)
	}
	if _, err := NewEngine("chrono"); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("got %v, want ErrUnknownEngine", err)
	}
}
