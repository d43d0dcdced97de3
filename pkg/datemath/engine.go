package datemath

import (
	"errors"
	"fmt"
)

const (
	EngineWhen  = "when"
	EngineBasic = "basic"
)

var ErrUnknownEngine = errors.New("unknown date engine")

// NewEngine returns the engine registered under name. An empty name selects
// the when engine.
func NewEngine(name string) (Engine, error) {
	switch name {
	case "", EngineWhen:
		return NewWhenEngine(), nil
	case EngineBasic:
		return NewBasicEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}
