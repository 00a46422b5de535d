package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol is returned when a whitelist entry uses a symbol outside the alphabet.
	ErrInvalidSymbol = errors.New("symbol not in alphabet")

	// ErrInvariantViolation is returned when the state graph is inconsistent, e.g. a transition
	// points at a state that is no longer tracked. It indicates a defect and is not retryable.
	ErrInvariantViolation = errors.New("automaton invariant violated")

	ErrInvalidAlphabet = errors.New("invalid alphabet")
	ErrUnknownState    = errors.New("unknown state")
)

// InvalidSymbolError reports the offending entry and symbol.
type InvalidSymbolError struct {
	Entry    string
	Symbol   rune
	Position int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d in %q", e.Symbol, e.Position, e.Entry)
}

func (e *InvalidSymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

// InvariantError describes a broken graph invariant.
type InvariantError struct {
	State  int
	Symbol rune
	Target int
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Symbol == 0 {
		return fmt.Sprintf("state %d: %s", e.State, e.Reason)
	}
	return fmt.Sprintf("state %d on %q -> %d: %s", e.State, e.Symbol, e.Target, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

func IsInvalidSymbolError(err error) bool {
	var e *InvalidSymbolError
	return errors.As(err, &e)
}

func IsInvariantError(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}
