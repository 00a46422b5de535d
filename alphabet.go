package automaton

import (
	"fmt"
	"unicode/utf8"
)

// DEFAULT_ALPHABET is the symbol set whitelists are written in: ASCII letters, digits and a literal dot.
const DEFAULT_ALPHABET = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890."

// Alphabet An ordered, fixed set of symbols. The order is the order symbols are visited in
// during minimization and serialization.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// DefaultAlphabet Returns the 63-symbol alphabet [a-zA-Z0-9.].
func DefaultAlphabet() *Alphabet {
	a, _ := NewAlphabet(DEFAULT_ALPHABET)
	return a
}

// NewAlphabet Creates an alphabet from the symbols of s, in order. Empty strings, invalid UTF-8 and
// duplicate symbols are rejected.
func NewAlphabet(s string) (*Alphabet, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrInvalidAlphabet)
	}
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidAlphabet)
	}

	a := &Alphabet{
		symbols: make([]rune, 0, len(s)),
		index:   make(map[rune]int, len(s)),
	}
	for _, r := range s {
		if _, ok := a.index[r]; ok {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, r)
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	return a, nil
}

func (a *Alphabet) Contains(symbol rune) bool {
	_, ok := a.index[symbol]
	return ok
}

// Index Returns the position of symbol in the alphabet, -1 if absent.
func (a *Alphabet) Index(symbol rune) int {
	i, ok := a.index[symbol]
	if !ok {
		return -1
	}
	return i
}

func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols Returns the symbols in alphabet order. The slice must not be modified.
func (a *Alphabet) Symbols() []rune {
	return a.symbols
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}
