package automaton

import (
	"fmt"
	"log/slog"
	"slices"
)

type generatorOption struct {
	alphabet *Alphabet
	logger   *slog.Logger
}

type GeneratorOption func(*generatorOption)

// WithAlphabet Selects the alphabet whitelist entries are checked against.
func WithAlphabet(alphabet *Alphabet) GeneratorOption {
	return func(o *generatorOption) {
		if alphabet != nil {
			o.alphabet = alphabet
		}
	}
}

func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(o *generatorOption) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Generator Turns a whitelist into the transition table of the minimal DFA accepting it. A Generator
// holds the automaton of its last run and is not safe for concurrent use.
type Generator struct {
	alphabet *Alphabet
	logger   *slog.Logger

	automaton *Automaton
	stats     *MinimizationStats
}

func NewGenerator(options ...GeneratorOption) *Generator {
	opts := &generatorOption{
		alphabet: DefaultAlphabet(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, fn := range options {
		fn(opts)
	}
	return &Generator{
		alphabet: opts.alphabet,
		logger:   opts.logger,
	}
}

// Generate Builds and minimizes the automaton accepting exactly whitelist and returns its transition
// table. Entries are deduplicated and sorted first, so the output depends only on the set of entries.
// Any previous run's automaton is discarded.
func (g *Generator) Generate(whitelist []string) (string, error) {
	a, err := g.GenerateAutomaton(whitelist)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// GenerateAutomaton Like Generate, but returns the minimized automaton instead of its table.
func (g *Generator) GenerateAutomaton(whitelist []string) (*Automaton, error) {
	g.Reset()

	entries := slices.Clone(whitelist)
	slices.Sort(entries)
	entries = slices.Compact(entries)

	a, err := Build(entries, g.alphabet)
	if err != nil {
		g.logger.Warn("whitelist rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("build automaton: %w", err)
	}
	g.logger.Debug("automaton built",
		slog.Int("entries", len(entries)),
		slog.Int("states", a.GetNumStates()),
		slog.Int("transitions", a.GetNumTransitions()))

	stats, err := Minimize(a)
	if err != nil {
		g.logger.Error("minimization failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("minimize automaton: %w", err)
	}
	g.logger.Debug("automaton minimized",
		slog.Int("states_before", stats.StatesBefore),
		slog.Int("states_after", stats.StatesAfter),
		slog.Int("merged", stats.Merged),
		slog.Int("iterations", stats.Iterations))

	g.automaton = a
	g.stats = stats
	return a, nil
}

// Automaton Returns the automaton of the last successful run, nil if there is none.
func (g *Generator) Automaton() *Automaton {
	return g.automaton
}

// Stats Returns the minimization statistics of the last successful run, nil if there is none.
func (g *Generator) Stats() *MinimizationStats {
	return g.stats
}

// Reset Discards the automaton of the last run.
func (g *Generator) Reset() {
	g.automaton = nil
	g.stats = nil
}
