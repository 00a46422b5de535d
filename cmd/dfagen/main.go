// Command dfagen prints the minimal DFA accepting exactly the strings of a whitelist file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	automaton "github.com/geange/dfagen"
	"github.com/geange/dfagen/internal/config"
	"github.com/geange/dfagen/internal/whitelist"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("dfagen: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fs := flag.NewFlagSet("dfagen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		whitelistPath = fs.String("whitelist", cfg.Whitelist, "Path to the whitelist file (.txt one entry per line, or .yaml)")
		format        = fs.String("format", cfg.Format, "Output format: table or dot")
		alphabet      = fs.String("alphabet", cfg.Alphabet, "Symbols of the alphabet (default [a-zA-Z0-9.])")
		verbose       = fs.Bool("verbose", false, "Enable debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Whitelist = *whitelistPath
	cfg.Format = *format
	cfg.Alphabet = *alphabet
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Whitelist == "" {
		fs.Usage()
		return fmt.Errorf("no whitelist given")
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	options := []automaton.GeneratorOption{automaton.WithLogger(logger)}
	if cfg.Alphabet != "" {
		a, err := automaton.NewAlphabet(cfg.Alphabet)
		if err != nil {
			return err
		}
		options = append(options, automaton.WithAlphabet(a))
	}

	entries, err := whitelist.Load(cfg.Whitelist)
	if err != nil {
		return fmt.Errorf("load whitelist: %w", err)
	}
	logger.Info("whitelist loaded", slog.String("path", cfg.Whitelist), slog.Int("entries", len(entries)))

	g := automaton.NewGenerator(options...)
	a, err := g.GenerateAutomaton(entries)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case config.FormatDot:
		_, err = io.WriteString(stdout, a.GenerateGraphviz())
	default:
		_, err = a.WriteTo(stdout)
	}
	return err
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
