// Package whitelist reads whitelist files for dfagen.
//
// Plain text files hold one entry per line. Surrounding whitespace is trimmed, blank lines and lines
// starting with '#' are skipped, and a line consisting of "" stands for the empty string. YAML files
// (.yaml, .yml) hold a top-level "whitelist" sequence of strings.
package whitelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const emptyEntry = `""`

var ErrNoWhitelist = errors.New("yaml document has no whitelist key")

type document struct {
	Whitelist *[]string `yaml:"whitelist"`
}

// Load Reads the whitelist at path, choosing the format from its extension.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = ParseYAML(f)
	default:
		entries, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse Reads a plain text whitelist.
func Parse(r io.Reader) ([]string, error) {
	entries := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case line == emptyEntry:
			entries = append(entries, "")
		default:
			entries = append(entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseYAML Reads a YAML whitelist document.
func ParseYAML(r io.Reader) ([]string, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoWhitelist
		}
		return nil, err
	}
	if doc.Whitelist == nil {
		return nil, ErrNoWhitelist
	}
	return *doc.Whitelist, nil
}
