package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// RC is the user rc file (~/.funshrc.yaml). Every field is optional;
// zero values fall back to the constants in this package.
type RC struct {
	Prompt      string            `yaml:"prompt"`
	HistoryFile string            `yaml:"history_file"`
	Aliases     map[string]string `yaml:"aliases"`
}

// Defaults returns an RC with every fallback applied.
func Defaults() *RC {
	return &RC{
		Prompt:      DefaultPrompt,
		HistoryFile: DefaultHistoryFile,
		Aliases:     map[string]string{},
	}
}

// LoadRC reads and decodes an rc file. A missing file is not an
// error: defaults are returned.
func LoadRC(path string) (*RC, error) {
	rc := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return rc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var parsed RC
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	if parsed.Prompt != "" {
		rc.Prompt = parsed.Prompt
	}
	if parsed.HistoryFile != "" {
		rc.HistoryFile = parsed.HistoryFile
	}
	for name, target := range parsed.Aliases {
		rc.Aliases[name] = target
	}
	return rc, nil
}
