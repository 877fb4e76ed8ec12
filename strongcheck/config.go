package strongcheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Azhovan/strong/internal/qualname"
)

// Config holds the suppression rules of the analyzer.
//
// A YAML config looks like:
//
//	settings:
//	  exclude_paths: ["internal/legacy/"]
//	allow:
//	  - from: "units.pageTag"
//	    to: "units.blockTag"
//	    reason: "a block is one page on every supported platform"
type Config struct {
	Settings Settings `yaml:"settings" toml:"settings" json:"settings"`
	Allow    []Allow  `yaml:"allow" toml:"allow" json:"allow"`
}

// Settings configures global analyzer behavior.
type Settings struct {
	// ExcludePaths lists path substrings. Files whose path contains any of
	// them are not analyzed.
	ExcludePaths []string `yaml:"exclude_paths" toml:"exclude_paths" json:"exclude_paths"`
}

// Allow permits values of one unit to flow into another. From and To are
// patterns over qualified tag names (see qualname.Match).
type Allow struct {
	From   string `yaml:"from" toml:"from" json:"from"`
	To     string `yaml:"to" toml:"to" json:"to"`
	Reason string `yaml:"reason" toml:"reason" json:"reason"`
}

// LoadConfig reads the config file at path. The format is inferred from the
// extension (.yaml, .yml, .toml or .json); unknown keys are rejected. An
// empty path yields an empty config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	switch format := inferFormat(path); format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse YAML file %s: %w", path, err)
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse JSON file %s: %w", path, err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse TOML file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s (supported: yaml, json, toml)", ErrUnsupportedFormat, path)
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	var problems []Problem

	pattern := func(field, p string) {
		switch {
		case p == "":
			problems = append(problems, Problem{Path: field, Code: ProblemRequired, Message: "pattern is required"})
		case !qualname.ValidPattern(p):
			problems = append(problems, Problem{Path: field, Code: ProblemInvalidPattern, Message: fmt.Sprintf("malformed pattern %q", p)})
		}
	}

	for i, a := range c.Allow {
		pattern(fmt.Sprintf("allow[%d].from", i), a.From)
		pattern(fmt.Sprintf("allow[%d].to", i), a.To)
		if strings.TrimSpace(a.Reason) == "" {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("allow[%d].reason", i),
				Code:    ProblemRequired,
				Message: "every allowed conversion needs a reason",
			})
		}
	}

	for i, p := range c.Settings.ExcludePaths {
		if p == "" {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("settings.exclude_paths[%d]", i),
				Code:    ProblemEmpty,
				Message: "path must not be empty",
			})
		}
	}

	if len(problems) > 0 {
		return &ConfigError{Path: path, Problems: problems}
	}
	return nil
}

// isAllowed reports whether a flow from unit from into unit to is permitted.
// Both arguments are qualified tag names.
func (c *Config) isAllowed(from, to string) bool {
	for _, a := range c.Allow {
		if qualname.Match(a.From, from) && qualname.Match(a.To, to) {
			return true
		}
	}
	return false
}

// isExcludedPath checks whether a file path contains any of the
// exclude_paths substrings.
func (c *Config) isExcludedPath(filePath string) bool {
	for _, ep := range c.Settings.ExcludePaths {
		if strings.Contains(filePath, ep) {
			return true
		}
	}
	return false
}

func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
