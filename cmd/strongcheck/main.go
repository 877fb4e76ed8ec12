// strongcheck reports strong values that change unit through Get or Ptr,
// and tag types that break the wrappers' layout.
//
// Usage:
//
//	strongcheck [-config=strongcheck.yaml] [-json] ./...
//	strongcheck -check-config=strongcheck.yaml
//
// When -config is not given, the STRONGCHECK_CONFIG environment variable
// names the config file.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/Azhovan/strong/strongcheck"
)

const (
	envConfig   = "STRONGCHECK_CONFIG"
	envLogLevel = "STRONGCHECK_LOG_LEVEL"
)

func main() {
	logger := newLogger(os.Getenv(envLogLevel))

	// singlechecker.Main calls os.Exit, so -check-config is handled first.
	if path := extractCheckConfigPath(os.Args[1:]); path != "" {
		os.Exit(checkConfig(logger, path))
	}

	if err := applyEnvConfig(logger, os.Getenv); err != nil {
		logger.Error("invalid config from environment", "env", envConfig, "error", err)
		os.Exit(1)
	}

	singlechecker.Main(strongcheck.Analyzer)
}

// applyEnvConfig sets the analyzer's -config flag from STRONGCHECK_CONFIG.
// It runs before flag parsing, so a -config on the command line wins.
func applyEnvConfig(logger *log.Logger, getenv func(string) string) error {
	path := getenv(envConfig)
	if path == "" {
		return nil
	}
	if err := strongcheck.Analyzer.Flags.Set("config", path); err != nil {
		return fmt.Errorf("set config flag: %w", err)
	}
	logger.Debug("using config from environment", "path", path)
	return nil
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "strongcheck",
	})
	if level == "" {
		return logger
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("ignoring invalid log level", "env", envLogLevel, "level", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}

// extractCheckConfigPath scans CLI args for -check-config=PATH or
// --check-config=PATH and returns the path. Returns "" if not found.
func extractCheckConfigPath(args []string) string {
	for _, arg := range args {
		trimmed := strings.TrimLeft(arg, "-")
		if path, ok := strings.CutPrefix(trimmed, "check-config="); ok {
			return path
		}
	}
	return ""
}

// checkConfig validates the config file at path and returns the exit code.
func checkConfig(logger *log.Logger, path string) int {
	cfg, err := strongcheck.LoadConfig(path)
	if err != nil {
		var ce *strongcheck.ConfigError
		if errors.As(err, &ce) {
			for _, p := range ce.Problems {
				logger.Error("invalid entry", "path", path, "field", p.Path, "code", p.Code, "message", p.Message)
			}
			return 1
		}
		logger.Error("cannot load config", "path", path, "error", err)
		return 1
	}

	logger.Info("config is valid", "path", path,
		"allow", len(cfg.Allow), "exclude_paths", len(cfg.Settings.ExcludePaths))
	return 0
}
