// Package config holds runtime configuration: defaults, the optional
// localtrack.yaml overlay, CLI flag parsing, and validation.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], and then mutated by [ParseFlags] before
// being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	LocalDir string // Directory scanned for module zips. Default: "local".
	Tool     string // Repository CLI invoked for track commands. Default: "repoutil".
	WorkDir  string // Working directory for tool invocations. Default: directory of this binary.

	// Behavior flags.
	DryRun        bool
	ShowFileStats bool // Default: true. Cleared by --no-stats.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional plain-text log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. The working directory
// defaults to the directory holding the running binary, matching the
// convention that the repository CLI lives next to localtrack.
func DefaultConfig() Config {
	return Config{
		LocalDir:      "local",
		Tool:          "repoutil",
		WorkDir:       ExecutableDir(),
		DryRun:        false,
		ShowFileStats: true,
		Verbose:       false,
		ColorMode:     ColorAuto,
		CheckOnly:     false,
	}
}

// ExecutableDir returns the directory containing the running binary, or "."
// when it cannot be resolved (e.g. under "go run" with a deleted tempdir).
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ResolvedTool returns the path used to invoke the repository CLI. A bare
// name or relative path is anchored at WorkDir, so "repoutil" resolves to
// the binary sitting next to localtrack rather than whatever $PATH holds.
func (c *Config) ResolvedTool() string {
	if filepath.IsAbs(c.Tool) {
		return c.Tool
	}
	return filepath.Join(c.WorkDir, c.Tool)
}

// Validate checks enum fields and required paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.Tool == "" {
		return errors.New("tool must not be empty")
	}
	if c.WorkDir == "" {
		return errors.New("workdir must not be empty")
	}
	if c.CheckOnly {
		return nil
	}
	if c.LocalDir == "" {
		return errors.New("local directory must not be empty")
	}
	return nil
}
