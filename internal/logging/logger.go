// Package logging provides the leveled console logger and the optional
// plain-text file sink. Console output goes through charmbracelet/log;
// the file sink is a second charm logger pinned to the Ascii profile so
// log files never contain ANSI sequences.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/modrepo/localtrack/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

var successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// Logger wraps the console and file sinks behind the printf-style methods
// the rest of the tool uses.
type Logger struct {
	console *charmlog.Logger
	sink    *charmlog.Logger
	file    *os.File
}

// NewLogger resolves the color profile from cfg, configures lipgloss to
// match (the display package picks this up), and optionally opens LogFile.
// Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	profile := resolveProfile(cfg.ColorMode)
	lipgloss.SetColorProfile(profile)

	console := charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           charmlog.DebugLevel,
	})
	console.SetColorProfile(profile)

	l := &Logger{console: console}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		sink := charmlog.NewWithOptions(f, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      timeFormat,
			Level:           charmlog.DebugLevel,
		})
		sink.SetColorProfile(termenv.Ascii)
		l.sink = sink
		l.file = f
	}
	return l, nil
}

// resolveProfile maps the configured color mode to a termenv profile,
// honoring NO_COLOR (https://no-color.org) and TERM=dumb in auto mode.
func resolveProfile(mode config.ColorMode) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI256
	case config.ColorNever:
		return termenv.Ascii
	default: // ColorAuto
		if !isTerminal(os.Stdout) ||
			os.Getenv("NO_COLOR") != "" ||
			strings.ToLower(os.Getenv("TERM")) == "dumb" {
			return termenv.Ascii
		}
		return termenv.EnvColorProfile()
	}
}

// isTerminal reports whether f is attached to a TTY (character device).
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.sink = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.console.Infof(format, args...)
	if l.sink != nil {
		l.sink.Infof(format, args...)
	}
}

// Success logs at INFO level with a green check prefix on the console.
func (l *Logger) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.console.Info(successStyle.Render("✓") + " " + msg)
	if l.sink != nil {
		l.sink.Info("✓ " + msg)
	}
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.console.Warnf(format, args...)
	if l.sink != nil {
		l.sink.Warnf(format, args...)
	}
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.console.Errorf(format, args...)
	if l.sink != nil {
		l.sink.Errorf(format, args...)
	}
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.console.Debugf(format, args...)
	if l.sink != nil {
		l.sink.Debugf(format, args...)
	}
}
