package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults
// (or localtrack.yaml values) hold unless the flag is actually set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("localtrack", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var negated negatedFlags

	definePathFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "localtrack v"+version)
		os.Exit(0)
	}

	if args := fs.Args(); len(args) != 0 {
		return fmt.Errorf("unexpected argument %q (localtrack takes no positional arguments)", args[0])
	}

	cfg.LocalDir = NormalizeDirArg(cfg.LocalDir)
	cfg.WorkDir = NormalizeDirArg(cfg.WorkDir)
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noStats -> ShowFileStats=false) or
// trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noStats     bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePathFlags registers --local, --tool, --workdir.
func definePathFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.LocalDir, "local", cfg.LocalDir, "Directory scanned for module zips")
	fs.StringVar(&cfg.Tool, "tool", cfg.Tool, "Repository CLI used to add tracks")
	fs.StringVar(&cfg.WorkDir, "workdir", cfg.WorkDir, "Working directory for tool invocations")
}

// defineBehaviorFlags registers --dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not invoke the repository CLI")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineDisplayFlags registers --no-stats, --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noStats, "no-stats", false, "Hide per-archive metadata and size lines")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noStats {
		cfg.ShowFileStats = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "localtrack v" + version + " — register local module zips as repository tracks"},
		{"", ""},
		{"  localtrack [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  --local <dir>", "Directory scanned for module zips (default: local)"},
		{"  --tool <path>", "Repository CLI used to add tracks (default: repoutil)"},
		{"  --workdir <dir>", "Working directory for tool invocations (default: binary dir)"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not invoke the repository CLI"},
		{"", ""},
		{"Display", ""},
		{"  --no-stats", "Hide per-archive metadata and size lines"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (tool, working dir, local dir)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%s%s\n", l.flags, strings.Repeat(" ", padding), l.desc)
	}
}
