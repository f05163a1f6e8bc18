// Command localtrack is the entrypoint for the local module track registrar.
//
// It scans the local/ directory for Magisk module zips, extracts each
// module's id from module.prop, and registers the module as a track by
// invoking the co-located repository CLI (`repoutil track --add ...`).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/modrepo/localtrack/internal/check"
	"github.com/modrepo/localtrack/internal/config"
	"github.com/modrepo/localtrack/internal/display"
	"github.com/modrepo/localtrack/internal/logging"
	"github.com/modrepo/localtrack/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Config layering: defaults, then the
	// optional localtrack.yaml next to the binary, then CLI flags.
	cfg := config.DefaultConfig()
	if err := config.LoadFile(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "localtrack: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "localtrack: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "localtrack: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "localtrack: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== localtrack v%s (%s) ===", version, commit)
	log.Info("Local dir: %s/", cfg.LocalDir)
	log.Info("Tool: %s", cfg.ResolvedTool())

	// The only fatal precondition: the local directory must exist.
	// Everything past this point is best-effort per file.
	if fi, err := os.Stat(cfg.LocalDir); err != nil || !fi.IsDir() {
		log.Error("%s/ directory does not exist", cfg.LocalDir)
		return 1
	}

	// Advisory only: a missing tool is reported per invocation, matching the
	// batch's best-effort contract.
	if !cfg.DryRun {
		if err := check.CheckDeps(&cfg); err != nil {
			log.Warn("%v at %s (track commands will fail)", err, cfg.ResolvedTool())
		}
	}
	fmt.Println()

	pipeline.Run(context.Background(), &cfg, log)
	return 0
}
