package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modrepo/localtrack/internal/config"
	"github.com/modrepo/localtrack/internal/display"
	"github.com/modrepo/localtrack/internal/logging"
	"github.com/modrepo/localtrack/internal/module"
	"github.com/modrepo/localtrack/internal/track"
)

// Run is the top-level batch entry point. It discovers zip files, processes
// each sequentially, prints the summary, and returns aggregate stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.LocalDir)
	if err != nil {
		log.Error("Cannot list %s: %v", cfg.LocalDir, err)
		return stats
	}

	stats.Total = len(files)
	if stats.Total == 0 {
		log.Info("No zip files found in %s/ directory", cfg.LocalDir)
		return stats
	}

	log.Info("Found %d zip files in %s/ directory", stats.Total, cfg.LocalDir)
	if cfg.DryRun {
		log.Warn("DRY RUN — the repository CLI will not be invoked")
	}
	fmt.Println()

	for i, path := range files {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processFile(ctx, cfg, log, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one archive: inspect -> register -> report. Every
// failure mode ends in a console message and a counter bump; nothing
// propagates to the caller.
func processFile(ctx context.Context, cfg *config.Config, log *logging.Logger, path string, stats *RunStats) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] Processing %s", stats.Current, stats.Total, basename)

	mod, err := module.Inspect(path)
	if err != nil {
		logSkip(log, basename, err)
		stats.Skipped++
		fmt.Println()
		return
	}

	log.Info("Found module ID: %s", mod.ID)
	if cfg.ShowFileStats {
		logModuleStats(log, path, mod)
	}

	// The added counter tracks identifier extraction, not registrar success:
	// a module whose track command fails is still reported as added, with
	// the failure detailed separately.
	stats.Added++

	if cfg.DryRun {
		log.Success("[DRY] Would add track for %s (update_to=%s)", mod.ID, basename)
		fmt.Println()
		return
	}

	log.Debug(cfg.Verbose, "Executing: %s", track.CommandLine(cfg, mod.ID, basename))
	res := track.Add(ctx, cfg, mod.ID, basename)

	switch {
	case res.Err == nil:
		log.Success("Added track for %s", mod.ID)
		echoOutput(log, "Output", res.Stdout)
	case !res.Launched():
		stats.Failed++
		log.Error("Error executing %s for %s: %v", cfg.Tool, mod.ID, res.Err)
	default:
		stats.Failed++
		log.Error("Failed to add track for %s", mod.ID)
		echoOutput(log, "Error", res.Stderr)
		echoOutput(log, "Output", res.Stdout)
	}
	fmt.Println()
}

// logSkip picks the warning wording for the three skip sentinels; anything
// else is a read/decode failure reported with the underlying message.
func logSkip(log *logging.Logger, basename string, err error) {
	switch {
	case errors.Is(err, module.ErrNotModule):
		log.Warn("%s is not a valid Magisk module (missing updater-script or update-binary)", basename)
	case errors.Is(err, module.ErrNoProp):
		log.Warn("%s does not contain module.prop", basename)
	case errors.Is(err, module.ErrNoID):
		log.Warn("Could not find 'id=' in module.prop of %s", basename)
	default:
		log.Error("Error reading %s: %v", basename, err)
	}
	log.Info("Skipping %s", basename)
}

// logModuleStats prints the informational metadata and size lines.
func logModuleStats(log *logging.Logger, path string, mod *module.Module) {
	if mod.Name != "" || mod.Version != "" {
		version := mod.Version
		if mod.VersionCode != "" {
			version = strings.TrimSpace(version + " (" + mod.VersionCode + ")")
		}
		log.Info("  Module: %s | %s", orUnknown(mod.Name), orUnknown(version))
	}
	if mod.Author != "" {
		log.Info("  Author: %s", mod.Author)
	}
	if fi, err := os.Stat(path); err == nil {
		log.Info("  Size: %s", display.FormatBytes(fi.Size()))
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// echoOutput relays captured tool output at two-space indent, skipping
// blank captures.
func echoOutput(log *logging.Logger, label, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	log.Info("%s:", label)
	for _, line := range strings.Split(text, "\n") {
		log.Info("  %s", strings.TrimRight(line, "\r"))
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Processed %d files, added %d tracks", stats.Total, stats.Added)
	if stats.Failed > 0 {
		log.Warn("%d track command(s) failed; see messages above", stats.Failed)
	}
	if stats.Added == 0 {
		return
	}
	fmt.Println()
	log.Info("To sync the modules, run: %s sync", cfg.Tool)
	log.Info("To generate the index, run: %s index", cfg.Tool)
}
