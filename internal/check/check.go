// Package check provides the --check diagnostics flow and the pre-run
// advisory validation of the repository CLI.
package check

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/modrepo/localtrack/internal/config"
	"github.com/modrepo/localtrack/internal/pipeline"
)

// ErrToolNotFound is returned by CheckDeps when the repository CLI cannot be
// found or is not executable. Tool absence is advisory, not fatal: the batch
// still runs and each invocation failure is reported per file.
var ErrToolNotFound = errors.New("repository CLI not found")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow: working directory, repository CLI
// presence and version, and local directory contents. Returns false when
// the tool is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	log.Info("Working directory: %s", cfg.WorkDir)

	ok := checkTool(cfg, log)
	checkLocalDir(cfg, log)
	return ok
}

// checkTool verifies the repository CLI is present and logs its version line.
func checkTool(cfg *config.Config, log Logger) bool {
	tool := cfg.ResolvedTool()
	if err := CheckDeps(cfg); err != nil {
		log.Error("%v: %s", err, tool)
		return false
	}

	cmd := exec.Command(tool, "version")
	cmd.Dir = cfg.WorkDir
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but 'version' failed: %v", cfg.Tool, err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", cfg.Tool, firstLine)
	return true
}

// checkLocalDir reports whether the local directory exists and how many zip
// files it currently holds.
func checkLocalDir(cfg *config.Config, log Logger) {
	fi, err := os.Stat(cfg.LocalDir)
	if err != nil || !fi.IsDir() {
		log.Warn("Local directory missing: %s/ (a run would exit with status 1)", cfg.LocalDir)
		return
	}
	files, err := pipeline.Discover(cfg.LocalDir)
	if err != nil {
		log.Warn("Cannot list %s/: %v", cfg.LocalDir, err)
		return
	}
	log.Success("Local directory: %s/ (%d zip files)", cfg.LocalDir, len(files))
}

// CheckDeps verifies the repository CLI resolves to an executable file.
func CheckDeps(cfg *config.Config) error {
	fi, err := os.Stat(cfg.ResolvedTool())
	if err != nil || fi.IsDir() {
		return ErrToolNotFound
	}
	if fi.Mode()&0o111 == 0 {
		return ErrToolNotFound
	}
	return nil
}
