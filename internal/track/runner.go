package track

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/modrepo/localtrack/internal/config"
)

// Result holds the outcome of a single track --add invocation.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Launched reports whether the process actually started. A false value means
// the tool itself could not be run (missing binary, permission), as opposed
// to the tool running and exiting nonzero.
func (r Result) Launched() bool {
	var exitErr *exec.ExitError
	return r.Err == nil || errors.As(r.Err, &exitErr)
}

// BuildArgs returns the track --add argument list for one module.
// changelog= stays a literal empty value regardless of input.
func BuildArgs(id, zipName string) []string {
	return []string{
		"track", "--add",
		"id=" + id,
		"update_to=" + zipName,
		"changelog=",
	}
}

// CommandLine renders the full invocation for progress output.
func CommandLine(cfg *config.Config, id, zipName string) string {
	return cfg.ResolvedTool() + " " + strings.Join(BuildArgs(id, zipName), " ")
}

// Add runs the repository CLI synchronously with WorkDir as the working
// directory, capturing stdout and stderr as text. No timeout is applied;
// the call blocks until the tool exits. Errors are returned in the Result,
// never propagated as panics or process exits.
func Add(ctx context.Context, cfg *config.Config, id, zipName string) Result {
	cmd := exec.CommandContext(ctx, cfg.ResolvedTool(), BuildArgs(id, zipName)...)
	cmd.Dir = cfg.WorkDir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	return Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
