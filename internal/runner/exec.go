package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

// Executor runs toolchain commands. The single implementation shells out
// locally; tests substitute a fake.
type Executor interface {
	// Capture runs cmd in dir and returns its output and exit code.
	// A non-zero exit is not an error; a command that could not run is.
	Capture(ctx context.Context, cmd, dir string) (stdout, stderr string, exitCode int, err error)
}

// LocalExecutor runs commands through the user's shell so templates can
// use pipes and redirects.
type LocalExecutor struct {
	// Shell overrides $SHELL. Empty falls back to /bin/sh.
	Shell string
}

func (e LocalExecutor) Capture(ctx context.Context, cmd, dir string) (string, string, int, error) {
	shell := e.Shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}

	command := exec.CommandContext(ctx, shell, "-c", cmd)
	if dir != "" {
		command.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
		}
		return stdout.String(), stderr.String(), -1, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't run the command",
			"Make sure the toolchain for this language is installed")
	}
	return stdout.String(), stderr.String(), 0, nil
}
