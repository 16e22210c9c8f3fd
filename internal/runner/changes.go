package runner

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// SourcesChanged reports whether any file under dir is modified or
// untracked according to git. Compile steps are skipped for clean
// checkouts that already built once. Outside a git repo, or when git is
// missing, everything counts as changed.
func SourcesChanged(dir string) bool {
	changed, err := gitDirty(dir)
	if err != nil {
		return true
	}
	return changed
}

func gitDirty(dir string) (bool, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return false, fmt.Errorf("git not found: %w", err)
	}

	if _, err := gitOutput(dir, "rev-parse", "--show-toplevel"); err != nil {
		return false, fmt.Errorf("not a git repository: %w", err)
	}

	out, err := gitOutput(dir, "status", "--porcelain", "--", ".")
	if err != nil {
		return false, fmt.Errorf("git status failed: %w", err)
	}
	return strings.TrimSpace(out) != "", nil
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = filepath.Clean(dir)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
