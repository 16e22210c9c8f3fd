package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// ExpandCommand fills a language command template for one puzzle.
// Supported variables:
//   - ${YEAR} - the event year
//   - ${DAY}  - the day number
//   - ${DAY0} - the day number zero-padded to two digits
func ExpandCommand(template string, year, day int) string {
	if template == "" {
		return template
	}
	r := strings.NewReplacer(
		"${YEAR}", fmt.Sprintf("%d", year),
		"${DAY}", fmt.Sprintf("%d", day),
		"${DAY0}", fmt.Sprintf("%02d", day),
	)
	return r.Replace(template)
}

// ResolvePath joins a possibly relative config path onto the data dir.
func ResolvePath(dataDir, path string) string {
	path = ExpandTilde(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ExpandTilde(dataDir), path)
}
