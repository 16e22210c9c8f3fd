package runner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
)

func writeSolutions(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("solution"), 0o644))
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeSolutions(t, root,
		"python/2023/1.py",
		"python/2023/07.py",
		"python/2022/25.py",
		"python/2023/notes.txt",
		"rust/2023/5/main.rs",
	)

	langs := map[string]config.Language{
		"python": {Extension: ".py", Run: "python3 ${DAY}.py"},
		"rust":   {Extension: ".rs", Folder: true, Run: "cargo run"},
	}
	now := time.Date(2023, time.December, 10, 12, 0, 0, 0, eastern)

	solutions, err := Discover(root, langs, nil, now)
	require.NoError(t, err)
	require.Len(t, solutions, 4)

	assert.Equal(t, Solution{Lang: "python", Year: 2022, Day: 25, Dir: filepath.Join(root, "python", "2022")}, solutions[0])
	assert.Equal(t, 1, solutions[1].Day)
	assert.Equal(t, 5, solutions[2].Day)
	assert.Equal(t, "rust", solutions[2].Lang)
	assert.Equal(t, filepath.Join(root, "rust", "2023", "5"), solutions[2].Dir)
	assert.Equal(t, 7, solutions[3].Day)
}

func TestDiscoverSkipsUnreleased(t *testing.T) {
	root := t.TempDir()
	writeSolutions(t, root, "python/2023/1.py", "python/2023/20.py")

	langs := map[string]config.Language{
		"python": {Extension: ".py", Run: "python3 ${DAY}.py"},
	}
	now := time.Date(2023, time.December, 5, 12, 0, 0, 0, eastern)

	solutions, err := Discover(root, langs, nil, now)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, 1, solutions[0].Day)
}

func TestDiscoverYearFilter(t *testing.T) {
	root := t.TempDir()
	writeSolutions(t, root, "python/2022/1.py", "python/2023/1.py")

	langs := map[string]config.Language{
		"python": {Extension: ".py", Run: "python3 ${DAY}.py"},
	}
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, eastern)

	solutions, err := Discover(root, langs, []int{2022}, now)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, 2022, solutions[0].Year)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"), nil, nil, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Solutions directory not found")
}
