package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/logger"
)

type fakeExecutor struct {
	commands []string
	dirs     []string
	stdout   string
	exit     int
}

func (e *fakeExecutor) Capture(ctx context.Context, cmd, dir string) (string, string, int, error) {
	e.commands = append(e.commands, cmd)
	e.dirs = append(e.dirs, dir)
	return e.stdout, "boom", e.exit, nil
}

type fakeFetcher struct {
	input string
	calls int
}

func (f *fakeFetcher) Input(ctx context.Context, year, day int) (string, error) {
	f.calls++
	return f.input, nil
}

func testConfig(dataDir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.DataDir = dataDir
	return cfg
}

func TestRunExecutesAndParses(t *testing.T) {
	dir := t.TempDir()
	exe := &fakeExecutor{stdout: "Part 1: 42\n1.5 ms\nPart 2: 99\n2 ms\n"}
	fetch := &fakeFetcher{input: "puzzle input"}

	r := New(testConfig(dir),
		WithExecutor(exe),
		WithInputFetcher(fetch),
		WithLogger(logger.NewNoop()),
	)

	sol := Solution{Lang: "python", Year: 2023, Day: 7, Dir: dir}
	results, err := r.Run(context.Background(), sol)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "42", results[0].Answer)
	assert.InDelta(t, 0.002, results[1].Seconds, 1e-12)

	// The run command got the cached input path appended.
	require.Len(t, exe.commands, 1)
	inputPath := filepath.Join(dir, "Inputs", "2023", "7.txt")
	assert.Equal(t, "python3 7.py '"+inputPath+"'", exe.commands[0])
	assert.Equal(t, dir, exe.dirs[0])

	raw, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	assert.Equal(t, "puzzle input", string(raw))

	// A second run reuses the cached input.
	_, err = r.Run(context.Background(), sol)
	require.NoError(t, err)
	assert.Equal(t, 1, fetch.calls)
}

func TestRunWithoutFetcherSkipsInput(t *testing.T) {
	dir := t.TempDir()
	exe := &fakeExecutor{stdout: "Part 1: 42\n"}
	r := New(testConfig(dir), WithExecutor(exe), WithLogger(logger.NewNoop()))

	_, err := r.Run(context.Background(), Solution{Lang: "python", Year: 2023, Day: 7, Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "python3 7.py", exe.commands[0])
}

func TestRunNonZeroExit(t *testing.T) {
	dir := t.TempDir()
	exe := &fakeExecutor{exit: 3}
	r := New(testConfig(dir), WithExecutor(exe), WithLogger(logger.NewNoop()))

	_, err := r.Run(context.Background(), Solution{Lang: "python", Year: 2023, Day: 7, Dir: dir})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
	assert.Contains(t, err.Error(), "exited with code 3")
}

func TestRunUnknownLanguage(t *testing.T) {
	r := New(testConfig(t.TempDir()), WithExecutor(&fakeExecutor{}), WithLogger(logger.NewNoop()))

	_, err := r.Run(context.Background(), Solution{Lang: "cobol", Year: 2023, Day: 1})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRunCompilesOncePerDirectory(t *testing.T) {
	dir := t.TempDir()
	exe := &fakeExecutor{stdout: "Part 1: 42\n"}
	r := New(testConfig(dir), WithExecutor(exe), WithLogger(logger.NewNoop()))

	sol := Solution{Lang: "c", Year: 2023, Day: 7, Dir: dir}
	_, err := r.Run(context.Background(), sol)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), sol)
	require.NoError(t, err)

	var compiles int
	for _, cmd := range exe.commands {
		if cmd == "gcc -O2 -o 7.out 7.c -lm" {
			compiles++
		}
	}
	assert.Equal(t, 1, compiles)
}

func TestMeasurements(t *testing.T) {
	sol := Solution{Lang: "python", Year: 2023, Day: 7}
	results := []PartResult{
		{Part: 1, Answer: "42", Seconds: 0.5, HasTime: true},
		{Part: 2, Answer: "99"},
	}

	ms := Measurements(sol, results)
	require.Len(t, ms, 2)
	assert.Equal(t, "python", ms[0].Lang)
	assert.True(t, ms[0].HasAnswer)
	assert.True(t, ms[0].HasSeconds)
	assert.Equal(t, 0.5, ms[0].Seconds)
	assert.False(t, ms[1].HasSeconds)
}
