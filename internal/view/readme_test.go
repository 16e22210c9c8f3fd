package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/sink"
)

func TestFill(t *testing.T) {
	out := fill("stars: #{(total_stars)} in #{(year)}", map[string]string{
		"total_stars": "7",
		"year":        "2023",
	})
	assert.Equal(t, "stars: 7 in 2023", out)
}

func TestFillUnknownPlaceholderKept(t *testing.T) {
	out := fill("#{(missing)} #{(known)}", map[string]string{"known": "x"})
	assert.Equal(t, "#{(missing)} x", out)
}

func newAnswers(t *testing.T) *sink.AnswerSink {
	t.Helper()
	s := sink.NewAnswerSink(sink.Options{NoLoad: true, NoSave: true}, nil)
	require.NoError(t, s.Open())
	return s
}

func TestWriteCreatesReadmes(t *testing.T) {
	root := t.TempDir()
	answers := newAnswers(t)
	require.NoError(t, answers.Record("python", 2023, 1, 1, "42", sink.EventOnLoad))
	require.NoError(t, answers.Record("python", 2023, 1, 2, "99", sink.EventOnLoad))

	v := NewReadmeViewer(root, answers, nil)
	require.NoError(t, v.Write())

	top, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(top), "Total stars: 2")
	assert.Contains(t, string(top), "## 2023")

	year, err := os.ReadFile(filepath.Join(root, "2023", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(year), "# Advent of Code 2023")
	assert.Contains(t, string(year), "Stars: 2")
}

func TestWriteEmptyTracker(t *testing.T) {
	root := t.TempDir()
	v := NewReadmeViewer(root, newAnswers(t), nil)
	require.NoError(t, v.Write())

	top, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(top), "Total stars: 0")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteCustomTemplate(t *testing.T) {
	root := t.TempDir()
	answers := newAnswers(t)
	require.NoError(t, answers.Record("rust", 2022, 3, 1, "abc", sink.EventOnLoad))

	v := NewReadmeViewer(root, answers, nil,
		WithTemplate("year", "year #{(year)} has #{(year_stars)}"))
	require.NoError(t, v.Write())

	year, err := os.ReadFile(filepath.Join(root, "2022", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "year 2022 has 1", string(year))
}

func TestAttachWritesOnPostExit(t *testing.T) {
	root := t.TempDir()
	answers := newAnswers(t)
	require.NoError(t, answers.Record("c", 2021, 5, 1, "7", sink.EventOnLoad))

	v := NewReadmeViewer(root, answers, nil)
	v.Attach()
	require.NoError(t, answers.Close(nil))

	_, err := os.Stat(filepath.Join(root, "README.md"))
	assert.NoError(t, err)
}
