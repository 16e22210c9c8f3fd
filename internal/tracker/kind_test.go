package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

func TestBaseKindPlacement(t *testing.T) {
	k := BaseKind{ValueLabel: "Ans"}

	p, ok, err := k.KeysToIndices([]string{"rust", "2023", "1", "1"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Data", p.Table)
	assert.Equal(t, "Ans", p.Column)
	assert.Equal(t, []string{"Rust", "2023", "1", "1"}, p.RowIndex)
	assert.True(t, p.Layout.ReduceRowIndices)
	assert.False(t, p.Layout.AddIndexLabel)
	assert.Equal(t, 0, p.NumKeys)
}

func TestBaseKindEmptyPath(t *testing.T) {
	_, _, err := BaseKind{}.KeysToIndices(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrKey))
}

func TestStandardPlacements(t *testing.T) {
	tests := []struct {
		name    string
		path    []string
		table   string
		column  string
		rows    []string
		numKeys int
	}{
		{
			name:    "part leaf",
			path:    []string{"python", "2023", "1", "2"},
			table:   "2023",
			column:  "Python",
			rows:    []string{"1", "2"},
			numKeys: 2,
		},
		{
			name:    "year total",
			path:    []string{"python", "2023", "total"},
			table:   "2023",
			column:  "Python",
			rows:    []string{"Total"},
			numKeys: 2,
		},
		{
			name:    "year average",
			path:    []string{"python", "2023", "average"},
			table:   "2023",
			column:  "Python",
			rows:    []string{"Average"},
			numKeys: 2,
		},
		{
			name:    "day total",
			path:    []string{"python", "2023", "1", "total"},
			table:   "2023",
			column:  "Python",
			rows:    []string{"1", "Total"},
			numKeys: 2,
		},
		{
			name:    "language total",
			path:    []string{"python", "total"},
			table:   "Data",
			column:  "Total",
			rows:    []string{"Python"},
			numKeys: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok, err := RuntimeKind{}.KeysToIndices(tt.path)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.table, p.Table)
			assert.Equal(t, tt.column, p.Column)
			assert.Equal(t, tt.rows, p.RowIndex)
			assert.Equal(t, tt.numKeys, p.NumKeys)
		})
	}
}

func TestStandardPlacementSkipsDayAverage(t *testing.T) {
	_, ok, err := RuntimeKind{}.KeysToIndices([]string{"python", "2023", "1", "average"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnswerKindIncorrectPlacement(t *testing.T) {
	p, ok, err := AnswerKind{}.KeysToIndices([]string{IncorrectKey, "python", "2023", "1", "1"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Incorrect", p.Table)
	assert.Equal(t, "Python", p.Column)
	assert.Equal(t, []string{"2023", "1", "1"}, p.RowIndex)
	assert.True(t, p.Layout.NoDividers)
	assert.Equal(t, 1, p.NumKeys)
}

func TestRuntimeKindLeaderboardPlacement(t *testing.T) {
	p, ok, err := RuntimeKind{}.KeysToIndices([]string{LongestKey, "3", "python", "2023", "22", "2"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Longest", p.Table)
	assert.Equal(t, "Time", p.Column)
	assert.Equal(t, []string{"3", "Python", "2023", "22", "2"}, p.RowIndex)
	assert.True(t, p.Layout.NoDividers)
	assert.Equal(t, 1, p.Layout.RowOffset)

	// Malformed leaderboard paths are skipped, not errors.
	_, ok, err = RuntimeKind{}.KeysToIndices([]string{LongestKey, "3"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Python", Title("python"))
	assert.Equal(t, "No Data To Display", Title("no data to display"))
	assert.Equal(t, "2023", Title("2023"))
	assert.Equal(t, "", Title(""))
}
