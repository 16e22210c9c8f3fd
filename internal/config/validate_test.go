package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

func TestValidateDefaults(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidateFutureVersion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = CurrentConfigVersion + 1

	err := Validate(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "from the future")
}

func TestValidateNegativeLeaderboard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Leaderboard = -1

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Leaderboard")
}

func TestValidateEarlyYear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Years = []int{2014}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2014")
}

func TestValidateLanguage(t *testing.T) {
	tests := []struct {
		name    string
		lang    Language
		wantErr string
	}{
		{
			name:    "missing run command",
			lang:    Language{Extension: ".py"},
			wantErr: "no run command",
		},
		{
			name:    "extension without dot",
			lang:    Language{Extension: "py", Run: "python3 ${DAY}.py"},
			wantErr: "must start with a dot",
		},
		{
			name: "valid",
			lang: Language{Extension: ".py", Run: "python3 ${DAY}.py"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Languages = map[string]Language{"test": tt.lang}

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sinks.Answers.Style = "TRIPLE_BORDER"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRIPLE_BORDER")

	cfg = DefaultConfig()
	cfg.Sinks.Runtimes.File = ""
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtimes")

	// A disabled sink does not need a data file.
	cfg = DefaultConfig()
	cfg.Sinks.Runtimes.File = ""
	cfg.Sinks.Runtimes.Disabled = true
	require.NoError(t, Validate(cfg))
}
