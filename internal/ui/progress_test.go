package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgressBar_ZeroWidth(t *testing.T) {
	result := RenderProgressBar(50, 0)
	assert.Empty(t, result)
}

func TestRenderProgressBar_NegativeWidth(t *testing.T) {
	result := RenderProgressBar(50, -5)
	assert.Empty(t, result)
}

func TestRenderProgressBar_ZeroPercent(t *testing.T) {
	result := RenderProgressBar(0, 10)

	assert.Contains(t, result, "[")
	assert.Contains(t, result, "]")
	assert.Contains(t, result, "0%")
	assert.Equal(t, 10, strings.Count(result, string(progressEmpty)))
	assert.Equal(t, 0, strings.Count(result, string(progressFilled)))
}

func TestRenderProgressBar_HundredPercent(t *testing.T) {
	result := RenderProgressBar(100, 10)

	assert.Contains(t, result, "100%")
	assert.Equal(t, 10, strings.Count(result, string(progressFilled)))
	assert.Equal(t, 0, strings.Count(result, string(progressEmpty)))
}

func TestRenderProgressBar_FiftyPercent(t *testing.T) {
	result := RenderProgressBar(50, 10)

	assert.Contains(t, result, "50%")
	assert.Equal(t, 5, strings.Count(result, string(progressFilled)))
	assert.Equal(t, 5, strings.Count(result, string(progressEmpty)))
}

func TestRenderProgressBar_ClampsNegative(t *testing.T) {
	result := RenderProgressBar(-20, 10)
	assert.Contains(t, result, "0%")
	assert.Equal(t, 0, strings.Count(result, string(progressFilled)))
}

func TestRenderProgressBar_ClampsOverHundred(t *testing.T) {
	result := RenderProgressBar(150, 10)
	assert.Contains(t, result, "100%")
	assert.Equal(t, 10, strings.Count(result, string(progressFilled)))
}

func TestProgressColorThresholds(t *testing.T) {
	assert.Equal(t, ColorSecondary, progressColor(10))
	assert.Equal(t, ColorWarning, progressColor(50))
	assert.Equal(t, ColorWarning, progressColor(79))
	assert.Equal(t, ColorSuccess, progressColor(80))
	assert.Equal(t, ColorSuccess, progressColor(100))
}

func TestRenderYearProgress(t *testing.T) {
	result := RenderYearProgress(2023, 12, 25)

	assert.Contains(t, result, "2023")
	assert.Contains(t, result, "12/25")
	assert.Equal(t, 12, strings.Count(result, string(progressFilled)))
	assert.Equal(t, 13, strings.Count(result, string(progressEmpty)))
}

func TestRenderYearProgress_Complete(t *testing.T) {
	result := RenderYearProgress(2015, 25, 25)

	assert.Contains(t, result, "25/25")
	assert.Equal(t, 25, strings.Count(result, string(progressFilled)))
}

func TestRenderYearProgress_ClampsDays(t *testing.T) {
	result := RenderYearProgress(2015, 40, 10)
	assert.Contains(t, result, "25/25")

	result = RenderYearProgress(2015, -1, 10)
	assert.Contains(t, result, " 0/25")
}
