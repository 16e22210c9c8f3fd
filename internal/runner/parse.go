package runner

import (
	"regexp"
	"strconv"
	"strings"
)

// PartResult is one solved part scraped from a solution's output.
type PartResult struct {
	Part    int
	Answer  string
	Seconds float64
	HasTime bool
}

var (
	partRE = regexp.MustCompile(`^Part ([12]):\s*(.*)$`)
	timeRE = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(s|ms|µs|us|ns)\b`)
)

var unitScale = map[string]float64{
	"s":  1,
	"ms": 1e-3,
	"µs": 1e-6,
	"us": 1e-6,
	"ns": 1e-9,
}

// ParseOutput scrapes the "Part N:" sections from a solution's stdout.
// The answer is whatever follows the marker, continuing across lines
// until a timing line or the next part; a line containing a duration
// (e.g. "1.234 ms") sets the part's elapsed time, normalized to seconds.
func ParseOutput(out string) []PartResult {
	var results []PartResult
	current := -1

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := partRE.FindStringSubmatch(trimmed); m != nil {
			part, _ := strconv.Atoi(m[1])
			results = append(results, PartResult{Part: part, Answer: strings.TrimSpace(m[2])})
			current = len(results) - 1
			continue
		}
		if current < 0 || trimmed == "" {
			continue
		}

		r := &results[current]
		if m := timeRE.FindStringSubmatch(trimmed); m != nil && !r.HasTime {
			value, err := strconv.ParseFloat(m[1], 64)
			if err == nil {
				r.Seconds = value * unitScale[m[2]]
				r.HasTime = true
			}
			continue
		}

		// Continuation line of a multi-line answer (ASCII-art letters).
		if !r.HasTime {
			if r.Answer == "" {
				r.Answer = line
			} else {
				r.Answer += "\n" + line
			}
		}
	}
	return results
}
