package cli

import (
	"fmt"
	"sort"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/sink"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/ui"
)

// Progress prints one line per recorded year: a completion bar, the
// star count and a sparkline of per-day runtimes.
func Progress() error {
	cfg, err := config.LoadOrDefault(ConfigFlag())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	env := newEnv(cfg, envOptions{Offline: true, NoSave: true})
	if err := sink.OpenAll(env.sinks...); err != nil {
		return err
	}

	days := daysComplete(env.answers)
	runtimes := dayRuntimes(env.runtimes)

	years := make([]int, 0, len(days))
	for year := range days {
		years = append(years, year)
	}
	sort.Ints(years)

	if len(years) == 0 {
		fmt.Println("No recorded results yet. Run 'aoc run' first.")
		return nil
	}

	stars := map[int]int{}
	if env.answers != nil {
		stars = env.answers.Stars()
	}

	// Sparkline takes whatever room the bar and star count leave.
	sparkWidth := ui.Width(80) - 52
	if sparkWidth < 10 {
		sparkWidth = 10
	} else if sparkWidth > 40 {
		sparkWidth = 40
	}

	for _, year := range years {
		line := ui.RenderYearProgress(year, days[year], 25)
		line += " " + ui.StarStyle().Render(fmt.Sprintf("%s %d", ui.SymbolStar, stars[year]))
		if spark := ui.RenderSparkline(runtimes[year], sparkWidth); spark != "" {
			line += "  " + spark
		}
		fmt.Println(line)
	}
	return nil
}

// daysComplete counts per year the days with every part answered.
// Day 25 only has one part.
func daysComplete(answers *sink.AnswerSink) map[int]int {
	out := map[int]int{}
	if answers == nil {
		return out
	}

	type yearDay struct{ year, day int }
	parts := map[yearDay]map[int]bool{}

	_ = answers.Tracker().WalkLeaves(func(p []string, v tracker.Value) error {
		if len(p) != 4 || p[0] == tracker.IncorrectKey || v.Str == "" {
			return nil
		}
		key := yearDay{atoi(p[1]), atoi(p[2])}
		if parts[key] == nil {
			parts[key] = map[int]bool{}
		}
		parts[key][atoi(p[3])] = true
		return nil
	})

	for key, have := range parts {
		if have[1] && (have[2] || key.day == 25) {
			out[key.year]++
		}
	}
	return out
}

// dayRuntimes sums each day's runtimes across languages and parts,
// ordered day 1 to 25, for the sparkline.
func dayRuntimes(runtimes *sink.RuntimeSink) map[int][]float64 {
	out := map[int][]float64{}
	if runtimes == nil {
		return out
	}

	totals := map[int]map[int]float64{}
	_ = runtimes.Tracker().WalkLeaves(func(p []string, v tracker.Value) error {
		if len(p) != 4 || !v.IsNum {
			return nil
		}
		year, day := atoi(p[1]), atoi(p[2])
		if totals[year] == nil {
			totals[year] = map[int]float64{}
		}
		totals[year][day] += v.Num
		return nil
	})

	for year, byDay := range totals {
		days := make([]int, 0, len(byDay))
		for day := range byDay {
			days = append(days, day)
		}
		sort.Ints(days)
		for _, day := range days {
			out[year] = append(out[year], byDay[day])
		}
	}
	return out
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
