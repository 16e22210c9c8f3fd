package runner

import "time"

// FirstYear is the first Advent of Code event.
const FirstYear = 2015

// Puzzles unlock at midnight US Eastern.
var eastern = loadEastern()

func loadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

// ReleasedYears lists every event year with at least one released puzzle.
func ReleasedYears(now time.Time) []int {
	var years []int
	for year := FirstYear; ; year++ {
		if ReleasedDays(year, now) == 0 {
			break
		}
		years = append(years, year)
	}
	return years
}

// ReleasedDays returns how many days of the given year's event have
// unlocked: 0 before December 1st, up to 25 from Christmas on.
func ReleasedDays(year int, now time.Time) int {
	now = now.In(eastern)
	for day := 25; day >= 1; day-- {
		unlock := time.Date(year, time.December, day, 0, 0, 0, 0, eastern)
		if !now.Before(unlock) {
			return day
		}
	}
	return 0
}

// Released reports whether a specific puzzle has unlocked.
func Released(year, day int, now time.Time) bool {
	return day >= 1 && day <= ReleasedDays(year, now)
}
