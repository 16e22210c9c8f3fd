package runner

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

// Solution is one discovered puzzle implementation.
type Solution struct {
	Lang string
	Year int
	Day  int
	// Dir is where the solution's commands run.
	Dir string
}

// Discover walks the data directory for solutions laid out as
// <root>/<lang>/<year>/<day><ext> (or <day>/ for folder languages).
// years filters to specific events; empty means every released year.
// Unreleased puzzles are skipped.
func Discover(root string, langs map[string]config.Language, years []int, now time.Time) ([]Solution, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Solutions directory not found: "+root,
			"Check data_dir in your .aoc.yaml")
	}

	wanted := map[int]bool{}
	for _, y := range years {
		wanted[y] = true
	}

	var solutions []Solution
	for lang, def := range langs {
		langDir := filepath.Join(root, lang)
		yearEntries, err := os.ReadDir(langDir)
		if err != nil {
			continue
		}
		for _, ye := range yearEntries {
			year, err := strconv.Atoi(ye.Name())
			if !ye.IsDir() || err != nil {
				continue
			}
			if len(wanted) > 0 && !wanted[year] {
				continue
			}
			yearDir := filepath.Join(langDir, ye.Name())
			dayEntries, err := os.ReadDir(yearDir)
			if err != nil {
				continue
			}
			for _, de := range dayEntries {
				day, ok := dayOf(de, def)
				if !ok || !Released(year, day, now) {
					continue
				}
				dir := yearDir
				if def.Folder {
					dir = filepath.Join(yearDir, de.Name())
				}
				solutions = append(solutions, Solution{
					Lang: lang,
					Year: year,
					Day:  day,
					Dir:  dir,
				})
			}
		}
	}

	sort.Slice(solutions, func(i, j int) bool {
		a, b := solutions[i], solutions[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Lang < b.Lang
	})
	return solutions, nil
}

// dayOf extracts the day number from a directory entry, honoring the
// language's layout.
func dayOf(e os.DirEntry, def config.Language) (int, bool) {
	name := e.Name()
	if def.Folder {
		if !e.IsDir() {
			return 0, false
		}
	} else {
		if e.IsDir() || !strings.HasSuffix(name, def.Extension) {
			return 0, false
		}
		name = strings.TrimSuffix(name, def.Extension)
	}
	day, err := strconv.Atoi(strings.TrimPrefix(name, "0"))
	if err != nil || day < 1 || day > 25 {
		return 0, false
	}
	return day, true
}
