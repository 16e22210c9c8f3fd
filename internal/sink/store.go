package sink

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
)

// nested is the persisted shape of one result set:
// year -> day -> part -> language -> value.
type nested[T any] map[int]map[int]map[int]map[string]T

// document is the on-disk YAML layout. The incorrect section only
// appears for answer sinks.
type document[T any] struct {
	Data      nested[T] `yaml:"data"`
	Incorrect nested[T] `yaml:"incorrect,omitempty"`
}

// leaf is one flattened persisted value in replay order.
type leaf[T any] struct {
	Lang      string
	Year      int
	Day       int
	Part      int
	Value     T
	Incorrect bool
}

// loadDocument reads and flattens a sink data file. A missing file is an
// empty result set, not an error.
func loadDocument[T any](path string) ([]leaf[T], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Cannot read data file "+path,
			"Check file permissions")
	}

	var doc document[T]
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Data file "+path+" is not valid YAML",
			"Fix or delete the file and re-run")
	}

	leaves := flatten(doc.Data, false)
	leaves = append(leaves, flatten(doc.Incorrect, true)...)
	sort.Slice(leaves, func(i, j int) bool {
		a, b := leaves[i], leaves[j]
		if a.Incorrect != b.Incorrect {
			return !a.Incorrect
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Part != b.Part {
			return a.Part < b.Part
		}
		return a.Lang < b.Lang
	})
	return leaves, nil
}

func flatten[T any](n nested[T], incorrect bool) []leaf[T] {
	var out []leaf[T]
	for year, days := range n {
		for day, parts := range days {
			for part, langs := range parts {
				for lang, v := range langs {
					out = append(out, leaf[T]{
						Lang:      lang,
						Year:      year,
						Day:       day,
						Part:      part,
						Value:     v,
						Incorrect: incorrect,
					})
				}
			}
		}
	}
	return out
}

// saveDocument writes the tracker's concrete leaves back to disk,
// splitting the incorrect shadow subtree into its own section.
func saveDocument(path string, trk *tracker.Tracker, numeric bool) error {
	doc := document[any]{Data: nested[any]{}}

	err := trk.WalkLeaves(func(p []string, v tracker.Value) error {
		incorrect := p[0] == tracker.IncorrectKey
		if incorrect {
			p = p[1:]
		}
		if len(p) != 4 {
			return nil
		}
		lang := p[0]
		year, err1 := strconv.Atoi(p[1])
		day, err2 := strconv.Atoi(p[2])
		part, err3 := strconv.Atoi(p[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil
		}

		target := doc.Data
		if incorrect {
			if doc.Incorrect == nil {
				doc.Incorrect = nested[any]{}
			}
			target = doc.Incorrect
		}
		var value any
		if numeric {
			value = v.Num
		} else {
			value = v.Str
		}
		set(target, year, day, part, lang, value)
		return nil
	})
	if err != nil {
		return err
	}

	raw, err := yaml.Marshal(doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"Cannot encode data for "+path, "")
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrStore,
				"Cannot create data directory "+dir,
				"Check directory permissions")
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"Cannot write data file "+path,
			"Check file permissions")
	}
	return nil
}

func set[T any](n nested[T], year, day, part int, lang string, v T) {
	if n[year] == nil {
		n[year] = map[int]map[int]map[string]T{}
	}
	if n[year][day] == nil {
		n[year][day] = map[int]map[string]T{}
	}
	if n[year][day][part] == nil {
		n[year][day][part] = map[string]T{}
	}
	n[year][day][part][lang] = v
}
