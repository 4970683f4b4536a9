// Package testutil provides deterministic record fixtures shared by engine
// and CLI tests.
package testutil

import (
	"fmt"
	"time"

	"github.com/pagemill/pagemill/internal/content"
)

// MustDate parses a YYYY-MM-DD date and panics on failure. Test fixtures
// only.
func MustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad date %q: %v", value, err))
	}
	return t
}

// DatedRecord builds a record whose identity and permalink derive from its
// date, with an optional updated date ("" means none).
func DatedRecord(date, updated string) *content.Record {
	d := MustDate(date)
	r := &content.Record{
		Path:      fmt.Sprintf("content/hello-%s.md", date),
		Date:      &d,
		Permalink: fmt.Sprintf("https://example.com/hello-%s/", date),
	}
	if updated != "" {
		u := MustDate(updated)
		r.Updated = &u
	}
	return r
}

// TitledRecord builds a record whose identity and permalink derive from
// its title.
func TitledRecord(title string) *content.Record {
	t := title
	return &content.Record{
		Path:      fmt.Sprintf("content/hello-%s.md", title),
		Title:     &t,
		Permalink: fmt.Sprintf("https://example.com/hello-%s/", title),
	}
}

// WeightedRecord builds a record whose identity and permalink derive from
// its weight.
func WeightedRecord(weight int) *content.Record {
	w := weight
	return &content.Record{
		Path:      fmt.Sprintf("content/hello-%d.md", weight),
		Weight:    &w,
		Permalink: fmt.Sprintf("https://example.com/hello-%d/", weight),
	}
}

// PathRecord builds a bare record carrying only identity and permalink.
func PathRecord(path string) *content.Record {
	return &content.Record{
		Path:      path,
		Permalink: fmt.Sprintf("https://example.com/%s/", path),
	}
}
