package engine

import (
	"cmp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pagemill/pagemill/internal/content"
	"github.com/pagemill/pagemill/internal/natsort"
)

// compareRecords is the strict total order the rank stage sorts by:
// per-criterion key comparison, with exact ties broken by ascending
// permalink.
func compareRecords(a, b *content.Record, by content.SortBy) int {
	if ord := compareKeys(a, b, by); ord != 0 {
		return ord
	}
	return strings.Compare(a.Permalink, b.Permalink)
}

// compareKeys compares the criterion key of a against b.
//
// Records missing the field a criterion dereferences must have been routed
// to the unsortable bucket by the partition step; a nil dereference here is
// a precondition violation in the caller, not a runtime condition.
func compareKeys(a, b *content.Record, by content.SortBy) int {
	switch by {
	case content.SortByDate:
		// Most recent first.
		return b.Date.Compare(*a.Date)
	case content.SortByUpdateDate:
		return latest(b).Compare(latest(a))
	case content.SortByTitle:
		return natsort.Compare(*a.Title, *b.Title)
	case content.SortByTitleBytes:
		return strings.Compare(*a.Title, *b.Title)
	case content.SortByWeight:
		return cmp.Compare(*a.Weight, *b.Weight)
	case content.SortByPath:
		return comparePaths(a.Path, b.Path)
	case content.SortByNone:
		panic("engine: compareKeys called with SortByNone")
	default:
		panic("engine: compareKeys called with unknown criterion")
	}
}

// latest returns the newer of Date and Updated, treating an absent
// timestamp as the zero time. The partition step guarantees at least one
// of the two is present for SortByUpdateDate.
func latest(r *content.Record) time.Time {
	var t time.Time
	if r.Date != nil {
		t = *r.Date
	}
	if r.Updated != nil && r.Updated.After(t) {
		t = *r.Updated
	}
	return t
}

// comparePaths orders paths naturally when both render as valid UTF-8 and
// falls back to raw byte order otherwise.
func comparePaths(a, b string) int {
	if utf8.ValidString(a) && utf8.ValidString(b) {
		return natsort.Compare(a, b)
	}
	return strings.Compare(a, b)
}
