// Package content defines the record model and the closed set of ordering
// criteria the engine operates on.
//
// A Record is an already-materialized content item: the caller owns it, the
// engine only reads it for the duration of one call. Every field except
// Path is optional; whether a record can be ordered under a given criterion
// depends on which fields it carries (see Sortable).
package content

import "time"

// Record is one content item presented for ordering.
//
// Path is the record's identity and is always present. Permalink is the
// tie-break key: it must be unique within a batch and present on every
// record that is orderable under the requested criterion. Uniqueness is a
// caller precondition, not enforced here.
type Record struct {
	// Path uniquely identifies the record (e.g. "content/posts/hello.md").
	Path string

	// Date is the primary timestamp, if any.
	Date *time.Time

	// Updated is the last-updated timestamp, independent of Date.
	Updated *time.Time

	// Title is the human-readable title, if any.
	Title *string

	// Weight is the manual ordering weight, if any.
	Weight *int

	// Permalink breaks exact ties. Unique per batch.
	Permalink string
}

// SortBy selects the field and direction records are ordered on.
//
// The set is closed: every switch over SortBy in this module covers all
// cases, and adding a criterion means touching each of them.
type SortBy int

const (
	// SortByNone is the sentinel for sections that declare no ordering.
	// It must never reach the engine; see engine.SortRecords.
	SortByNone SortBy = iota

	// SortByDate orders by Date, most recent first.
	SortByDate

	// SortByUpdateDate orders by max(Date, Updated), most recent first.
	SortByUpdateDate

	// SortByTitle orders by Title using natural-order comparison.
	SortByTitle

	// SortByTitleBytes orders by Title using raw byte comparison.
	SortByTitleBytes

	// SortByWeight orders by Weight, ascending.
	SortByWeight

	// SortByPath orders by Path using natural-order comparison.
	SortByPath
)

var sortByNames = map[SortBy]string{
	SortByNone:       "none",
	SortByDate:       "date",
	SortByUpdateDate: "update_date",
	SortByTitle:      "title",
	SortByTitleBytes: "title_bytes",
	SortByWeight:     "weight",
	SortByPath:       "path",
}

// String returns the canonical name of the criterion, as accepted by
// ParseSortBy.
func (s SortBy) String() string {
	if name, ok := sortByNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSortBy maps a criterion name to its SortBy value.
// Returns false for unrecognized names.
func ParseSortBy(name string) (SortBy, bool) {
	for s, n := range sortByNames {
		if n == name {
			return s, true
		}
	}
	return SortByNone, false
}

// Criteria lists every real criterion, in declaration order.
// SortByNone is excluded: it is a sentinel, not an ordering.
func Criteria() []SortBy {
	return []SortBy{
		SortByDate,
		SortByUpdateDate,
		SortByTitle,
		SortByTitleBytes,
		SortByWeight,
		SortByPath,
	}
}

// Sortable reports whether r carries the fields required to order it
// under the given criterion.
//
// Records for which Sortable is false are routed to the unsortable bucket
// by the engine's partition step; they never reach a key extractor.
func Sortable(r *Record, by SortBy) bool {
	switch by {
	case SortByDate:
		return r.Date != nil
	case SortByUpdateDate:
		return r.Date != nil || r.Updated != nil
	case SortByTitle, SortByTitleBytes:
		return r.Title != nil
	case SortByWeight:
		return r.Weight != nil
	case SortByPath:
		// Path is mandatory, so every record qualifies.
		return true
	case SortByNone:
		panic("content: Sortable called with SortByNone")
	default:
		panic("content: Sortable called with unknown criterion")
	}
}
