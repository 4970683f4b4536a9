package engine

import (
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/pagemill/pagemill/internal/content"
)

// parallelSortThreshold is the batch size below which chunked sorting is
// not worth the goroutine overhead.
const parallelSortThreshold = 1024

type options struct {
	workers int
}

// Option configures one SortRecords call.
type Option func(*options)

// WithWorkers caps the number of concurrent workers used by the partition
// and sort stages. Values below 1 keep the default (GOMAXPROCS). The
// output is identical for every worker count; this knob only trades
// latency for CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// SortRecords partitions records by eligibility under the given criterion
// and ranks the eligible ones.
//
// It returns the paths of the sorted records in criterion order and the
// paths of the records that cannot be ordered under that criterion, in
// input order. Together the two slices are a permutation of the input:
// nothing is dropped or duplicated.
//
// Records are read-only for the duration of the call and no reference is
// retained. Permalinks are assumed unique within the batch; if they are
// not, the relative order of colliding records is unspecified but the
// result is still a valid permutation.
//
// Passing SortByNone is a programming error and panics.
func SortRecords(records []*content.Record, by content.SortBy, opts ...Option) (sorted, unsortable []string) {
	if by == content.SortByNone {
		panic("engine: SortRecords called with SortByNone")
	}

	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	orderable, rest := partition(records, by, o.workers)
	sortOrderable(orderable, by, o.workers)

	return paths(orderable), paths(rest)
}

func paths(records []*content.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Path
	}
	return out
}

// partition splits records into those sortable under by and those that are
// not. Chunks are filtered concurrently and the per-chunk buckets are
// concatenated in chunk order, so both results preserve input order.
func partition(records []*content.Record, by content.SortBy, workers int) (in, out []*content.Record) {
	if len(records) == 0 {
		return nil, nil
	}

	spans := chunkSpans(len(records), workers)
	if len(spans) == 1 {
		return filterChunk(records, by)
	}

	ins := make([][]*content.Record, len(spans))
	outs := make([][]*content.Record, len(spans))
	var g errgroup.Group
	for ci, sp := range spans {
		ci := ci
		chunk := records[sp.lo:sp.hi]
		g.Go(func() error {
			ins[ci], outs[ci] = filterChunk(chunk, by)
			return nil
		})
	}
	// Workers cannot fail; Wait only synchronizes.
	_ = g.Wait()

	for ci := range spans {
		in = append(in, ins[ci]...)
		out = append(out, outs[ci]...)
	}
	return in, out
}

func filterChunk(records []*content.Record, by content.SortBy) (in, out []*content.Record) {
	for _, r := range records {
		if content.Sortable(r, by) {
			in = append(in, r)
		} else {
			out = append(out, r)
		}
	}
	return in, out
}

// sortOrderable sorts records in place under compareRecords. Large batches
// are split into per-worker chunks, sorted concurrently, and merged
// pairwise; the comparator is a strict total order, so the outcome matches
// a single-threaded sort exactly.
func sortOrderable(records []*content.Record, by content.SortBy, workers int) {
	cmpFn := func(a, b *content.Record) int {
		return compareRecords(a, b, by)
	}

	if workers == 1 || len(records) < parallelSortThreshold {
		slices.SortFunc(records, cmpFn)
		return
	}

	spans := chunkSpans(len(records), workers)
	var g errgroup.Group
	for _, sp := range spans {
		chunk := records[sp.lo:sp.hi]
		g.Go(func() error {
			slices.SortFunc(chunk, cmpFn)
			return nil
		})
	}
	_ = g.Wait()

	buf := make([]*content.Record, len(records))
	for len(spans) > 1 {
		next := make([]span, 0, (len(spans)+1)/2)
		var mg errgroup.Group
		for i := 0; i < len(spans); i += 2 {
			if i+1 == len(spans) {
				next = append(next, spans[i])
				break
			}
			lo, mid, hi := spans[i].lo, spans[i].hi, spans[i+1].hi
			mg.Go(func() error {
				mergeRuns(records, buf, lo, mid, hi, cmpFn)
				return nil
			})
			next = append(next, span{lo: lo, hi: hi})
		}
		_ = mg.Wait()
		spans = next
	}
}

// mergeRuns merges the sorted runs records[lo:mid] and records[mid:hi]
// through buf and writes the result back in place.
func mergeRuns(records, buf []*content.Record, lo, mid, hi int, cmpFn func(a, b *content.Record) int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if cmpFn(records[i], records[j]) <= 0 {
			buf[k] = records[i]
			i++
		} else {
			buf[k] = records[j]
			j++
		}
		k++
	}
	for i < mid {
		buf[k] = records[i]
		i++
		k++
	}
	for j < hi {
		buf[k] = records[j]
		j++
		k++
	}
	copy(records[lo:hi], buf[lo:hi])
}

type span struct {
	lo, hi int
}

// chunkSpans cuts [0,n) into at most workers near-equal spans.
func chunkSpans(n, workers int) []span {
	if workers > n {
		workers = n
	}
	spans := make([]span, 0, workers)
	size, rem := n/workers, n%workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < rem {
			hi++
		}
		spans = append(spans, span{lo: lo, hi: hi})
		lo = hi
	}
	return spans
}
