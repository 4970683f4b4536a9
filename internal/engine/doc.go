// Package engine turns one batch of content records into a deterministic
// ordering.
//
// The pipeline has two stages, applied in sequence to a single call:
//
//  1. Partition: split the batch into records that carry the fields the
//     requested criterion needs and records that do not. The predicate is
//     a pure per-record function, so the split is chunked across workers;
//     per-chunk results are concatenated in chunk order, which keeps both
//     buckets in input order no matter how many workers run.
//
//  2. Rank: sort the orderable bucket. The comparator derives a key per
//     criterion and breaks exact ties on the record's permalink, which is
//     unique within a batch. That makes the comparator a strict total
//     order, so the result is independent of sort-algorithm stability,
//     initial iteration order, and worker count. Chunks are sorted
//     concurrently and then merged pairwise.
//
// Both stages are pure: records are borrowed read-only for the duration of
// the call, nothing is retained afterward, and concurrent calls need no
// coordination. Determinism comes from the total order, not from running
// single-threaded.
//
// Preconditions are the caller's job. SortByNone must never be passed, and
// permalink uniqueness is assumed, not checked; the pagemill check command
// exists to validate batches ahead of time.
package engine
