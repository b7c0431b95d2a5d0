package table

import (
	"errors"
	"fmt"
	"iter"

	"github.com/hupe1980/genogo/annot"
	"github.com/hupe1980/genogo/model"
)

// ErrDuplicateLocus is returned by InsertOrMerge under PolicyReject when
// the locus already has an entry. It signals an ingestion-pipeline bug
// under once-only-writer semantics and should be surfaced, not swallowed.
var ErrDuplicateLocus = errors.New("table: duplicate locus")

// Policy controls what happens when a locus is inserted twice.
type Policy uint8

const (
	// PolicyMerge concatenates the incoming entry sequence onto the
	// stored one, preserving all sources and values from both sides.
	// This is the default: no annotation already present at a locus is
	// ever discarded by an insert.
	PolicyMerge Policy = iota

	// PolicyReject refuses re-insertion of an existing locus with
	// ErrDuplicateLocus, for pipelines that require one writer per
	// locus. A rejected insert leaves the table exactly as it was.
	PolicyReject
)

// Option configures a Table.
type Option func(*Table)

// WithPolicy sets the duplicate-key policy.
func WithPolicy(p Policy) Option {
	return func(t *Table) {
		t.policy = p
	}
}

// Table is the associative structure from locus to annotation records:
// at most one Records per distinct locus, unordered.
//
// Table provides no internal synchronization; construction and query are
// single-threaded by design. Use Sharded when multiple producers ingest
// concurrently.
type Table struct {
	policy   Policy
	records  map[model.Locus]*annot.Records
	presence *PresenceIndex
}

// New creates an empty Table.
func New(optFns ...Option) *Table {
	t := &Table{
		records:  make(map[model.Locus]*annot.Records),
		presence: NewPresenceIndex(),
	}
	for _, fn := range optFns {
		fn(t)
	}
	return t
}

// InsertOrMerge attaches records to the given locus.
//
// If no entry exists, the records are stored (deep-copied, so the caller
// cannot mutate table contents afterwards). If an entry exists, behavior
// follows the configured Policy. A failed insert leaves the table
// untouched.
func (t *Table) InsertOrMerge(locus model.Locus, records *annot.Records) error {
	if records == nil {
		return fmt.Errorf("table: nil records for %s", locus)
	}

	existing, ok := t.records[locus]
	if !ok {
		t.records[locus] = records.Clone()
		t.presence.Add(locus.Chrom, locus.Pos)
		return nil
	}

	if t.policy == PolicyReject {
		return fmt.Errorf("%w: %s", ErrDuplicateLocus, locus)
	}

	existing.Merge(records)
	return nil
}

// Lookup returns the records for the locus, exact match only.
func (t *Table) Lookup(locus model.Locus) (*annot.Records, bool) {
	r, ok := t.records[locus]
	return r, ok
}

// Len returns the number of distinct loci stored.
func (t *Table) Len() int {
	return len(t.records)
}

// Entries returns a finite, restartable traversal of every stored entry.
// Iteration order is unspecified and must not be relied upon.
func (t *Table) Entries() iter.Seq2[model.Locus, *annot.Records] {
	return func(yield func(model.Locus, *annot.Records) bool) {
		for l, r := range t.records {
			if !yield(l, r) {
				return
			}
		}
	}
}

// Covered reports whether any annotated locus exists at the position.
func (t *Table) Covered(chrom model.Chrom, pos model.Pos) bool {
	return t.presence.Covered(chrom, pos)
}

// Presence returns the position presence index maintained by the table.
func (t *Table) Presence() *PresenceIndex {
	return t.presence
}

// Stats summarizes table contents.
type Stats struct {
	LocusCount         int    // distinct loci
	EntryCount         int    // total (source, values) entries across loci
	Chromosomes        int    // chromosomes with at least one locus
	AnnotatedPositions uint64 // distinct (chrom, pos) pairs
	PresenceBytes      uint64 // presence bitmap memory
}

// GetStats computes statistics over the current contents.
func (t *Table) GetStats() Stats {
	stats := Stats{
		LocusCount:         len(t.records),
		Chromosomes:        t.presence.Chromosomes(),
		AnnotatedPositions: t.presence.Cardinality(),
		PresenceBytes:      t.presence.SizeInBytes(),
	}
	for _, r := range t.records {
		stats.EntryCount += r.Len()
	}
	return stats
}
