package annot

import "github.com/hupe1980/genogo/model"

// Entry is one annotation contribution: the producing source and the
// values it attached at a locus. A single source may contribute several
// values at one position (overlapping transcripts are the common case),
// hence a slice rather than a scalar.
type Entry struct {
	Source model.SourceID `json:"source"`
	Values []Value        `json:"values"`
}

// clone deep-copies the entry so the records never alias caller memory.
func (e Entry) clone() Entry {
	vals := make([]Value, len(e.Values))
	copy(vals, e.Values)
	return Entry{Source: e.Source, Values: vals}
}

// Records holds the annotation values attached to one locus as a single
// ordered sequence of tagged entries. The tagged representation makes it
// impossible for one source to appear with inconsistent typing across
// parallel per-kind sequences; consumers that want the per-kind shape use
// the ValuesOf projection.
//
// A Records is owned exclusively by the table entry it is attached to.
// It is built once by the ingestion side and then inserted or merged; it
// provides no internal synchronization.
type Records struct {
	entries []Entry
}

// NewRecords creates an empty Records.
func NewRecords() *Records {
	return &Records{}
}

// RecordsFrom creates a Records from caller-supplied entries.
//
// Entries are copied by value: mutating the caller's slices afterwards
// does not affect the stored records.
func RecordsFrom(entries ...Entry) *Records {
	r := &Records{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		r.entries = append(r.entries, e.clone())
	}
	return r
}

// HasContent reports whether any entry carries at least one value.
func (r *Records) HasContent() bool {
	for _, e := range r.entries {
		if len(e.Values) > 0 {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (r *Records) Len() int {
	return len(r.entries)
}

// Entries returns the ordered entry sequence.
//
// The returned slice is a read-only view of internal storage; callers
// must not mutate it.
func (r *Records) Entries() []Entry {
	return r.entries
}

// Append adds one entry (copied) to the end of the sequence.
//
// Repeated appends for the same source are kept with multiplicity: the
// store does not collapse or replace earlier contributions, so a source
// that reports several overlapping features at one locus keeps them all.
func (r *Records) Append(e Entry) {
	r.entries = append(r.entries, e.clone())
}

// Merge appends copies of all entries from other, preserving both sides.
// Nothing already present is ever discarded.
func (r *Records) Merge(other *Records) {
	if other == nil {
		return
	}
	for _, e := range other.entries {
		r.entries = append(r.entries, e.clone())
	}
}

// Clone returns a deep copy, independent from the original.
func (r *Records) Clone() *Records {
	if r == nil {
		return nil
	}
	return RecordsFrom(r.entries...)
}

// ValuesOf projects the tagged sequence onto one value kind: for each
// entry that carries values of the given kind, the result holds an entry
// with only those values, in original order. Entries with no values of
// the kind are omitted.
func (r *Records) ValuesOf(kind Kind) []Entry {
	var out []Entry
	for _, e := range r.entries {
		var vals []Value
		for _, v := range e.Values {
			if v.Kind == kind {
				vals = append(vals, v)
			}
		}
		if len(vals) > 0 {
			out = append(out, Entry{Source: e.Source, Values: vals})
		}
	}
	return out
}

// Texts returns the text-kind projection.
func (r *Records) Texts() []Entry { return r.ValuesOf(KindString) }

// Floats returns the float-kind projection.
func (r *Records) Floats() []Entry { return r.ValuesOf(KindFloat) }

// Ints returns the integer-kind projection.
func (r *Records) Ints() []Entry { return r.ValuesOf(KindInt) }
