package genogo

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/hupe1980/genogo/annot"
	"github.com/hupe1980/genogo/codec"
	"github.com/hupe1980/genogo/intern"
	"github.com/hupe1980/genogo/model"
	"github.com/hupe1980/genogo/table"
)

// Store is the embedding facade: a locus-keyed annotation table, a shared
// string interner, and report encoding behind one API.
//
// The zero value is not usable; create stores with New.
type Store struct {
	table    *table.Sharded
	interner *intern.Interner
	codec    codec.Codec
	logger   *Logger
}

// New creates a Store.
func New(optFns ...Option) (*Store, error) {
	opts := options{
		numShards: 1,
		policy:    table.PolicyMerge,
		codec:     codec.Default,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	tbl, err := table.NewSharded(opts.numShards, table.WithPolicy(opts.policy))
	if err != nil {
		return nil, translateError(err)
	}

	in := opts.interner
	if in == nil {
		in = intern.New()
	}

	logger := opts.logger
	if logger == nil {
		logger = NoopLogger()
	}

	return &Store{
		table:    tbl,
		interner: in,
		codec:    opts.codec,
		logger:   logger,
	}, nil
}

// Insert attaches records to a locus, merging or rejecting duplicates
// according to the configured policy.
func (s *Store) Insert(locus model.Locus, records *annot.Records) error {
	err := s.table.InsertOrMerge(locus, records)
	if records != nil {
		s.logger.LogInsert(locus, records.Len(), err)
	}
	return translateError(err)
}

// InsertPairs bulk-loads pairs with bounded parallelism (<=0 means
// GOMAXPROCS). Configure shards > 1 to benefit from parallel workers.
func (s *Store) InsertPairs(ctx context.Context, pairs []table.Pair, maxParallel int) error {
	err := s.table.BatchInsert(ctx, pairs, maxParallel)
	s.logger.LogBatchInsert(len(pairs), err)
	return translateError(err)
}

// Get returns the records stored for the locus.
func (s *Store) Get(locus model.Locus) (*annot.Records, error) {
	r, ok := s.table.Lookup(locus)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, locus)
	}
	return r, nil
}

// Covered reports whether any annotated locus exists at the position.
func (s *Store) Covered(chrom model.Chrom, pos model.Pos) bool {
	return s.table.Covered(chrom, pos)
}

// Entries traverses every stored entry in unspecified order.
func (s *Store) Entries() iter.Seq2[model.Locus, *annot.Records] {
	return s.table.Entries()
}

// Len returns the number of distinct loci stored.
func (s *Store) Len() int {
	return s.table.Len()
}

// GetStats returns table statistics.
func (s *Store) GetStats() table.Stats {
	return s.table.GetStats()
}

// Interner returns the store's shared interner.
func (s *Store) Interner() *intern.Interner {
	return s.interner
}

// Intern deduplicates s into its stable code.
func (s *Store) Intern(str string) (int32, error) {
	code, err := s.interner.Code(str)
	if err != nil {
		return 0, translateError(err)
	}
	return code, nil
}

// Resolve maps a code back to its string.
func (s *Store) Resolve(code int32) (string, error) {
	str, err := s.interner.Lookup(code)
	if err != nil {
		return "", translateError(err)
	}
	return str, nil
}

// Report is the export representation of one locus: entries with any
// interned codes resolved back to text.
type Report struct {
	Locus   string        `json:"locus"`
	Entries []annot.Entry `json:"entries"`
}

// BuildReport assembles the report for a locus. Sources listed in
// internedSources carry interner codes in their integer values; those are
// resolved to text. Integer values of other sources pass through
// untouched, since a plain integer annotation is indistinguishable from a
// code by value alone.
func (s *Store) BuildReport(locus model.Locus, internedSources ...model.SourceID) (*Report, error) {
	records, err := s.Get(locus)
	if err != nil {
		return nil, err
	}

	interned := make(map[model.SourceID]struct{}, len(internedSources))
	for _, src := range internedSources {
		interned[src] = struct{}{}
	}

	entries := records.Entries()
	out := make([]annot.Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := interned[e.Source]; !ok {
			out = append(out, e)
			continue
		}

		vals := make([]annot.Value, len(e.Values))
		for i, v := range e.Values {
			code, ok := v.AsCode()
			if !ok {
				vals[i] = v
				continue
			}
			str, err := s.interner.Lookup(code)
			if err != nil {
				return nil, translateError(err)
			}
			vals[i] = annot.String(str)
		}
		out = append(out, annot.Entry{Source: e.Source, Values: vals})
	}

	return &Report{Locus: locus.String(), Entries: out}, nil
}

// WriteReport encodes the report for one locus to w using the configured
// codec, followed by a newline.
func (s *Store) WriteReport(w io.Writer, locus model.Locus, internedSources ...model.SourceID) error {
	rep, err := s.BuildReport(locus, internedSources...)
	if err != nil {
		return err
	}
	return s.writeEncoded(w, rep)
}

// WriteAllReports encodes one report per stored locus to w, newline
// delimited, in unspecified order.
func (s *Store) WriteAllReports(w io.Writer, internedSources ...model.SourceID) error {
	for locus := range s.Entries() {
		if err := s.WriteReport(w, locus, internedSources...); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeEncoded(w io.Writer, v any) error {
	b, err := s.codec.Marshal(v)
	if err != nil {
		return translateError(err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return translateError(err)
	}
	return nil
}
