// Package genogo provides an embedded in-memory store for genomic
// annotation data: a mapping from a precise genomic position (optionally
// narrowed to one reference→alternate substitution) to a heterogeneous,
// per-source set of annotation values, plus a string interner that
// deduplicates repeated values into stable integer codes.
//
// # Quick Start
//
//	store, _ := genogo.New(genogo.WithShards(4))
//
//	// Intern a repeated symbol once, carry the code everywhere.
//	code, _ := store.Intern("BRCA1")
//
//	locus := model.NewLocus(17, 43044295, 'G', 'A')
//	rec := annot.RecordsFrom(annot.Entry{
//	    Source: 3,
//	    Values: []annot.Value{annot.Interned(code), annot.Float(0.98)},
//	})
//	_ = store.Insert(locus, rec)
//
//	got, _ := store.Get(locus)
//	fmt.Println(got.HasContent()) // true
//
// # Data Model
//
//   - model.Locus: comparable composite key (chrom, pos, ref, alt);
//     allele-aware equality, usable directly as a map key
//   - annot.Records: ordered tagged (source, values) entries
//   - intern.Interner: append-only string↔int32 code table
//   - table.Table / table.Sharded: the locus-keyed aggregate
//
// # Concurrency
//
// The core structures are unsynchronized and single-writer. The store
// facade always routes through table.Sharded; configure shards > 1 when
// multiple producers ingest concurrently, and use InsertPairs for
// bounded-parallel bulk loading.
package genogo
