// Package table implements the locus-keyed annotation store: an
// in-memory associative structure from genomic locus to annotation
// records, with a per-chromosome presence bitmap and an optional sharded
// wrapper for concurrent ingestion.
//
// Table is unsynchronized and single-writer by design. Sharded partitions
// loci across independent tables with per-shard locks; it is the intended
// extension point when multiple producers ingest at once.
package table
