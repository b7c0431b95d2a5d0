package model

import "fmt"

// Chrom identifies a reference contig. One byte covers every contig of a
// typical reference assembly (autosomes, allosomes, MT, patches).
type Chrom uint8

// Pos is a 0-based offset within a chromosome.
type Pos uint32

// SourceID identifies the annotation source/column a value came from.
// Producers assign these; the store treats them as opaque tags.
type SourceID uint8

// Locus is the composite key for annotation lookup: a genomic position,
// optionally narrowed to one reference→alternate substitution.
//
// Locus is a comparable value type and is used directly as a map key.
// Equality and hashing therefore cover exactly these four fields, which is
// a correctness requirement: two loci that differ only in Alt are distinct
// entries (allele-aware keys).
//
// A zero Alt denotes a position-level key not tied to a substitution.
// Loci are immutable after construction; no field is ever mutated in place.
type Locus struct {
	Chrom Chrom
	Pos   Pos
	Ref   byte
	Alt   byte
}

// NewLocus creates an allele-specific locus key.
//
// Base characters and position ranges are not validated here; checking
// coordinates against a reference is the ingestion pipeline's job.
func NewLocus(chrom Chrom, pos Pos, ref, alt byte) Locus {
	return Locus{Chrom: chrom, Pos: pos, Ref: ref, Alt: alt}
}

// NewPositionLocus creates a position-level locus key (zero Alt),
// identifying a position rather than a specific substitution.
func NewPositionLocus(chrom Chrom, pos Pos, ref byte) Locus {
	return Locus{Chrom: chrom, Pos: pos, Ref: ref}
}

// HasAlt reports whether the locus is narrowed to a specific substitution.
func (l Locus) HasAlt() bool {
	return l.Alt != 0
}

// String returns a compact representation for logging and diagnostics.
func (l Locus) String() string {
	if !l.HasAlt() {
		return fmt.Sprintf("%d:%d%c", l.Chrom, l.Pos, l.Ref)
	}
	return fmt.Sprintf("%d:%d%c>%c", l.Chrom, l.Pos, l.Ref, l.Alt)
}
