package table

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/genogo/model"
)

// PresenceIndex tracks which positions carry annotations, one compressed
// Roaring bitmap per chromosome. It lets ingestion pipelines probe
// coverage cheaply without materializing a locus key per candidate
// substitution.
//
// The index is maintained by Table inserts and, like the table, is
// growth-only and unsynchronized.
type PresenceIndex struct {
	chroms map[model.Chrom]*roaring.Bitmap
}

// NewPresenceIndex creates an empty presence index.
func NewPresenceIndex() *PresenceIndex {
	return &PresenceIndex{
		chroms: make(map[model.Chrom]*roaring.Bitmap),
	}
}

// Add marks the position as annotated.
func (p *PresenceIndex) Add(chrom model.Chrom, pos model.Pos) {
	bm, ok := p.chroms[chrom]
	if !ok {
		bm = roaring.New()
		p.chroms[chrom] = bm
	}
	bm.Add(uint32(pos))
}

// Covered reports whether the position carries any annotation.
func (p *PresenceIndex) Covered(chrom model.Chrom, pos model.Pos) bool {
	bm, ok := p.chroms[chrom]
	if !ok {
		return false
	}
	return bm.Contains(uint32(pos))
}

// Chromosomes returns the number of chromosomes with annotated positions.
func (p *PresenceIndex) Chromosomes() int {
	return len(p.chroms)
}

// Cardinality returns the total number of distinct annotated positions.
func (p *PresenceIndex) Cardinality() uint64 {
	var n uint64
	for _, bm := range p.chroms {
		n += bm.GetCardinality()
	}
	return n
}

// SizeInBytes returns the memory held by the underlying bitmaps.
func (p *PresenceIndex) SizeInBytes() uint64 {
	var n uint64
	for _, bm := range p.chroms {
		n += bm.GetSizeInBytes()
	}
	return n
}

// Positions returns an ascending iterator over the annotated positions of
// one chromosome.
func (p *PresenceIndex) Positions(chrom model.Chrom) iter.Seq[model.Pos] {
	return func(yield func(model.Pos) bool) {
		bm, ok := p.chroms[chrom]
		if !ok {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(model.Pos(it.Next())) {
				return
			}
		}
	}
}

// merge folds other into p. Used by sharded fan-in.
func (p *PresenceIndex) merge(other *PresenceIndex) {
	for chrom, bm := range other.chroms {
		dst, ok := p.chroms[chrom]
		if !ok {
			p.chroms[chrom] = bm.Clone()
			continue
		}
		dst.Or(bm)
	}
}
