package table

import (
	"fmt"
	"hash/maphash"
	"iter"
	"sync"

	"github.com/hupe1980/genogo/annot"
	"github.com/hupe1980/genogo/model"
)

// MaxShards bounds the shard count. 256 shards is far past the point of
// diminishing returns for lock contention on an in-memory map.
const MaxShards = 256

// Sharded partitions loci across independent Table shards to support
// concurrent ingestion from multiple producers. Each shard has its own
// lock, so writes to different shards proceed in parallel; a write routes
// to exactly one shard via a hash of the locus key.
//
// This is the external-synchronization extension on top of the
// unsynchronized Table; single-threaded pipelines should use Table
// directly and skip the locking overhead.
type Sharded struct {
	shards []*shard
	seed   maphash.Seed
}

type shard struct {
	mu    sync.RWMutex
	table *Table
}

// NewSharded creates a sharded table with numShards independent shards.
func NewSharded(numShards int, optFns ...Option) (*Sharded, error) {
	if numShards < 1 || numShards > MaxShards {
		return nil, fmt.Errorf("table: shard count %d out of range [1, %d]", numShards, MaxShards)
	}

	s := &Sharded{
		shards: make([]*shard, numShards),
		seed:   maphash.MakeSeed(),
	}
	for i := range s.shards {
		s.shards[i] = &shard{table: New(optFns...)}
	}
	return s, nil
}

// NumShards returns the shard count.
func (s *Sharded) NumShards() int {
	return len(s.shards)
}

// shardIndex routes a locus to its shard. All four key fields
// participate, consistent with locus equality.
func (s *Sharded) shardIndex(locus model.Locus) int {
	var buf [8]byte
	buf[0] = byte(locus.Chrom)
	buf[1] = byte(locus.Pos)
	buf[2] = byte(locus.Pos >> 8)
	buf[3] = byte(locus.Pos >> 16)
	buf[4] = byte(locus.Pos >> 24)
	buf[5] = locus.Ref
	buf[6] = locus.Alt

	h := maphash.Bytes(s.seed, buf[:])
	return int(h % uint64(len(s.shards)))
}

func (s *Sharded) shardFor(locus model.Locus) *shard {
	return s.shards[s.shardIndex(locus)]
}

// InsertOrMerge routes the write to the owning shard under its lock.
func (s *Sharded) InsertOrMerge(locus model.Locus, records *annot.Records) error {
	sh := s.shardFor(locus)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.table.InsertOrMerge(locus, records)
}

// Lookup returns the records for the locus.
//
// The returned records are shared with the table; callers must not
// mutate them while writers are active.
func (s *Sharded) Lookup(locus model.Locus) (*annot.Records, bool) {
	sh := s.shardFor(locus)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.table.Lookup(locus)
}

// Covered reports whether any annotated locus exists at the position.
func (s *Sharded) Covered(chrom model.Chrom, pos model.Pos) bool {
	// Position presence is per-shard; a position-level probe has no alt
	// to route on, so fan out until a shard answers.
	for _, sh := range s.shards {
		sh.mu.RLock()
		ok := sh.table.Covered(chrom, pos)
		sh.mu.RUnlock()
		if ok {
			return true
		}
	}
	return false
}

// Len returns the total number of distinct loci across shards.
func (s *Sharded) Len() int {
	var n int
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += sh.table.Len()
		sh.mu.RUnlock()
	}
	return n
}

// Entries traverses every stored entry across all shards, in unspecified
// order. Each shard is snapshotted under its read lock before yielding,
// so iteration does not hold locks while the consumer runs.
func (s *Sharded) Entries() iter.Seq2[model.Locus, *annot.Records] {
	return func(yield func(model.Locus, *annot.Records) bool) {
		for _, sh := range s.shards {
			type pair struct {
				locus   model.Locus
				records *annot.Records
			}

			sh.mu.RLock()
			pairs := make([]pair, 0, sh.table.Len())
			for l, r := range sh.table.Entries() {
				pairs = append(pairs, pair{locus: l, records: r})
			}
			sh.mu.RUnlock()

			for _, p := range pairs {
				if !yield(p.locus, p.records) {
					return
				}
			}
		}
	}
}

// GetStats aggregates statistics across shards.
func (s *Sharded) GetStats() Stats {
	var stats Stats

	// Fold presence indexes so AnnotatedPositions counts distinct
	// positions, not per-shard duplicates.
	presence := NewPresenceIndex()
	for _, sh := range s.shards {
		sh.mu.RLock()
		shardStats := sh.table.GetStats()
		presence.merge(sh.table.Presence())
		sh.mu.RUnlock()

		stats.LocusCount += shardStats.LocusCount
		stats.EntryCount += shardStats.EntryCount
		stats.PresenceBytes += shardStats.PresenceBytes
	}
	stats.Chromosomes = presence.Chromosomes()
	stats.AnnotatedPositions = presence.Cardinality()
	return stats
}
