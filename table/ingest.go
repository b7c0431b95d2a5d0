package table

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/genogo/annot"
	"github.com/hupe1980/genogo/model"
)

// Pair is one ingestion unit: a locus and the records to attach.
type Pair struct {
	Locus   model.Locus
	Records *annot.Records
}

// BatchInsert ingests pairs in parallel, one worker per shard, bounded by
// maxParallel (<=0 means GOMAXPROCS). Pairs are partitioned by shard
// first so each worker takes its own shard's lock exactly once.
//
// The first error cancels the remaining work via the context; pairs
// already applied stay applied (each individual insert is atomic, the
// batch is not).
func (s *Sharded) BatchInsert(ctx context.Context, pairs []Pair, maxParallel int) error {
	if len(pairs) == 0 {
		return nil
	}
	if maxParallel <= 0 {
		maxParallel = runtime.GOMAXPROCS(0)
	}

	// Partition by shard index.
	buckets := make([][]Pair, len(s.shards))
	for _, p := range pairs {
		idx := s.shardIndex(p.Locus)
		buckets[idx] = append(buckets[idx], p)
	}

	sem := semaphore.NewWeighted(int64(maxParallel))
	g, ctx := errgroup.WithContext(ctx)

	for idx, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		sh := s.shards[idx]

		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			sh.mu.Lock()
			defer sh.mu.Unlock()
			for _, p := range bucket {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := sh.table.InsertOrMerge(p.Locus, p.Records); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
