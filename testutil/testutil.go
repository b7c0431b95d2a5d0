package testutil

import (
	"math"
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/genogo/model"
)

var bases = []byte{'A', 'C', 'G', 'T'}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Locus generates a random allele-specific locus with distinct ref/alt
// bases, spread across numChroms chromosomes and positions in [0, span).
func (r *RNG) Locus(numChroms int, span uint32) model.Locus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locusLocked(numChroms, span)
}

func (r *RNG) locusLocked(numChroms int, span uint32) model.Locus {
	ref := bases[r.rand.Intn(4)]
	alt := bases[r.rand.Intn(4)]
	for alt == ref {
		alt = bases[r.rand.Intn(4)]
	}
	return model.NewLocus(
		model.Chrom(r.rand.Intn(numChroms)+1),
		model.Pos(r.rand.Uint32()%span),
		ref,
		alt,
	)
}

// DistinctLoci generates n pairwise-distinct loci.
func (r *RNG) DistinctLoci(n int, numChroms int, span uint32) []model.Locus {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[model.Locus]struct{}, n)
	out := make([]model.Locus, 0, n)
	for len(out) < n {
		l := r.locusLocked(numChroms, span)
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// GeneSymbols returns a deterministic vocabulary of n synthetic gene
// symbols ("GENE0", "GENE1", ...).
func GeneSymbols(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "GENE" + strconv.Itoa(i)
	}
	return out
}

// ZipfStrings draws n strings from vocab with Zipfian frequency
// (P(k) ∝ 1/k^s). Annotation columns repeat a small set of symbols very
// often, which is exactly the workload an interner exists for; s=1.5
// gives the heavy-tailed 80/20 shape.
func (r *RNG) ZipfStrings(n int, vocab []string, s float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, n)
	for i := range out {
		out[i] = vocab[r.zipfLocked(len(vocab), s)]
	}
	return out
}

// zipfLocked samples a Zipf-distributed value in [0, n) via inverse
// transform (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}
