package intern_test

import (
	"testing"

	"github.com/hupe1980/genogo/intern"
	"github.com/hupe1980/genogo/testutil"
)

// Annotation columns repeat a small vocabulary with heavy skew; the
// benchmarks draw Zipf-distributed symbols to match that shape.

func BenchmarkCodeHot(b *testing.B) {
	rng := testutil.NewRNG(42)
	words := rng.ZipfStrings(100_000, testutil.GeneSymbols(500), 1.5)

	in := intern.New()
	for _, w := range words {
		if _, err := in.Code(w); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := in.Code(words[i%len(words)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCodeColdGrowth(b *testing.B) {
	words := testutil.GeneSymbols(1_000_000)

	b.ResetTimer()
	in := intern.New()
	for i := 0; i < b.N; i++ {
		if _, err := in.Code(words[i%len(words)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	in := intern.New()
	for _, w := range testutil.GeneSymbols(10_000) {
		if _, err := in.Code(w); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := in.Lookup(int32(i % 10_000)); err != nil {
			b.Fatal(err)
		}
	}
}
