package genogo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genogo/annot"
	"github.com/hupe1980/genogo/codec"
	"github.com/hupe1980/genogo/intern"
	"github.com/hupe1980/genogo/model"
	"github.com/hupe1980/genogo/table"
)

func TestStoreInsertGet(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	locus := model.NewLocus(1, 1000, 'A', 'T')
	rec := annot.RecordsFrom(annot.Entry{
		Source: 3,
		Values: []annot.Value{annot.String("rs12345")},
	})

	require.NoError(t, store.Insert(locus, rec))

	got, err := store.Get(locus)
	require.NoError(t, err)
	assert.True(t, got.HasContent())

	texts := got.Texts()
	require.Len(t, texts, 1)
	assert.EqualValues(t, 3, texts[0].Source)
	assert.Equal(t, "rs12345", texts[0].Values[0].S)
}

func TestStoreGetMiss(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	_, err = store.Get(model.NewLocus(1, 1, 'A', 'C'))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectPolicy(t *testing.T) {
	store, err := New(WithPolicy(table.PolicyReject))
	require.NoError(t, err)

	locus := model.NewLocus(2, 9, 'C', 'T')
	rec := annot.RecordsFrom(annot.Entry{Source: 1, Values: []annot.Value{annot.Int(1)}})

	require.NoError(t, store.Insert(locus, rec))
	assert.ErrorIs(t, store.Insert(locus, rec), ErrDuplicateLocus)
}

func TestStoreInternResolve(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	c0, err := store.Intern("BRCA1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, c0)

	c1, err := store.Intern("TP53")
	require.NoError(t, err)
	assert.EqualValues(t, 1, c1)

	again, err := store.Intern("BRCA1")
	require.NoError(t, err)
	assert.Equal(t, c0, again)

	s, err := store.Resolve(c1)
	require.NoError(t, err)
	assert.Equal(t, "TP53", s)

	_, err = store.Resolve(99)
	assert.ErrorIs(t, err, ErrUnknownCode)

	assert.Equal(t, []string{"BRCA1", "TP53"}, store.Interner().Strings())
}

func TestStoreSharedInterner(t *testing.T) {
	shared := intern.New()
	_, err := shared.Code("preloaded")
	require.NoError(t, err)

	store, err := New(WithInterner(shared))
	require.NoError(t, err)

	code, err := store.Intern("preloaded")
	require.NoError(t, err)
	assert.EqualValues(t, 0, code, "codes come from the shared instance")
}

func TestStoreBuildReportResolvesCodes(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	gene, err := store.Intern("BRCA1")
	require.NoError(t, err)

	locus := model.NewLocus(17, 43044295, 'G', 'A')
	rec := annot.RecordsFrom(
		annot.Entry{Source: 3, Values: []annot.Value{annot.Interned(gene)}},
		annot.Entry{Source: 5, Values: []annot.Value{annot.Int(42)}}, // plain int, not a code
	)
	require.NoError(t, store.Insert(locus, rec))

	rep, err := store.BuildReport(locus, 3)
	require.NoError(t, err)

	assert.Equal(t, "17:43044295G>A", rep.Locus)
	require.Len(t, rep.Entries, 2)
	assert.Equal(t, annot.String("BRCA1"), rep.Entries[0].Values[0], "interned source resolved")
	assert.Equal(t, annot.Int(42), rep.Entries[1].Values[0], "non-interned source untouched")
}

func TestStoreBuildReportUnknownCode(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	locus := model.NewLocus(1, 5, 'A', 'G')
	rec := annot.RecordsFrom(annot.Entry{Source: 1, Values: []annot.Value{annot.Interned(7)}})
	require.NoError(t, store.Insert(locus, rec))

	_, err = store.BuildReport(locus, 1)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestStoreWriteReportRoundTrip(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		t.Run(name, func(t *testing.T) {
			c, ok := codec.ByName(name)
			require.True(t, ok)

			store, err := New(WithCodec(c))
			require.NoError(t, err)

			code, err := store.Intern("stop_gained")
			require.NoError(t, err)

			locus := model.NewLocus(13, 32340301, 'C', 'T')
			require.NoError(t, store.Insert(locus, annot.RecordsFrom(
				annot.Entry{Source: 2, Values: []annot.Value{annot.Interned(code), annot.Float(0.97)}},
			)))

			var buf bytes.Buffer
			require.NoError(t, store.WriteReport(&buf, locus, 2))

			var rep Report
			require.NoError(t, c.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rep))
			assert.Equal(t, "13:32340301C>T", rep.Locus)
			require.Len(t, rep.Entries, 1)
			assert.Equal(t, "stop_gained", rep.Entries[0].Values[0].S)
		})
	}
}

func TestStoreWriteAllReports(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	require.NoError(t, store.Insert(model.NewLocus(1, 1, 'A', 'T'), annot.RecordsFrom(
		annot.Entry{Source: 1, Values: []annot.Value{annot.Float(1)}},
	)))
	require.NoError(t, store.Insert(model.NewLocus(2, 2, 'C', 'G'), annot.RecordsFrom(
		annot.Entry{Source: 1, Values: []annot.Value{annot.Float(2)}},
	)))

	var buf bytes.Buffer
	require.NoError(t, store.WriteAllReports(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestStoreInsertPairs(t *testing.T) {
	store, err := New(WithShards(4))
	require.NoError(t, err)

	pairs := []table.Pair{
		{Locus: model.NewLocus(1, 10, 'A', 'T'), Records: annot.RecordsFrom(
			annot.Entry{Source: 1, Values: []annot.Value{annot.Int(1)}},
		)},
		{Locus: model.NewLocus(1, 20, 'C', 'A'), Records: annot.RecordsFrom(
			annot.Entry{Source: 1, Values: []annot.Value{annot.Int(2)}},
		)},
		{Locus: model.NewLocus(2, 10, 'G', 'C'), Records: annot.RecordsFrom(
			annot.Entry{Source: 2, Values: []annot.Value{annot.Int(3)}},
		)},
	}

	require.NoError(t, store.InsertPairs(context.Background(), pairs, 2))
	assert.Equal(t, 3, store.Len())
	assert.True(t, store.Covered(1, 20))

	stats := store.GetStats()
	assert.Equal(t, 3, stats.LocusCount)
	assert.EqualValues(t, 3, stats.AnnotatedPositions)
}

func TestStoreEntries(t *testing.T) {
	store, err := New(WithShards(2))
	require.NoError(t, err)

	loci := map[model.Locus]bool{
		model.NewLocus(1, 10, 'A', 'T'): false,
		model.NewLocus(1, 11, 'A', 'G'): false,
	}
	for l := range loci {
		require.NoError(t, store.Insert(l, annot.RecordsFrom(
			annot.Entry{Source: 1, Values: []annot.Value{annot.Int(1)}},
		)))
	}

	for l := range store.Entries() {
		loci[l] = true
	}
	for l, seen := range loci {
		assert.True(t, seen, "missing %s", l)
	}
}

func TestStoreShardBounds(t *testing.T) {
	_, err := New(WithShards(table.MaxShards + 1))
	assert.Error(t, err)
}
