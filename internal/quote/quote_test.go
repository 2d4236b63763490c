package quote

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords(n int) []Record {
	records := make([]Record, n)
	texts := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i := range records {
		records[i] = Record{Text: texts[i%len(texts)]}
	}
	return records
}

func seededSelector(records []Record, seed int64) *Selector {
	return NewSelector(records, WithRand(rand.New(rand.NewSource(seed))))
}

func TestSelector_StartsAtZero(t *testing.T) {
	s := NewSelector(testRecords(3))

	rec, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, "A", rec.Text)
}

func TestSelector_NeverRepeatsPreviousIndex(t *testing.T) {
	s := seededSelector(testRecords(5), 1)

	prev := s.Index()
	for range 500 {
		s.SelectAnother()
		idx := s.Index()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
		assert.NotEqual(t, prev, idx)
		prev = idx
	}
}

func TestSelector_TwoRecordsAlternate(t *testing.T) {
	s := seededSelector(testRecords(2), 7)

	for range 20 {
		prev := s.Index()
		s.SelectAnother()
		assert.Equal(t, 1-prev, s.Index())
	}
}

func TestSelector_EmptyCollection(t *testing.T) {
	s := NewSelector(nil)

	_, ok := s.Current()
	assert.False(t, ok)

	// Must stay pinned at zero and never fault.
	s.SelectAnother()
	s.SelectAnother()
	assert.Equal(t, 0, s.Index())
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestSelector_SingleRecord(t *testing.T) {
	s := seededSelector(testRecords(1), 3)

	for range 5 {
		s.SelectAnother()
		assert.Equal(t, 0, s.Index())
		rec, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "A", rec.Text)
	}
}

func TestSelector_ThreeRecordScenario(t *testing.T) {
	records := []Record{{Text: "A"}, {Text: "B"}, {Text: "C"}}
	s := seededSelector(records, 42)

	require.Equal(t, 0, s.Index())
	s.SelectAnother()
	assert.Contains(t, []int{1, 2}, s.Index())
}

func TestSelector_CoversAllOtherIndexes(t *testing.T) {
	s := seededSelector(testRecords(4), 11)

	seen := map[int]bool{}
	for range 200 {
		s.SelectAnother()
		seen[s.Index()] = true
	}
	assert.Len(t, seen, 4)
}

func TestSelector_RandomStartReachesEveryRecord(t *testing.T) {
	records := testRecords(5)

	seen := map[int]bool{}
	for seed := int64(1); seed <= 300; seed++ {
		s := NewSelector(records,
			WithRand(rand.New(rand.NewSource(seed))),
			WithRandomStart(),
		)
		idx := s.Index()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
		seen[idx] = true
	}

	// A uniform first pick must be able to land on record 0 too.
	assert.Len(t, seen, 5)
	assert.True(t, seen[0])
}

func TestSelector_RandomStartOptionOrderIrrelevant(t *testing.T) {
	records := testRecords(5)

	a := NewSelector(records, WithRandomStart(), WithRand(rand.New(rand.NewSource(9))))
	b := NewSelector(records, WithRand(rand.New(rand.NewSource(9))), WithRandomStart())
	assert.Equal(t, a.Index(), b.Index())
}

func TestSelector_RandomStartDegenerateCollections(t *testing.T) {
	empty := NewSelector(nil, WithRandomStart())
	assert.Equal(t, 0, empty.Index())
	_, ok := empty.Current()
	assert.False(t, ok)

	single := NewSelector(testRecords(1),
		WithRand(rand.New(rand.NewSource(5))),
		WithRandomStart(),
	)
	assert.Equal(t, 0, single.Index())
}

func TestRecord_AuthorName(t *testing.T) {
	assert.Equal(t, "Unknown", Record{Text: "x"}.AuthorName("Unknown"))
	assert.Equal(t, "Unknown", Record{Text: "x", Author: &Author{}}.AuthorName("Unknown"))
	assert.Equal(t, "Ada", Record{Text: "x", Author: &Author{Name: "Ada"}}.AuthorName("Unknown"))
}
