package scores

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSaver struct {
	entries []Entry
	loadErr error
	saveErr error
	saves   int
}

func (m *memSaver) Load() ([]Entry, error) { return m.entries, m.loadErr }

func (m *memSaver) Save(entries []Entry) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = entries
	return nil
}

func TestLedgerOrdersTiesByInsertion(t *testing.T) {
	l := NewLedger(nil, Options{})

	for _, e := range []Entry{{"A", 50}, {"B", 80}, {"C", 30}, {"D", 80}} {
		_, err := l.Add(e.Name, e.Score)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"B:80", "D:80", "A:50", "C:30"}, l.Lines())
}

func TestLedgerKeepsBestTen(t *testing.T) {
	l := NewLedger(nil, Options{})
	for i := 1; i <= 10; i++ {
		rank, err := l.Add("p", i*10)
		require.NoError(t, err)
		assert.Equal(t, 1, rank, "each new score is the best so far")
	}
	require.Len(t, l.Entries(), 10)

	assert.False(t, l.Qualifies(10), "equal to the lowest does not qualify")
	assert.True(t, l.Qualifies(11))

	rank, err := l.Add("late", 10)
	require.NoError(t, err)
	assert.Zero(t, rank)

	rank, err = l.Add("mid", 55)
	require.NoError(t, err)
	assert.Equal(t, 6, rank)

	entries := l.Entries()
	require.Len(t, entries, 10)
	assert.Equal(t, 100, entries[0].Score)
	assert.Equal(t, 20, entries[9].Score, "the lowest score fell off")
}

func TestLedgerQualifiesWhileNotFull(t *testing.T) {
	l := NewLedger(nil, Options{Capacity: 3})
	assert.True(t, l.Qualifies(-500))
	_, _ = l.Add("a", 1)
	_, _ = l.Add("b", 2)
	_, _ = l.Add("c", 3)
	assert.False(t, l.Qualifies(0))
	assert.Equal(t, 3, l.Capacity())
}

func TestLedgerLoadsAndSaves(t *testing.T) {
	saver := &memSaver{entries: []Entry{{"low", 5}, {"high", 90}, {"mid", 40}}}
	l := NewLedger(saver, Options{})

	assert.Equal(t, []string{"high:90", "mid:40", "low:5"}, l.Lines())

	_, err := l.Add("new, name\n", 60)
	require.NoError(t, err)
	assert.Equal(t, 1, saver.saves)
	assert.Equal(t, Entry{"new name", 60}, saver.entries[1])
}

func TestLedgerCorruptStorageStartsEmpty(t *testing.T) {
	l := NewLedger(&memSaver{loadErr: ErrCorrupt}, Options{})
	assert.Empty(t, l.Entries())
}

func TestLedgerReportsSaveErrors(t *testing.T) {
	boom := errors.New("disk full")
	l := NewLedger(&memSaver{saveErr: boom}, Options{})

	rank, err := l.Add("a", 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, rank, "the entry stays in memory")
	assert.Len(t, l.Entries(), 1)
}
