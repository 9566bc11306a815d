package scores

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSaverRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.txt")
	s, err := NewFileSaver(path)
	require.NoError(t, err)

	entries, err := s.Load()
	require.NoError(t, err, "missing file is an empty ledger")
	assert.Empty(t, entries)

	want := []Entry{{"alice", 300}, {"bob", -20}}
	require.NoError(t, s.Save(want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alice,300\nbob,-20\n", string(data))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileSaverCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	require.NoError(t, os.WriteFile(path, []byte("alice,300\nnot a score\n"), 0o644))

	s, err := NewFileSaver(path)
	require.NoError(t, err)

	_, err = s.Load()
	assert.ErrorIs(t, err, ErrCorrupt)

	l := NewLedger(s, Options{})
	assert.Empty(t, l.Entries())
}

func TestFileSaverExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	s, err := NewFileSaver("~/.wallbreaker/scores.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".wallbreaker", "scores.txt"), s.Path())
}
