package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidates(t *testing.T) {
	require.NoError(t, Generate().Validate())
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	generated := Generate()
	require.NoError(t, generated.Write(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, generated.Surveillance, loaded.Surveillance)
	assert.Equal(t, generated.Weapons, loaded.Weapons)
}

func TestLoadFallsBackToGeneration(t *testing.T) {
	store, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Generate().Surveillance, store.Surveillance)
}

func TestLoadRejectsCorruptFixture(t *testing.T) {
	dir := t.TempDir()
	store := Generate()

	// Break the one-suspicious-entry invariant for the first suspect.
	rec := store.Surveillance[Suspects[0].UUID]
	entries := append([]SurveillanceEntry(nil), rec.Entries...)
	for i := range entries {
		entries[i].Suspicious = false
		entries[i].Manufacturer = ""
	}
	broken := map[string]SurveillanceRecord{}
	for k, v := range store.Surveillance {
		broken[k] = v
	}
	broken[Suspects[0].UUID] = SurveillanceRecord{Name: rec.Name, Pages: rec.Pages, Entries: entries}

	require.NoError(t, writeJSONFile(filepath.Join(dir, SurveillanceFile), broken))
	require.NoError(t, writeJSONFile(filepath.Join(dir, WeaponsFile), store.Weapons))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no suspicious entry")
}

func TestRecordLookup(t *testing.T) {
	store := Generate()
	rec, ok := store.Record(Suspects[2].UUID)
	require.True(t, ok)
	assert.Equal(t, "Sarah Johnson", rec.Name)

	_, ok = store.Record("00000000-0000-0000-0000-000000000000")
	assert.False(t, ok)
}
