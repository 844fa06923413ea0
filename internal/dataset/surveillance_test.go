package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSurveillanceDeterministic(t *testing.T) {
	a, err := json.Marshal(GenerateSurveillance(SurveillanceSeed))
	require.NoError(t, err)
	b, err := json.Marshal(GenerateSurveillance(SurveillanceSeed))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Reference layout for seed 42, cross-checked against the original generator.
func TestGenerateSurveillanceKnownLayout(t *testing.T) {
	want := []struct {
		name            string
		pages           int
		suspiciousIndex int
		firstTimestamp  string
	}{
		{"Alice Johnson", 16, 77, "2025-09-01T06:49:30.293Z"},
		{"Jacob Smith", 18, 127, "2025-09-01T06:34:51.903Z"},
		{"Sarah Johnson", 17, 23, "2025-09-01T02:55:49.929Z"},
		{"Emma Ingraham", 12, 64, "2025-09-01T03:56:22.849Z"},
		{"David Wilson", 17, 145, "2025-09-02T12:35:46.002Z"},
		{"Emily Davis", 13, 76, "2025-09-02T04:41:21.948Z"},
		{"Tunnel Bob", 16, 149, "2025-09-01T03:52:27.768Z"},
	}

	data := GenerateSurveillance(SurveillanceSeed)
	require.Len(t, data, len(Suspects))
	for i, suspect := range Suspects {
		rec := data[suspect.UUID]
		require.Equal(t, want[i].name, rec.Name)
		assert.Equal(t, want[i].pages, rec.Pages, "%s pages", rec.Name)
		assert.Equal(t, want[i].firstTimestamp, rec.Entries[0].Timestamp, "%s first entry", rec.Name)

		suspicious := -1
		for j, e := range rec.Entries {
			if e.Suspicious {
				suspicious = j
				break
			}
		}
		assert.Equal(t, want[i].suspiciousIndex, suspicious, "%s suspicious index", rec.Name)
	}
}

func TestGenerateSurveillanceInvariants(t *testing.T) {
	data := GenerateSurveillance(SurveillanceSeed)
	seenManufacturers := map[string]bool{}

	for i, suspect := range Suspects {
		rec := data[suspect.UUID]
		require.Equal(t, rec.Pages*EntriesPerPage, len(rec.Entries), "%s entry count", rec.Name)
		require.GreaterOrEqual(t, rec.Pages, minPages)
		require.LessOrEqual(t, rec.Pages, maxPages)

		suspiciousCount := 0
		for j, e := range rec.Entries {
			if j > 0 {
				require.LessOrEqual(t, rec.Entries[j-1].Timestamp, e.Timestamp, "%s entry %d out of order", rec.Name, j)
			}
			if e.Suspicious {
				suspiciousCount++
				assert.GreaterOrEqual(t, j, EntriesPerPage, "%s suspicious entry on first page", rec.Name)
				assert.Equal(t, "weapons transaction", e.Activity)
				assert.Equal(t, Manufacturers[i], e.Manufacturer)
				assert.False(t, seenManufacturers[e.Manufacturer], "manufacturer %q reused", e.Manufacturer)
				seenManufacturers[e.Manufacturer] = true
			} else {
				assert.Empty(t, e.Manufacturer)
				assert.Contains(t, Activities, e.Activity)
			}
		}
		require.Equal(t, 1, suspiciousCount, "%s suspicious entries", rec.Name)
	}
}

func TestGenerateSurveillanceKnownEntries(t *testing.T) {
	data := GenerateSurveillance(SurveillanceSeed)
	alice := data[Suspects[0].UUID]
	assert.Equal(t, "pumping gas", alice.Entries[0].Activity)
	assert.Equal(t, SurveillanceEntry{
		Timestamp:  "2025-09-01T16:55:07.897Z",
		Activity:   "buying flowers",
		Suspicious: false,
	}, alice.Entries[1])
	assert.Equal(t, "2025-10-04T07:00:52.880Z", alice.Entries[77].Timestamp)
}
