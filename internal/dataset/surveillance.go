package dataset

import (
	"sort"
	"time"

	"arachnid/internal/randgen"
)

// GenerateSurveillance produces the surveillance log for every suspect from a
// single seeded stream. Suspects are processed in declared order; each draws
// its page count, its suspicious-entry position, its timestamps, and its
// activities from the shared stream in that exact sequence.
func GenerateSurveillance(seed uint32) map[string]SurveillanceRecord {
	rng := randgen.New(seed)
	out := make(map[string]SurveillanceRecord, len(Suspects))
	for i, suspect := range Suspects {
		out[suspect.UUID] = generateSuspectRecord(rng, suspect, Manufacturers[i])
	}
	return out
}

func generateSuspectRecord(rng *randgen.Source, suspect Suspect, manufacturer string) SurveillanceRecord {
	pages := rng.NextInt(minPages, maxPages)
	total := pages * EntriesPerPage

	// Never on the first page. With the minimum 12 pages there are still 110
	// legal slots, so the range is never empty.
	suspiciousIndex := rng.NextInt(EntriesPerPage, total-1)

	timestamps := make([]int64, total)
	for i := range timestamps {
		timestamps[i] = windowStartMS + int64(rng.Next()*float64(windowEndMS-windowStartMS))
	}
	sort.Slice(timestamps, func(a, b int) bool { return timestamps[a] < timestamps[b] })

	entries := make([]SurveillanceEntry, total)
	for i := range entries {
		entry := SurveillanceEntry{
			Timestamp:  formatTimestamp(timestamps[i]),
			Suspicious: i == suspiciousIndex,
		}
		if entry.Suspicious {
			entry.Activity = suspiciousActivity
			entry.Manufacturer = manufacturer
		} else {
			entry.Activity = rng.Choice(Activities)
		}
		entries[i] = entry
	}

	return SurveillanceRecord{Name: suspect.Name, Pages: pages, Entries: entries}
}

// formatTimestamp renders epoch milliseconds as an ISO-8601 instant with
// millisecond precision, e.g. 2025-09-01T06:49:30.293Z.
func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z")
}
