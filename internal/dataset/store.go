package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

const (
	SurveillanceFile = "surveillance-data.json"
	WeaponsFile      = "weapons.json"
)

// Store is the immutable in-memory dataset. It is built once before serving
// begins and only read afterwards, so concurrent requests need no locking.
type Store struct {
	Suspects     []Suspect
	Surveillance map[string]SurveillanceRecord
	Weapons      []WeaponData
}

// Generate builds the store directly from the seeded generators.
func Generate() *Store {
	return &Store{
		Suspects:     Suspects,
		Surveillance: GenerateSurveillance(SurveillanceSeed),
		Weapons:      GenerateWeapons(WeaponSeed),
	}
}

// Load reads the materialized fixtures from dir and validates them. When the
// fixture files are absent the store is generated in place from the fixed
// seeds, which yields the same data the generate command would have written.
func Load(dir string) (*Store, error) {
	surveillancePath := filepath.Join(dir, SurveillanceFile)
	weaponsPath := filepath.Join(dir, WeaponsFile)

	if !fileExists(surveillancePath) || !fileExists(weaponsPath) {
		store := Generate()
		if err := store.Validate(); err != nil {
			return nil, fmt.Errorf("generated dataset invalid: %w", err)
		}
		return store, nil
	}

	var surveillance map[string]SurveillanceRecord
	if err := readJSONFile(surveillancePath, &surveillance); err != nil {
		return nil, err
	}
	var weapons []WeaponData
	if err := readJSONFile(weaponsPath, &weapons); err != nil {
		return nil, err
	}

	store := &Store{Suspects: Suspects, Surveillance: surveillance, Weapons: weapons}
	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("dataset in %s invalid: %w", dir, err)
	}
	return store, nil
}

// Write materializes the fixtures under dir for offline inspection and for
// serving without regeneration.
func (s *Store) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}
	if err := writeJSONFile(filepath.Join(dir, SurveillanceFile), s.Surveillance); err != nil {
		return err
	}
	return writeJSONFile(filepath.Join(dir, WeaponsFile), s.Weapons)
}

// Record returns the surveillance record for a suspect UUID.
func (s *Store) Record(suspectUUID string) (SurveillanceRecord, bool) {
	rec, ok := s.Surveillance[suspectUUID]
	return rec, ok
}

// Validate checks every dataset invariant: each declared suspect has a record,
// entry counts match page counts, timestamps are non-decreasing, exactly one
// suspicious entry per suspect sits past the first page, and no manufacturer
// is shared between suspects.
func (s *Store) Validate() error {
	manufacturers := map[string]string{}
	for _, suspect := range s.Suspects {
		if _, err := uuid.Parse(suspect.UUID); err != nil {
			return fmt.Errorf("suspect %q: bad uuid: %w", suspect.Name, err)
		}
		rec, ok := s.Surveillance[suspect.UUID]
		if !ok {
			return fmt.Errorf("suspect %q: no surveillance record", suspect.Name)
		}
		if err := validateRecord(rec); err != nil {
			return fmt.Errorf("suspect %q: %w", suspect.Name, err)
		}
		m := suspiciousManufacturer(rec)
		if prev, dup := manufacturers[m]; dup {
			return fmt.Errorf("manufacturer %q assigned to both %q and %q", m, prev, suspect.Name)
		}
		manufacturers[m] = suspect.Name
	}
	if len(s.Weapons) != baseCatalogSize {
		return fmt.Errorf("base catalog has %d weapons, want %d", len(s.Weapons), baseCatalogSize)
	}
	for i, w := range s.Weapons {
		if w.WeaponType == "" || len(w.Clearance) == 0 {
			return fmt.Errorf("weapon %d incomplete", i)
		}
	}
	return nil
}

func validateRecord(rec SurveillanceRecord) error {
	if rec.Pages < minPages || rec.Pages > maxPages {
		return fmt.Errorf("page count %d outside [%d,%d]", rec.Pages, minPages, maxPages)
	}
	if len(rec.Entries) != rec.Pages*EntriesPerPage {
		return fmt.Errorf("%d entries for %d pages", len(rec.Entries), rec.Pages)
	}
	if !sort.SliceIsSorted(rec.Entries, func(a, b int) bool {
		return rec.Entries[a].Timestamp < rec.Entries[b].Timestamp
	}) {
		return errors.New("entries not sorted by timestamp")
	}
	suspicious := -1
	for i, e := range rec.Entries {
		if !e.Suspicious {
			if e.Manufacturer != "" {
				return fmt.Errorf("entry %d carries a manufacturer without being suspicious", i)
			}
			continue
		}
		if suspicious >= 0 {
			return fmt.Errorf("suspicious entries at both %d and %d", suspicious, i)
		}
		if i < EntriesPerPage {
			return fmt.Errorf("suspicious entry on first page (index %d)", i)
		}
		if e.Manufacturer == "" {
			return fmt.Errorf("suspicious entry %d has no manufacturer", i)
		}
		suspicious = i
	}
	if suspicious < 0 {
		return errors.New("no suspicious entry")
	}
	return nil
}

func suspiciousManufacturer(rec SurveillanceRecord) string {
	for _, e := range rec.Entries {
		if e.Suspicious {
			return e.Manufacturer
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func readJSONFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSONFile(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
