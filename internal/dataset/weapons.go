package dataset

import (
	"fmt"

	"arachnid/internal/randgen"
)

const baseCatalogSize = 250

// GenerateWeapons produces the 250-record base catalog. Each record draws a
// type from the fixed catalog and 2-5 clearance SSNs, 70% from the agent pool
// and 30% synthesized, deduplicated in draw order. The special weapon is not
// part of this catalog.
func GenerateWeapons(seed uint32) []WeaponData {
	rng := randgen.New(seed)
	weapons := make([]WeaponData, 0, baseCatalogSize)
	for i := 0; i < baseCatalogSize; i++ {
		weapons = append(weapons, generateWeapon(rng))
	}
	return weapons
}

func generateWeapon(rng *randgen.Source) WeaponData {
	weaponType := rng.Choice(WeaponTypes)
	count := rng.NextInt(2, 5)
	clearance := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if rng.Next() < 0.7 {
			clearance = append(clearance, rng.Choice(AgentSSNPool))
		} else {
			clearance = append(clearance, randomSSN(rng))
		}
	}
	return WeaponData{WeaponType: weaponType, Clearance: dedupe(clearance)}
}

func randomSSN(rng *randgen.Source) string {
	return fmt.Sprintf("%d-%d-%d", rng.NextInt(100, 999), rng.NextInt(10, 99), rng.NextInt(1000, 9999))
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
