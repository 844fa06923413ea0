package dataset

import (
	"fmt"
	"strings"

	"arachnid/internal/codec"
)

// CityCode derives the inventory id prefix: the first three letters of each
// space-separated word, uppercased and concatenated. "New York" -> "NEWYOR".
func CityCode(city string) string {
	var b strings.Builder
	for _, word := range strings.Fields(city) {
		if len(word) > 3 {
			word = word[:3]
		}
		b.WriteString(strings.ToUpper(word))
	}
	return b.String()
}

// ItemID renders the synthetic inventory id for the 1-based sequence number.
func ItemID(city string, seq int) string {
	return fmt.Sprintf("WPN-%s-%04d", CityCode(city), seq)
}

// CityInventory derives the full inventory for a city from the base catalog.
// For the one designated city the special weapon is spliced in at its fixed
// offset, shifting every later item's id and page membership for that city
// only. The result is ephemeral; the base catalog is never mutated.
func (s *Store) CityInventory(city string) ([]InventoryItem, error) {
	weapons := s.Weapons
	if city == SpecialWeaponCity {
		spliced := make([]WeaponData, 0, len(weapons)+1)
		spliced = append(spliced, weapons[:SpecialWeaponIndex]...)
		spliced = append(spliced, SpecialWeapon)
		spliced = append(spliced, weapons[SpecialWeaponIndex:]...)
		weapons = spliced
	}

	items := make([]InventoryItem, len(weapons))
	for i, weapon := range weapons {
		data, err := codec.EncodeJSONBase64(weapon)
		if err != nil {
			return nil, fmt.Errorf("encode weapon %d for %s: %w", i, city, err)
		}
		items[i] = InventoryItem{ID: ItemID(city, i+1), Data: data}
	}
	return items, nil
}

// CityItemCount returns the fixed inventory size for a city.
func (s *Store) CityItemCount(city string) int {
	if city == SpecialWeaponCity {
		return len(s.Weapons) + 1
	}
	return len(s.Weapons)
}

// KnownCity reports whether city is in the catalog. Matching is exact; city
// names are part of the puzzle's API contract.
func KnownCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}
