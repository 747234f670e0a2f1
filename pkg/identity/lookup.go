package identity

import (
	"fmt"
	"strings"

	"wayfarer/pkg/models"
)

// BuildLookup builds the per-itinerary alias table: every known alias of a
// destination maps to its canonical id. Aliases registered earlier win; a
// later destination never overwrites an alias that already points elsewhere,
// since aliases are meant to be unique within one itinerary.
//
// Registered aliases per destination: the id itself (lowercased), the
// lowercased display name, its slug, the stored legacy id, and the
// "city, country" combination plus its slug.
func BuildLookup(destinations []models.Destination) map[string]string {
	lookup := make(map[string]string, len(destinations)*6)

	register := func(alias, id string) {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			return
		}
		if _, exists := lookup[alias]; !exists {
			lookup[alias] = id
		}
	}

	for _, dest := range destinations {
		if !IsValidDestinationID(dest.ID) {
			continue
		}

		register(strings.ToLower(dest.ID), dest.ID)
		register(strings.ToLower(dest.Name), dest.ID)
		register(Slugify(dest.Name), dest.ID)

		if dest.LegacyID != "" {
			register(strings.ToLower(dest.LegacyID), dest.ID)
		}

		if dest.City != "" && dest.Country != "" {
			cityCountry := fmt.Sprintf("%s, %s", dest.City, dest.Country)
			register(strings.ToLower(cityCountry), dest.ID)
			register(Slugify(cityCountry), dest.ID)
		}
	}

	return lookup
}
