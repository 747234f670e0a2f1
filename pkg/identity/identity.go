// Package identity resolves destination identifiers arriving from
// inconsistent sources (user text, legacy numeric ids, generated research
// JSON) to one canonical destination id per itinerary.
package identity

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// placeIDPrefixes are the recognized prefixes of opaque place identifiers.
var placeIDPrefixes = []string{"ChIJ", "GhIJ", "EiQ", "Ei"}

var uuidShape = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// IsUUID reports whether s has a UUIDv4 shape, case-insensitively.
func IsUUID(s string) bool {
	if !uuidShape.MatchString(s) {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsPlaceID reports whether s starts with a recognized place-id prefix.
func IsPlaceID(s string) bool {
	for _, prefix := range placeIDPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// IsValidDestinationID reports whether s is already a canonical destination
// identifier: UUIDv4-shaped or a recognized place id.
func IsValidDestinationID(s string) bool {
	return IsUUID(s) || IsPlaceID(s)
}

// Slugify lowercases s, strips non-word characters and collapses runs of
// whitespace and hyphens into single underscores.
//
//	Slugify("Tokyo, Japan") == "tokyo_japan"
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevSep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			prevSep = false
		case unicode.IsSpace(r) || r == '-':
			if !prevSep && b.Len() > 0 {
				b.WriteRune('_')
				prevSep = true
			}
		default:
			// Punctuation and symbols are dropped entirely.
		}
	}

	return strings.TrimRight(b.String(), "_")
}
