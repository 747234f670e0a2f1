package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.True(t, IsUUID("550E8400-E29B-41D4-A716-446655440000"))
	assert.False(t, IsUUID("tokyo_japan"))
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("550e8400-e29b-11d4-a716-446655440000")) // v1, not v4
	assert.False(t, IsUUID("not-a-uuid-at-all"))
}

func TestIsPlaceID(t *testing.T) {
	assert.True(t, IsPlaceID("ChIJN1t_tDeuEmsRUsoyG83frY4"))
	assert.True(t, IsPlaceID("EiQ4MSwgTWFyc2VpbGxl"))
	assert.False(t, IsPlaceID("tokyo"))
	assert.False(t, IsPlaceID(""))
}

func TestIsValidDestinationID(t *testing.T) {
	assert.True(t, IsValidDestinationID("550e8400-e29b-41d4-a716-446655440000"))
	assert.True(t, IsValidDestinationID("ChIJN1t_tDeuEmsRUsoyG83frY4"))
	assert.False(t, IsValidDestinationID("paris"))
	assert.False(t, IsValidDestinationID("42"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "tokyo_japan", Slugify("Tokyo, Japan"))
	assert.Equal(t, "", Slugify(""))
	assert.Equal(t, "new_york_city", Slugify("New York City"))
	assert.Equal(t, "aix_en_provence", Slugify("Aix-en-Provence"))
	assert.Equal(t, "tokyo", Slugify("  Tokyo!  "))
	assert.Equal(t, Slugify("Tokyo, Japan"), Slugify(Slugify("Tokyo, Japan")))
}
