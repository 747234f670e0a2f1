package models

// Coordinates is a lat/lng pair tagged with the source that produced it,
// so downstream code can tell a provider hit from a cache hit or the
// zero-value fallback.
type Coordinates struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Source string  `json:"source,omitempty"`
}

// IsZero reports whether the coordinates are the 0,0 placeholder.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// Destination is a single stop on an itinerary. The ID is the canonical
// identifier: either a UUIDv4-shaped string, a place identifier with a
// recognized prefix, or a legacy numeric id assigned by the mutation service.
type Destination struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	City         string      `json:"city,omitempty"`
	Country      string      `json:"country,omitempty"`
	Region       string      `json:"region,omitempty"`
	Coordinates  Coordinates `json:"coordinates"`
	DurationDays int         `json:"duration_days"`
	ActivityType string      `json:"activity_type,omitempty"`
	Description  string      `json:"description,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Highlights   []string    `json:"highlights,omitempty"`
	LegacyID     string      `json:"legacy_id,omitempty"`
	AirportCode  string      `json:"airport_code,omitempty"`
}

// TripDates carries the trip-level metadata stored alongside the location list.
type TripDates struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	LegName   string `json:"leg_name,omitempty"`
}

// ItineraryDocument is the opaque JSON document shape persisted to the
// remote trip store. Location order is meaningful and must be preserved
// across mutations.
type ItineraryDocument struct {
	Locations []Destination `json:"locations"`
	Trip      TripDates     `json:"trip"`
	Costs     []CostItem    `json:"costs,omitempty"`
}
