package refdata

import "wayfarer/pkg/models"

// DefaultEntries is the bundled reference itinerary shipped with the service.
// It covers the destinations the assistant suggests most often so that adding
// one of them needs no provider round-trip.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Name: "Tokyo", City: "Tokyo", Country: "Japan", Region: "Kanto",
			ActivityType: "city",
			Description:  "Japan's capital, dense mix of modern districts and historic shrines.",
			Highlights:   []string{"Senso-ji", "Shibuya Crossing", "Meiji Shrine", "Tsukiji Outer Market"},
			Coordinates:  models.Coordinates{Lat: 35.6762, Lng: 139.6503, Source: "reference"},
		},
		{
			Name: "Paris", City: "Paris", Country: "France", Region: "Ile-de-France",
			ActivityType: "city",
			Description:  "French capital on the Seine, art and cafe culture.",
			Highlights:   []string{"Eiffel Tower", "Louvre", "Montmartre", "Musee d'Orsay"},
			Coordinates:  models.Coordinates{Lat: 48.8566, Lng: 2.3522, Source: "reference"},
		},
		{
			Name: "Rome", City: "Rome", Country: "Italy", Region: "Lazio",
			ActivityType: "city",
			Description:  "Layered ancient and baroque capital of Italy.",
			Highlights:   []string{"Colosseum", "Pantheon", "Vatican Museums", "Trastevere"},
			Coordinates:  models.Coordinates{Lat: 41.9028, Lng: 12.4964, Source: "reference"},
		},
		{
			Name: "Barcelona", City: "Barcelona", Country: "Spain", Region: "Catalonia",
			ActivityType: "city",
			Description:  "Mediterranean city known for Gaudi architecture and beaches.",
			Highlights:   []string{"Sagrada Familia", "Park Guell", "Gothic Quarter", "La Boqueria"},
			Coordinates:  models.Coordinates{Lat: 41.3874, Lng: 2.1686, Source: "reference"},
		},
		{
			Name: "Bangkok", City: "Bangkok", Country: "Thailand", Region: "Central Thailand",
			ActivityType: "city",
			Description:  "Thailand's capital, temples, canals and street food.",
			Highlights:   []string{"Grand Palace", "Wat Arun", "Chatuchak Market", "Khao San Road"},
			Coordinates:  models.Coordinates{Lat: 13.7563, Lng: 100.5018, Source: "reference"},
		},
		{
			Name: "New York", City: "New York", Country: "United States", Region: "Northeast",
			ActivityType: "city",
			Description:  "Largest US city, museums, theater and neighborhoods.",
			Highlights:   []string{"Central Park", "The Met", "Brooklyn Bridge", "Broadway"},
			Coordinates:  models.Coordinates{Lat: 40.7128, Lng: -74.006, Source: "reference"},
		},
		{
			Name: "London", City: "London", Country: "United Kingdom", Region: "England",
			ActivityType: "city",
			Description:  "UK capital on the Thames, royal sites and markets.",
			Highlights:   []string{"British Museum", "Tower of London", "Borough Market", "South Bank"},
			Coordinates:  models.Coordinates{Lat: 51.5074, Lng: -0.1278, Source: "reference"},
		},
		{
			Name: "Sydney", City: "Sydney", Country: "Australia", Region: "New South Wales",
			ActivityType: "city",
			Description:  "Harbour city with beaches and coastal walks.",
			Highlights:   []string{"Opera House", "Bondi Beach", "Harbour Bridge", "Manly Ferry"},
			Coordinates:  models.Coordinates{Lat: -33.8688, Lng: 151.2093, Source: "reference"},
		},
	}
}
