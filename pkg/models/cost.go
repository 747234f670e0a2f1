package models

// Cost categories. Every reconciled research payload produces exactly one
// item per category present in the payload.
const (
	CategoryAccommodation = "accommodation"
	CategoryFlight        = "flight"
	CategoryActivity      = "activity"
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryOther         = "other"
)

// Confidence tiers self-reported by the research producer. Carried through
// unchanged for display.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// CostItem is a single reconciled cost record. ID is the deterministic
// composite upsert key "{destination_id}_{slug(destination_name)}_{category}":
// re-running research for the same destination/category overwrites rather
// than duplicates.
//
// If DestinationID cannot be resolved against the current itinerary the item
// is orphaned: retained and flagged, never silently dropped.
type CostItem struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency"`
	AmountUSD     float64  `json:"amount_usd"`
	DestinationID string   `json:"destination_id,omitempty"`
	BookingStatus string   `json:"booking_status,omitempty"`
	Source        string   `json:"source,omitempty"`
	Description   string   `json:"description,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Confidence    string   `json:"confidence,omitempty"`
	Sources       []string `json:"sources,omitempty"`
	ResearchedAt  string   `json:"researched_at,omitempty"`

	// Audit trail written by the normalizer and resolver when they repair a
	// field. Repairs are never silent.
	OriginalCurrency      string `json:"_original_currency,omitempty"`
	CurrencyAutoCorrected bool   `json:"_currency_auto_corrected,omitempty"`
	AutoResolved          bool   `json:"_auto_resolved,omitempty"`
	LegacyDestinationID   string `json:"_legacy_destination_id,omitempty"`
	Orphaned              bool   `json:"_orphaned,omitempty"`
}
