package models

// ResearchCategory is one of the five fixed research payload sub-objects.
// Amount fields are deliberately untyped: the payload comes from an untrusted
// text generator, which has been observed to emit numbers, numeric strings
// with thousands separators, and nested {amount: ...} shapes. The cost engine
// coerces them and defaults to 0.0 on failure.
type ResearchCategory struct {
	AmountLow     any      `json:"amount_low"`
	AmountMid     any      `json:"amount_mid"`
	AmountHigh    any      `json:"amount_high"`
	CurrencyLocal string   `json:"currency_local,omitempty"`
	AmountLocal   any      `json:"amount_local,omitempty"`
	Sources       []string `json:"sources,omitempty"`
	Confidence    string   `json:"confidence,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	ResearchedAt  string   `json:"researched_at,omitempty"`
}

// ResearchPayload is the five-category cost research produced per
// destination. Categories absent from the payload produce no cost item.
type ResearchPayload struct {
	Accommodation  *ResearchCategory `json:"accommodation,omitempty"`
	Flights        *ResearchCategory `json:"flights,omitempty"`
	FoodDaily      *ResearchCategory `json:"food_daily,omitempty"`
	TransportDaily *ResearchCategory `json:"transport_daily,omitempty"`
	Activities     *ResearchCategory `json:"activities,omitempty"`
}
