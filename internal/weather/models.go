package weather

// Record is the stored combination of a submitted lookup request and the
// provider's raw response. Records are immutable once stored and live until
// the process exits.
type Record struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Notes    string `json:"notes"`

	// ProviderResponse carries the provider payload exactly as returned.
	ProviderResponse Document `json:"weather_api_response"`
}
