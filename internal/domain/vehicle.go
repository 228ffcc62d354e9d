package domain

// Vehicle is the listing the engine reserves against. Listing management
// mutates it elsewhere; the engine only reads it for the owner reference and
// the pricing snapshot.
type Vehicle struct {
	ID                   int32  `json:"id"`
	OwnerID              int32  `json:"owner_id"`
	City                 string `json:"city"`
	Make                 string `json:"make"`
	Model                string `json:"model"`
	PricePerDayCents     int32  `json:"price_per_day_cents"`
	DepositMinCents      int32  `json:"deposit_min_cents"`
	DepositMaxCents      int32  `json:"deposit_max_cents"`
	DepositSelectedCents int32  `json:"deposit_selected_cents"`
	Currency             string `json:"currency"`
}
