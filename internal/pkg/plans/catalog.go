package plans

// Plan is an immutable catalog entry. Prices are minor units (paise), so the
// amount can be handed to the payment gateway as-is. AICredits == nil means
// unlimited AI use while the subscription is active; a non-nil value opts the
// plan into per-call credit metering instead.
type Plan struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PriceMinorUnits int64  `json:"price"`
	DurationDays    int    `json:"days"`
	AICredits       *int   `json:"ai_credits,omitempty"`
}

const Currency = "INR"

// catalog is loaded once at process start and never mutated. Subscriptions
// copy name and duration by value at activation, so later catalog edits do
// not retroactively alter existing grants.
var catalog = map[string]Plan{
	"one_time":     {ID: "one_time", Name: "One Time", PriceMinorUnits: 9900, DurationDays: 1},
	"seven_days":   {ID: "seven_days", Name: "7 Days", PriceMinorUnits: 19900, DurationDays: 7},
	"fifteen_days": {ID: "fifteen_days", Name: "15 Days", PriceMinorUnits: 29900, DurationDays: 15},
	"monthly":      {ID: "monthly", Name: "Monthly", PriceMinorUnits: 49900, DurationDays: 30},
	"quarterly":    {ID: "quarterly", Name: "Quarterly", PriceMinorUnits: 99900, DurationDays: 90},
	"half_yearly":  {ID: "half_yearly", Name: "Half Yearly", PriceMinorUnits: 149900, DurationDays: 180},
	"yearly":       {ID: "yearly", Name: "Yearly", PriceMinorUnits: 199900, DurationDays: 365},
}

// Get resolves a plan id to its catalog entry.
func Get(planID string) (Plan, bool) {
	p, ok := catalog[planID]
	return p, ok
}

// All returns the full catalog keyed by plan id.
func All() map[string]Plan {
	out := make(map[string]Plan, len(catalog))
	for id, p := range catalog {
		out[id] = p
	}
	return out
}
