package strategy

import "math"

const (
	Aggressive = "aggressive"
	Moderate   = "moderate"
	Defensive  = "defensive"
)

// Profile controls how hard a price-war participant cuts over time.
// The weekly cut decays as InitialChangeRate/sqrt(week), never exceeds
// MaxChangeRate, and price never drops below MinPriceFactor*basePrice.
type Profile struct {
	InitialChangeRate float64 `json:"initialChangeRate" yaml:"initial_change_rate"`
	MaxChangeRate     float64 `json:"maxChangeRate" yaml:"max_change_rate"`
	MinPriceFactor    float64 `json:"minPriceFactor" yaml:"min_price_factor"`
}

var profiles = map[string]Profile{
	Aggressive: {InitialChangeRate: 0.15, MaxChangeRate: 0.25, MinPriceFactor: 0.5},
	Moderate:   {InitialChangeRate: 0.10, MaxChangeRate: 0.15, MinPriceFactor: 0.7},
	Defensive:  {InitialChangeRate: 0.05, MaxChangeRate: 0.10, MinPriceFactor: 0.8},
}

var descriptions = map[string]string{
	Aggressive: "Deep early cuts, willing to go down to 50% of the base price.",
	Moderate:   "Balanced cuts, floor at 70% of the base price.",
	Defensive:  "Small cuts to protect margin, floor at 80% of the base price.",
}

// Names lists the known profiles, most aggressive first.
func Names() []string {
	return []string{Aggressive, Moderate, Defensive}
}

// Resolve returns the canonical name and profile for name.
// Unknown names fall back to Moderate.
func Resolve(name string) (string, Profile) {
	if p, ok := profiles[name]; ok {
		return name, p
	}
	return Moderate, profiles[Moderate]
}

// Describe returns a one-line description of a named profile.
func Describe(name string) string {
	return descriptions[name]
}

// ProfileStrategy prices according to a fixed Profile.
type ProfileStrategy struct {
	name    string
	Profile Profile
}

// New builds the strategy for a named profile (unknown -> moderate).
func New(name string) *ProfileStrategy {
	n, p := Resolve(name)
	return &ProfileStrategy{name: n, Profile: p}
}

func (s *ProfileStrategy) Name() string { return s.name }

// ChangeRate is the intended cut for a 1-based week.
func (s *ProfileStrategy) ChangeRate(week int) float64 {
	weekFactor := 1 / math.Sqrt(float64(week))
	return math.Min(s.Profile.InitialChangeRate*weekFactor, s.Profile.MaxChangeRate)
}

func (s *ProfileStrategy) Decide(ctx Context) Decision {
	rate := s.ChangeRate(ctx.Week)
	floor := s.Profile.MinPriceFactor * ctx.BasePrice
	return Decision{
		ChangeRate: rate,
		Price:      math.Max(ctx.CurrentPrice*(1-rate), floor),
	}
}
