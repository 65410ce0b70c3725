package costmodel

import "math"

// venueAlloc is one hard-coded venue allocation within a routing tier.
type venueAlloc struct {
	name       string
	sharePct   float64
	impactMult float64 // applied to the base impact percent for this leg
}

// routingTiers is the three-way threshold ladder on USD notional.
// Shares within each tier sum to 100. Larger notionals split across more
// venues, trading a higher network fee for a lower blended impact.
var routingTiers = []struct {
	maxNotionalUSD float64
	venues         []venueAlloc
}{
	{
		maxNotionalUSD: 50_000,
		venues: []venueAlloc{
			{"Uniswap v3", 100, 1.00},
		},
	},
	{
		maxNotionalUSD: 250_000,
		venues: []venueAlloc{
			{"Uniswap v3", 60, 0.72},
			{"Curve", 40, 0.95},
		},
	},
	{
		maxNotionalUSD: math.Inf(1),
		venues: []venueAlloc{
			{"Uniswap v3", 45, 0.55},
			{"Curve", 30, 0.75},
			{"Balancer", 25, 1.05},
		},
	},
}

// selectTier returns the venue allocations for a notional value.
func selectTier(notionalUSD float64) []venueAlloc {
	for _, t := range routingTiers {
		if notionalUSD < t.maxNotionalUSD {
			return t.venues
		}
	}
	return routingTiers[len(routingTiers)-1].venues
}
