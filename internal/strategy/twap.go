package strategy

import "exec-planner/internal/domain"

// TWAPStrategist slices the order evenly over time. Optional randomization
// perturbs per-tranche volume and spacing to reduce detectability; it is
// simulated only and fully reproducible through the injected Rand.
type TWAPStrategist struct {
	DurationHours float64
	Randomize     bool
}

// Kind implements AlgoStrategist.
func (s *TWAPStrategist) Kind() domain.AlgoKind { return domain.AlgoTWAP }

// Quote implements AlgoStrategist.
//
// Each of n tranches carries notional/n, so its impact percent shrinks by
// n as well: total scheduled impact cost is the immediate impact cost / n.
// Savings net out the extra per-tranche gas.
func (s *TWAPStrategist) Quote(in Input, rng Rand) domain.AlgoQuote {
	count := trancheCount(s.DurationHours, in.NotionalUSD, in.Params)
	if count == 0 {
		return domain.AlgoQuote{Kind: domain.AlgoTWAP}
	}

	avgInterval := s.DurationHours * 60 / float64(count)
	gas := trancheGasCost(in, count)

	scheduledImpactCost := in.Costs.ImpactCostUSD / float64(count)
	savings := in.Costs.ImpactCostUSD - (scheduledImpactCost + gas)

	weights := uniformWeights(count)
	intervalJitter := 0.0
	if s.Randomize {
		weights = noisyWeights(count, in.Params.VolumeJitterPct, rng)
		intervalJitter = in.Params.IntervalJitterPct
	}

	return domain.AlgoQuote{
		Kind:               domain.AlgoTWAP,
		TrancheCount:       count,
		AvgIntervalMinutes: avgInterval,
		TotalGasCostUSD:    gas,
		EstImpactPct:       in.Costs.ImpactPct / float64(count),
		NetSavingsUSD:      savings,
		IsEfficient:        savings > 0,
		Schedule:           buildSchedule(in, count, weights, avgInterval, intervalJitter, rng),
	}
}

var _ AlgoStrategist = (*TWAPStrategist)(nil)
