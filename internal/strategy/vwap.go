package strategy

import (
	"math"

	"exec-planner/internal/domain"
)

// VWAPStrategist paces the order against expected market volume. A lower
// participation rate hides the order better, shrinking impact
// super-linearly; the curve constants are tunable heuristics, not a fitted
// model.
type VWAPStrategist struct {
	DurationHours        float64
	ParticipationRatePct float64 // 1–50
}

// Kind implements AlgoStrategist.
func (s *VWAPStrategist) Kind() domain.AlgoKind { return domain.AlgoVWAP }

// Quote implements AlgoStrategist.
//
//	estImpactPct = baseImpactPct * (floor + (rate/100)^exp * slope)
//
// Net savings compare the immediate impact cost against the reduced VWAP
// impact cost plus total tranche gas.
func (s *VWAPStrategist) Quote(in Input, rng Rand) domain.AlgoQuote {
	count := trancheCount(s.DurationHours, in.NotionalUSD, in.Params)
	if count == 0 {
		return domain.AlgoQuote{Kind: domain.AlgoVWAP}
	}

	avgInterval := s.DurationHours * 60 / float64(count)
	gas := trancheGasCost(in, count)

	p := in.Params
	reduction := p.VWAPImpactFloor + math.Pow(s.ParticipationRatePct/100, p.VWAPImpactExponent)*p.VWAPImpactSlope
	estImpactPct := in.Costs.ImpactPct * reduction
	estImpactCost := in.NotionalUSD * estImpactPct / 100

	savings := in.Costs.ImpactCostUSD - (estImpactCost + gas)

	return domain.AlgoQuote{
		Kind:               domain.AlgoVWAP,
		TrancheCount:       count,
		AvgIntervalMinutes: avgInterval,
		TotalGasCostUSD:    gas,
		EstImpactPct:       estImpactPct,
		NetSavingsUSD:      savings,
		IsEfficient:        savings > 0,
		Schedule:           buildSchedule(in, count, uShapeWeights(count), avgInterval, 0, rng),
	}
}

var _ AlgoStrategist = (*VWAPStrategist)(nil)
