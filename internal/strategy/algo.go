package strategy

import "exec-planner/internal/domain"

// AlgoStrategist slices a notional into tranches and estimates aggregate
// savings versus immediate execution. The three implementations are
// mutually exclusive and built via FromParams.
type AlgoStrategist interface {
	// Quote computes the scheduled-execution projection. rng only shapes
	// cosmetic schedule jitter; totals are rng-independent.
	Quote(in Input, rng Rand) domain.AlgoQuote

	// Kind returns the sub-strategy identifier.
	Kind() domain.AlgoKind
}

// trancheCount derives the TWAP/VWAP tranche count: one tranche per target
// interval over the duration, at least 1, capped so no tranche falls below
// the minimum economic notional. Zero notional means zero tranches.
func trancheCount(durationHours, notionalUSD float64, params domain.EngineParams) int {
	if notionalUSD <= 0 {
		return 0
	}

	count := int(durationHours * 60 / params.TrancheIntervalMinutes)
	if count < 1 {
		count = 1
	}

	maxByFloor := int(notionalUSD / params.MinTrancheNotionalUSD)
	if maxByFloor < 1 {
		// Below the floor itself the whole order is one tranche.
		maxByFloor = 1
	}
	if count > maxByFloor {
		count = maxByFloor
	}
	return count
}

// trancheGasCost totals the network fees for count single-venue fills.
func trancheGasCost(in Input, count int) float64 {
	return float64(count) * in.Snapshot.GasFeeUSD(in.GasTier)
}
