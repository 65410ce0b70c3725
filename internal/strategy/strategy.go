// Package strategy implements the three execution strategists: immediate
// swap, algorithmic (TWAP/VWAP/iceberg), and resting limit. Every function
// here is a pure projection of its input; nothing blocks, keeps state, or
// reads a clock.
package strategy

import "exec-planner/internal/domain"

// Input holds everything a strategist needs for one quote. The cost model
// runs first; its breakdown and routing split arrive here precomputed.
type Input struct {
	PayAmount   float64
	NotionalUSD float64
	GasTier     domain.GasTier

	Snapshot domain.MarketSnapshot
	Params   domain.EngineParams

	Costs domain.CostBreakdown
	Route []domain.RouteLeg
}
