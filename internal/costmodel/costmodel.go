// Package costmodel computes price impact, fees, and venue routing for a
// given notional value. It is the leaf of the quote engine: pure, no
// dependencies beyond the injected market snapshot.
package costmodel

import (
	"exec-planner/internal/domain"
)

// Compute derives the cost breakdown and routing split for one notional.
// The routing split is selected first (it decides the venue count, which
// feeds the network fee surcharge), then costs are itemized.
//
// Zero notional returns a single 100%-share leg with zero impact and zero
// costs; nothing downstream ever divides by it.
func Compute(notionalUSD float64, tier domain.GasTier, snap domain.MarketSnapshot, params domain.EngineParams) (domain.CostBreakdown, []domain.RouteLeg) {
	if notionalUSD <= 0 {
		return domain.CostBreakdown{}, []domain.RouteLeg{{
			Venue:         routingTiers[0].venues[0].name,
			SharePct:      100,
			EffectiveRate: snap.SpotPrice,
			ImpactPct:     0,
		}}
	}

	baseImpactPct := BaseImpactPct(notionalUSD, snap, params)
	allocs := selectTier(notionalUSD)

	legs := make([]domain.RouteLeg, len(allocs))
	effectiveImpactPct := 0.0
	for i, a := range allocs {
		legImpactPct := baseImpactPct * a.impactMult
		legs[i] = domain.RouteLeg{
			Venue:         a.name,
			SharePct:      a.sharePct,
			EffectiveRate: snap.SpotPrice * (1 - legImpactPct/100),
			ImpactPct:     legImpactPct,
		}
		effectiveImpactPct += (a.sharePct / 100) * legImpactPct
	}

	impactCost := notionalUSD * effectiveImpactPct / 100
	platformFee := notionalUSD * snap.PlatformFeeRate
	networkFee := snap.GasFeeUSD(tier) * (1 + params.NetworkFeeVenueSurcharge*float64(len(allocs)-1))

	return domain.CostBreakdown{
		ImpactPct:      effectiveImpactPct,
		ImpactCostUSD:  impactCost,
		PlatformFeeUSD: platformFee,
		NetworkFeeUSD:  networkFee,
		TotalCostUSD:   impactCost + platformFee + networkFee,
	}, legs
}

// BaseImpactPct is the single-venue impact percent before routing:
// (notional / liquidity) * multiplier.
func BaseImpactPct(notionalUSD float64, snap domain.MarketSnapshot, params domain.EngineParams) float64 {
	if notionalUSD <= 0 || snap.LiquidityUSD <= 0 {
		return 0
	}
	return notionalUSD / snap.LiquidityUSD * params.ImpactMultiplier
}
