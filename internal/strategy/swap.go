package strategy

import "exec-planner/internal/domain"

// Routing score breakpoints: impact below the first scores OPTIMAL, between
// the two scores FAIR, above the second scores POOR down to a floor of 1.
const (
	optimalImpactPct = 0.1
	fairImpactPct    = 0.3
	scoreFloor       = 1.0
)

// QuoteSwap projects an immediate execution.
//
//	grossReceive = payAmount * spotPrice
//	netReceive   = grossReceive - totalCost
//	minReceive   = netReceive * (1 - slippageTolerance)
//
// Insufficient balance and zero amount are not errors here; they flow
// through as an ineligible quote and are surfaced by the confirmation
// evaluator.
func QuoteSwap(in Input, slippageTolerancePct float64) domain.SwapQuote {
	gross := in.PayAmount * in.Snapshot.SpotPrice
	net := gross - in.Costs.TotalCostUSD

	min := net
	if net > 0 {
		min = net * (1 - slippageTolerancePct/100)
	}

	score, grade := RoutingScore(in.Costs.ImpactPct, in.Params)

	q := domain.SwapQuote{
		GrossReceiveUSD: gross,
		NetReceiveUSD:   net,
		MinReceiveUSD:   min,
		RoutingScore:    score,
		RoutingGrade:    grade,
	}
	if grade == domain.GradePoor {
		q.Warning = "High price impact for this size. An algorithmic schedule (TWAP/VWAP) would likely execute at a better average price."
	}
	return q
}

// RoutingScore maps an impact percent to a 0–10 execution quality score.
// The score decays smoothly past the fixed breakpoints:
//
//	impact <= 0.1%:        10.0 down to 8.9  (OPTIMAL)
//	0.1% < impact <= 0.3%: 8.9 down to 5.9   (FAIR)
//	impact > 0.3%:         linear decay, floored at 1 (POOR)
func RoutingScore(impactPct float64, params domain.EngineParams) (float64, domain.RoutingGrade) {
	switch {
	case impactPct <= optimalImpactPct:
		return 10.0 - (impactPct/optimalImpactPct)*1.1, domain.GradeOptimal
	case impactPct <= fairImpactPct:
		return 8.9 - ((impactPct-optimalImpactPct)/(fairImpactPct-optimalImpactPct))*3.0, domain.GradeFair
	default:
		score := 5.9 - (impactPct-fairImpactPct)*params.RoutingScoreDecayPerPct
		if score < scoreFloor {
			score = scoreFloor
		}
		return score, domain.GradePoor
	}
}
