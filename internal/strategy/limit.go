package strategy

import (
	"fmt"
	"math"

	"exec-planner/internal/domain"
)

// Fill probability clamp bounds: never promise certainty for a resting
// order, never show zero for a live one.
const (
	minFillProbabilityPct = 1.0
	maxFillProbabilityPct = 99.0
)

// QuoteLimit projects a resting sell limit order.
//
// A limit at or below spot is marketable: it fills instantly at 100%
// probability. Marketable combined with post-only is the one invalid
// configuration this engine flags as blocking: a maker-only order must
// never cross the spread.
//
// Non-marketable orders get a fill probability from treating the distance
// to the limit price as a normal-distribution tail event over the expiry
// window, and an ETA from a fixed market-velocity assumption.
func QuoteLimit(in Input, lp domain.LimitParams) domain.LimitQuote {
	gross := in.PayAmount * lp.LimitPrice
	net := gross - in.Costs.TotalCostUSD

	effectivePrice := 0.0
	if in.PayAmount > 0 {
		effectivePrice = net / in.PayAmount
	}

	q := domain.LimitQuote{
		GrossReceiveUSD: gross,
		NetReceiveUSD:   net,
		EffectivePrice:  effectivePrice,
		IsMarketable:    lp.LimitPrice > 0 && lp.LimitPrice <= in.Snapshot.SpotPrice,
	}

	if q.IsMarketable {
		q.FillProbabilityPct = 100
		q.ETALabel = "Instant"
		q.InvalidPostOnly = lp.PostOnly
	} else {
		distancePct := distanceToMarketPct(lp.LimitPrice, in.Snapshot.SpotPrice)
		q.FillProbabilityPct = fillProbabilityPct(distancePct, in.Snapshot.DailyVolatilityPct, lp.ExpiryHours)
		q.ETALabel = etaLabel(distancePct, in.Params.MarketVelocityPctPerHour)
	}

	// Forgone yield while capital sits locked in the resting order.
	q.OpportunityCostUSD = gross * in.Params.AnnualRiskFreeRate * (lp.ExpiryHours / 8760)

	return q
}

// distanceToMarketPct is the percent move required for the limit to trade.
func distanceToMarketPct(limitPrice, spotPrice float64) float64 {
	if spotPrice <= 0 {
		return 0
	}
	return (limitPrice - spotPrice) / spotPrice * 100
}

// fillProbabilityPct models the touch probability as a normalized normal
// tail: stdDevs = distance / (hourlyVol * sqrt(expiryHours)), probability =
// 100 * exp(-stdDevs^2 / 2), clamped to [1, 99].
func fillProbabilityPct(distancePct, dailyVolatilityPct, expiryHours float64) float64 {
	hourlyVol := dailyVolatilityPct / math.Sqrt(24)
	if hourlyVol <= 0 || expiryHours <= 0 {
		return minFillProbabilityPct
	}

	stdDevs := distancePct / (hourlyVol * math.Sqrt(expiryHours))
	p := 100 * math.Exp(-0.5*stdDevs*stdDevs)

	if p < minFillProbabilityPct {
		return minFillProbabilityPct
	}
	if p > maxFillProbabilityPct {
		return maxFillProbabilityPct
	}
	return p
}

// etaLabel buckets the distance into a coarse human label assuming the
// market drifts at the configured velocity (default 1% per 12 hours).
func etaLabel(distancePct, velocityPctPerHour float64) string {
	if velocityPctPerHour <= 0 {
		return "Unknown"
	}
	hours := math.Abs(distancePct) / velocityPctPerHour
	switch {
	case hours < 1:
		return "<1 Hour"
	case hours < 48:
		return fmt.Sprintf("~%d %s", int(math.Round(hours)), plural(int(math.Round(hours)), "Hour"))
	default:
		days := int(math.Round(hours / 24))
		return fmt.Sprintf("~%d %s", days, plural(days, "Day"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
