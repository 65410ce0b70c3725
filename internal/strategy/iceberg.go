package strategy

import (
	"math"

	"exec-planner/internal/domain"
)

// IcebergStrategist reveals only a small visible clip of the total size at
// a time. The economics: hiding size avoids a signaling penalty (a fixed
// fraction of notional) and cuts impact to a fixed ratio of immediate
// execution. Both constants are tunable placeholders.
type IcebergStrategist struct {
	// VisibleAmount is the clip size in base units; zero applies the
	// configured default fraction of the total.
	VisibleAmount float64
}

// Kind implements AlgoStrategist.
func (s *IcebergStrategist) Kind() domain.AlgoKind { return domain.AlgoIceberg }

// Quote implements AlgoStrategist.
//
//	trancheCount = ceil(payAmount / visibleAmount)
//	hiddenSize   = payAmount - visibleAmount
func (s *IcebergStrategist) Quote(in Input, rng Rand) domain.AlgoQuote {
	if in.PayAmount <= 0 {
		return domain.AlgoQuote{Kind: domain.AlgoIceberg}
	}

	visible := s.VisibleAmount
	if visible <= 0 || visible > in.PayAmount {
		visible = in.PayAmount * in.Params.IcebergVisibleFraction
	}

	count := int(math.Ceil(in.PayAmount / visible))
	gas := trancheGasCost(in, count)

	estImpactCost := in.Costs.ImpactCostUSD * in.Params.IcebergImpactRatio
	signalingCredit := in.NotionalUSD * in.Params.SignalingPenaltyRate
	savings := (in.Costs.ImpactCostUSD - estImpactCost) + signalingCredit - gas

	return domain.AlgoQuote{
		Kind:               domain.AlgoIceberg,
		TrancheCount:       count,
		AvgIntervalMinutes: in.Params.TrancheIntervalMinutes,
		TotalGasCostUSD:    gas,
		EstImpactPct:       in.Costs.ImpactPct * in.Params.IcebergImpactRatio,
		NetSavingsUSD:      savings,
		IsEfficient:        savings > 0,
		VisibleAmount:      visible,
		HiddenAmount:       in.PayAmount - visible,
		Schedule:           buildSchedule(in, count, icebergWeights(in.PayAmount, visible, count), in.Params.TrancheIntervalMinutes, 0, rng),
	}
}

// icebergWeights produces near-flat slices: full visible clips with a
// partial remainder on the last refresh.
func icebergWeights(payAmount, visible float64, count int) []float64 {
	w := make([]float64, count)
	remaining := payAmount
	for i := 0; i < count; i++ {
		clip := visible
		if clip > remaining {
			clip = remaining
		}
		w[i] = clip
		remaining -= clip
	}
	return w
}

var _ AlgoStrategist = (*IcebergStrategist)(nil)
