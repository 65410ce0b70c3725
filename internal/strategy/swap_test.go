package strategy

import (
	"math"
	"testing"

	"exec-planner/internal/costmodel"
	"exec-planner/internal/domain"
)

// makeInput builds a strategist input through the real cost model.
func makeInput(payAmount float64, snap domain.MarketSnapshot) Input {
	params := domain.DefaultEngineParams
	notional := payAmount * snap.SpotPrice
	costs, route := costmodel.Compute(notional, domain.GasStandard, snap, params)
	return Input{
		PayAmount:   payAmount,
		NotionalUSD: notional,
		GasTier:     domain.GasStandard,
		Snapshot:    snap,
		Params:      params,
		Costs:       costs,
		Route:       route,
	}
}

func TestQuoteSwap_ReceiveOrdering(t *testing.T) {
	snap := domain.DefaultMarketSnapshot
	for _, amount := range []float64{0, 0.001, 1, 10, 100, 1000} {
		q := QuoteSwap(makeInput(amount, snap), 0.5)
		if q.MinReceiveUSD > q.NetReceiveUSD {
			t.Errorf("amount %v: min %v > net %v", amount, q.MinReceiveUSD, q.NetReceiveUSD)
		}
		if q.NetReceiveUSD > q.GrossReceiveUSD {
			t.Errorf("amount %v: net %v > gross %v", amount, q.NetReceiveUSD, q.GrossReceiveUSD)
		}
	}
}

func TestQuoteSwap_ZeroAmount(t *testing.T) {
	q := QuoteSwap(makeInput(0, domain.DefaultMarketSnapshot), 0.5)
	if q.GrossReceiveUSD != 0 || q.NetReceiveUSD != 0 || q.MinReceiveUSD != 0 {
		t.Errorf("zero amount should yield zero receives, got %+v", q)
	}
}

func TestQuoteSwap_Arithmetic(t *testing.T) {
	snap := domain.DefaultMarketSnapshot
	in := makeInput(10, snap)
	q := QuoteSwap(in, 0.5)

	wantGross := 10 * snap.SpotPrice
	if q.GrossReceiveUSD != wantGross {
		t.Errorf("gross = %v, want %v", q.GrossReceiveUSD, wantGross)
	}
	if q.NetReceiveUSD != wantGross-in.Costs.TotalCostUSD {
		t.Errorf("net = %v, want gross - total cost", q.NetReceiveUSD)
	}
	wantMin := q.NetReceiveUSD * (1 - 0.005)
	if math.Abs(q.MinReceiveUSD-wantMin) > 1e-9 {
		t.Errorf("min = %v, want %v", q.MinReceiveUSD, wantMin)
	}
}

func TestRoutingScore_Breakpoints(t *testing.T) {
	params := domain.DefaultEngineParams
	cases := []struct {
		impactPct float64
		grade     domain.RoutingGrade
		minScore  float64
		maxScore  float64
	}{
		{0, domain.GradeOptimal, 10, 10},
		{0.05, domain.GradeOptimal, 8.9, 10},
		{0.1, domain.GradeOptimal, 8.9, 8.9},
		{0.2, domain.GradeFair, 5.9, 8.9},
		{0.3, domain.GradeFair, 5.9, 5.9},
		{0.5, domain.GradePoor, 1, 5.9},
		{10, domain.GradePoor, 1, 1},
	}
	for _, tc := range cases {
		score, grade := RoutingScore(tc.impactPct, params)
		if grade != tc.grade {
			t.Errorf("impact %v: grade %s, want %s", tc.impactPct, grade, tc.grade)
		}
		if score < tc.minScore-1e-9 || score > tc.maxScore+1e-9 {
			t.Errorf("impact %v: score %v outside [%v, %v]", tc.impactPct, score, tc.minScore, tc.maxScore)
		}
	}
}

func TestRoutingScore_MonotonicallyDecreasing(t *testing.T) {
	params := domain.DefaultEngineParams
	prev := math.Inf(1)
	for impact := 0.0; impact <= 2.0; impact += 0.01 {
		score, _ := RoutingScore(impact, params)
		if score > prev+1e-12 {
			t.Fatalf("score rose from %v to %v at impact %v", prev, score, impact)
		}
		prev = score
	}
}

func TestQuoteSwap_PoorGradeWarnsTowardAlgo(t *testing.T) {
	// Big enough to push impact past 0.3%.
	snap := domain.DefaultMarketSnapshot
	q := QuoteSwap(makeInput(big(snap, 0.5), snap), 0.5)
	if q.RoutingGrade != domain.GradePoor {
		t.Fatalf("expected POOR grade, got %s (score %v)", q.RoutingGrade, q.RoutingScore)
	}
	if q.Warning == "" {
		t.Error("POOR grade should carry an algorithmic-execution warning")
	}
}

// big returns a pay amount whose single-venue impact is roughly targetPct.
func big(snap domain.MarketSnapshot, targetPct float64) float64 {
	notional := targetPct / domain.DefaultEngineParams.ImpactMultiplier * snap.LiquidityUSD
	return notional / snap.SpotPrice
}
