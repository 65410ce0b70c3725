package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exec-planner/internal/domain"
)

func newTestAssembler() *Assembler {
	return NewAssembler(Options{CacheSize: 64})
}

func swapRequest(amount string) domain.OrderRequest {
	return domain.OrderRequest{
		PayAmount:            amount,
		PayAsset:             "ETH",
		Mode:                 domain.ModeSwap,
		GasTier:              domain.GasStandard,
		SlippageTolerancePct: 0.5,
		AvailableBalance:     100,
	}
}

func TestSimulateSwap(t *testing.T) {
	a := newTestAssembler()
	res, err := a.Simulate(swapRequest("10"), domain.DefaultMarketSnapshot)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeSwap, res.Mode)
	assert.Len(t, res.QuoteID, 64)
	assert.InDelta(t, 10*domain.DefaultMarketSnapshot.SpotPrice, res.NotionalUSD, 1e-9)
	require.NotNil(t, res.Swap)
	assert.Nil(t, res.Limit)
	assert.Nil(t, res.Algo)

	assert.Equal(t, res.Swap.GrossReceiveUSD, res.GrossReceiveUSD)
	assert.Equal(t, res.Swap.NetReceiveUSD, res.NetReceiveUSD)
	assert.Equal(t, res.Swap.MinReceiveUSD, res.MinReceiveUSD)
	assert.Zero(t, res.AlphaUSD)
	assert.NotEmpty(t, res.Rationale)
	assert.True(t, res.Confirmation.CanConfirm)
}

func TestSimulateMemoization(t *testing.T) {
	a := newTestAssembler()
	snap := domain.DefaultMarketSnapshot

	first, err := a.Simulate(swapRequest("10"), snap)
	require.NoError(t, err)
	second, err := a.Simulate(swapRequest("10"), snap)
	require.NoError(t, err)

	// Identical inputs return the identical memoized result.
	assert.Same(t, first, second)

	hits, misses := a.CacheStats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	third, err := a.Simulate(swapRequest("11"), snap)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.NotEqual(t, first.QuoteID, third.QuoteID)
}

func TestSimulateZeroAmount(t *testing.T) {
	a := newTestAssembler()
	res, err := a.Simulate(swapRequest(""), domain.DefaultMarketSnapshot)
	require.NoError(t, err)

	assert.Zero(t, res.PayAmount)
	assert.Zero(t, res.NotionalUSD)
	assert.Zero(t, res.Costs.TotalCostUSD)
	assert.Zero(t, res.GrossReceiveUSD)
	assert.Zero(t, res.NetReceiveUSD)
	assert.False(t, res.Confirmation.CanConfirm)
}

func TestSimulateLimit(t *testing.T) {
	snap := domain.DefaultMarketSnapshot
	req := swapRequest("10")
	req.Mode = domain.ModeLimit
	req.Limit = &domain.LimitParams{
		LimitPrice:  snap.SpotPrice * 1.02,
		ExpiryHours: 24,
	}

	a := newTestAssembler()
	res, err := a.Simulate(req, snap)
	require.NoError(t, err)

	require.NotNil(t, res.Limit)
	assert.False(t, res.Limit.IsMarketable)
	assert.Equal(t, res.Limit.NetReceiveUSD, res.NetReceiveUSD)
	// A resting order has no slippage band: min equals net.
	assert.Equal(t, res.NetReceiveUSD, res.MinReceiveUSD)

	// Alpha is the limit premium over spot net of lock-up cost.
	spotGross := 10 * snap.SpotPrice
	wantAlpha := (res.Limit.GrossReceiveUSD - spotGross) - res.Limit.OpportunityCostUSD
	assert.InDelta(t, wantAlpha, res.AlphaUSD, 1e-9)
	assert.Positive(t, res.AlphaUSD)
}

func TestSimulateLimitMissingParams(t *testing.T) {
	req := swapRequest("10")
	req.Mode = domain.ModeLimit
	req.Limit = nil

	_, err := newTestAssembler().Simulate(req, domain.DefaultMarketSnapshot)
	assert.ErrorIs(t, err, ErrMissingLimitParams)
}

func TestSimulateAlgoTWAP(t *testing.T) {
	req := swapRequest("50")
	req.Mode = domain.ModeAlgo
	req.Algo = &domain.AlgoParams{
		Kind:          domain.AlgoTWAP,
		DurationHours: 4,
	}

	a := newTestAssembler()
	res, err := a.Simulate(req, domain.DefaultMarketSnapshot)
	require.NoError(t, err)

	require.NotNil(t, res.Algo)
	assert.Equal(t, domain.AlgoTWAP, res.Algo.Kind)
	assert.Positive(t, res.Algo.TrancheCount)
	assert.Len(t, res.Algo.Schedule, res.Algo.TrancheCount)
	assert.Equal(t, res.Algo.NetSavingsUSD, res.AlphaUSD)
	assert.NotEmpty(t, res.Rationale)
}

func TestSimulateAlgoDeterministicWithoutSeed(t *testing.T) {
	req := swapRequest("50")
	req.Mode = domain.ModeAlgo
	req.Algo = &domain.AlgoParams{
		Kind:          domain.AlgoTWAP,
		DurationHours: 4,
		Randomize:     true,
	}

	// Separate assemblers so memoization cannot mask the comparison.
	first, err := NewAssembler(Options{}).Simulate(req, domain.DefaultMarketSnapshot)
	require.NoError(t, err)
	second, err := NewAssembler(Options{}).Simulate(req, domain.DefaultMarketSnapshot)
	require.NoError(t, err)

	assert.Equal(t, first.Algo.Schedule, second.Algo.Schedule)
}

func TestSimulateAlgoInvalidParams(t *testing.T) {
	req := swapRequest("50")
	req.Mode = domain.ModeAlgo

	req.Algo = nil
	_, err := newTestAssembler().Simulate(req, domain.DefaultMarketSnapshot)
	assert.ErrorIs(t, err, ErrMissingAlgoParams)

	req.Algo = &domain.AlgoParams{Kind: "POV"}
	_, err = newTestAssembler().Simulate(req, domain.DefaultMarketSnapshot)
	assert.Error(t, err)
}

func TestSimulateUnknownMode(t *testing.T) {
	req := swapRequest("10")
	req.Mode = "MARKET_ON_CLOSE"

	_, err := newTestAssembler().Simulate(req, domain.DefaultMarketSnapshot)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestSimulateNoCache(t *testing.T) {
	a := NewAssembler(Options{})
	first, err := a.Simulate(swapRequest("10"), domain.DefaultMarketSnapshot)
	require.NoError(t, err)
	second, err := a.Simulate(swapRequest("10"), domain.DefaultMarketSnapshot)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
}
