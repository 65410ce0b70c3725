package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"exec-planner/internal/domain"
)

func findCheck(t *testing.T, state domain.ConfirmationState, name string) domain.ConfirmationCheck {
	t.Helper()
	for _, c := range state.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not found in %+v", name, state.Checks)
	return domain.ConfirmationCheck{}
}

func TestEvaluate_SwapHappyPath(t *testing.T) {
	state := Evaluate(Input{
		PayAmount:        10,
		AmountValid:      true,
		AvailableBalance: 25,
		Mode:             domain.ModeSwap,
		SpotPrice:        3208.93,
	})
	assert.True(t, state.CanConfirm)
}

func TestEvaluate_ZeroAmountDisables(t *testing.T) {
	state := Evaluate(Input{
		PayAmount:        0,
		AmountValid:      true,
		AvailableBalance: 25,
		Mode:             domain.ModeSwap,
		SpotPrice:        3208.93,
	})
	assert.False(t, state.CanConfirm)
	assert.False(t, findCheck(t, state, "Amount entered").Pass)
}

func TestEvaluate_InvalidAmountDisables(t *testing.T) {
	state := Evaluate(Input{
		PayAmount:        0,
		AmountValid:      false,
		AvailableBalance: 25,
		Mode:             domain.ModeSwap,
		SpotPrice:        3208.93,
	})
	assert.False(t, state.CanConfirm)
	assert.Equal(t, "not a number", findCheck(t, state, "Amount entered").Actual)
}

func TestEvaluate_InsufficientBalanceDisables(t *testing.T) {
	state := Evaluate(Input{
		PayAmount:        30,
		AmountValid:      true,
		AvailableBalance: 25,
		Mode:             domain.ModeSwap,
		SpotPrice:        3208.93,
	})
	assert.False(t, state.CanConfirm)
	assert.False(t, findCheck(t, state, "Sufficient balance").Pass)
}

func TestEvaluate_UnknownBalanceSkipsCheck(t *testing.T) {
	state := Evaluate(Input{
		PayAmount:        30,
		AmountValid:      true,
		AvailableBalance: -1,
		Mode:             domain.ModeSwap,
		SpotPrice:        3208.93,
	})
	assert.True(t, state.CanConfirm)
	for _, c := range state.Checks {
		assert.NotEqual(t, "Sufficient balance", c.Name)
	}
}

func TestEvaluate_PostOnlyMarketableBlocks(t *testing.T) {
	state := Evaluate(Input{
		PayAmount:        10,
		AmountValid:      true,
		AvailableBalance: 25,
		Mode:             domain.ModeLimit,
		SpotPrice:        3208.93,
		Limit:            &domain.LimitParams{LimitPrice: 3100, ExpiryHours: 24, PostOnly: true},
	})
	assert.False(t, state.CanConfirm)
	assert.False(t, findCheck(t, state, "Post-only does not cross").Pass)
}

func TestEvaluate_PostOnlyAboveSpotConfirms(t *testing.T) {
	state := Evaluate(Input{
		PayAmount:        10,
		AmountValid:      true,
		AvailableBalance: 25,
		Mode:             domain.ModeLimit,
		SpotPrice:        3208.93,
		Limit:            &domain.LimitParams{LimitPrice: 3400, ExpiryHours: 24, PostOnly: true},
	})
	assert.True(t, state.CanConfirm)
}

func TestEvaluate_AlgoChecks(t *testing.T) {
	base := Input{
		PayAmount:        10,
		AmountValid:      true,
		AvailableBalance: 25,
		Mode:             domain.ModeAlgo,
		SpotPrice:        3208.93,
	}

	t.Run("twap without duration", func(t *testing.T) {
		in := base
		in.Algo = &domain.AlgoParams{Kind: domain.AlgoTWAP}
		assert.False(t, Evaluate(in).CanConfirm)
	})

	t.Run("vwap participation out of range", func(t *testing.T) {
		in := base
		in.Algo = &domain.AlgoParams{Kind: domain.AlgoVWAP, DurationHours: 4, ParticipationRatePct: 80}
		state := Evaluate(in)
		assert.False(t, state.CanConfirm)
		assert.False(t, findCheck(t, state, "Participation rate in range").Pass)
	})

	t.Run("iceberg visible beyond total", func(t *testing.T) {
		in := base
		in.Algo = &domain.AlgoParams{Kind: domain.AlgoIceberg, VisibleAmount: 50}
		assert.False(t, Evaluate(in).CanConfirm)
	})

	t.Run("valid twap", func(t *testing.T) {
		in := base
		in.Algo = &domain.AlgoParams{Kind: domain.AlgoTWAP, DurationHours: 4}
		assert.True(t, Evaluate(in).CanConfirm)
	})

	t.Run("missing params", func(t *testing.T) {
		assert.False(t, Evaluate(base).CanConfirm)
	})
}
