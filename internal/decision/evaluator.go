// Package decision evaluates whether a simulated order may be confirmed.
// Nothing here throws: failed checks flow out as advisory state for the
// caller's enablement logic. The one exception is a marketable post-only
// order, which is a genuinely invalid configuration.
package decision

import (
	"fmt"

	"exec-planner/internal/domain"
)

// Input carries the already-parsed order facts the evaluator needs.
type Input struct {
	PayAmount   float64
	AmountValid bool

	// AvailableBalance below zero means unknown; the balance check is
	// then skipped.
	AvailableBalance float64

	Mode      domain.ExecutionMode
	SpotPrice float64

	Limit *domain.LimitParams
	Algo  *domain.AlgoParams
}

// Evaluate runs every enablement criterion for the order. Confirmation is
// allowed only when all checks pass.
func Evaluate(in Input) domain.ConfirmationState {
	checks := []domain.ConfirmationCheck{
		amountCheck(in),
	}
	if balance := balanceCheck(in); balance != nil {
		checks = append(checks, *balance)
	}

	switch in.Mode {
	case domain.ModeLimit:
		checks = append(checks, limitChecks(in)...)
	case domain.ModeAlgo:
		checks = append(checks, algoChecks(in)...)
	}

	canConfirm := true
	for _, c := range checks {
		if !c.Pass {
			canConfirm = false
			break
		}
	}

	return domain.ConfirmationState{CanConfirm: canConfirm, Checks: checks}
}

func amountCheck(in Input) domain.ConfirmationCheck {
	actual := fmt.Sprintf("%g", in.PayAmount)
	if !in.AmountValid {
		actual = "not a number"
	}
	return domain.ConfirmationCheck{
		Name:      "Amount entered",
		Threshold: "> 0",
		Actual:    actual,
		Pass:      in.AmountValid && in.PayAmount > 0,
	}
}

func balanceCheck(in Input) *domain.ConfirmationCheck {
	if in.AvailableBalance < 0 {
		return nil // wallet not connected; nothing to check against
	}
	return &domain.ConfirmationCheck{
		Name:      "Sufficient balance",
		Threshold: fmt.Sprintf("<= %g", in.AvailableBalance),
		Actual:    fmt.Sprintf("%g", in.PayAmount),
		Pass:      in.PayAmount <= in.AvailableBalance,
	}
}

func limitChecks(in Input) []domain.ConfirmationCheck {
	if in.Limit == nil {
		return []domain.ConfirmationCheck{{
			Name:      "Limit parameters",
			Threshold: "present",
			Actual:    "missing",
			Pass:      false,
		}}
	}

	marketable := in.Limit.LimitPrice > 0 && in.Limit.LimitPrice <= in.SpotPrice
	checks := []domain.ConfirmationCheck{
		{
			Name:      "Limit price set",
			Threshold: "> 0",
			Actual:    fmt.Sprintf("%g", in.Limit.LimitPrice),
			Pass:      in.Limit.LimitPrice > 0,
		},
		{
			Name:      "Expiry set",
			Threshold: "> 0 hours",
			Actual:    fmt.Sprintf("%g hours", in.Limit.ExpiryHours),
			Pass:      in.Limit.ExpiryHours > 0,
		},
	}

	if in.Limit.PostOnly {
		// The one blocking validation error: post-only must not cross.
		checks = append(checks, domain.ConfirmationCheck{
			Name:      "Post-only does not cross",
			Threshold: fmt.Sprintf("limit > spot %g", in.SpotPrice),
			Actual:    fmt.Sprintf("%g", in.Limit.LimitPrice),
			Pass:      !marketable,
		})
	}
	return checks
}

func algoChecks(in Input) []domain.ConfirmationCheck {
	if in.Algo == nil {
		return []domain.ConfirmationCheck{{
			Name:      "Algo parameters",
			Threshold: "present",
			Actual:    "missing",
			Pass:      false,
		}}
	}

	var checks []domain.ConfirmationCheck
	switch in.Algo.Kind {
	case domain.AlgoTWAP, domain.AlgoVWAP:
		checks = append(checks, domain.ConfirmationCheck{
			Name:      "Duration set",
			Threshold: "> 0 hours",
			Actual:    fmt.Sprintf("%g hours", in.Algo.DurationHours),
			Pass:      in.Algo.DurationHours > 0,
		})
		if in.Algo.Kind == domain.AlgoVWAP {
			checks = append(checks, domain.ConfirmationCheck{
				Name:      "Participation rate in range",
				Threshold: "1 to 50",
				Actual:    fmt.Sprintf("%g", in.Algo.ParticipationRatePct),
				Pass:      in.Algo.ParticipationRatePct >= 1 && in.Algo.ParticipationRatePct <= 50,
			})
		}
	case domain.AlgoIceberg:
		checks = append(checks, domain.ConfirmationCheck{
			Name:      "Visible amount within order",
			Threshold: fmt.Sprintf("<= %g", in.PayAmount),
			Actual:    fmt.Sprintf("%g", in.Algo.VisibleAmount),
			Pass:      in.Algo.VisibleAmount >= 0 && in.Algo.VisibleAmount <= in.PayAmount,
		})
	default:
		checks = append(checks, domain.ConfirmationCheck{
			Name:      "Strategy selected",
			Threshold: "TWAP, VWAP, or ICEBERG",
			Actual:    string(in.Algo.Kind),
			Pass:      false,
		})
	}
	return checks
}
