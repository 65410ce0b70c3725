// Package simulation assembles complete quote simulations. The Assembler
// is the engine's single entry point: it runs the cost model, dispatches
// to the mode's strategist, attaches rationale, and evaluates
// confirmation. Identical inputs always produce identical results.
package simulation

import (
	"errors"
	"fmt"

	"exec-planner/internal/costmodel"
	"exec-planner/internal/decision"
	"exec-planner/internal/domain"
	"exec-planner/internal/quotekey"
	"exec-planner/internal/strategy"
)

// Assembler errors
var (
	ErrUnknownMode        = errors.New("unknown execution mode")
	ErrMissingLimitParams = errors.New("LIMIT mode requires limit parameters")
	ErrMissingAlgoParams  = errors.New("ALGO mode requires algo parameters")
)

// Assembler computes simulation results for order requests.
type Assembler struct {
	params domain.EngineParams
	cache  *Cache
}

// Options configures an Assembler.
type Options struct {
	// Params are the engine tunables; zero value falls back to defaults.
	Params domain.EngineParams

	// CacheSize bounds the memo cache. Zero disables memoization.
	CacheSize int
}

// NewAssembler creates an assembler.
func NewAssembler(opts Options) *Assembler {
	params := opts.Params
	if params == (domain.EngineParams{}) {
		params = domain.DefaultEngineParams
	}

	var cache *Cache
	if opts.CacheSize > 0 {
		cache = NewCache(opts.CacheSize)
	}

	return &Assembler{params: params, cache: cache}
}

// CacheStats reports memoization hits and misses (zeros when disabled).
func (a *Assembler) CacheStats() (hits, misses uint64) {
	if a.cache == nil {
		return 0, 0
	}
	return a.cache.Stats()
}

// Simulate computes one SimulationResult.
// Steps:
//  1. Derive the deterministic quote key; return the memoized result on hit
//  2. Parse the pay amount permissively (invalid degrades to zero)
//  3. Run the cost model on the notional
//  4. Dispatch to the mode's strategist
//  5. Attach alpha versus the immediate baseline and rationale strings
//  6. Evaluate confirmation enablement
func (a *Assembler) Simulate(req domain.OrderRequest, snap domain.MarketSnapshot) (*domain.SimulationResult, error) {
	key := quotekey.Compute(req, snap, a.params)
	if a.cache != nil {
		if cached, ok := a.cache.Get(key); ok {
			return cached, nil
		}
	}

	payAmount, amountValid := domain.ParseAmount(req.PayAmount)
	notional := payAmount * snap.SpotPrice

	costs, route := costmodel.Compute(notional, req.GasTier, snap, a.params)

	in := strategy.Input{
		PayAmount:   payAmount,
		NotionalUSD: notional,
		GasTier:     req.GasTier,
		Snapshot:    snap,
		Params:      a.params,
		Costs:       costs,
		Route:       route,
	}

	result := &domain.SimulationResult{
		QuoteID:     key,
		Mode:        req.Mode,
		PayAmount:   payAmount,
		PayAsset:    req.PayAsset,
		NotionalUSD: notional,
		Costs:       costs,
		Route:       route,
	}

	switch req.Mode {
	case domain.ModeSwap:
		a.assembleSwap(result, req, in)

	case domain.ModeLimit:
		if req.Limit == nil {
			return nil, ErrMissingLimitParams
		}
		a.assembleLimit(result, req, in)

	case domain.ModeAlgo:
		if req.Algo == nil {
			return nil, ErrMissingAlgoParams
		}
		if err := a.assembleAlgo(result, req, in, key); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}

	result.Confirmation = decision.Evaluate(decision.Input{
		PayAmount:        payAmount,
		AmountValid:      amountValid,
		AvailableBalance: req.AvailableBalance,
		Mode:             req.Mode,
		SpotPrice:        snap.SpotPrice,
		Limit:            req.Limit,
		Algo:             req.Algo,
	})

	if a.cache != nil {
		a.cache.Put(key, result)
	}
	return result, nil
}

func (a *Assembler) assembleSwap(result *domain.SimulationResult, req domain.OrderRequest, in strategy.Input) {
	q := strategy.QuoteSwap(in, req.SlippageTolerancePct)
	result.Swap = &q
	result.GrossReceiveUSD = q.GrossReceiveUSD
	result.NetReceiveUSD = q.NetReceiveUSD
	result.MinReceiveUSD = q.MinReceiveUSD
	result.AlphaUSD = 0 // the swap is the baseline

	if in.PayAmount > 0 {
		result.Rationale = append(result.Rationale,
			fmt.Sprintf("Routing grade %s (score %.1f/10) across %d venue(s).", q.RoutingGrade, q.RoutingScore, len(in.Route)),
			fmt.Sprintf("Estimated price impact %.4f%% on $%.2f notional.", in.Costs.ImpactPct, in.NotionalUSD),
		)
	}
	if q.Warning != "" {
		result.Rationale = append(result.Rationale, q.Warning)
	}
}

func (a *Assembler) assembleLimit(result *domain.SimulationResult, req domain.OrderRequest, in strategy.Input) {
	q := strategy.QuoteLimit(in, *req.Limit)
	result.Limit = &q
	result.GrossReceiveUSD = q.GrossReceiveUSD
	result.NetReceiveUSD = q.NetReceiveUSD
	// A resting limit guarantees its price; there is no slippage band.
	result.MinReceiveUSD = q.NetReceiveUSD

	// Alpha: extra proceeds over selling at spot, less the yield forgone
	// while the order rests.
	spotGross := in.PayAmount * in.Snapshot.SpotPrice
	result.AlphaUSD = (q.GrossReceiveUSD - spotGross) - q.OpportunityCostUSD

	switch {
	case q.InvalidPostOnly:
		result.Rationale = append(result.Rationale,
			"Invalid order: a post-only limit at or below spot would cross the spread.")
	case q.IsMarketable:
		result.Rationale = append(result.Rationale,
			"Limit is at or below spot: the order is marketable and would fill instantly.")
	case in.PayAmount > 0:
		result.Rationale = append(result.Rationale,
			fmt.Sprintf("Estimated %.0f%% chance of filling within %g hours (ETA %s).",
				q.FillProbabilityPct, req.Limit.ExpiryHours, q.ETALabel),
			fmt.Sprintf("Capital lock-up costs $%.2f in forgone yield.", q.OpportunityCostUSD),
		)
	}
}

func (a *Assembler) assembleAlgo(result *domain.SimulationResult, req domain.OrderRequest, in strategy.Input, key string) error {
	strategist, err := strategy.FromParams(*req.Algo)
	if err != nil {
		return err
	}

	seed := req.Algo.Seed
	if seed == 0 {
		seed = quotekey.Seed(key)
	}
	q := strategist.Quote(in, strategy.NewSeeded(seed))
	result.Algo = &q

	// Receive projection for the scheduled order uses the strategy's
	// reduced impact in place of the immediate one.
	gross := in.PayAmount * in.Snapshot.SpotPrice
	estImpactCost := in.NotionalUSD * q.EstImpactPct / 100
	net := gross - (estImpactCost + in.Costs.PlatformFeeUSD + q.TotalGasCostUSD)
	result.GrossReceiveUSD = gross
	result.NetReceiveUSD = net
	result.MinReceiveUSD = net
	result.AlphaUSD = q.NetSavingsUSD

	if in.PayAmount > 0 {
		result.Rationale = append(result.Rationale,
			fmt.Sprintf("%s splits %g %s into %d tranches every %.1f minutes.",
				q.Kind, in.PayAmount, req.AssetLabel(), q.TrancheCount, q.AvgIntervalMinutes))
		if q.IsEfficient {
			result.Rationale = append(result.Rationale,
				fmt.Sprintf("Projected $%.2f savings vs immediate execution.", q.NetSavingsUSD))
		} else {
			result.Rationale = append(result.Rationale,
				fmt.Sprintf("Scheduling costs $%.2f more than immediate execution at this size.", -q.NetSavingsUSD))
		}
		if req.Algo.MinPrice > 0 {
			result.Rationale = append(result.Rationale,
				fmt.Sprintf("Tranches pause while the price is below the $%.2f guard.", req.Algo.MinPrice))
		}
	}
	return nil
}
