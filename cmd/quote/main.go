// Package main computes one execution quote and prints it as Markdown.
//
// Examples:
//
//	quote -amount 10 -asset ETH
//	quote -amount 10 -mode LIMIT -limit-price 3400 -expiry 24
//	quote -amount 50 -mode ALGO -algo TWAP -duration 4
//	quote -amount 50 -mode ALGO -algo ICEBERG -visible 5
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"exec-planner/internal/config"
	"exec-planner/internal/domain"
	"exec-planner/internal/reporting"
	"exec-planner/internal/simulation"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (defaults apply when empty)")
	amount := flag.String("amount", "", "Pay amount in base asset units")
	asset := flag.String("asset", "ETH", "Pay asset symbol")
	mode := flag.String("mode", "SWAP", "Execution mode: SWAP, LIMIT or ALGO")
	gasTier := flag.String("gas", "STANDARD", "Gas tier: SLOW, STANDARD or FAST")
	slippage := flag.Float64("slippage", 0.5, "Slippage tolerance percent (SWAP)")
	balance := flag.Float64("balance", -1, "Available balance in base units (negative = unknown)")

	limitPrice := flag.Float64("limit-price", 0, "Limit price in USD (LIMIT)")
	expiry := flag.Float64("expiry", 24, "Expiry in hours (LIMIT)")
	postOnly := flag.Bool("post-only", false, "Post-only flag (LIMIT)")

	algoKind := flag.String("algo", "TWAP", "Algo kind: TWAP, VWAP or ICEBERG")
	duration := flag.Float64("duration", 4, "Duration in hours (TWAP/VWAP)")
	participation := flag.Float64("participation", 10, "Participation rate percent (VWAP)")
	visible := flag.Float64("visible", 0, "Visible clip in base units (ICEBERG, 0 = default)")
	randomize := flag.Bool("randomize", false, "Randomize TWAP tranche volumes and intervals")
	seed := flag.Int64("seed", 0, "Schedule randomness seed (0 = derived from request)")

	flag.Parse()

	if err := run(*configPath, request(
		*amount, *asset, *mode, *gasTier, *slippage, *balance,
		*limitPrice, *expiry, *postOnly,
		*algoKind, *duration, *participation, *visible, *randomize, *seed,
	)); err != nil {
		fmt.Fprintf(os.Stderr, "quote: %v\n", err)
		os.Exit(1)
	}
}

func request(
	amount, asset, mode, gasTier string, slippage, balance float64,
	limitPrice, expiry float64, postOnly bool,
	algoKind string, duration, participation, visible float64, randomize bool, seed int64,
) domain.OrderRequest {
	req := domain.OrderRequest{
		PayAmount:            amount,
		PayAsset:             asset,
		Mode:                 domain.ExecutionMode(strings.ToUpper(mode)),
		GasTier:              domain.GasTier(strings.ToUpper(gasTier)),
		SlippageTolerancePct: slippage,
		AvailableBalance:     balance,
	}

	switch req.Mode {
	case domain.ModeLimit:
		req.Limit = &domain.LimitParams{
			LimitPrice:  limitPrice,
			ExpiryHours: expiry,
			PostOnly:    postOnly,
		}
	case domain.ModeAlgo:
		req.Algo = &domain.AlgoParams{
			Kind:                 domain.AlgoKind(strings.ToUpper(algoKind)),
			DurationHours:        duration,
			ParticipationRatePct: participation,
			VisibleAmount:        visible,
			Randomize:            randomize,
			Seed:                 seed,
		}
	}
	return req
}

func run(configPath string, req domain.OrderRequest) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	assembler := simulation.NewAssembler(simulation.Options{Params: cfg.Engine.ToParams()})
	result, err := assembler.Simulate(req, cfg.Market.ToSnapshot())
	if err != nil {
		return err
	}

	fmt.Print(reporting.RenderMarkdown(reporting.NewReport(result)))
	return nil
}
