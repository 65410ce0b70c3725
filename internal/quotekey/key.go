// Package quotekey derives deterministic identifiers for quote inputs.
// The key doubles as the memoization key: identical input tuples always
// hash to the same quote.
package quotekey

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"exec-planner/internal/domain"
)

// Compute hashes the full (request, snapshot, params) tuple with SHA256
// and returns the hex-encoded digest. Every field that can change the
// simulation output is folded in; map iteration is ordered so the encoding
// is canonical.
func Compute(req domain.OrderRequest, snap domain.MarketSnapshot, params domain.EngineParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "amt=%s|asset=%s|mode=%s|gas=%s|slip=%g|bal=%g",
		strings.TrimSpace(req.PayAmount), req.PayAsset, req.Mode, req.GasTier,
		req.SlippageTolerancePct, req.AvailableBalance)

	if req.Limit != nil {
		fmt.Fprintf(&sb, "|limit=%g,%g,%t",
			req.Limit.LimitPrice, req.Limit.ExpiryHours, req.Limit.PostOnly)
	}
	if req.Algo != nil {
		fmt.Fprintf(&sb, "|algo=%s,%g,%g,%g,%t,%g,%d",
			req.Algo.Kind, req.Algo.DurationHours, req.Algo.ParticipationRatePct,
			req.Algo.VisibleAmount, req.Algo.Randomize, req.Algo.MinPrice, req.Algo.Seed)
	}

	fmt.Fprintf(&sb, "|spot=%g|liq=%g|vol=%g|fee=%g",
		snap.SpotPrice, snap.LiquidityUSD, snap.DailyVolatilityPct, snap.PlatformFeeRate)

	tiers := make([]string, 0, len(snap.GasTiersUSD))
	for tier := range snap.GasTiersUSD {
		tiers = append(tiers, string(tier))
	}
	sort.Strings(tiers)
	for _, tier := range tiers {
		fmt.Fprintf(&sb, "|gas.%s=%g", tier, snap.GasTiersUSD[domain.GasTier(tier)])
	}

	fmt.Fprintf(&sb, "|params=%+v", params)

	hash := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(hash[:])
}

// Seed folds a key into an int64 for schedule randomization, so schedules
// stay stable across recomputes of the same input.
func Seed(key string) int64 {
	var seed int64
	for _, b := range []byte(key) {
		seed = seed*131 + int64(b)
	}
	return seed
}
