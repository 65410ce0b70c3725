package domain

// MarketSnapshot is the exogenous market state a quote is computed against.
// It is injected per call and treated as read-only; the engine never owns or
// refreshes it, so the constants below can be swapped for live feeds without
// touching engine contracts.
type MarketSnapshot struct {
	// SpotPrice is the current price of the pay asset in USD.
	SpotPrice float64 `json:"spot_price"`

	// LiquidityUSD is the available liquidity constant used by the price
	// impact model.
	LiquidityUSD float64 `json:"liquidity_usd"`

	// DailyVolatilityPct is daily price volatility in percent.
	DailyVolatilityPct float64 `json:"daily_volatility_pct"`

	// GasTiersUSD maps each speed tier to its fixed network fee in USD.
	GasTiersUSD map[GasTier]float64 `json:"gas_tiers_usd"`

	// PlatformFeeRate is the flat platform fee fraction (0.0005 = 5 bp),
	// charged on notional regardless of mode.
	PlatformFeeRate float64 `json:"platform_fee_rate"`
}

// GasFeeUSD returns the network base fee for a tier, falling back to the
// standard tier for unknown values.
func (s MarketSnapshot) GasFeeUSD(tier GasTier) float64 {
	if fee, ok := s.GasTiersUSD[tier]; ok {
		return fee
	}
	return s.GasTiersUSD[GasStandard]
}

// EngineParams collects the tunable model constants. The participation-rate
// curve and the iceberg constants are heuristic placeholders carried over
// as-is; they are configuration, not derived values.
type EngineParams struct {
	// ImpactMultiplier scales notional/liquidity into an impact percent.
	ImpactMultiplier float64 `json:"impact_multiplier"`

	// NetworkFeeVenueSurcharge inflates the network fee per extra venue:
	// fee * (1 + surcharge*(venues-1)).
	NetworkFeeVenueSurcharge float64 `json:"network_fee_venue_surcharge"`

	// MinTrancheNotionalUSD is the minimum economic tranche size; it caps
	// TWAP/VWAP tranche counts for small notionals.
	MinTrancheNotionalUSD float64 `json:"min_tranche_notional_usd"`

	// TrancheIntervalMinutes is the target spacing between tranches.
	TrancheIntervalMinutes float64 `json:"tranche_interval_minutes"`

	// VWAP participation-rate impact curve:
	// estImpact = base * (floor + (rate/100)^exponent * slope).
	VWAPImpactFloor    float64 `json:"vwap_impact_floor"`
	VWAPImpactSlope    float64 `json:"vwap_impact_slope"`
	VWAPImpactExponent float64 `json:"vwap_impact_exponent"`

	// IcebergImpactRatio is the iceberg impact cost as a fraction of the
	// immediate-execution impact cost.
	IcebergImpactRatio float64 `json:"iceberg_impact_ratio"`

	// IcebergVisibleFraction is the default visible clip as a fraction of
	// total size when the user sets none.
	IcebergVisibleFraction float64 `json:"iceberg_visible_fraction"`

	// SignalingPenaltyRate is the notional fraction an iceberg avoids by
	// hiding order size (0.0015 = 15 bp).
	SignalingPenaltyRate float64 `json:"signaling_penalty_rate"`

	// AnnualRiskFreeRate prices capital locked in resting orders.
	AnnualRiskFreeRate float64 `json:"annual_risk_free_rate"`

	// MarketVelocityPctPerHour is the assumed drift used for limit-order
	// ETA bucketing (1% per 12 hours).
	MarketVelocityPctPerHour float64 `json:"market_velocity_pct_per_hour"`

	// TWAP randomization jitter bounds.
	VolumeJitterPct   float64 `json:"volume_jitter_pct"`
	IntervalJitterPct float64 `json:"interval_jitter_pct"`

	// RoutingScoreDecayPerPct is the score decay slope past the POOR
	// breakpoint, in score points per 1% impact.
	RoutingScoreDecayPerPct float64 `json:"routing_score_decay_per_pct"`
}

// Predefined defaults. The snapshot values are the console's fixed demo
// constants; production swaps them for live feeds.
var (
	DefaultMarketSnapshot = MarketSnapshot{
		SpotPrice:          3208.93,
		LiquidityUSD:       10_000_000,
		DailyVolatilityPct: 4.0,
		GasTiersUSD: map[GasTier]float64{
			GasSlow:     1.25,
			GasStandard: 2.50,
			GasFast:     4.75,
		},
		PlatformFeeRate: 0.0005,
	}

	DefaultEngineParams = EngineParams{
		ImpactMultiplier:         2.85,
		NetworkFeeVenueSurcharge: 0.4,
		MinTrancheNotionalUSD:    2000,
		TrancheIntervalMinutes:   20,
		VWAPImpactFloor:          0.15,
		VWAPImpactSlope:          0.85,
		VWAPImpactExponent:       1.5,
		IcebergImpactRatio:       0.25,
		IcebergVisibleFraction:   0.10,
		SignalingPenaltyRate:     0.0015,
		AnnualRiskFreeRate:       0.042,
		MarketVelocityPctPerHour: 1.0 / 12.0,
		VolumeJitterPct:          0.25,
		IntervalJitterPct:        0.40,
		RoutingScoreDecayPerPct:  7.0,
	}
)
