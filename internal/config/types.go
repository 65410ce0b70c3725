package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"exec-planner/internal/domain"
)

// Config aggregates everything the quote service needs to run.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Market  MarketConfig  `mapstructure:"market"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level            string   `mapstructure:"level"`
	Encoding         string   `mapstructure:"encoding"`
	Development      bool     `mapstructure:"development"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// MarketConfig overrides the demo market snapshot constants.
type MarketConfig struct {
	SpotPrice          float64 `mapstructure:"spot_price"`
	LiquidityUSD       float64 `mapstructure:"liquidity_usd"`
	DailyVolatilityPct float64 `mapstructure:"daily_volatility_pct"`
	GasSlowUSD         float64 `mapstructure:"gas_slow_usd"`
	GasStandardUSD     float64 `mapstructure:"gas_standard_usd"`
	GasFastUSD         float64 `mapstructure:"gas_fast_usd"`
	PlatformFeeRate    float64 `mapstructure:"platform_fee_rate"`
}

// EngineConfig overrides the engine model tunables.
type EngineConfig struct {
	ImpactMultiplier         float64 `mapstructure:"impact_multiplier"`
	NetworkFeeVenueSurcharge float64 `mapstructure:"network_fee_venue_surcharge"`
	MinTrancheNotionalUSD    float64 `mapstructure:"min_tranche_notional_usd"`
	TrancheIntervalMinutes   float64 `mapstructure:"tranche_interval_minutes"`
	VWAPImpactFloor          float64 `mapstructure:"vwap_impact_floor"`
	VWAPImpactSlope          float64 `mapstructure:"vwap_impact_slope"`
	VWAPImpactExponent       float64 `mapstructure:"vwap_impact_exponent"`
	IcebergImpactRatio       float64 `mapstructure:"iceberg_impact_ratio"`
	IcebergVisibleFraction   float64 `mapstructure:"iceberg_visible_fraction"`
	SignalingPenaltyRate     float64 `mapstructure:"signaling_penalty_rate"`
	AnnualRiskFreeRate       float64 `mapstructure:"annual_risk_free_rate"`
	MarketVelocityPctPerHour float64 `mapstructure:"market_velocity_pct_per_hour"`
	VolumeJitterPct          float64 `mapstructure:"volume_jitter_pct"`
	IntervalJitterPct        float64 `mapstructure:"interval_jitter_pct"`
	RoutingScoreDecayPerPct  float64 `mapstructure:"routing_score_decay_per_pct"`
}

// CacheConfig controls quote memoization.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// ToSnapshot converts the market section into an engine snapshot.
func (m MarketConfig) ToSnapshot() domain.MarketSnapshot {
	return domain.MarketSnapshot{
		SpotPrice:          m.SpotPrice,
		LiquidityUSD:       m.LiquidityUSD,
		DailyVolatilityPct: m.DailyVolatilityPct,
		GasTiersUSD: map[domain.GasTier]float64{
			domain.GasSlow:     m.GasSlowUSD,
			domain.GasStandard: m.GasStandardUSD,
			domain.GasFast:     m.GasFastUSD,
		},
		PlatformFeeRate: m.PlatformFeeRate,
	}
}

// ToParams converts the engine section into engine params.
func (e EngineConfig) ToParams() domain.EngineParams {
	return domain.EngineParams{
		ImpactMultiplier:         e.ImpactMultiplier,
		NetworkFeeVenueSurcharge: e.NetworkFeeVenueSurcharge,
		MinTrancheNotionalUSD:    e.MinTrancheNotionalUSD,
		TrancheIntervalMinutes:   e.TrancheIntervalMinutes,
		VWAPImpactFloor:          e.VWAPImpactFloor,
		VWAPImpactSlope:          e.VWAPImpactSlope,
		VWAPImpactExponent:       e.VWAPImpactExponent,
		IcebergImpactRatio:       e.IcebergImpactRatio,
		IcebergVisibleFraction:   e.IcebergVisibleFraction,
		SignalingPenaltyRate:     e.SignalingPenaltyRate,
		AnnualRiskFreeRate:       e.AnnualRiskFreeRate,
		MarketVelocityPctPerHour: e.MarketVelocityPctPerHour,
		VolumeJitterPct:          e.VolumeJitterPct,
		IntervalJitterPct:        e.IntervalJitterPct,
		RoutingScoreDecayPerPct:  e.RoutingScoreDecayPerPct,
	}
}

// Validate performs basic sanity checks.
func (c *Config) Validate() error {
	var err error

	if c.Server.Addr == "" {
		err = multierr.Append(err, errors.New("server.addr must not be empty"))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		err = multierr.Append(err, errors.New("server timeouts must be positive"))
	}
	if c.Logging.Level == "" {
		err = multierr.Append(err, errors.New("logging.level must not be empty"))
	}
	if c.Logging.Encoding == "" {
		err = multierr.Append(err, errors.New("logging.encoding must not be empty"))
	}
	if c.Market.SpotPrice <= 0 {
		err = multierr.Append(err, errors.New("market.spot_price must be positive"))
	}
	if c.Market.LiquidityUSD <= 0 {
		err = multierr.Append(err, errors.New("market.liquidity_usd must be positive"))
	}
	if c.Market.DailyVolatilityPct < 0 {
		err = multierr.Append(err, errors.New("market.daily_volatility_pct must not be negative"))
	}
	if c.Market.PlatformFeeRate < 0 || c.Market.PlatformFeeRate > 0.05 {
		err = multierr.Append(err, errors.New("market.platform_fee_rate must be within [0, 0.05]"))
	}
	if c.Engine.ImpactMultiplier <= 0 {
		err = multierr.Append(err, errors.New("engine.impact_multiplier must be positive"))
	}
	if c.Engine.TrancheIntervalMinutes <= 0 {
		err = multierr.Append(err, errors.New("engine.tranche_interval_minutes must be positive"))
	}
	if c.Engine.IcebergVisibleFraction <= 0 || c.Engine.IcebergVisibleFraction > 1 {
		err = multierr.Append(err, errors.New("engine.iceberg_visible_fraction must be within (0, 1]"))
	}
	if c.Cache.Size < 0 {
		err = multierr.Append(err, errors.New("cache.size must not be negative"))
	}

	if err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
