// Package config loads service configuration from a YAML file with
// environment-variable overrides. Defaults reproduce the engine's
// built-in demo constants, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"exec-planner/internal/domain"
)

const envPrefix = "quote"

// Load reads configuration from path, merging environment variables with
// the QUOTE_ prefix. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("config file %q not found: %w", path, err)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "15s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "console")
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.output_paths", []string{"stdout"})
	v.SetDefault("logging.error_output_paths", []string{"stderr"})

	snap := domain.DefaultMarketSnapshot
	v.SetDefault("market.spot_price", snap.SpotPrice)
	v.SetDefault("market.liquidity_usd", snap.LiquidityUSD)
	v.SetDefault("market.daily_volatility_pct", snap.DailyVolatilityPct)
	v.SetDefault("market.gas_slow_usd", snap.GasTiersUSD[domain.GasSlow])
	v.SetDefault("market.gas_standard_usd", snap.GasTiersUSD[domain.GasStandard])
	v.SetDefault("market.gas_fast_usd", snap.GasTiersUSD[domain.GasFast])
	v.SetDefault("market.platform_fee_rate", snap.PlatformFeeRate)

	params := domain.DefaultEngineParams
	v.SetDefault("engine.impact_multiplier", params.ImpactMultiplier)
	v.SetDefault("engine.network_fee_venue_surcharge", params.NetworkFeeVenueSurcharge)
	v.SetDefault("engine.min_tranche_notional_usd", params.MinTrancheNotionalUSD)
	v.SetDefault("engine.tranche_interval_minutes", params.TrancheIntervalMinutes)
	v.SetDefault("engine.vwap_impact_floor", params.VWAPImpactFloor)
	v.SetDefault("engine.vwap_impact_slope", params.VWAPImpactSlope)
	v.SetDefault("engine.vwap_impact_exponent", params.VWAPImpactExponent)
	v.SetDefault("engine.iceberg_impact_ratio", params.IcebergImpactRatio)
	v.SetDefault("engine.iceberg_visible_fraction", params.IcebergVisibleFraction)
	v.SetDefault("engine.signaling_penalty_rate", params.SignalingPenaltyRate)
	v.SetDefault("engine.annual_risk_free_rate", params.AnnualRiskFreeRate)
	v.SetDefault("engine.market_velocity_pct_per_hour", params.MarketVelocityPctPerHour)
	v.SetDefault("engine.volume_jitter_pct", params.VolumeJitterPct)
	v.SetDefault("engine.interval_jitter_pct", params.IntervalJitterPct)
	v.SetDefault("engine.routing_score_decay_per_pct", params.RoutingScoreDecayPerPct)

	v.SetDefault("cache.size", 1024)
}
