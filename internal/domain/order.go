package domain

// ExecutionMode selects how a requested trade is executed.
type ExecutionMode string

const (
	ModeSwap  ExecutionMode = "SWAP"  // immediate execution at market
	ModeLimit ExecutionMode = "LIMIT" // resting limit order
	ModeAlgo  ExecutionMode = "ALGO"  // scheduled algorithmic order
)

// AlgoKind identifies the algorithmic sub-strategy.
type AlgoKind string

const (
	AlgoTWAP    AlgoKind = "TWAP"
	AlgoVWAP    AlgoKind = "VWAP"
	AlgoIceberg AlgoKind = "ICEBERG"
)

// GasTier selects the network fee speed tier.
type GasTier string

const (
	GasSlow     GasTier = "SLOW"
	GasStandard GasTier = "STANDARD"
	GasFast     GasTier = "FAST"
)

// OrderRequest captures user intent for one quote. It is ephemeral: created
// by user interaction, recomputed on every edit, never persisted.
type OrderRequest struct {
	// PayAmount is the raw user input in base asset units. It is parsed
	// permissively; empty or non-numeric input degrades to zero.
	PayAmount string        `json:"pay_amount"`
	PayAsset  string        `json:"pay_asset,omitempty"`
	Mode      ExecutionMode `json:"mode"`
	GasTier   GasTier       `json:"gas_tier,omitempty"`

	// SlippageTolerancePct bounds the minimum-received guarantee for
	// immediate swaps (0.5 = 0.5%).
	SlippageTolerancePct float64 `json:"slippage_tolerance_pct,omitempty"`

	// AvailableBalance is the wallet balance in base asset units.
	// Negative means unknown; the balance check is then skipped.
	AvailableBalance float64 `json:"available_balance,omitempty"`

	Limit *LimitParams `json:"limit,omitempty"`
	Algo  *AlgoParams  `json:"algo,omitempty"`
}

// LimitParams holds resting-order fields.
type LimitParams struct {
	LimitPrice  float64 `json:"limit_price"`
	ExpiryHours float64 `json:"expiry_hours"`
	PostOnly    bool    `json:"post_only,omitempty"`
}

// AlgoParams holds algorithmic-order fields.
type AlgoParams struct {
	Kind          AlgoKind `json:"kind"`
	DurationHours float64  `json:"duration_hours,omitempty"`

	// ParticipationRatePct is the VWAP participation rate, 1–50.
	ParticipationRatePct float64 `json:"participation_rate_pct,omitempty"`

	// VisibleAmount is the iceberg clip size in base units.
	// Zero means 10% of the total amount.
	VisibleAmount float64 `json:"visible_amount,omitempty"`

	// Randomize perturbs TWAP tranche volumes and intervals to reduce
	// detectability. Simulated only.
	Randomize bool `json:"randomize,omitempty"`

	// MinPrice is an optional execution price guard. Zero means none.
	MinPrice float64 `json:"min_price,omitempty"`

	// Seed drives the schedule randomness source. Zero derives a seed
	// from the request so identical inputs stay identical.
	Seed int64 `json:"seed,omitempty"`
}

// AssetLabel returns the pay asset symbol for display.
func (r *OrderRequest) AssetLabel() string {
	if r.PayAsset == "" {
		return "units"
	}
	return r.PayAsset
}
