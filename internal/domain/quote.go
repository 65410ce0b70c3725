package domain

// CostBreakdown itemizes the USD cost of executing at the quoted size.
// Invariant: TotalCostUSD = ImpactCostUSD + PlatformFeeUSD + NetworkFeeUSD.
type CostBreakdown struct {
	// ImpactPct is the effective price impact percent after per-venue
	// multipliers are blended by routing share.
	ImpactPct      float64 `json:"impact_pct"`
	ImpactCostUSD  float64 `json:"impact_cost_usd"`
	PlatformFeeUSD float64 `json:"platform_fee_usd"`
	NetworkFeeUSD  float64 `json:"network_fee_usd"`
	TotalCostUSD   float64 `json:"total_cost_usd"`
}

// RouteLeg is one venue allocation of the routing split.
// Shares across a route always sum to 100.
type RouteLeg struct {
	Venue         string  `json:"venue"`
	SharePct      float64 `json:"share_pct"`
	EffectiveRate float64 `json:"effective_rate"`
	ImpactPct     float64 `json:"impact_pct"`
}

// TrancheStatus is the display state of one schedule entry.
type TrancheStatus string

const (
	TrancheExecuted TrancheStatus = "EXECUTED"
	TrancheActive   TrancheStatus = "ACTIVE"
	TranchePending  TrancheStatus = "PENDING"
)

// ScheduleEntry is one slice of an algorithmic order. Volumes across a
// schedule sum to the requested amount within floating-point tolerance.
type ScheduleEntry struct {
	Sequence       int           `json:"sequence"`
	OffsetMinutes  float64       `json:"offset_minutes"`
	VolumeSlice    float64       `json:"volume_slice"`
	Status         TrancheStatus `json:"status"`
	ProjectedPrice float64       `json:"projected_price"`
}

// RoutingGrade buckets the swap routing score for display.
type RoutingGrade string

const (
	GradeOptimal RoutingGrade = "OPTIMAL"
	GradeFair    RoutingGrade = "FAIR"
	GradePoor    RoutingGrade = "POOR"
)

// SwapQuote is the immediate-execution projection.
type SwapQuote struct {
	GrossReceiveUSD float64      `json:"gross_receive_usd"`
	NetReceiveUSD   float64      `json:"net_receive_usd"`
	MinReceiveUSD   float64      `json:"min_receive_usd"`
	RoutingScore    float64      `json:"routing_score"`
	RoutingGrade    RoutingGrade `json:"routing_grade"`
	Warning         string       `json:"warning,omitempty"`
}

// AlgoQuote is the scheduled-execution projection.
type AlgoQuote struct {
	Kind               AlgoKind        `json:"kind"`
	TrancheCount       int             `json:"tranche_count"`
	AvgIntervalMinutes float64         `json:"avg_interval_minutes"`
	TotalGasCostUSD    float64         `json:"total_gas_cost_usd"`
	EstImpactPct       float64         `json:"est_impact_pct"`
	NetSavingsUSD      float64         `json:"net_savings_usd"`
	IsEfficient        bool            `json:"is_efficient"`
	VisibleAmount      float64         `json:"visible_amount,omitempty"`
	HiddenAmount       float64         `json:"hidden_amount,omitempty"`
	Schedule           []ScheduleEntry `json:"schedule"`
}

// LimitQuote is the resting-order projection.
type LimitQuote struct {
	GrossReceiveUSD    float64 `json:"gross_receive_usd"`
	NetReceiveUSD      float64 `json:"net_receive_usd"`
	EffectivePrice     float64 `json:"effective_price"`
	FillProbabilityPct float64 `json:"fill_probability_pct"`
	ETALabel           string  `json:"eta_label"`
	OpportunityCostUSD float64 `json:"opportunity_cost_usd"`
	IsMarketable       bool    `json:"is_marketable"`

	// InvalidPostOnly marks the one blocking validation error: a
	// post-only order priced to cross the spread.
	InvalidPostOnly bool `json:"invalid_post_only,omitempty"`
}

// ConfirmationCheck is one pass/fail enablement criterion with
// human-readable context.
type ConfirmationCheck struct {
	Name      string `json:"name"`
	Threshold string `json:"threshold"`
	Actual    string `json:"actual"`
	Pass      bool   `json:"pass"`
}

// ConfirmationState gates the confirm action. Failed checks are advisory
// states, not errors; the caller's enablement logic consumes them.
type ConfirmationState struct {
	CanConfirm bool                `json:"can_confirm"`
	Checks     []ConfirmationCheck `json:"checks"`
}

// SimulationResult is the engine's single exported artifact. It is fully
// recomputed on every input change; lifetime is one render pass.
type SimulationResult struct {
	// QuoteID is a deterministic hash of the full input tuple.
	QuoteID string        `json:"quote_id"`
	Mode    ExecutionMode `json:"mode"`

	PayAmount   float64 `json:"pay_amount"`
	PayAsset    string  `json:"pay_asset,omitempty"`
	NotionalUSD float64 `json:"notional_usd"`

	Costs CostBreakdown `json:"costs"`
	Route []RouteLeg    `json:"route"`

	GrossReceiveUSD float64 `json:"gross_receive_usd"`
	NetReceiveUSD   float64 `json:"net_receive_usd"`
	MinReceiveUSD   float64 `json:"min_receive_usd"`

	Swap  *SwapQuote  `json:"swap,omitempty"`
	Algo  *AlgoQuote  `json:"algo,omitempty"`
	Limit *LimitQuote `json:"limit,omitempty"`

	// AlphaUSD compares the chosen mode against an immediate-execution
	// baseline. Zero for swaps by construction.
	AlphaUSD float64 `json:"alpha_usd"`

	Rationale    []string          `json:"rationale"`
	Confirmation ConfirmationState `json:"confirmation"`
}
