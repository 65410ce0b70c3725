package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder
	res := r.Result

	// Header
	sb.WriteString("# Execution Quote\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Quote ID: `%s`\n\n", res.QuoteID))
	sb.WriteString(fmt.Sprintf("Mode: %s | Pay: %g %s | Notional: %s\n\n",
		res.Mode, res.PayAmount, assetLabel(res.PayAsset), formatUSD(res.NotionalUSD)))

	// Cost Breakdown
	sb.WriteString("## Cost Breakdown\n\n")
	sb.WriteString("| Component | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Price Impact | %.4f%% (%s) |\n", res.Costs.ImpactPct, formatUSD(res.Costs.ImpactCostUSD)))
	sb.WriteString(fmt.Sprintf("| Platform Fee | %s |\n", formatUSD(res.Costs.PlatformFeeUSD)))
	sb.WriteString(fmt.Sprintf("| Network Fee | %s |\n", formatUSD(res.Costs.NetworkFeeUSD)))
	sb.WriteString(fmt.Sprintf("| **Total Cost** | **%s** |\n", formatUSD(res.Costs.TotalCostUSD)))
	sb.WriteString("\n")

	// Routing
	sb.WriteString("## Routing\n\n")
	if len(res.Route) > 0 {
		sb.WriteString("| Venue | Share | Effective Rate | Impact |\n")
		sb.WriteString("|-------|-------|----------------|--------|\n")
		for _, leg := range res.Route {
			sb.WriteString(fmt.Sprintf("| %s | %.0f%% | %.6f | %.4f%% |\n",
				leg.Venue, leg.SharePct, leg.EffectiveRate, leg.ImpactPct))
		}
	} else {
		sb.WriteString("No routing computed.\n")
	}
	sb.WriteString("\n")

	// Receive Projection
	sb.WriteString("## Receive Projection\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Gross Receive | %s |\n", formatUSD(res.GrossReceiveUSD)))
	sb.WriteString(fmt.Sprintf("| Net Receive | %s |\n", formatUSD(res.NetReceiveUSD)))
	sb.WriteString(fmt.Sprintf("| Min Receive | %s |\n", formatUSD(res.MinReceiveUSD)))
	sb.WriteString(fmt.Sprintf("| Alpha vs Immediate | %s |\n", formatUSD(res.AlphaUSD)))
	sb.WriteString("\n")

	renderModeSection(&sb, r)

	// Rationale
	if len(res.Rationale) > 0 {
		sb.WriteString("## Rationale\n\n")
		for _, line := range res.Rationale {
			sb.WriteString(fmt.Sprintf("- %s\n", line))
		}
		sb.WriteString("\n")
	}

	// Confirmation Checklist
	sb.WriteString("## Confirmation Checklist\n\n")
	if len(res.Confirmation.Checks) > 0 {
		sb.WriteString("| Check | Threshold | Actual | Status |\n")
		sb.WriteString("|-------|-----------|--------|--------|\n")
		for _, check := range res.Confirmation.Checks {
			status := "FAIL"
			if check.Pass {
				status = "PASS"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				check.Name, check.Threshold, check.Actual, status))
		}
		sb.WriteString("\n")
	}
	if res.Confirmation.CanConfirm {
		sb.WriteString("**All checks passed.** Order can be confirmed.\n")
	} else {
		sb.WriteString("**Some checks failed.** Confirmation disabled.\n")
	}

	return sb.String()
}

func renderModeSection(sb *strings.Builder, r *Report) {
	res := r.Result

	if res.Swap != nil {
		sb.WriteString("## Swap\n\n")
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Routing Score | %.1f/10 |\n", res.Swap.RoutingScore))
		sb.WriteString(fmt.Sprintf("| Routing Grade | %s |\n", res.Swap.RoutingGrade))
		sb.WriteString("\n")
		if res.Swap.Warning != "" {
			sb.WriteString(fmt.Sprintf("> %s\n\n", res.Swap.Warning))
		}
	}

	if res.Limit != nil {
		sb.WriteString("## Limit Order\n\n")
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Effective Price | %s |\n", formatUSD(res.Limit.EffectivePrice)))
		sb.WriteString(fmt.Sprintf("| Fill Probability | %.0f%% |\n", res.Limit.FillProbabilityPct))
		sb.WriteString(fmt.Sprintf("| Fill ETA | %s |\n", res.Limit.ETALabel))
		sb.WriteString(fmt.Sprintf("| Opportunity Cost | %s |\n", formatUSD(res.Limit.OpportunityCostUSD)))
		sb.WriteString(fmt.Sprintf("| Marketable | %t |\n", res.Limit.IsMarketable))
		sb.WriteString("\n")
	}

	if res.Algo != nil {
		sb.WriteString(fmt.Sprintf("## %s Schedule\n\n", res.Algo.Kind))
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Tranches | %d |\n", res.Algo.TrancheCount))
		sb.WriteString(fmt.Sprintf("| Avg Interval | %.1f min |\n", res.Algo.AvgIntervalMinutes))
		sb.WriteString(fmt.Sprintf("| Total Gas | %s |\n", formatUSD(res.Algo.TotalGasCostUSD)))
		sb.WriteString(fmt.Sprintf("| Est. Impact | %.4f%% |\n", res.Algo.EstImpactPct))
		sb.WriteString(fmt.Sprintf("| Net Savings | %s |\n", formatUSD(res.Algo.NetSavingsUSD)))
		sb.WriteString(fmt.Sprintf("| Efficient | %t |\n", res.Algo.IsEfficient))
		if res.Algo.VisibleAmount > 0 {
			sb.WriteString(fmt.Sprintf("| Visible / Hidden | %.4f / %.4f |\n",
				res.Algo.VisibleAmount, res.Algo.HiddenAmount))
		}
		sb.WriteString("\n")

		if len(res.Algo.Schedule) > 0 {
			sb.WriteString("| # | Offset (min) | Volume | Status | Projected Price |\n")
			sb.WriteString("|---|--------------|--------|--------|----------------|\n")
			for _, entry := range res.Algo.Schedule {
				sb.WriteString(fmt.Sprintf("| %d | %.1f | %.6f | %s | %s |\n",
					entry.Sequence, entry.OffsetMinutes, entry.VolumeSlice,
					entry.Status, formatUSD(entry.ProjectedPrice)))
			}
			sb.WriteString("\n")
		}
	}
}

func assetLabel(asset string) string {
	if asset == "" {
		return "units"
	}
	return asset
}
