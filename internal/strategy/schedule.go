package strategy

import "exec-planner/internal/domain"

// buildSchedule turns per-tranche weights into schedule entries. Weights
// are normalized so volumes sum to the pay amount regardless of shape.
// Interval jitter (TWAP randomized mode) moves scheduled times but never
// volume. The first entry is the active tranche; the rest are pending.
func buildSchedule(in Input, count int, weights []float64, avgIntervalMinutes float64, intervalJitterPct float64, rng Rand) []domain.ScheduleEntry {
	if count <= 0 || in.PayAmount <= 0 {
		return nil
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return nil
	}

	entries := make([]domain.ScheduleEntry, count)
	offset := 0.0
	for i := 0; i < count; i++ {
		volume := in.PayAmount * weights[i] / total

		// Impact on each slice scales with its share of the order.
		sliceImpactPct := in.Costs.ImpactPct * volume / in.PayAmount

		status := domain.TranchePending
		if i == 0 {
			status = domain.TrancheActive
		}

		entries[i] = domain.ScheduleEntry{
			Sequence:       i + 1,
			OffsetMinutes:  offset,
			VolumeSlice:    volume,
			Status:         status,
			ProjectedPrice: in.Snapshot.SpotPrice * (1 - sliceImpactPct/100),
		}

		interval := avgIntervalMinutes
		if intervalJitterPct > 0 && rng != nil {
			interval *= jitter(rng, intervalJitterPct)
		}
		offset += interval
	}
	return entries
}

// uniformWeights is the plain TWAP shape.
func uniformWeights(count int) []float64 {
	w := make([]float64, count)
	for i := range w {
		w[i] = 1
	}
	return w
}

// noisyWeights perturbs uniform weights by +/-jitterPct for randomized
// TWAP. Normalization restores the exact total afterwards.
func noisyWeights(count int, jitterPct float64, rng Rand) []float64 {
	w := make([]float64, count)
	for i := range w {
		w[i] = jitter(rng, jitterPct)
	}
	return w
}

// uShapeWeights is the VWAP intraday volume curve: heaviest at the open
// and close, lightest midway.
func uShapeWeights(count int) []float64 {
	w := make([]float64, count)
	if count == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		x := float64(i) / float64(count-1) // 0..1 across the window
		d := 2*x - 1                       // -1..1, zero at the middle
		w[i] = 1 + 0.75*d*d
	}
	return w
}

// jitter returns a multiplicative factor in [1-pct, 1+pct).
func jitter(rng Rand, pct float64) float64 {
	return 1 + (2*rng.Float64()-1)*pct
}
