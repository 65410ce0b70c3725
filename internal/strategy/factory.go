package strategy

import (
	"errors"

	"exec-planner/internal/domain"
)

// Factory errors
var (
	ErrUnknownAlgoKind         = errors.New("unknown algo strategy kind")
	ErrMissingDuration         = errors.New("TWAP/VWAP requires a positive duration")
	ErrParticipationOutOfRange = errors.New("VWAP participation rate must be between 1 and 50")
	ErrNegativeVisibleAmount   = errors.New("ICEBERG visible amount must not be negative")
)

// FromParams creates an AlgoStrategist from request parameters, validating
// the fields each sub-strategy requires.
func FromParams(p domain.AlgoParams) (AlgoStrategist, error) {
	switch p.Kind {
	case domain.AlgoTWAP:
		if p.DurationHours <= 0 {
			return nil, ErrMissingDuration
		}
		return &TWAPStrategist{DurationHours: p.DurationHours, Randomize: p.Randomize}, nil

	case domain.AlgoVWAP:
		if p.DurationHours <= 0 {
			return nil, ErrMissingDuration
		}
		if p.ParticipationRatePct < 1 || p.ParticipationRatePct > 50 {
			return nil, ErrParticipationOutOfRange
		}
		return &VWAPStrategist{
			DurationHours:        p.DurationHours,
			ParticipationRatePct: p.ParticipationRatePct,
		}, nil

	case domain.AlgoIceberg:
		if p.VisibleAmount < 0 {
			return nil, ErrNegativeVisibleAmount
		}
		return &IcebergStrategist{VisibleAmount: p.VisibleAmount}, nil

	default:
		return nil, ErrUnknownAlgoKind
	}
}
