// Package scoring derives status classifications and month-over-month trends
// from raw monthly values. All functions are pure; the inverse-metric policy
// (lower is better) is handled here and nowhere else.
package scoring

import (
	"fmt"
	"math"
)

// Status classifies one (actual, target) pair.
type Status string

const (
	StatusGreen  Status = "green"
	StatusOrange Status = "orange"
	StatusRed    Status = "red"
	StatusNotSet Status = "not-set"
)

// Completion thresholds for normal (higher-is-better) metrics and the
// overage threshold for inverse metrics.
const (
	greenThreshold  = 75.0
	orangeThreshold = 50.0
	maxOverage      = 50.0
)

// CompletionCap bounds the completion percentage for inverse metrics.
// An inverse metric with actual == 0 has no finite target/actual ratio; it is
// fully met, so it reports green at the cap rather than an infinite value.
const CompletionCap = 1000.0

// StatusInfo is the result of scoring one monthly cell.
type StatusInfo struct {
	Status               Status  `json:"status"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// Score classifies an (actual, target) pair.
//
// A non-positive target means the cell was never configured: not-set, 0%.
// Normal metrics score actual/target: green at 75% and above, orange at 50%,
// red below. Inverse metrics at or under the cap are green with completion
// target/actual (capped); over the cap they score the overage percentage,
// orange to 50% over and red beyond.
func Score(actual, target float64, inverse bool) StatusInfo {
	if target <= 0 {
		return StatusInfo{Status: StatusNotSet, CompletionPercentage: 0}
	}

	if !inverse {
		completion := actual / target * 100
		info := StatusInfo{CompletionPercentage: completion}
		switch {
		case completion >= greenThreshold:
			info.Status = StatusGreen
		case completion >= orangeThreshold:
			info.Status = StatusOrange
		default:
			info.Status = StatusRed
		}
		return info
	}

	if actual <= target {
		completion := CompletionCap
		if actual > 0 {
			completion = math.Min(target/actual*100, CompletionCap)
		}
		return StatusInfo{Status: StatusGreen, CompletionPercentage: completion}
	}

	overage := (actual - target) / target * 100
	info := StatusInfo{CompletionPercentage: overage}
	if overage <= maxOverage {
		info.Status = StatusOrange
	} else {
		info.Status = StatusRed
	}
	return info
}

// Direction is the month-over-month movement of an actual value.
type Direction string

const (
	DirectionUp        Direction = "up"
	DirectionDown      Direction = "down"
	DirectionUnchanged Direction = "unchanged"
)

// TrendInfo is the result of comparing an actual value to the prior month.
type TrendInfo struct {
	Direction  Direction `json:"direction"`
	Percentage float64   `json:"percentage"`
	Display    string    `json:"display"`
}

// Trend compares the current actual to the previous month's actual.
// A nil or zero previous value cannot be a baseline; the result is
// unchanged, 0, "N/A".
func Trend(current float64, previous *float64) TrendInfo {
	if previous == nil || *previous == 0 {
		return TrendInfo{Direction: DirectionUnchanged, Percentage: 0, Display: "N/A"}
	}

	pct := (current - *previous) / *previous * 100

	var direction Direction
	var arrow string
	switch {
	case pct > 0:
		direction, arrow = DirectionUp, "↑"
	case pct < 0:
		direction, arrow = DirectionDown, "↓"
	default:
		direction, arrow = DirectionUnchanged, "→"
	}

	return TrendInfo{
		Direction:  direction,
		Percentage: pct,
		Display:    fmt.Sprintf("%s %.1f%%", arrow, math.Abs(pct)),
	}
}
