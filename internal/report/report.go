// Package report assembles the monthly status report over the composite
// objective reads and renders it for the terminal.
package report

import (
	"github.com/pulsework/okrboard/pkg/scoring"
	"github.com/pulsework/okrboard/pkg/types"
)

// Row is one key result scored for the report month.
type Row struct {
	KeyResult types.KeyResult
	Target    float64
	Actual    float64
	Status    scoring.StatusInfo
	Trend     scoring.TrendInfo
}

// ObjectiveSection groups the rows of one objective with its comment for
// the month.
type ObjectiveSection struct {
	Objective types.Objective
	Rows      []Row
	Comment   string
}

// Summary counts key results by status band. Not-set cells count as on
// track: an unscored key result is not a problem signal.
type Summary struct {
	Total      int `json:"total"`
	OnTrack    int `json:"on_track"`
	UnderWatch int `json:"under_watch"`
	OffTrack   int `json:"off_track"`
}

// Report is the scored view of every objective for one month.
type Report struct {
	Month    string
	Sections []ObjectiveSection
	Summary  Summary
}

// Build scores every visible key result for the given month. Key results
// with no target configured for the month are filtered out, and objectives
// with nothing visible are dropped, matching the dashboard view.
func Build(objectives []types.ObjectiveDetails, month string) *Report {
	prevMonth, _ := types.PrevMonth(month)

	r := &Report{Month: month}
	for _, obj := range objectives {
		section := ObjectiveSection{Objective: obj.Objective}
		for _, c := range obj.Comments {
			if c.Month == month {
				section.Comment = c.Comment
				break
			}
		}

		for _, kr := range obj.KeyResults {
			cell, ok := findMonth(kr.MonthlyData, month)
			if !ok || cell.Target == 0 {
				continue
			}

			var previous *float64
			if prev, ok := findMonth(kr.MonthlyData, prevMonth); ok {
				previous = &prev.Actual
			}

			row := Row{
				KeyResult: kr.KeyResult,
				Target:    cell.Target,
				Actual:    cell.Actual,
				Status:    scoring.Score(cell.Actual, cell.Target, kr.Inverse),
				Trend:     scoring.Trend(cell.Actual, previous),
			}
			section.Rows = append(section.Rows, row)

			r.Summary.Total++
			switch row.Status.Status {
			case scoring.StatusOrange:
				r.Summary.UnderWatch++
			case scoring.StatusRed:
				r.Summary.OffTrack++
			default:
				r.Summary.OnTrack++
			}
		}

		if len(section.Rows) > 0 {
			r.Sections = append(r.Sections, section)
		}
	}
	return r
}

func findMonth(series []types.MonthlyData, month string) (types.MonthlyData, bool) {
	for _, md := range series {
		if md.Month == month {
			return md, true
		}
	}
	return types.MonthlyData{}, false
}
