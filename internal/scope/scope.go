package scope

import (
	"strings"

	"github.com/rs/zerolog/log"

	"scope-mcp/internal/jira"
)

// defaultAveragePoints seeds the extrapolation when neither completed nor
// estimated items provide a historical average.
const defaultAveragePoints = 10

// highConfidenceCoverage is informational only: it never gates whether the
// points field is considered usable.
const highConfidenceCoverage = 0.3

// StatusBreakdown is the per-status audit entry of a scope calculation.
type StatusBreakdown struct {
	Items          int            `json:"items"`
	Points         int            `json:"points"`
	Category       string         `json:"category"`
	Classification Classification `json:"classification"`
}

// Result holds the aggregate scope of a ticket sample.
type Result struct {
	TotalItems           int                        `json:"total_items"`
	TotalPoints          int                        `json:"total_points"`
	CompletedItems       int                        `json:"completed_items"`
	CompletedPoints      int                        `json:"completed_points"`
	RemainingItems       int                        `json:"remaining_items"`
	RemainingPoints      int                        `json:"remaining_points"`
	EstimatedItems       int                        `json:"estimated_items"`
	EstimatedPoints      int                        `json:"estimated_points"`
	RemainingTotalPoints float64                    `json:"remaining_total_points"`
	PointsFieldAvailable bool                       `json:"points_field_available"`
	EstimationCoverage   float64                    `json:"estimation_coverage"`
	HighConfidencePoints bool                       `json:"high_confidence_points"`
	StatusBreakdown      map[string]StatusBreakdown `json:"status_breakdown"`
}

// Compute partitions the sample into completed and remaining work and derives
// the extrapolated total of remaining points. Tickets without a status object
// are skipped and logged; everything else has a defined fallback.
func Compute(tickets []jira.Ticket, pointsField string, cfg *StatusConfig) Result {
	result := Result{
		StatusBreakdown: make(map[string]StatusBreakdown),
	}

	fieldConfigured := strings.TrimSpace(pointsField) != ""
	genuineCount := 0
	anyPositive := false

	for _, ticket := range tickets {
		if ticket.Status == "" {
			log.Warn().Str("key", ticket.Key).Msg("Ticket has no status object, skipped from scope")
			continue
		}

		class := Classify(ticket.Status, ticket.StatusCategory, cfg)
		points, estimated := ExtractPoints(ticket.Fields, pointsField)

		result.TotalItems++
		result.TotalPoints += points

		if fieldConfigured && estimated {
			genuineCount++
			if points > 0 {
				anyPositive = true
			}
		}

		if class == Completed {
			result.CompletedItems++
			result.CompletedPoints += points
		} else {
			result.RemainingItems++
			result.RemainingPoints += points
			if estimated {
				result.EstimatedItems++
				result.EstimatedPoints += points
			}
		}

		entry := result.StatusBreakdown[ticket.Status]
		entry.Items++
		entry.Points += points
		entry.Category = ticket.StatusCategory
		entry.Classification = class
		result.StatusBreakdown[ticket.Status] = entry
	}

	// A single genuine non-zero value makes the field usable. Coverage is a
	// separate, stricter signal tracked for display only.
	result.PointsFieldAvailable = fieldConfigured && anyPositive
	if fieldConfigured && result.TotalItems > 0 {
		result.EstimationCoverage = float64(genuineCount) / float64(result.TotalItems)
		result.HighConfidencePoints = result.EstimationCoverage >= highConfidenceCoverage
	}

	result.RemainingTotalPoints = extrapolateRemaining(result)

	return result
}

// extrapolateRemaining projects the total points of remaining work.
//
// With estimated items in the backlog, unestimated remainder is filled in at
// the average points-per-estimated-item. Without any estimates, the historical
// average of completed work applies, falling back to a fixed default when
// nothing has completed either.
func extrapolateRemaining(r Result) float64 {
	if r.EstimatedItems == 0 {
		average := float64(defaultAveragePoints)
		if r.CompletedItems > 0 {
			average = float64(r.CompletedPoints) / float64(r.CompletedItems)
		}
		return average * float64(r.RemainingItems)
	}

	perItem := float64(r.EstimatedPoints) / float64(r.EstimatedItems)
	return float64(r.EstimatedPoints) + perItem*float64(r.RemainingItems-r.EstimatedItems)
}
