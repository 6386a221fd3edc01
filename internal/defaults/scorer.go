package defaults

import (
	"cmp"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"scope-mcp/internal/jira"
)

// antagonistPenalty keeps sibling roles (deployment_successful vs
// change_failure) from claiming each other's fields.
const antagonistPenalty = 100

// Candidate is one scored field for a role.
type Candidate struct {
	FieldID string
	Name    string
	Score   int
}

// DetectField resolves one role against the sample. The top candidate is
// returned only at or above the role threshold; otherwise the role stays
// undetected and the caller applies its documented fallback.
func DetectField(role Role, tickets []jira.Ticket, fields map[string]jira.FieldDefinition, cfg Config) (string, bool) {
	candidates := scoreRole(role, tickets, fields, cfg)
	if len(candidates) == 0 {
		return "", false
	}
	top := candidates[0]
	if top.Score < cfg.threshold(role) {
		return "", false
	}
	return top.FieldID, true
}

// scoreRole scans every custom field observation in the sample and returns
// the positive-scoring candidates ranked by total score.
func scoreRole(role Role, tickets []jira.Ticket, fields map[string]jira.FieldDefinition, cfg Config) []Candidate {
	spec := roleSpecs[role]

	type tally struct {
		valueScore int
		nonEmpty   int
		excluded   bool
	}
	tallies := make(map[string]*tally)

	for _, ticket := range tickets {
		for id, raw := range ticket.Fields {
			if !jira.IsCustomField(id) {
				continue
			}
			tl := tallies[id]
			if tl == nil {
				tl = &tally{}
				tallies[id] = tl
			}
			if tl.excluded || raw == nil {
				continue
			}
			// The denylist runs before scoring, not after.
			if spec.denylisted && looksInternal(raw) {
				tl.excluded = true
				continue
			}
			if !isEmptyValue(raw) {
				tl.nonEmpty++
			}
			if spec.valueCheck != nil && spec.valueCheck(raw) {
				tl.valueScore += spec.valueScore
			}
		}
	}

	sample := len(tickets)
	var candidates []Candidate
	for id, tl := range tallies {
		if tl.excluded {
			continue
		}

		score := tl.valueScore
		name := id
		if def, ok := fields[id]; ok {
			name = def.Name
			if matchesAnyKeyword(def.Name, spec.keywords) {
				score += spec.nameScore
			}
			if slices.Contains(spec.goodTypes, def.Type) {
				score += spec.goodTypeScore
			}
			if slices.Contains(spec.badTypes, def.Type) {
				score += spec.badTypeScore
			}
			if matchesAnyKeyword(def.Name, spec.antagonists) {
				score -= antagonistPenalty
			}
		}

		if score <= 0 {
			continue
		}

		// Coverage floor (sprint): a sparsely populated decoy is rejected
		// even when nothing else scores higher.
		if floor := cfg.minCoverage(role); floor > 0 {
			if sample == 0 || float64(tl.nonEmpty)/float64(sample) < floor {
				continue
			}
		}

		candidates = append(candidates, Candidate{FieldID: id, Name: name, Score: score})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.FieldID, b.FieldID)
	})

	return candidates
}

// DetectFields runs every role against the sample. Roles score independently
// over read-only data, so the passes fan out; results land in a fixed slice
// slot per role to keep the output deterministic.
func DetectFields(tickets []jira.Ticket, fields map[string]jira.FieldDefinition, cfg Config) map[Role]string {
	results := make([]string, len(AllRoles))

	var g errgroup.Group
	for i, role := range AllRoles {
		g.Go(func() error {
			if id, ok := DetectField(role, tickets, fields, cfg); ok {
				results[i] = id
			}
			return nil
		})
	}
	_ = g.Wait()

	detected := make(map[Role]string, len(AllRoles))
	for i, role := range AllRoles {
		if results[i] != "" {
			detected[role] = results[i]
			log.Debug().Str("role", string(role)).Str("field", results[i]).Msg("Bound role to custom field")
		}
	}
	return detected
}
