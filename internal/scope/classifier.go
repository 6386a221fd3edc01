package scope

import "strings"

// Classification buckets a ticket by where it sits in the delivery flow.
type Classification string

const (
	Completed  Classification = "completed"
	InProgress Classification = "in_progress"
	Todo       Classification = "todo"
)

// StatusConfig carries caller-supplied classification overrides. Explicit
// name lists take precedence over the per-name override map, which in turn
// takes precedence over the default category rule.
type StatusConfig struct {
	CompletedStatuses  []string
	InProgressStatuses []string
	Overrides          map[string]Classification
}

// hasLists reports whether explicit name lists are configured.
func (c *StatusConfig) hasLists() bool {
	return c != nil && (len(c.CompletedStatuses) > 0 || len(c.InProgressStatuses) > 0)
}

// Classify maps a status name and category key to a Classification. Total
// function: unknown categories and absent configuration fall through to Todo.
func Classify(name, category string, cfg *StatusConfig) Classification {
	if cfg.hasLists() {
		if containsFold(cfg.CompletedStatuses, name) {
			return Completed
		}
		if containsFold(cfg.InProgressStatuses, name) {
			return InProgress
		}
		return Todo
	}

	if cfg != nil && len(cfg.Overrides) > 0 {
		for status, class := range cfg.Overrides {
			if strings.EqualFold(status, name) {
				return class
			}
		}
	}

	switch category {
	case "done":
		return Completed
	case "indeterminate":
		return InProgress
	default:
		return Todo
	}
}

func containsFold(list []string, name string) bool {
	for _, s := range list {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
