package defaults

// FlowType classifies the work intent of an issue type.
type FlowType string

const (
	FlowFeature FlowType = "Feature"
	FlowDefect  FlowType = "Defect"
	FlowRisk    FlowType = "Risk"
	FlowDebt    FlowType = "Technical Debt"
	FlowDevOps  FlowType = "DevOps"
)

type flowRule struct {
	flow     FlowType
	keywords []string
}

// flowRules is evaluated in order, first match wins. The ordering is the
// contract: DevOps vocabulary must win over Defect ("hotfix release"), and
// Risk vocabulary over Technical Debt ("dependency upgrade").
var flowRules = []flowRule{
	{FlowDevOps, []string{
		"devops", "deployment", "deploy", "release", "rollout", "ops",
		"cd", "pipeline", "promote to production", "promotion",
	}},
	{FlowDefect, []string{
		"bug", "defect", "incident", "outage", "hotfix", "fix",
		"failure", "problem",
	}},
	{FlowRisk, []string{
		"spike", "investigation", "research", "proof of concept", "poc",
		"prototype", "experiment", "migration", "upgrade",
		"architecture decision", "adr",
	}},
	{FlowDebt, []string{
		"refactor", "refactoring", "cleanup", "clean up", "optimization",
		"optimisation", "security", "infrastructure", "dependency",
		"documentation", "docs", "task", "chore", "improvement",
		"maintenance", "debt",
	}},
	{FlowFeature, []string{
		"story", "epic", "feature", "enhancement", "initiative", "request",
	}},
}

// Categorize maps one issue-type name to a flow type. Single-word keywords
// match on token boundaries ("Subtasking" never hits "task"); phrases match
// as substrings. No match defaults to Feature.
func Categorize(name string) FlowType {
	for _, rule := range flowRules {
		if matchesAnyKeyword(name, rule.keywords) {
			return rule.flow
		}
	}
	return FlowFeature
}

// FlowTypeHints are authoritative pre-detected assignments. A hinted name is
// consumed before pattern matching runs.
type FlowTypeHints struct {
	Feature []string
	Defect  []string
	Risk    []string
	Debt    []string
	DevOps  []string
}

// FlowTypes is the mutually exclusive partition of issue-type names. Every
// name lands in exactly one of Feature/Defect/Risk/Debt; DevOps is an
// orthogonal tag whose members also join Debt.
type FlowTypes struct {
	Feature []string `json:"feature_task_types"`
	Defect  []string `json:"defect_task_types"`
	Risk    []string `json:"risk_task_types"`
	Debt    []string `json:"debt_task_types"`
	DevOps  []string `json:"devops_task_types"`
}

// CategorizeAll partitions all issue-type names, hints first, patterns for
// the rest. Consumed names are skipped on later passes so the partition has
// no duplicates.
func CategorizeAll(names []string, hints FlowTypeHints) FlowTypes {
	var result FlowTypes
	consumed := make(map[string]bool)

	take := func(name string, flow FlowType) {
		if consumed[name] {
			return
		}
		consumed[name] = true
		switch flow {
		case FlowDevOps:
			// The only sanctioned dual membership: DevOps work is deployment
			// risk for DORA and maintenance overhead for flow metrics.
			result.DevOps = append(result.DevOps, name)
			result.Debt = append(result.Debt, name)
		case FlowDefect:
			result.Defect = append(result.Defect, name)
		case FlowRisk:
			result.Risk = append(result.Risk, name)
		case FlowDebt:
			result.Debt = append(result.Debt, name)
		default:
			result.Feature = append(result.Feature, name)
		}
	}

	// Hints run in rule priority order.
	for _, name := range hints.DevOps {
		take(name, FlowDevOps)
	}
	for _, name := range hints.Defect {
		take(name, FlowDefect)
	}
	for _, name := range hints.Risk {
		take(name, FlowRisk)
	}
	for _, name := range hints.Debt {
		take(name, FlowDebt)
	}
	for _, name := range hints.Feature {
		take(name, FlowFeature)
	}

	for _, name := range names {
		take(name, Categorize(name))
	}

	return result
}
