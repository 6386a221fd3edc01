package defaults

import (
	"regexp"
	"strings"

	"scope-mcp/internal/scope"
)

// Role is a semantic need the detector tries to bind to a concrete field.
type Role string

const (
	RolePoints               Role = "points_field"
	RoleSprint               Role = "sprint_field"
	RoleDeploymentDate       Role = "deployment_date"
	RoleCodeCommitDate       Role = "code_commit_date"
	RoleCompletedDate        Role = "completed_date"
	RoleTargetEnvironment    Role = "target_environment"
	RoleChangeFailure        Role = "change_failure"
	RoleDeploymentSuccessful Role = "deployment_successful"
	RoleEffortCategory       Role = "effort_category"
	RoleSeverityLevel        Role = "severity_level"
	RoleIncidentDetected     Role = "incident_detected"
	RoleIncidentResolved     Role = "incident_resolved"
)

// AllRoles fixes the batch detection order. Explicit so results never depend
// on map iteration.
var AllRoles = []Role{
	RolePoints,
	RoleSprint,
	RoleDeploymentDate,
	RoleCodeCommitDate,
	RoleCompletedDate,
	RoleTargetEnvironment,
	RoleChangeFailure,
	RoleDeploymentSuccessful,
	RoleEffortCategory,
	RoleSeverityLevel,
	RoleIncidentDetected,
	RoleIncidentResolved,
}

// roleSpec is the scoring rule-set for one role. Name and type scores apply
// once per field; the value score accumulates per observation.
type roleSpec struct {
	keywords      []string
	nameScore     int
	goodTypes     []string
	goodTypeScore int
	badTypes      []string
	badTypeScore  int
	valueCheck    func(any) bool
	valueScore    int
	antagonists   []string
	denylisted    bool
	threshold     int
	minCoverage   float64
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

func plausiblePoints(raw any) bool {
	v, ok := scope.NumericValue(raw)
	return ok && v > 0 && v <= 100
}

func plausibleDate(raw any) bool {
	s, ok := stringValue(raw)
	return ok && isoDatePattern.MatchString(s)
}

func valueOneOf(options ...string) func(any) bool {
	return func(raw any) bool {
		s, ok := stringValue(raw)
		if !ok {
			return false
		}
		upper := strings.ToUpper(strings.TrimSpace(s))
		for _, opt := range options {
			if upper == opt {
				return true
			}
		}
		return false
	}
}

var (
	environmentValues = []string{"PROD", "PRODUCTION", "STAGING", "STAGE", "PREPROD", "PRE-PROD", "DEV", "DEVELOPMENT", "TEST", "QA", "UAT"}
	checkboxValues    = []string{"TRUE", "FALSE", "YES", "NO"}
	severityValues    = []string{"CRITICAL", "BLOCKER", "MAJOR", "MINOR", "TRIVIAL", "HIGH", "MEDIUM", "LOW", "S1", "S2", "S3", "S4", "SEV1", "SEV2", "SEV3", "SEV4"}
)

var roleSpecs = map[Role]roleSpec{
	RolePoints: {
		keywords:      []string{"story points", "storypoints", "story point estimate", "points", "estimate", "estimation", "effort", "size"},
		nameScore:     60,
		goodTypes:     []string{"number"},
		goodTypeScore: 30,
		badTypes:      []string{"datetime", "date", "option", "array"},
		badTypeScore:  -40,
		valueCheck:    plausiblePoints,
		valueScore:    15,
		threshold:     35,
	},
	RoleSprint: {
		keywords:      []string{"sprint", "iteration"},
		nameScore:     60,
		goodTypes:     []string{"array", "option", "string"},
		goodTypeScore: 20,
		badTypes:      []string{"number", "datetime", "date"},
		badTypeScore:  -20,
		threshold:     35,
		minCoverage:   0.10,
	},
	RoleDeploymentDate: {
		keywords:      []string{"deployment date", "deploy date", "deployed on", "release date", "released on", "deployment", "go live", "go-live"},
		nameScore:     50,
		goodTypes:     []string{"datetime", "date"},
		goodTypeScore: 30,
		badTypes:      []string{"number"},
		badTypeScore:  -30,
		valueCheck:    plausibleDate,
		valueScore:    20,
		antagonists:   []string{"failure", "failed", "fail", "successful", "success"},
		threshold:     40,
	},
	RoleCodeCommitDate: {
		keywords:      []string{"commit date", "code commit", "merge date", "merged on", "commit"},
		nameScore:     50,
		goodTypes:     []string{"datetime", "date"},
		goodTypeScore: 30,
		badTypes:      []string{"number"},
		badTypeScore:  -30,
		valueCheck:    plausibleDate,
		valueScore:    20,
		threshold:     40,
	},
	RoleCompletedDate: {
		keywords:      []string{"completed date", "completion date", "done date", "finished date", "closed date"},
		nameScore:     50,
		goodTypes:     []string{"datetime", "date"},
		goodTypeScore: 30,
		badTypes:      []string{"number"},
		badTypeScore:  -30,
		valueCheck:    plausibleDate,
		valueScore:    20,
		threshold:     40,
	},
	RoleTargetEnvironment: {
		keywords:      []string{"target environment", "environment", "env"},
		nameScore:     50,
		goodTypes:     []string{"option", "string", "array"},
		goodTypeScore: 20,
		badTypes:      []string{"number", "datetime", "date"},
		badTypeScore:  -20,
		valueCheck:    valueOneOf(environmentValues...),
		valueScore:    20,
		denylisted:    true,
		threshold:     35,
	},
	RoleChangeFailure: {
		keywords:      []string{"change failure", "failed change", "failed deployment", "caused incident", "failure", "rollback"},
		nameScore:     50,
		goodTypes:     []string{"option", "string"},
		goodTypeScore: 20,
		valueCheck:    valueOneOf(checkboxValues...),
		valueScore:    20,
		antagonists:   []string{"successful", "success"},
		denylisted:    true,
		threshold:     35,
	},
	RoleDeploymentSuccessful: {
		keywords:  []string{"deployment successful", "deploy successful", "successful deployment", "successful", "success"},
		nameScore: 50,
		// Checkbox fields report a string schema type on the platforms this
		// was observed against; treat string as the canonical representation.
		// Possibly an upstream platform version dependency.
		goodTypes:     []string{"string", "option"},
		goodTypeScore: 30,
		valueCheck:    valueOneOf(checkboxValues...),
		valueScore:    20,
		antagonists:   []string{"failure", "failed", "fail"},
		denylisted:    true,
		threshold:     35,
	},
	RoleEffortCategory: {
		keywords:      []string{"effort category", "work category", "work type", "activity type", "category of work"},
		nameScore:     50,
		goodTypes:     []string{"option", "string", "array"},
		goodTypeScore: 20,
		badTypes:      []string{"number", "datetime", "date"},
		badTypeScore:  -20,
		denylisted:    true,
		threshold:     30,
	},
	RoleSeverityLevel: {
		keywords:      []string{"severity level", "severity", "sev"},
		nameScore:     50,
		goodTypes:     []string{"option", "string"},
		goodTypeScore: 20,
		valueCheck:    valueOneOf(severityValues...),
		valueScore:    20,
		threshold:     30,
	},
	RoleIncidentDetected: {
		keywords:      []string{"incident detected", "detected at", "detection time", "outage start", "incident start"},
		nameScore:     50,
		goodTypes:     []string{"datetime", "date"},
		goodTypeScore: 30,
		badTypes:      []string{"number"},
		badTypeScore:  -30,
		valueCheck:    plausibleDate,
		valueScore:    20,
		threshold:     40,
	},
	RoleIncidentResolved: {
		keywords:      []string{"incident resolved", "resolved at", "restored at", "recovery time", "outage end", "incident end"},
		nameScore:     50,
		goodTypes:     []string{"datetime", "date"},
		goodTypeScore: 30,
		badTypes:      []string{"number"},
		badTypeScore:  -30,
		valueCheck:    plausibleDate,
		valueScore:    20,
		threshold:     40,
	},
}

// Config tunes detection per call. The zero value applies the built-in
// thresholds, the 10% sprint coverage floor and the standard waiting keywords.
type Config struct {
	Thresholds        map[Role]int
	SprintMinCoverage float64
	WaitingKeywords   []string
}

func (c Config) threshold(role Role) int {
	if t, ok := c.Thresholds[role]; ok {
		return t
	}
	return roleSpecs[role].threshold
}

func (c Config) minCoverage(role Role) float64 {
	floor := roleSpecs[role].minCoverage
	if floor > 0 && c.SprintMinCoverage > 0 {
		return c.SprintMinCoverage
	}
	return floor
}

var defaultWaitingKeywords = []string{"waiting", "blocked", "on hold", "hold", "pending", "paused"}

func (c Config) waitingKeywords() []string {
	if len(c.WaitingKeywords) > 0 {
		return c.WaitingKeywords
	}
	return defaultWaitingKeywords
}
