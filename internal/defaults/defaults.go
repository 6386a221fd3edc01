package defaults

import (
	"fmt"
	"slices"
	"strings"

	"scope-mcp/internal/jira"
	"scope-mcp/internal/scope"
)

// SmartDefaults is the synthesized configuration for a project: status
// lists, flow-type partition, extracted project keys and the three role to
// field mapping groups.
type SmartDefaults struct {
	FlowEndStatuses   []string `json:"flow_end_statuses"`
	ActiveStatuses    []string `json:"active_statuses"`
	FlowStartStatuses []string `json:"flow_start_statuses"`
	WIPStatuses       []string `json:"wip_statuses"`

	FlowTypes

	ProjectKeys []string `json:"project_keys"`

	Dora    map[string]string `json:"dora"`
	General map[string]string `json:"general"`
	Flow    map[string]string `json:"flow"`

	FieldOptions map[string][]string `json:"field_options,omitempty"`
}

// Generate synthesizes the full default configuration from metadata, an
// optional filter expression and the ticket sample. Detection only adds
// enhancements on top of the documented fallbacks, never removes one.
func Generate(meta jira.Metadata, filterExpr string, tickets []jira.Ticket, cfg Config) SmartDefaults {
	sd := SmartDefaults{}

	sd.FlowEndStatuses, sd.ActiveStatuses, sd.WIPStatuses = deriveStatusLists(meta, cfg)
	if start := selectFlowStart(sd.WIPStatuses); start != "" {
		sd.FlowStartStatuses = []string{start}
	}

	names := make([]string, 0, len(meta.IssueTypes))
	for _, it := range meta.IssueTypes {
		names = append(names, it.Name)
	}
	auto := meta.AutoDetected.IssueTypes
	sd.FlowTypes = CategorizeAll(names, FlowTypeHints{
		Feature: auto.Feature,
		Defect:  auto.Defect,
		Risk:    auto.Risk,
		Debt:    auto.Debt,
		DevOps:  auto.DevOps,
	})

	sd.ProjectKeys = ExtractProjectKeys(filterExpr, meta.ProjectKeySet())

	detected := DetectFields(tickets, meta.FieldDefinitions(), cfg)

	commitRef := "created"
	if len(sd.FlowStartStatuses) > 0 {
		commitRef = changelogExpr(sd.FlowStartStatuses[0])
	}
	deployRef := "resolutiondate"
	if len(sd.FlowEndStatuses) > 0 {
		deployRef = changelogExpr(sd.FlowEndStatuses[0])
	}

	sd.Dora = map[string]string{
		string(RoleCodeCommitDate):   commitRef,
		string(RoleDeploymentDate):   deployRef,
		string(RoleIncidentDetected): "created",
		string(RoleIncidentResolved): "resolutiondate",
		string(RoleSeverityLevel):    "priority",
	}
	applyDetections(sd.Dora, detected,
		RoleCodeCommitDate, RoleDeploymentDate, RoleIncidentDetected,
		RoleIncidentResolved, RoleSeverityLevel, RoleTargetEnvironment,
		RoleChangeFailure, RoleDeploymentSuccessful)

	sd.General = map[string]string{
		"created_date":  "created",
		"updated_date":  "updated",
		"resolved_date": "resolutiondate",
	}
	applyDetections(sd.General, detected, RolePoints, RoleSprint, RoleEffortCategory)

	sd.Flow = map[string]string{
		"issue_type":              "issuetype",
		"status":                  "status",
		string(RoleCompletedDate): "resolutiondate",
	}
	applyDetections(sd.Flow, detected, RoleCompletedDate)

	sd.FieldOptions = collectFieldOptions(tickets, detected)

	return sd
}

// applyDetections overlays detected field identifiers for the given roles.
// Roles without a default entry only appear when detected.
func applyDetections(mapping map[string]string, detected map[Role]string, roles ...Role) {
	for _, role := range roles {
		if id, ok := detected[role]; ok {
			mapping[string(role)] = id
		}
	}
}

// changelogExpr builds the expression for a value derived from the historical
// timestamp of a status transition.
func changelogExpr(status string) string {
	return fmt.Sprintf("status:%s.DateTime", status)
}

// deriveStatusLists prefers the auto-detected lists and falls back to the
// default category rule, excluding waiting/blocked names from the WIP subset.
func deriveStatusLists(meta jira.Metadata, cfg Config) (end, active, wip []string) {
	auto := meta.AutoDetected.Statuses
	if len(auto.Completed) > 0 || len(auto.Active) > 0 || len(auto.WIP) > 0 {
		end = auto.Completed
		active = auto.Active
		wip = auto.WIP
		if len(wip) == 0 {
			wip = excludeWaiting(active, cfg.waitingKeywords())
		}
		return end, active, wip
	}

	for _, status := range meta.Statuses {
		switch scope.Classify(status.Name, status.StatusCategory.Key, nil) {
		case scope.Completed:
			end = append(end, status.Name)
		case scope.InProgress:
			active = append(active, status.Name)
		}
	}
	wip = excludeWaiting(active, cfg.waitingKeywords())
	return end, active, wip
}

func excludeWaiting(statuses, waitingKeywords []string) []string {
	var wip []string
	for _, name := range statuses {
		lower := strings.ToLower(name)
		waiting := false
		for _, kw := range waitingKeywords {
			if strings.Contains(lower, kw) {
				waiting = true
				break
			}
		}
		if !waiting {
			wip = append(wip, name)
		}
	}
	return wip
}

// selectFlowStart picks the status marking the start of flow among the WIP
// statuses: "in progress" wins over "in development", which wins over any
// generic progress/developing name, which wins over the first WIP status.
func selectFlowStart(wip []string) string {
	if len(wip) == 0 {
		return ""
	}
	for _, name := range wip {
		if strings.EqualFold(name, "in progress") {
			return name
		}
	}
	for _, name := range wip {
		if strings.EqualFold(name, "in development") {
			return name
		}
	}
	for _, name := range wip {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "progress") || strings.Contains(lower, "develop") {
			return name
		}
	}
	return wip[0]
}

// collectFieldOptions extracts the distinct observed values for detected
// categorical roles, for use as selectable options downstream.
func collectFieldOptions(tickets []jira.Ticket, detected map[Role]string) map[string][]string {
	options := make(map[string][]string)

	for _, role := range []Role{RoleEffortCategory, RoleTargetEnvironment} {
		fieldID, ok := detected[role]
		if !ok {
			continue
		}

		seen := make(map[string]bool)
		var values []string
		for _, ticket := range tickets {
			raw, ok := ticket.Fields[fieldID]
			if !ok || raw == nil || looksInternal(raw) {
				continue
			}
			value, ok := stringValue(raw)
			if !ok || seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}
		if len(values) > 0 {
			slices.Sort(values)
			options[string(role)] = values
		}
	}

	if len(options) == 0 {
		return nil
	}
	return options
}
