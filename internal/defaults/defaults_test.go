package defaults

import (
	"slices"
	"testing"

	"scope-mcp/internal/jira"
)

func testMetadata() jira.Metadata {
	return jira.Metadata{
		Statuses: []jira.StatusDTO{
			{Name: "Backlog", StatusCategory: jira.StatusCategory{Key: "new"}},
			{Name: "Blocked", StatusCategory: jira.StatusCategory{Key: "indeterminate"}},
			{Name: "In Progress", StatusCategory: jira.StatusCategory{Key: "indeterminate"}},
			{Name: "In Review", StatusCategory: jira.StatusCategory{Key: "indeterminate"}},
			{Name: "Done", StatusCategory: jira.StatusCategory{Key: "done"}},
		},
		IssueTypes: []jira.IssueTypeDTO{
			{Name: "Story"}, {Name: "Bug"}, {Name: "Task"}, {Name: "Deployment"},
		},
		Projects: []jira.ProjectDTO{
			{Key: "KAFKA", Name: "Kafka"}, {Key: "SPARK", Name: "Spark"},
		},
		Fields: []jira.FieldDTO{
			{ID: "customfield_100", Name: "Story Points", Schema: jira.FieldSchema{Type: "number"}},
			{ID: "customfield_400", Name: "Target Environment", Schema: jira.FieldSchema{Type: "option"}},
		},
	}
}

func TestGenerateStatusLists(t *testing.T) {
	sd := Generate(testMetadata(), "", nil, Config{})

	if !slices.Equal(sd.FlowEndStatuses, []string{"Done"}) {
		t.Errorf("Unexpected flow end statuses: %v", sd.FlowEndStatuses)
	}
	if !slices.Equal(sd.ActiveStatuses, []string{"Blocked", "In Progress", "In Review"}) {
		t.Errorf("Unexpected active statuses: %v", sd.ActiveStatuses)
	}
	// Blocked is active but excluded from WIP.
	if !slices.Equal(sd.WIPStatuses, []string{"In Progress", "In Review"}) {
		t.Errorf("Unexpected WIP statuses: %v", sd.WIPStatuses)
	}
	if !slices.Equal(sd.FlowStartStatuses, []string{"In Progress"}) {
		t.Errorf("Unexpected flow start: %v", sd.FlowStartStatuses)
	}
}

func TestGenerateAutoDetectedStatusLists(t *testing.T) {
	meta := testMetadata()
	meta.AutoDetected.Statuses = jira.AutoDetectedStatuses{
		Completed: []string{"Shipped"},
		Active:    []string{"Coding", "Waiting for QA"},
	}

	sd := Generate(meta, "", nil, Config{})

	if !slices.Equal(sd.FlowEndStatuses, []string{"Shipped"}) {
		t.Errorf("Expected auto-detected end statuses, got %v", sd.FlowEndStatuses)
	}
	// No explicit WIP list: derived from active minus waiting names.
	if !slices.Equal(sd.WIPStatuses, []string{"Coding"}) {
		t.Errorf("Expected derived WIP, got %v", sd.WIPStatuses)
	}
}

func TestGenerateFlowStartPreference(t *testing.T) {
	cases := []struct {
		wip      []string
		expected string
	}{
		{[]string{"Coding", "In Development", "In Progress"}, "In Progress"},
		{[]string{"Coding", "In Development"}, "In Development"},
		{[]string{"Coding", "Developing"}, "Developing"},
		{[]string{"Coding", "Testing"}, "Coding"},
		{nil, ""},
	}

	for _, c := range cases {
		if got := selectFlowStart(c.wip); got != c.expected {
			t.Errorf("selectFlowStart(%v) = %q, expected %q", c.wip, got, c.expected)
		}
	}
}

func TestGenerateDoraDefaults(t *testing.T) {
	sd := Generate(testMetadata(), "", nil, Config{})

	if sd.Dora["code_commit_date"] != "status:In Progress.DateTime" {
		t.Errorf("Unexpected commit date mapping: %s", sd.Dora["code_commit_date"])
	}
	if sd.Dora["deployment_date"] != "status:Done.DateTime" {
		t.Errorf("Unexpected deployment date mapping: %s", sd.Dora["deployment_date"])
	}
	if sd.Dora["incident_detected"] != "created" || sd.Dora["incident_resolved"] != "resolutiondate" {
		t.Errorf("Unexpected incident mappings: %v", sd.Dora)
	}
	if sd.Dora["severity_level"] != "priority" {
		t.Errorf("Unexpected severity mapping: %s", sd.Dora["severity_level"])
	}
	// Roles without a default only appear when detected.
	if _, ok := sd.Dora["target_environment"]; ok {
		t.Error("target_environment must be absent without a detection")
	}
}

func TestGenerateDetectionOverridesDefaults(t *testing.T) {
	meta := testMetadata()
	tickets := []jira.Ticket{
		{
			Key: "KAFKA-1", Status: "Done", StatusCategory: "done",
			Fields: map[string]any{
				"customfield_100": 5.0,
				"customfield_400": map[string]any{"value": "PROD"},
			},
		},
		{
			Key: "KAFKA-2", Status: "Backlog", StatusCategory: "new",
			Fields: map[string]any{
				"customfield_100": 3.0,
				"customfield_400": map[string]any{"value": "STAGING"},
			},
		},
	}

	sd := Generate(meta, "", tickets, Config{})

	if sd.General["points_field"] != "customfield_100" {
		t.Errorf("Expected detected points field, got %v", sd.General)
	}
	if sd.Dora["target_environment"] != "customfield_400" {
		t.Errorf("Expected detected environment field, got %v", sd.Dora)
	}
	// Standard fallbacks survive detection.
	if sd.General["created_date"] != "created" || sd.Flow["status"] != "status" {
		t.Error("Detection must never remove a working fallback")
	}

	options := sd.FieldOptions["target_environment"]
	if !slices.Equal(options, []string{"PROD", "STAGING"}) {
		t.Errorf("Expected observed environment options, got %v", options)
	}
}

func TestGenerateIssueTypePartition(t *testing.T) {
	sd := Generate(testMetadata(), "", nil, Config{})

	if !slices.Contains(sd.Feature, "Story") {
		t.Errorf("Expected Story under Feature, got %v", sd.Feature)
	}
	if !slices.Contains(sd.Defect, "Bug") {
		t.Errorf("Expected Bug under Defect, got %v", sd.Defect)
	}
	if !slices.Contains(sd.Debt, "Task") {
		t.Errorf("Expected Task under Technical Debt, got %v", sd.Debt)
	}
	if !slices.Contains(sd.DevOps, "Deployment") || !slices.Contains(sd.Debt, "Deployment") {
		t.Errorf("Expected Deployment dual membership, got %+v", sd.FlowTypes)
	}
}

func TestGenerateProjectKeys(t *testing.T) {
	sd := Generate(testMetadata(), "project in (KAFKA, SPARK) AND type = Bug", nil, Config{})

	if !slices.Equal(sd.ProjectKeys, []string{"KAFKA", "SPARK"}) {
		t.Errorf("Unexpected project keys: %v", sd.ProjectKeys)
	}
}

func TestGenerateEmptyMetadata(t *testing.T) {
	sd := Generate(jira.Metadata{}, "", nil, Config{})

	if len(sd.FlowStartStatuses) != 0 {
		t.Errorf("Expected no flow start without statuses, got %v", sd.FlowStartStatuses)
	}
	// Without status names the DORA dates fall back to standard fields.
	if sd.Dora["code_commit_date"] != "created" || sd.Dora["deployment_date"] != "resolutiondate" {
		t.Errorf("Unexpected fallbacks: %v", sd.Dora)
	}
}
