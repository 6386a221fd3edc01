package jira

import (
	"strings"
	"time"
)

// Metadata is the schema document supplied by the fetching layer. It describes
// everything known about the project before any ticket is inspected.
type Metadata struct {
	Statuses     []StatusDTO    `json:"statuses"`
	IssueTypes   []IssueTypeDTO `json:"issue_types"`
	Projects     []ProjectDTO   `json:"projects"`
	Fields       []FieldDTO     `json:"fields"`
	AutoDetected AutoDetected   `json:"auto_detected"`
}

// StatusDTO represents one workflow status and its Jira category.
type StatusDTO struct {
	Name           string         `json:"name"`
	StatusCategory StatusCategory `json:"statusCategory"`
}

// StatusCategory carries the category key: "done", "indeterminate" or "new".
type StatusCategory struct {
	Key string `json:"key"`
}

// IssueTypeDTO represents one issue type by name.
type IssueTypeDTO struct {
	Name string `json:"name"`
}

// ProjectDTO represents one known project.
type ProjectDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// FieldDTO describes one field definition from the Jira field metadata.
type FieldDTO struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Schema FieldSchema `json:"schema"`
}

// FieldSchema carries the declared type tag (number, datetime, date, option,
// string, array).
type FieldSchema struct {
	Type string `json:"type"`
}

// AutoDetected holds authoritative hints produced by upstream auto-detection.
// Empty lists mean "nothing detected"; the inference falls back to patterns.
type AutoDetected struct {
	Statuses              AutoDetectedStatuses   `json:"statuses"`
	IssueTypes            AutoDetectedIssueTypes `json:"issue_types"`
	ProductionIdentifiers []string               `json:"production_identifiers"`
}

// AutoDetectedStatuses are pre-classified status name lists.
type AutoDetectedStatuses struct {
	Completed []string `json:"completed,omitempty"`
	Active    []string `json:"active,omitempty"`
	WIP       []string `json:"wip,omitempty"`
}

// AutoDetectedIssueTypes are pre-classified issue type name lists.
type AutoDetectedIssueTypes struct {
	Feature []string `json:"feature,omitempty"`
	Defect  []string `json:"defect,omitempty"`
	Risk    []string `json:"risk,omitempty"`
	Debt    []string `json:"debt,omitempty"`
	DevOps  []string `json:"devops,omitempty"`
}

// TicketDTO is one sampled ticket as delivered by the fetching layer. Fields
// is left open-ended: custom field payloads are arbitrarily shaped JSON.
type TicketDTO struct {
	Key    string         `json:"key"`
	Fields map[string]any `json:"fields"`
}

// FieldDefinition is the domain view of one field's metadata.
type FieldDefinition struct {
	ID   string
	Name string
	Type string
}

// FieldDefinitions indexes the declared fields by identifier.
func (m Metadata) FieldDefinitions() map[string]FieldDefinition {
	defs := make(map[string]FieldDefinition, len(m.Fields))
	for _, f := range m.Fields {
		defs[f.ID] = FieldDefinition{ID: f.ID, Name: f.Name, Type: f.Schema.Type}
	}
	return defs
}

// ProjectKeySet returns the known project keys, upper-cased for comparison.
func (m Metadata) ProjectKeySet() map[string]bool {
	keys := make(map[string]bool, len(m.Projects))
	for _, p := range m.Projects {
		keys[strings.ToUpper(p.Key)] = true
	}
	return keys
}

// Ticket is the immutable domain view of one sampled ticket.
type Ticket struct {
	Key            string
	ProjectKey     string
	Status         string
	StatusCategory string
	IssueType      string
	Created        time.Time
	ResolutionDate *time.Time
	Fields         map[string]any
}

// IsCustomField reports whether a field identifier marks a non-standard field.
func IsCustomField(id string) bool {
	return strings.HasPrefix(id, "customfield_")
}

// ParseTime parses the strict Jira time format.
func ParseTime(s string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05.000-0700", s)
}
