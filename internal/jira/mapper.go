package jira

import (
	"time"
)

// MapTicket transforms a raw ticket DTO into a domain Ticket. Every lookup is
// best-effort: a missing or oddly-shaped entry leaves the zero value rather
// than failing the whole sample.
func MapTicket(item TicketDTO) Ticket {
	ticket := Ticket{
		Key:    item.Key,
		Fields: make(map[string]any),
	}

	for i := 0; i < len(ticket.Key); i++ {
		if ticket.Key[i] == '-' {
			ticket.ProjectKey = ticket.Key[:i]
			break
		}
	}

	if status, ok := item.Fields["status"].(map[string]any); ok {
		ticket.Status, _ = status["name"].(string)
		if cat, ok := status["statusCategory"].(map[string]any); ok {
			ticket.StatusCategory, _ = cat["key"].(string)
		}
	}

	if issueType, ok := item.Fields["issuetype"].(map[string]any); ok {
		ticket.IssueType, _ = issueType["name"].(string)
	}

	if created, ok := item.Fields["created"].(string); ok {
		if t, err := parseFlexibleTime(created); err == nil {
			ticket.Created = t
		}
	}

	if resolved, ok := item.Fields["resolutiondate"].(string); ok && resolved != "" {
		if t, err := parseFlexibleTime(resolved); err == nil {
			ticket.ResolutionDate = &t
		}
	}

	for id, value := range item.Fields {
		if IsCustomField(id) {
			ticket.Fields[id] = value
		}
	}

	return ticket
}

// MapTickets maps a full sample, preserving order.
func MapTickets(items []TicketDTO) []Ticket {
	tickets := make([]Ticket, 0, len(items))
	for _, item := range items {
		tickets = append(tickets, MapTicket(item))
	}
	return tickets
}

// parseFlexibleTime accepts the strict Jira format plus the RFC3339 and
// date-only shapes that appear in exported samples.
func parseFlexibleTime(s string) (time.Time, error) {
	if t, err := ParseTime(s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
