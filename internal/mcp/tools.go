package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"scope-mcp/internal/defaults"
	"scope-mcp/internal/jira"
	"scope-mcp/internal/scope"
)

// GenerateDefaultsArgs carries the raw documents described in the external
// interface contract: the metadata document plus the sampled tickets.
type GenerateDefaultsArgs struct {
	Metadata         jira.Metadata    `json:"metadata"`
	Tickets          []jira.TicketDTO `json:"tickets"`
	FilterExpression string           `json:"filter_expression,omitempty"`
}

// ComputeScopeArgs carries the ticket sample and the points field selection.
// An empty points_field means "no points field configured".
type ComputeScopeArgs struct {
	Tickets            []jira.TicketDTO `json:"tickets"`
	PointsField        string           `json:"points_field"`
	CompletedStatuses  []string         `json:"completed_statuses,omitempty"`
	InProgressStatuses []string         `json:"in_progress_statuses,omitempty"`
}

// CategorizeArgs carries issue-type names for flow-type classification.
type CategorizeArgs struct {
	IssueTypes []string `json:"issue_types"`
}

func (s *Server) registerTools(server *mcp.Server) error {
	generateSchema, err := jsonschema.For[GenerateDefaultsArgs](nil)
	if err != nil {
		return fmt.Errorf("building generate_defaults schema: %w", err)
	}
	scopeSchema, err := jsonschema.For[ComputeScopeArgs](nil)
	if err != nil {
		return fmt.Errorf("building compute_scope schema: %w", err)
	}
	categorizeSchema, err := jsonschema.For[CategorizeArgs](nil)
	if err != nil {
		return fmt.Errorf("building categorize_issue_types schema: %w", err)
	}

	mcp.AddTool(server, &mcp.Tool{
		Name: "generate_defaults",
		Description: "Infer a complete default configuration (status lists, flow-type mappings, field-role mappings) " +
			"from project metadata and a ticket sample of up to ~100 items. Detection only adds enhancements on top " +
			"of documented fallbacks; undetected roles keep their standard field or changelog expression.",
		InputSchema: generateSchema,
	}, s.handleGenerateDefaults)

	mcp.AddTool(server, &mcp.Tool{
		Name: "compute_scope",
		Description: "Aggregate completed/remaining work in items and points over a ticket sample, including the " +
			"extrapolated total of remaining points for partially-estimated backlogs. Pass an empty points_field " +
			"when no estimation field is configured.",
		InputSchema: scopeSchema,
	}, s.handleComputeScope)

	mcp.AddTool(server, &mcp.Tool{
		Name: "categorize_issue_types",
		Description: "Partition issue-type names into Feature/Defect/Risk/Technical Debt flow types with an " +
			"orthogonal DevOps tag, via priority-ordered keyword matching.",
		InputSchema: categorizeSchema,
	}, s.handleCategorize)

	return nil
}

func (s *Server) handleGenerateDefaults(ctx context.Context, req *mcp.CallToolRequest, args GenerateDefaultsArgs) (*mcp.CallToolResult, any, error) {
	tickets := jira.MapTickets(args.Tickets)
	result := defaults.Generate(args.Metadata, args.FilterExpression, tickets, s.cfg.Detection.ScoringConfig())

	res, err := textResult(result)
	return res, nil, err
}

func (s *Server) handleComputeScope(ctx context.Context, req *mcp.CallToolRequest, args ComputeScopeArgs) (*mcp.CallToolResult, any, error) {
	statusCfg := s.cfg.Detection.StatusConfig()
	if len(args.CompletedStatuses) > 0 || len(args.InProgressStatuses) > 0 {
		statusCfg = &scope.StatusConfig{
			CompletedStatuses:  args.CompletedStatuses,
			InProgressStatuses: args.InProgressStatuses,
		}
	}

	tickets := jira.MapTickets(args.Tickets)
	result := scope.Compute(tickets, args.PointsField, statusCfg)

	res, err := textResult(result)
	return res, nil, err
}

func (s *Server) handleCategorize(ctx context.Context, req *mcp.CallToolRequest, args CategorizeArgs) (*mcp.CallToolResult, any, error) {
	result := defaults.CategorizeAll(args.IssueTypes, defaults.FlowTypeHints{})

	res, err := textResult(result)
	return res, nil, err
}
