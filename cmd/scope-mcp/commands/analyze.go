package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scope-mcp/internal/defaults"
	"scope-mcp/internal/jira"
	"scope-mcp/internal/scope"
)

var (
	metadataPath string
	ticketsPath  string
	filterExpr   string
	pointsField  string
)

// analysisReport bundles the inferred configuration with the scope metrics
// computed from the same ticket sample.
type analysisReport struct {
	Defaults defaults.SmartDefaults `json:"defaults"`
	Scope    scope.Result           `json:"scope"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the inference core offline against exported JSON documents",
	Long: `Reads a metadata document and a ticket sample from JSON files, infers the default
configuration, computes scope metrics, and prints the combined report to stdout.
Useful for inspecting detection results without an MCP client attached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var meta jira.Metadata
		if err := readJSONFile(metadataPath, &meta); err != nil {
			return fmt.Errorf("reading metadata: %w", err)
		}

		var dtos []jira.TicketDTO
		if ticketsPath != "" {
			if err := readJSONFile(ticketsPath, &dtos); err != nil {
				return fmt.Errorf("reading tickets: %w", err)
			}
		}
		tickets := jira.MapTickets(dtos)

		// 1. Infer the default configuration from metadata and sample.
		sd := defaults.Generate(meta, filterExpr, tickets, cfg.Detection.ScoringConfig())

		// 2. Compute scope metrics with the detected points field unless the
		// caller pinned one explicitly.
		field := pointsField
		if field == "" {
			field = sd.General["points_field"]
		}
		result := scope.Compute(tickets, field, cfg.Detection.StatusConfig())

		out, err := json.MarshalIndent(analysisReport{Defaults: sd, Scope: result}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func readJSONFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func init() {
	analyzeCmd.Flags().StringVar(&metadataPath, "metadata", "", "path to the metadata JSON document (required)")
	analyzeCmd.Flags().StringVar(&ticketsPath, "tickets", "", "path to the ticket sample JSON document")
	analyzeCmd.Flags().StringVar(&filterExpr, "filter", "", "JQL filter expression used to derive project scope")
	analyzeCmd.Flags().StringVar(&pointsField, "points-field", "", "override the detected points field")
	analyzeCmd.MarkFlagRequired("metadata")

	rootCmd.AddCommand(analyzeCmd)
}
