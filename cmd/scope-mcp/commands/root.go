package commands

import (
	"scope-mcp/internal/config"
	"scope-mcp/internal/logging"
	"scope-mcp/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "scope-mcp",
	Short: "Scope-MCP is a Jira configuration-inference MCP Server",
	Long: `A specialized MCP Server that infers flow configuration (status lists, flow-type mappings,
field-role mappings) and scope metrics from Jira metadata and ticket samples.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration first: logging needs the log directory.
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		logging.Init(verbose, cfg.LogDir)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Scope-MCP starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		server := mcp.NewServer(cfg)
		if err := server.Run(cmd.Context()); err != nil {
			log.Fatal().Err(err).Msg("MCP server terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
