package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"scope-mcp/internal/defaults"
	"scope-mcp/internal/scope"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath  string
	LogDir    string
	Detection DetectionConfig
}

// DetectionConfig is the optional tuning record for the inference core. All
// entries default to the built-in values when absent.
type DetectionConfig struct {
	Thresholds         map[string]int `yaml:"thresholds"`
	SprintMinCoverage  float64        `yaml:"sprint_min_coverage"`
	WaitingKeywords    []string       `yaml:"waiting_keywords"`
	CompletedStatuses  []string       `yaml:"completed_statuses"`
	InProgressStatuses []string       `yaml:"in_progress_statuses"`
}

// Load loads the configuration from .env files and environment variables,
// plus the optional YAML detection config referenced by DETECTION_CONFIG.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	cfg := &AppConfig{
		DataPath: dataPath,
		LogDir:   logDir,
	}

	if path := os.Getenv("DETECTION_CONFIG"); path != "" {
		detection, err := LoadDetectionConfig(path)
		if err != nil {
			return nil, fmt.Errorf("loading detection config %q: %w", path, err)
		}
		cfg.Detection = detection
	}

	return cfg, nil
}

// LoadDetectionConfig parses a YAML detection config file.
func LoadDetectionConfig(path string) (DetectionConfig, error) {
	var detection DetectionConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return detection, err
	}
	if err := yaml.Unmarshal(data, &detection); err != nil {
		return detection, err
	}
	return detection, nil
}

// ScoringConfig converts the tuning record into the detector's config.
func (d DetectionConfig) ScoringConfig() defaults.Config {
	cfg := defaults.Config{
		SprintMinCoverage: d.SprintMinCoverage,
		WaitingKeywords:   d.WaitingKeywords,
	}
	if len(d.Thresholds) > 0 {
		cfg.Thresholds = make(map[defaults.Role]int, len(d.Thresholds))
		for role, threshold := range d.Thresholds {
			cfg.Thresholds[defaults.Role(role)] = threshold
		}
	}
	return cfg
}

// StatusConfig converts the explicit status lists, if any, into the
// classifier's override record.
func (d DetectionConfig) StatusConfig() *scope.StatusConfig {
	if len(d.CompletedStatuses) == 0 && len(d.InProgressStatuses) == 0 {
		return nil
	}
	return &scope.StatusConfig{
		CompletedStatuses:  d.CompletedStatuses,
		InProgressStatuses: d.InProgressStatuses,
	}
}
