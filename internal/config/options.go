package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; history DB is data_dir/paknet.db"},

		{Key: "history.limit", Default: 10, Comment: "Maximum number of blueprints kept in local history"},

		{Key: "api.provider", Default: "openai", Comment: "Generation backend: openai or mock (offline fabrication)"},
		{Key: "api.key", Default: "", Comment: "API credential; prefer the PAKNET_API_KEY environment variable"},
		{Key: "api.base_url", Default: "", Comment: "Override endpoint for OpenAI-compatible services; empty uses the provider default"},
		{Key: "api.model", Default: "gpt-4o-mini", Comment: "Model used for blueprint generation"},

		{Key: "gen.temperature", Default: 0.7, Comment: "Sampling temperature for the generation call"},
		{Key: "gen.top_p", Default: 0.95, Comment: "Nucleus-sampling top-p for the generation call"},
		{Key: "gen.reasoning_effort", Default: "low", Comment: "Fixed reasoning budget: minimal, low, medium, or high"},

		{Key: "export.dir", Default: "", Comment: "Directory for exported blueprints; empty uses the current directory"},
	}
}

// CheckConfigValidity reports every invalid setting at once.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	if strings.TrimSpace(v.GetString("data_dir")) == "" {
		problems = append(problems, "data_dir is required")
	}
	if v.GetInt("history.limit") <= 0 {
		problems = append(problems, "history.limit must be greater than 0")
	}
	switch v.GetString("api.provider") {
	case "openai", "mock":
	default:
		problems = append(problems, fmt.Sprintf("api.provider %q is not supported (openai|mock)", v.GetString("api.provider")))
	}
	if strings.TrimSpace(v.GetString("api.model")) == "" {
		problems = append(problems, "api.model is required")
	}
	if t := v.GetFloat64("gen.temperature"); t < 0 || t > 2 {
		problems = append(problems, "gen.temperature must be within [0, 2]")
	}
	if p := v.GetFloat64("gen.top_p"); p <= 0 || p > 1 {
		problems = append(problems, "gen.top_p must be within (0, 1]")
	}
	switch v.GetString("gen.reasoning_effort") {
	case "", "minimal", "low", "medium", "high":
	default:
		problems = append(problems, fmt.Sprintf("gen.reasoning_effort %q is not supported (minimal|low|medium|high)", v.GetString("gen.reasoning_effort")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
