package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jsondive/colorgen"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const (
	defaultConfigFile = ".colorgen.yaml"
	defaultSourceDir  = "packages/library/src/styles"
	defaultStylesheet = "packages/library/src/styles/colors.css"
	defaultLintConfig = "packages/shared-config/src/sharedESLintConfig.js"
)

var defaultIncludes = []string{"theme.css"}

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set).
	// Without a koanf instance posflag skips unchanged flags, so flag
	// defaults never shadow the config file; defaults come from build*.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (COLORGEN_* prefix)
	if err := k.Load(env.Provider("COLORGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key: a double underscore
// separates sections and a single underscore stands for a dash.
//
//	COLORGEN_EXTRACT__SOURCE      -> extract.source
//	COLORGEN_CHECK__PRINT_LINES   -> check.print-lines
//	COLORGEN_DRY_RUN              -> dry-run
func envKey(s string) string {
	parts := strings.Split(strings.ToLower(strings.TrimPrefix(s, "COLORGEN_")), "__")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(part, "_", "-")
	}
	return strings.Join(parts, ".")
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig(cmd *cobra.Command) colorgen.Config {
	config := colorgen.Config{
		Namespace:      getStringWithFallback("namespace", "namespace", "json-dive"),
		MappingFile:    getStringWithFallback("mapping", "mapping", "color-mapping.yml"),
		SourceDir:      getStringWithFallback("source", "extract.source", defaultSourceDir),
		Includes:       getStringsWithFallback("include", "extract.include", defaultIncludes),
		StylesheetFile: getStringWithFallback("stylesheet", "generate.stylesheet", defaultStylesheet),
		LintConfigFile: getStringWithFallback("lint-config", "patch.file", defaultLintConfig),
		Region:         getStringWithFallback("region", "patch.region", "Colors"),
		Indent:         getStringWithFallback("indent", "patch.indent", "\t"),
		Strict:         getBoolWithFallback("strict", "extract.strict", false),
		DryRun:         getBoolWithFallback("dry-run", "dry-run", false),
		Verbose:        getBoolWithFallback("verbose", "verbose", false),
	}
	if cmd != nil {
		config.Stdout = cmd.OutOrStdout()
	}
	return config
}

// buildReporterConfig constructs the check reporter settings from koanf state.
func buildReporterConfig() colorgen.ReporterConfig {
	return colorgen.ReporterConfig{
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
