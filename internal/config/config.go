// Package config provides configuration management for Scribe sites using
// Viper for flexible configuration loading from files, environment variables,
// and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the SCRIBE_ prefix. It manages site metadata, content
// scanning paths, build output settings, and the development server.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Build   BuildConfig   `yaml:"build"`
	Server  ServerConfig  `yaml:"server"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// SiteConfig holds site-wide metadata exposed to theme layouts.
type SiteConfig struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	BaseURL     string    `yaml:"base_url"`
	Nav         []NavItem `yaml:"nav"`
}

// NavItem is a single entry in the site navigation.
type NavItem struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

// ContentConfig controls content discovery.
type ContentConfig struct {
	Roots           []string `yaml:"roots"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

// BuildConfig controls static output generation.
type BuildConfig struct {
	OutputDir string `yaml:"output_dir"`
	Clean     bool   `yaml:"clean"`
}

// ServerConfig controls the development server.
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	Open           bool     `yaml:"open"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ThemeConfig selects and parameterizes the theme.
type ThemeConfig struct {
	Name string `yaml:"name"`
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Apply defaults for content roots only if not explicitly set
	if !viper.IsSet("content.roots") && len(config.Content.Roots) == 0 {
		config.Content.Roots = []string{"./content"}
	}

	// Handle roots set via viper (workaround for viper slice handling)
	if viper.IsSet("content.roots") && len(config.Content.Roots) == 0 {
		roots := viper.GetStringSlice("content.roots")
		if len(roots) > 0 {
			config.Content.Roots = roots
		}
	}
	if viper.IsSet("content.exclude_patterns") && len(config.Content.ExcludePatterns) == 0 {
		patterns := viper.GetStringSlice("content.exclude_patterns")
		if len(patterns) > 0 {
			config.Content.ExcludePatterns = patterns
		}
	}

	// Handle underscored keys set via viper (mapstructure matches field
	// names, not yaml tags)
	if viper.IsSet("site.base_url") {
		config.Site.BaseURL = viper.GetString("site.base_url")
	}
	if viper.IsSet("build.output_dir") {
		config.Build.OutputDir = viper.GetString("build.output_dir")
	}
	if viper.IsSet("server.allowed_origins") {
		config.Server.AllowedOrigins = viper.GetStringSlice("server.allowed_origins")
	}

	if config.Site.Title == "" {
		config.Site.Title = "Scribe Site"
	}
	if config.Site.BaseURL == "" {
		config.Site.BaseURL = "/"
	}

	if config.Build.OutputDir == "" {
		config.Build.OutputDir = "dist"
	}
	if !viper.IsSet("build.clean") {
		config.Build.Clean = true
	}

	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Server.Port == 0 && !viper.IsSet("server.port") {
		config.Server.Port = 8080
	}
	if viper.IsSet("server.port") {
		config.Server.Port = viper.GetInt("server.port")
	}

	if config.Theme.Name == "" {
		config.Theme.Name = "default"
	}
	if len(config.Content.ExcludePatterns) == 0 {
		config.Content.ExcludePatterns = []string{"README.md", "*.draft.md"}
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := validateBuildConfig(&config.Build); err != nil {
		return fmt.Errorf("build config: %w", err)
	}
	if err := validateContentConfig(&config.Content); err != nil {
		return fmt.Errorf("content config: %w", err)
	}
	return nil
}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// Allow 0 for system-assigned ports in testing
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	if config.Host != "" {
		dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
		for _, char := range dangerousChars {
			if strings.Contains(config.Host, char) {
				return fmt.Errorf("host contains dangerous character: %s", char)
			}
		}
	}

	return nil
}

// validateBuildConfig validates build configuration values
func validateBuildConfig(config *BuildConfig) error {
	if config.OutputDir != "" {
		cleanPath := filepath.Clean(config.OutputDir)

		if strings.Contains(cleanPath, "..") {
			return fmt.Errorf("output_dir contains path traversal: %s", config.OutputDir)
		}
		if filepath.IsAbs(cleanPath) {
			return fmt.Errorf("output_dir should be relative path: %s", config.OutputDir)
		}
	}

	return nil
}

// validateContentConfig validates content configuration values
func validateContentConfig(config *ContentConfig) error {
	for _, root := range config.Roots {
		if err := validatePath(root); err != nil {
			return fmt.Errorf("invalid content root '%s': %w", root, err)
		}
	}
	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
