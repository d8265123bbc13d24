// Package cmd provides the command-line interface for Scribe with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --port, etc.) - highest priority
//	2. SCRIBE_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (SCRIBE_SERVER_PORT, etc.)
//	4. Configuration files (.scribe.yml) - lowest priority
//
// Environment Variables:
//
//	SCRIBE_CONFIG_FILE: Path to custom configuration file
//	SCRIBE_SERVER_PORT: Override server port
//	SCRIBE_SITE_TITLE: Override site title
//	And more following the SCRIBE_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "A Markdown documentation-site generator with an extensible theme",
	Long: `Scribe builds static documentation sites from Markdown content. Its
theme system is extensible: a theme can register global display components
that content files then reference by name.

Key Features:
  • Markdown content discovery with YAML front matter
  • Theme extension with globally registered components
  • Static site generation
  • Development server with live reload

Quick Start:
  scribe build                    Build the site into the output directory
  scribe serve                    Start the development server
  scribe list                     List pages and registered components`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .scribe.yml, can also use SCRIBE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. SCRIBE_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .scribe.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SCRIBE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".scribe")
	}

	// Enable automatic environment variable binding with SCRIBE_ prefix
	// Examples: SCRIBE_SERVER_PORT, SCRIBE_BUILD_OUTPUT_DIR
	viper.SetEnvPrefix("SCRIBE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// If the file doesn't exist or has errors, Viper will use defaults
	// without failing, so a fresh checkout still builds and serves.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
