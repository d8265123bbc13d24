package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Scribe Site", cfg.Site.Title)
	assert.Equal(t, "/", cfg.Site.BaseURL)
	assert.Equal(t, []string{"./content"}, cfg.Content.Roots)
	assert.Equal(t, "dist", cfg.Build.OutputDir)
	assert.True(t, cfg.Build.Clean)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.NotEmpty(t, cfg.Content.ExcludePatterns)
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("site.title", "My Book Notes")
	viper.Set("content.roots", []string{"./docs"})
	viper.Set("build.output_dir", "public")
	viper.Set("server.port", 3000)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "My Book Notes", cfg.Site.Title)
	assert.Equal(t, []string{"./docs"}, cfg.Content.Roots)
	assert.Equal(t, "public", cfg.Build.OutputDir)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("server.port", 99999)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestLoad_OutputDirTraversal(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("build.output_dir", "../outside")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "traversal")
}

func TestLoad_AbsoluteOutputDir(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("build.output_dir", "/tmp/out")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DangerousHost(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("server.host", "localhost;rm -rf /")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangerous character")
}

func TestLoad_InvalidContentRoot(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("content.roots", []string{"../../etc"})

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content root")
}
