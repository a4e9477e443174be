package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultParquetPath, cfg.Dataset.ParquetPath)
	assert.Equal(t, DefaultCSVPath, cfg.Dataset.CSVPath)
	assert.Equal(t, DefaultPort, cfg.UI.Port)
	assert.True(t, cfg.UI.Watch)
	assert.Equal(t, DefaultPreviewLimit, cfg.UI.PreviewLimit)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoad_ConfigFile(t *testing.T) {
	content := `
dataset:
  parquet_path: /srv/data/restaurants.parquet
ui:
  port: 9090
  preview_limit: 25
output: json
`
	path := filepath.Join(t.TempDir(), "zest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "/srv/data/restaurants.parquet", cfg.Dataset.ParquetPath)
	assert.Equal(t, 9090, cfg.UI.Port)
	assert.Equal(t, 25, cfg.UI.PreviewLimit)
	assert.Equal(t, "json", cfg.Output)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultCSVPath, cfg.Dataset.CSVPath)
	assert.Equal(t, path, FileUsed())
}

func TestLoad_ConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [not a map"), 0600))

	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	content := "ui:\n  port: 9090\n"
	path := filepath.Join(t.TempDir(), "zest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Setenv("ZEST_UI__PORT", "7000")
	t.Setenv("ZEST_DATASET__CSV_PATH", "/tmp/alt.csv")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.UI.Port)
	assert.Equal(t, "/tmp/alt.csv", cfg.Dataset.CSVPath)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ZEST_UI__PORT", "7000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", DefaultPort, "")
	flags.String("parquet", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--port=6006", "--parquet=/tmp/x.parquet", "--verbose"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, 6006, cfg.UI.Port)
	assert.Equal(t, "/tmp/x.parquet", cfg.Dataset.ParquetPath)
	assert.True(t, cfg.Verbose)
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	t.Setenv("ZEST_UI__PORT", "7000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", DefaultPort, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.UI.Port, "a default-valued flag must not mask the env var")
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		assert.Equal(t, "custom.yaml", findConfigFile("custom.yaml"))
	})

	t.Run("no file present", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		t.Cleanup(func() { _ = os.Chdir(wd) })
		require.NoError(t, os.Chdir(t.TempDir()))

		assert.Empty(t, findConfigFile(""))
	})

	t.Run("finds zest.yaml in working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		t.Cleanup(func() { _ = os.Chdir(wd) })

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{}"), 0600))
		require.NoError(t, os.Chdir(dir))

		assert.Equal(t, ConfigFileName, findConfigFile(""))
	})
}
