// Package config provides configuration management for the zest CLI and
// dashboard server. Values are layered: defaults, then zest.yaml, then
// ZEST_* environment variables, then CLI flags.
package config

// DatasetConfig names the source files. The Parquet file is the primary
// columnar source; the CSV is the fallback for local setups.
type DatasetConfig struct {
	ParquetPath string `koanf:"parquet_path"`
	CSVPath     string `koanf:"csv_path"`
}

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Port          int    `koanf:"port"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
	PreviewLimit  int    `koanf:"preview_limit"`
}

// Config holds all configuration options.
type Config struct {
	Dataset DatasetConfig `koanf:"dataset"`
	UI      UIConfig      `koanf:"ui"`
	Verbose bool          `koanf:"verbose"`
	Output  string        `koanf:"output"`
}

// Default configuration values.
const (
	DefaultParquetPath  = "data/restaurants.parquet"
	DefaultCSVPath      = "data/restaurants.csv"
	DefaultPort         = 8765
	DefaultPreviewLimit = 100
	DefaultOutput       = "table"
)
