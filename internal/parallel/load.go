package parallel

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/linalg/internal/tensor"
)

// EnvConfig names the environment variable holding the path of the dispatch
// configuration file read by Default.
const EnvConfig = "LINALG_CONFIG"

var (
	defaultOnce sync.Once
	defaultCfg  Config
)

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file. Keys absent from
// the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("parallel: read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("parallel: unsupported config format %q: %w", ext, tensor.ErrInvalidArgument)
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("parallel: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Default returns the process-wide configuration. It is initialised once, on
// first use, from the file named by $LINALG_CONFIG or else
// <UserConfigDir>/linalg/config.toml; when neither can be loaded the
// defaults apply and a diagnostic is logged. The result is read-only.
func Default() Config {
	defaultOnce.Do(func() {
		defaultCfg = loadDefault()
	})
	return defaultCfg
}

func loadDefault() Config {
	path := os.Getenv(EnvConfig)
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			slog.Info("linalg: using default dispatch configuration", "reason", err)
			return DefaultConfig()
		}
		path = filepath.Join(dir, "linalg", "config.toml")
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		slog.Info("linalg: using default dispatch configuration", "path", path, "reason", err)
		return DefaultConfig()
	}
	slog.Debug("linalg: loaded dispatch configuration", "path", path, "workers", cfg.NumWorkers)
	return cfg
}
