package config

import (
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/signalframe/signalframe/pkg/errors"
)

// Load reads a run configuration from a YAML or JSON file, selected by
// extension. ${VAR_NAME} references are substituted from the environment
// before parsing. The result is validated before it is returned.
func Load(filePath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filePath) //nolint:gosec // G304: path comes from the CLI flag
	if err != nil {
		return cfg, errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file")
	}

	content := substituteEnvVars(string(data))

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		if err := gojson.Unmarshal([]byte(content), &cfg); err != nil {
			return cfg, errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse JSON config")
		}
	default:
		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			return cfg, errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML config")
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes a configuration to a YAML file.
func Save(filePath string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to marshal config")
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to write config file")
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
