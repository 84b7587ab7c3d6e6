package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"subweave/internal/fileutil"
	"subweave/internal/services"
)

//go:embed sample_config.toml
var sampleConfig string

// Operation kinds accepted in [[operations]].
const (
	OperationGroup = "group"
	OperationAlign = "align"
	OperationJSON3 = "json3"
)

// Grouping controls the cue grouping merger.
type Grouping struct {
	LinesPerGroup int `toml:"lines_per_group"`
	MinWords      int `toml:"min_words"`
}

// Alignment controls the word alignment engine and its artifact.
type Alignment struct {
	AudiobookTrackPath string  `toml:"audiobook_track_path"`
	WordTrackPath      string  `toml:"word_track_path"`
	OutputPath         string  `toml:"output_path"`
	Format             string  `toml:"format"`
	Scorer             string  `toml:"scorer"`
	Threshold          float64 `toml:"threshold"`
	// Positional marks repeated words in spoken order instead of always the
	// first occurrence.
	Positional  bool   `toml:"positional"`
	MarkerOpen  string `toml:"marker_open"`
	MarkerClose string `toml:"marker_close"`
}

// Text controls normalization applied before comparison and word counting.
type Text struct {
	Normalization string `toml:"normalization"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// Dir, when set, receives a per-run log file in addition to stderr.
	Dir string `toml:"dir"`
}

// Operation is one step of a batch run. Group and json3 steps read Input and
// write Output; align steps read Input as the coarse track and Words as the
// word-level track.
type Operation struct {
	Kind   string `toml:"kind"`
	Input  string `toml:"input"`
	Words  string `toml:"words"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for subweave.
//
// Configuration sections:
//   - Grouping: lines per group and the space-join word threshold
//   - Alignment: track paths, artifact format, scorer, and highlight marker
//   - Text: Unicode normalization form
//   - Logging: log format, level, and optional log directory
//   - Operations: ordered steps executed by `subweave run`
type Config struct {
	Grouping   Grouping    `toml:"grouping"`
	Alignment  Alignment   `toml:"alignment"`
	Text       Text        `toml:"text"`
	Logging    Logging     `toml:"logging"`
	Operations []Operation `toml:"operations"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, configError("resolve", err)
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, configError("open", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, configError("parse", describeDecodeError(err))
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, configError("normalize", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, configError("validate", err)
	}

	return &cfg, resolvedPath, exists, nil
}

func configError(operation string, err error) error {
	return services.Wrap(services.ErrConfiguration, "config", operation, "", err)
}

// describeDecodeError adds the key path to strict-mode failures, which
// otherwise only report a position.
func describeDecodeError(err error) error {
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		keys := make([]string, 0, len(strict.Errors))
		for _, e := range strict.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return err
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Plan returns the operations a batch run executes. When no [[operations]]
// are configured but the [alignment] track paths are, a single align step
// built from them is returned.
func (c *Config) Plan() []Operation {
	if len(c.Operations) > 0 {
		return c.Operations
	}
	a := c.Alignment
	if a.AudiobookTrackPath == "" || a.WordTrackPath == "" || a.OutputPath == "" {
		return nil
	}
	return []Operation{{
		Kind:   OperationAlign,
		Input:  a.AudiobookTrackPath,
		Words:  a.WordTrackPath,
		Output: a.OutputPath,
		Format: a.Format,
	}}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := fileutil.WriteFileAtomic(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
