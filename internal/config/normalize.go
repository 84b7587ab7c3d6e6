package config

import (
	"fmt"
	"strings"

	"subweave/internal/subtitles"
)

func (c *Config) normalize() error {
	if err := c.normalizeAlignment(); err != nil {
		return err
	}
	if err := c.normalizeOperations(); err != nil {
		return err
	}
	c.Text.Normalization = strings.ToLower(strings.TrimSpace(c.Text.Normalization))
	if c.Text.Normalization == "" {
		c.Text.Normalization = defaultNormalization
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeAlignment() error {
	a := &c.Alignment
	var err error
	for _, field := range []*string{&a.AudiobookTrackPath, &a.WordTrackPath, &a.OutputPath} {
		if *field, err = expandPath(strings.TrimSpace(*field)); err != nil {
			return err
		}
	}
	a.Format = canonicalFormat(a.Format)
	if a.Format == "" {
		a.Format = defaultFormat
	}
	a.Scorer = strings.ToLower(strings.TrimSpace(a.Scorer))
	if a.Scorer == "" {
		a.Scorer = defaultScorer
	}
	return nil
}

func (c *Config) normalizeOperations() error {
	for i := range c.Operations {
		op := &c.Operations[i]
		op.Kind = strings.ToLower(strings.TrimSpace(op.Kind))
		var err error
		for _, field := range []*string{&op.Input, &op.Words, &op.Output} {
			if *field, err = expandPath(strings.TrimSpace(*field)); err != nil {
				return fmt.Errorf("operations[%d]: %w", i, err)
			}
		}
		if op.Kind == OperationAlign {
			op.Format = canonicalFormat(op.Format)
			if op.Format == "" {
				op.Format = c.Alignment.Format
			}
		}
	}
	return nil
}

// canonicalFormat resolves format aliases and leaves unknown names for
// Validate to report.
func canonicalFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return ""
	}
	if resolved, err := subtitles.ParseFormat(format); err == nil {
		return resolved
	}
	return format
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	dir, err := expandPath(strings.TrimSpace(c.Logging.Dir))
	if err != nil {
		return err
	}
	c.Logging.Dir = dir
	return nil
}
