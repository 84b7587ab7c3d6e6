package config

import (
	"errors"
	"fmt"

	"subweave/internal/subtitles"
	"subweave/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGrouping(); err != nil {
		return err
	}
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if _, err := textutil.ParseForm(c.Text.Normalization); err != nil {
		return fmt.Errorf("text.normalization: %w", err)
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateOperations()
}

func (c *Config) validateGrouping() error {
	if c.Grouping.LinesPerGroup < 1 {
		return fmt.Errorf("grouping.lines_per_group must be >= 1, got %d", c.Grouping.LinesPerGroup)
	}
	if c.Grouping.MinWords < 0 {
		return fmt.Errorf("grouping.min_words must be >= 0, got %d", c.Grouping.MinWords)
	}
	return nil
}

func (c *Config) validateAlignment() error {
	a := c.Alignment
	if a.Threshold <= 0 || a.Threshold > 1 {
		return fmt.Errorf("alignment.threshold must be in (0, 1], got %g", a.Threshold)
	}
	if _, err := textutil.ParseScorer(a.Scorer); err != nil {
		return fmt.Errorf("alignment.scorer: %w", err)
	}
	if _, err := subtitles.ParseFormat(a.Format); err != nil {
		return fmt.Errorf("alignment.format: %w", err)
	}
	if (a.MarkerOpen == "") != (a.MarkerClose == "") {
		return errors.New("alignment.marker_open and alignment.marker_close must be set together")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}

func (c *Config) validateOperations() error {
	for i, op := range c.Operations {
		switch op.Kind {
		case OperationGroup, OperationJSON3:
		case OperationAlign:
			if op.Words == "" {
				return fmt.Errorf("operations[%d]: align requires words", i)
			}
			if _, err := subtitles.ParseFormat(op.Format); err != nil {
				return fmt.Errorf("operations[%d].format: %w", i, err)
			}
		case "":
			return fmt.Errorf("operations[%d].kind must be set", i)
		default:
			return fmt.Errorf("operations[%d].kind %q is not one of group, align, json3", i, op.Kind)
		}
		if op.Input == "" {
			return fmt.Errorf("operations[%d]: input is required", i)
		}
		if op.Output == "" {
			return fmt.Errorf("operations[%d]: output is required", i)
		}
	}
	return nil
}
