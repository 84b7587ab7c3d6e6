package config

import (
	"subweave/internal/subtitles"
	"subweave/internal/textutil"
)

// Normalizer returns the configured text normalizer. Call after Validate.
func (c *Config) Normalizer() textutil.Normalizer {
	n, err := textutil.ParseForm(c.Text.Normalization)
	if err != nil {
		return textutil.DefaultNormalizer
	}
	return n
}

// GroupOptions returns the grouping merger settings.
func (c *Config) GroupOptions() subtitles.GroupOptions {
	return subtitles.GroupOptions{
		LinesPerGroup: c.Grouping.LinesPerGroup,
		MinWords:      c.Grouping.MinWords,
		Normalizer:    c.Normalizer(),
	}
}

// AlignOptions returns the aligner settings for an artifact format. An
// explicit marker pair overrides the format's default marker.
func (c *Config) AlignOptions(format string) (subtitles.AlignOptions, error) {
	scorer, err := textutil.ParseScorer(c.Alignment.Scorer)
	if err != nil {
		return subtitles.AlignOptions{}, configError("alignment", err)
	}
	marker := subtitles.MarkerForFormat(format)
	if c.Alignment.MarkerOpen != "" {
		marker = subtitles.Marker{Open: c.Alignment.MarkerOpen, Close: c.Alignment.MarkerClose}
	}
	return subtitles.AlignOptions{
		Matcher: textutil.NewMatcher(
			textutil.WithScorer(scorer),
			textutil.WithThreshold(c.Alignment.Threshold),
		),
		Normalizer: c.Normalizer(),
		Marker:     marker,
		Positional: c.Alignment.Positional,
	}, nil
}
