package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"subweave/internal/subtitles"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const statusLabelWidth = 18

var statusStyles = map[statusKind]struct{ label, color string }{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

// renderStatusLine formats "Label:   [KIND] message", padded so a block of
// lines keeps the status column aligned.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style, ok := statusStyles[kind]
	if !ok {
		style = statusStyles[statusInfo]
	}
	line := fmt.Sprintf("%-*s [%s]", statusLabelWidth, label+":", style.label)
	if message != "" {
		line += " " + message
	}
	if colorize {
		return style.color + line + ansiReset
	}
	return line
}

// alignStatusLines reports how the words of an alignment run were used.
// Fallbacks are informational; words or captions left out of the artifact
// are warnings.
func alignStatusLines(stats subtitles.AlignStats, colorize bool) []string {
	matchedKind := statusOK
	if stats.FineCues > 0 && stats.Matched == 0 {
		matchedKind = statusError
	}
	lines := []string{
		renderStatusLine("Highlighted words", matchedKind,
			fmt.Sprintf("%d of %d word cues", stats.Matched, stats.FineCues), colorize),
	}
	if stats.Fallback > 0 {
		lines = append(lines, renderStatusLine("Plain captions", statusInfo,
			fmt.Sprintf("%d word cues had no close match", stats.Fallback), colorize))
	}
	if stats.DroppedFine > 0 {
		lines = append(lines, renderStatusLine("Dropped words", statusWarn,
			fmt.Sprintf("%d word cues start outside every caption", stats.DroppedFine), colorize))
	}
	if stats.SkippedCoarse > 0 {
		lines = append(lines, renderStatusLine("Skipped captions", statusWarn,
			fmt.Sprintf("%d captions contain no word cues", stats.SkippedCoarse), colorize))
	}
	return lines
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
