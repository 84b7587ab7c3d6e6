package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute

	// maxHours keeps hours*msPerHour plus the sub-hour part inside int64.
	maxHours = (math.MaxInt64 - msPerHour) / msPerHour
)

// ErrInvalid is matched by every error returned from Parse.
var ErrInvalid = errors.New("invalid time code")

// ParseError describes a time code that matches neither accepted shape.
type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse time code %q: %s", e.Value, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalid }

// Parse converts `HH:MM:SS,mmm` or `HH:MM:SS.ff` into milliseconds.
//
// The value is split on ':' and ','. Four fields carry milliseconds in the
// last field. Three fields carry `SS[.fraction]` in the last field, with the
// fraction read as a decimal fraction of a second.
func Parse(value string) (int64, error) {
	raw := value
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &ParseError{Value: raw, Reason: "empty"}
	}
	fields := strings.FieldsFunc(value, func(r rune) bool { return r == ':' || r == ',' })
	if strings.Count(value, ":")+strings.Count(value, ",")+1 != len(fields) {
		return 0, &ParseError{Value: raw, Reason: "empty field"}
	}

	var hours, minutes, seconds, millis int64
	var err error
	switch len(fields) {
	case 4:
		if hours, err = parseField(fields[0], -1); err != nil {
			return 0, &ParseError{Value: raw, Reason: "hours: " + err.Error()}
		}
		if minutes, err = parseField(fields[1], 2); err != nil {
			return 0, &ParseError{Value: raw, Reason: "minutes: " + err.Error()}
		}
		if seconds, err = parseField(fields[2], 2); err != nil {
			return 0, &ParseError{Value: raw, Reason: "seconds: " + err.Error()}
		}
		if millis, err = parseField(fields[3], 3); err != nil {
			return 0, &ParseError{Value: raw, Reason: "milliseconds: " + err.Error()}
		}
	case 3:
		if hours, err = parseField(fields[0], -1); err != nil {
			return 0, &ParseError{Value: raw, Reason: "hours: " + err.Error()}
		}
		if minutes, err = parseField(fields[1], 2); err != nil {
			return 0, &ParseError{Value: raw, Reason: "minutes: " + err.Error()}
		}
		secText, fracText, hasFrac := strings.Cut(fields[2], ".")
		if seconds, err = parseField(secText, 2); err != nil {
			return 0, &ParseError{Value: raw, Reason: "seconds: " + err.Error()}
		}
		if hasFrac {
			if millis, err = parseFraction(fracText); err != nil {
				return 0, &ParseError{Value: raw, Reason: "fraction: " + err.Error()}
			}
		}
	default:
		return 0, &ParseError{Value: raw, Reason: fmt.Sprintf("expected 3 or 4 fields, got %d", len(fields))}
	}

	if hours > maxHours {
		return 0, &ParseError{Value: raw, Reason: "hours out of range"}
	}
	if minutes >= 60 {
		return 0, &ParseError{Value: raw, Reason: "minutes out of range"}
	}
	if seconds >= 60 {
		return 0, &ParseError{Value: raw, Reason: "seconds out of range"}
	}
	return hours*msPerHour + minutes*msPerMinute + seconds*msPerSecond + millis, nil
}

// parseField reads an unsigned decimal field. maxDigits < 0 means unbounded.
func parseField(text string, maxDigits int) (int64, error) {
	if text == "" {
		return 0, errors.New("missing")
	}
	if maxDigits > 0 && len(text) > maxDigits {
		return 0, fmt.Errorf("too many digits in %q", text)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not numeric: %q", text)
		}
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// parseFraction scales a 1-3 digit decimal fraction of a second to
// milliseconds: "5" is 500, "25" is 250, "250" is 250.
func parseFraction(text string) (int64, error) {
	n, err := parseField(text, 3)
	if err != nil {
		return 0, err
	}
	for i := len(text); i < 3; i++ {
		n *= 10
	}
	return n, nil
}

// FormatSRT renders milliseconds as `HH:MM:SS,mmm`.
func FormatSRT(ms int64) string {
	h, m, s, rem := split(ms)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, rem)
}

// FormatCompact renders milliseconds as `H:MM:SS.cc`. The millisecond part is
// truncated to centiseconds.
func FormatCompact(ms int64) string {
	h, m, s, rem := split(ms)
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, rem/10)
}

func split(ms int64) (hours, minutes, seconds, millis int64) {
	if ms < 0 {
		ms = 0
	}
	hours = ms / msPerHour
	minutes = (ms % msPerHour) / msPerMinute
	seconds = (ms % msPerMinute) / msPerSecond
	millis = ms % msPerSecond
	return hours, minutes, seconds, millis
}

// ToDuration converts milliseconds to a time.Duration.
func ToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// FromDuration converts a time.Duration to whole milliseconds, truncating
// sub-millisecond precision.
func FromDuration(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return int64(d / time.Millisecond)
}
