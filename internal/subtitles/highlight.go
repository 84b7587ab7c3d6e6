package subtitles

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"subweave/internal/fileutil"
	"subweave/internal/services"
	"subweave/internal/timecode"
)

// Highlight artifact formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatASS  = "ass"
)

// ASSMarker colours the highlighted word yellow and resets the style after it.
var ASSMarker = Marker{Open: `{\c&H00FFFF&}`, Close: `{\r}`}

// ParseFormat validates an artifact format name. Empty selects JSON.
func ParseFormat(name string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(name)); format {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatASS:
		return format, nil
	case "yml":
		return FormatYAML, nil
	case "ssa":
		return FormatASS, nil
	default:
		return "", services.Wrap(services.ErrValidation, "subtitles", "artifact format",
			fmt.Sprintf("unsupported format %q", name), nil)
	}
}

// MarkerForFormat returns the highlight marker suited to an artifact format.
func MarkerForFormat(format string) Marker {
	if format == FormatASS {
		return ASSMarker
	}
	return DefaultMarker
}

// EncodeHighlights serializes records in the given format. Non-ASCII text and
// markup are written verbatim.
func EncodeHighlights(w io.Writer, records []HighlightRecord, format string) error {
	if records == nil {
		records = []HighlightRecord{}
	}
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case FormatASS:
		return encodeASS(w, records)
	default:
		return fmt.Errorf("unsupported highlight format %q", format)
	}
}

const assHeader = `[Script Info]
ScriptType: v4.00+
WrapStyle: 0
ScaledBorderAndShadow: yes

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,48,&H00FFFFFF,&H000000FF,&H00000000,&H64000000,0,0,0,0,100,100,0,0,1,2,1,2,20,20,40,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
`

func encodeASS(w io.Writer, records []HighlightRecord) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(assHeader)
	for _, r := range records {
		text := strings.ReplaceAll(r.Text, "\n", `\N`)
		fmt.Fprintf(bw, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			timecode.FormatCompact(r.Start), timecode.FormatCompact(r.End), text)
	}
	return bw.Flush()
}

// WriteHighlights writes the artifact to path atomically.
func WriteHighlights(path string, records []HighlightRecord, format string) error {
	var buf bytes.Buffer
	if err := EncodeHighlights(&buf, records, format); err != nil {
		return services.Wrap(services.ErrValidation, "subtitles", "encode highlights", format, err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return ioError("write highlights", path, err)
	}
	return nil
}

// DecodeHighlights reads a JSON or YAML artifact back into records.
func DecodeHighlights(r io.Reader, format string) ([]HighlightRecord, error) {
	var records []HighlightRecord
	switch format {
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, services.Wrap(services.ErrParse, "subtitles", "decode highlights", "json", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil {
			return nil, services.Wrap(services.ErrParse, "subtitles", "decode highlights", "yaml", err)
		}
	default:
		return nil, fmt.Errorf("unsupported highlight format %q", format)
	}
	return records, nil
}
