package subtitles

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"subweave/internal/fileutil"
	"subweave/internal/timecode"
)

const utf8BOM = "\ufeff"

// srtBlock is a run of non-blank lines and the source line it starts on.
type srtBlock struct {
	line  int
	lines []string
}

// ParseSRT reads SRT block content. Empty input yields an empty track. A
// malformed block aborts parsing with a *ParseError.
func ParseSRT(r io.Reader) (Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError("read srt", "", err)
	}
	return parseSRTBytes(data)
}

func parseSRTBytes(data []byte) (Track, error) {
	content := strings.TrimPrefix(string(data), utf8BOM)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	blocks := splitSRTBlocks(content)
	track := make(Track, 0, len(blocks))
	for i, block := range blocks {
		cue, err := parseSRTBlock(block)
		if err != nil {
			err.Block = i + 1
			return nil, err
		}
		track = append(track, cue)
	}
	return track, nil
}

func splitSRTBlocks(content string) []srtBlock {
	var blocks []srtBlock
	var current *srtBlock
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
			continue
		}
		if current == nil {
			current = &srtBlock{line: i + 1}
		}
		current.lines = append(current.lines, line)
	}
	if current != nil {
		blocks = append(blocks, *current)
	}
	return blocks
}

func parseSRTBlock(block srtBlock) (Cue, *ParseError) {
	fail := func(reason string, err error) (Cue, *ParseError) {
		return Cue{}, &ParseError{Line: block.line, Reason: reason, Err: err}
	}

	index, err := strconv.Atoi(strings.TrimSpace(block.lines[0]))
	if err != nil {
		return fail(fmt.Sprintf("non-numeric index %q", block.lines[0]), nil)
	}
	if len(block.lines) < 2 {
		return fail("missing timing line", nil)
	}

	timing := block.lines[1]
	startText, endText, found := strings.Cut(timing, "-->")
	if !found {
		return fail(fmt.Sprintf("missing arrow separator in %q", timing), nil)
	}
	// Some files append positioning after the end time code.
	endFields := strings.Fields(endText)
	if len(endFields) == 0 {
		return fail("missing end time code", nil)
	}

	start, err := timecode.Parse(startText)
	if err != nil {
		return fail("start time", err)
	}
	end, err := timecode.Parse(endFields[0])
	if err != nil {
		return fail("end time", err)
	}
	if end < start {
		return fail(fmt.Sprintf("end %s precedes start %s", timecode.FormatSRT(end), timecode.FormatSRT(start)), nil)
	}

	return Cue{
		Index: index,
		Start: start,
		End:   end,
		Text:  strings.Join(block.lines[2:], "\n"),
	}, nil
}

// ComposeSRT renders the track as SRT blocks, numbered sequentially from 1.
func ComposeSRT(track Track) []byte {
	var buf bytes.Buffer
	for i, cue := range track {
		buf.WriteString(strconv.Itoa(i + 1))
		buf.WriteByte('\n')
		buf.WriteString(timecode.FormatSRT(cue.Start))
		buf.WriteString(" --> ")
		buf.WriteString(timecode.FormatSRT(cue.End))
		buf.WriteByte('\n')
		buf.WriteString(strings.TrimSpace(cue.Text))
		buf.WriteString("\n\n")
	}
	return buf.Bytes()
}

// ReadSRT loads an SRT file.
func ReadSRT(path string) (Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("read srt", path, err)
	}
	track, err := parseSRTBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return track, nil
}

// WriteSRT writes the track to path atomically.
func WriteSRT(path string, track Track) error {
	if err := fileutil.WriteFileAtomic(path, ComposeSRT(track), 0o644); err != nil {
		return ioError("write srt", path, err)
	}
	return nil
}
