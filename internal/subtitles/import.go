package subtitles

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"

	"subweave/internal/services"
	"subweave/internal/timecode"
)

// foreignReaders decode formats other than SRT. SRT always goes through
// ParseSRT so its time codes follow this repository's codec.
var foreignReaders = map[string]func(io.Reader) (*astisub.Subtitles, error){
	".vtt":  astisub.ReadFromWebVTT,
	".ass":  astisub.ReadFromSSA,
	".ssa":  astisub.ReadFromSSA,
	".ttml": astisub.ReadFromTTML,
}

// ReadTrack loads a subtitle track, choosing the decoder by file extension.
// Unknown extensions are read as SRT.
func ReadTrack(path string) (Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json3" {
		return ReadJSON3(path)
	}
	reader, ok := foreignReaders[ext]
	if !ok {
		return ReadSRT(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ioError("open track", path, err)
	}
	defer file.Close()

	subs, err := reader(file)
	if err != nil {
		return nil, services.Wrap(services.ErrParse, "subtitles", "decode "+strings.TrimPrefix(ext, "."), path, err)
	}
	return fromAstisub(subs), nil
}

func fromAstisub(subs *astisub.Subtitles) Track {
	if subs == nil {
		return nil
	}
	track := make(Track, 0, len(subs.Items))
	for _, item := range subs.Items {
		if item == nil {
			continue
		}
		lines := make([]string, 0, len(item.Lines))
		for _, line := range item.Lines {
			parts := make([]string, 0, len(line.Items))
			for _, li := range line.Items {
				parts = append(parts, li.Text)
			}
			text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
			if text != "" {
				lines = append(lines, text)
			}
		}
		start := timecode.FromDuration(item.StartAt)
		end := timecode.FromDuration(item.EndAt)
		if end < start {
			end = start
		}
		track = append(track, Cue{
			Index: len(track) + 1,
			Start: start,
			End:   end,
			Text:  strings.Join(lines, "\n"),
		})
	}
	return track
}
