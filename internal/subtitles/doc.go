// Package subtitles parses, groups, and aligns timed subtitle tracks.
//
// A Track is an ordered list of Cues with millisecond timing. The package
// reads tracks from SRT block files (and, through go-astisub, from WebVTT,
// SubStation and TTML files), groups consecutive cues into paragraph blocks,
// and aligns a word-level track against a coarse caption track to produce
// per-word highlight records for karaoke-style playback. Every operation
// builds a new track; input cues are never mutated.
package subtitles
