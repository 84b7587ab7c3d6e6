// Package timecode converts subtitle time codes to and from integer
// milliseconds.
//
// Two textual shapes are accepted on input: the SRT form `HH:MM:SS,mmm` and
// the dotted form `HH:MM:SS.ff`, where the dotted fraction is a decimal
// fraction of a second. Two shapes are produced on output: the SRT form and a
// compact centisecond form (`H:MM:SS.cc`) used by SubStation consumers. The
// compact form truncates to hundredths, so a millisecond value does not
// survive a trip through it unchanged.
package timecode
