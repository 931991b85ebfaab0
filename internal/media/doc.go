// Package media classifies directory listings into videos and subtitles and
// pairs them into an ordered episode list.
//
// Pairing is positional: videos and subtitles are sorted independently by
// full path (byte order) and the i-th video takes the i-th subtitle. The
// pairing logic is a pure function of the input paths; classification is
// pluggable so extension matching and content sniffing stay interchangeable.
package media
