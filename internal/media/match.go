package media

import "sort"

// Episode is one video file paired with at most one subtitle file. Index is
// the 0-based rank within the sorted video list for the current directory
// listing; it is recomputed every run and never persisted.
type Episode struct {
	Index        int
	VideoPath    string
	SubtitlePath string
}

// HasSubtitle reports whether a subtitle was paired with the video.
func (e Episode) HasSubtitle() bool {
	return e.SubtitlePath != ""
}

// Result holds the matched episode list plus pairing diagnostics.
type Result struct {
	Episodes []Episode
	// SurplusSubtitles counts trailing subtitles discarded because there were
	// more subtitles than videos. Informational; never an error.
	SurplusSubtitles int
}

// Match pairs videos with subtitles from the given paths. It is a pure
// function: the same input set always yields the same episodes.
//
// Videos and subtitles are sorted independently (lexicographic, byte order)
// and paired by position. Missing trailing subtitles leave episodes without
// one; surplus trailing subtitles are dropped and counted. Paths matching
// neither classification are ignored; a path matching both is a video.
func Match(paths []string, classifier Classifier) Result {
	if classifier == nil {
		classifier = ExtensionClassifier{}
	}

	var videos, subtitles []string
	for _, path := range paths {
		switch {
		case classifier.IsVideo(path):
			videos = append(videos, path)
		case classifier.IsSubtitle(path):
			subtitles = append(subtitles, path)
		}
	}

	sort.Strings(videos)
	sort.Strings(subtitles)

	episodes := make([]Episode, len(videos))
	for i, video := range videos {
		ep := Episode{Index: i, VideoPath: video}
		if i < len(subtitles) {
			ep.SubtitlePath = subtitles[i]
		}
		episodes[i] = ep
	}

	surplus := 0
	if len(subtitles) > len(videos) {
		surplus = len(subtitles) - len(videos)
	}

	return Result{Episodes: episodes, SurplusSubtitles: surplus}
}
