package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Classifier decides whether a path names a video or a subtitle file. A path
// matching both is treated as a video by the matcher; the video check runs
// first.
type Classifier interface {
	IsVideo(path string) bool
	IsSubtitle(path string) bool
	Name() string
}

// NewClassifier returns the classifier for the given strategy name. Accepted
// strategies are "extension" and "content".
func NewClassifier(strategy string) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "extension", "":
		return ExtensionClassifier{}, nil
	case "content":
		return ContentClassifier{}, nil
	default:
		return nil, fmt.Errorf("unknown classifier strategy %q", strategy)
	}
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".avi":  {},
	".webm": {},
	".mov":  {},
	".m4v":  {},
	".mpg":  {},
	".mpeg": {},
	".wmv":  {},
	".flv":  {},
	".ts":   {},
}

var subtitleExtensions = map[string]struct{}{
	".srt": {},
}

// ExtensionClassifier matches by filename suffix. It is the default: fast,
// dependency-free, and independent of file contents.
type ExtensionClassifier struct{}

func (ExtensionClassifier) Name() string { return "extension" }

func (ExtensionClassifier) IsVideo(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (ExtensionClassifier) IsSubtitle(path string) bool {
	_, ok := subtitleExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ContentClassifier sniffs file contents for the MIME type. It survives
// misnamed files at the cost of reading from every candidate. When the file
// cannot be read it falls back to extension matching so unreadable entries do
// not flip classification between runs.
type ContentClassifier struct{}

func (ContentClassifier) Name() string { return "content" }

func (ContentClassifier) IsVideo(path string) bool {
	kind, err := mimetype.DetectFile(path)
	if err != nil {
		return ExtensionClassifier{}.IsVideo(path)
	}
	return strings.HasPrefix(kind.String(), "video/")
}

func (ContentClassifier) IsSubtitle(path string) bool {
	kind, err := mimetype.DetectFile(path)
	if err != nil {
		return ExtensionClassifier{}.IsSubtitle(path)
	}
	for m := kind; m != nil; m = m.Parent() {
		if m.Is("application/x-subrip") || m.Is("text/x-subrip") {
			return true
		}
	}
	return false
}
