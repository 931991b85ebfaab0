package media

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label renders a human-friendly option label for an episode from its video
// filename. The raw path stays the canonical identity; this only affects what
// the picker shows.
func Label(ep Episode) string {
	base := filepath.Base(ep.VideoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	cleaned := strings.NewReplacer("_", " ", ".", " ").Replace(stem)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return base
	}
	return cases.Title(language.Und).String(cleaned)
}
