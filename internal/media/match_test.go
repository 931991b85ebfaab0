package media_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"watchnext/internal/media"
)

func TestMatchPairsLexicographically(t *testing.T) {
	paths := []string{"b.mp4", "a.mp4", "a.srt"}

	result := media.Match(paths, media.ExtensionClassifier{})

	if len(result.Episodes) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(result.Episodes))
	}
	first := result.Episodes[0]
	if first.Index != 0 || first.VideoPath != "a.mp4" || first.SubtitlePath != "a.srt" {
		t.Fatalf("unexpected first episode: %+v", first)
	}
	second := result.Episodes[1]
	if second.Index != 1 || second.VideoPath != "b.mp4" || second.HasSubtitle() {
		t.Fatalf("unexpected second episode: %+v", second)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	paths := []string{"ep3.mkv", "ep1.mkv", "ep2.mkv", "ep1.srt", "notes.txt", "ep2.srt"}

	first := media.Match(paths, media.ExtensionClassifier{})
	second := media.Match(paths, media.ExtensionClassifier{})

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated match differs: %+v vs %+v", first, second)
	}
}

func TestMatchFillsMissingTrailingSubtitles(t *testing.T) {
	paths := []string{"v0.mp4", "v1.mp4", "v2.mp4", "s0.srt"}

	result := media.Match(paths, media.ExtensionClassifier{})

	if len(result.Episodes) != 3 {
		t.Fatalf("expected 3 episodes, got %d", len(result.Episodes))
	}
	if result.Episodes[0].SubtitlePath != "s0.srt" {
		t.Fatalf("expected first episode paired, got %+v", result.Episodes[0])
	}
	for _, ep := range result.Episodes[1:] {
		if ep.HasSubtitle() {
			t.Fatalf("expected no subtitle on episode %d, got %q", ep.Index, ep.SubtitlePath)
		}
	}
	if result.SurplusSubtitles != 0 {
		t.Fatalf("expected no surplus, got %d", result.SurplusSubtitles)
	}
}

func TestMatchDiscardsSurplusSubtitles(t *testing.T) {
	paths := []string{"v0.mp4", "s0.srt", "s1.srt"}

	result := media.Match(paths, media.ExtensionClassifier{})

	if len(result.Episodes) != 1 {
		t.Fatalf("expected 1 episode, got %d", len(result.Episodes))
	}
	if result.Episodes[0].SubtitlePath != "s0.srt" {
		t.Fatalf("expected s0.srt paired, got %q", result.Episodes[0].SubtitlePath)
	}
	if result.SurplusSubtitles != 1 {
		t.Fatalf("expected 1 surplus subtitle, got %d", result.SurplusSubtitles)
	}
}

func TestMatchEmptyInput(t *testing.T) {
	result := media.Match(nil, media.ExtensionClassifier{})
	if len(result.Episodes) != 0 {
		t.Fatalf("expected no episodes, got %d", len(result.Episodes))
	}
}

func TestMatchIgnoresUnrecognizedFiles(t *testing.T) {
	paths := []string{"cover.jpg", "readme.md", "ep.mkv", ".watchnext.json"}

	result := media.Match(paths, media.ExtensionClassifier{})

	if len(result.Episodes) != 1 || result.Episodes[0].VideoPath != "ep.mkv" {
		t.Fatalf("unexpected episodes: %+v", result.Episodes)
	}
}

func TestMatchIndicesContiguous(t *testing.T) {
	paths := []string{"c.mp4", "a.mp4", "b.mp4"}

	result := media.Match(paths, media.ExtensionClassifier{})

	for i, ep := range result.Episodes {
		if ep.Index != i {
			t.Fatalf("episode %d has index %d", i, ep.Index)
		}
	}
}

func TestExtensionClassifierCaseInsensitive(t *testing.T) {
	c := media.ExtensionClassifier{}
	if !c.IsVideo("Episode.MKV") {
		t.Fatal("expected uppercase extension to classify as video")
	}
	if !c.IsSubtitle("Episode.SRT") {
		t.Fatal("expected uppercase extension to classify as subtitle")
	}
	if c.IsVideo("episode.srt") || c.IsSubtitle("episode.mkv") {
		t.Fatal("classifications crossed over")
	}
}

func TestNewClassifier(t *testing.T) {
	for _, strategy := range []string{"extension", "content", ""} {
		if _, err := media.NewClassifier(strategy); err != nil {
			t.Fatalf("NewClassifier(%q) returned error: %v", strategy, err)
		}
	}
	if _, err := media.NewClassifier("psychic"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestScanRecursiveSkipsSentinel(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "ep1.mkv"))
	mustWrite(t, filepath.Join(root, "season2", "ep2.mkv"))
	mustWrite(t, filepath.Join(root, ".watchnext.json"))

	paths, err := media.Scan(root, true, ".watchnext.json")
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %v", paths)
	}
	for _, p := range paths {
		if filepath.Base(p) == ".watchnext.json" {
			t.Fatalf("sentinel not skipped: %v", paths)
		}
	}
}

func TestScanSkipsDotfilesAndHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "ep1.mkv"))
	mustWrite(t, filepath.Join(root, ".DS_Store"))
	mustWrite(t, filepath.Join(root, ".cache", "thumb.mkv"))

	paths, err := media.Scan(root, true)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "ep1.mkv" {
		t.Fatalf("unexpected paths: %v", paths)
	}
}

func TestScanShallowIgnoresSubdirectories(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "ep1.mkv"))
	mustWrite(t, filepath.Join(root, "extras", "bonus.mkv"))

	paths, err := media.Scan(root, false)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "ep1.mkv" {
		t.Fatalf("unexpected paths: %v", paths)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		video string
		want  string
	}{
		{"show_s01e01_pilot.mkv", "Show S01e01 Pilot"},
		{"some.show.episode.mp4", "Some Show Episode"},
		{"plain.mkv", "Plain"},
	}
	for _, tc := range cases {
		got := media.Label(media.Episode{VideoPath: tc.video})
		if got != tc.want {
			t.Fatalf("Label(%q) = %q, want %q", tc.video, got, tc.want)
		}
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
