package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultPlayerCommand  = "mpv"
	defaultSubtitleFlag   = "--sub-file="
	defaultClassifier     = ClassifierExtension
	defaultSubtitlePolicy = SubtitlePolicyTolerant
	defaultStateFilename  = ".watchnext.json"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Classifier strategy names accepted by [matcher] classifier.
const (
	ClassifierExtension = "extension"
	ClassifierContent   = "content"
)

// Subtitle policy names accepted by [matcher] subtitle_policy.
const (
	SubtitlePolicyTolerant = "tolerant"
	SubtitlePolicyStrict   = "strict"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Player: Player{
			Command:      defaultPlayerCommand,
			Args:         []string{"--no-terminal"},
			SubtitleFlag: defaultSubtitleFlag,
		},
		Matcher: Matcher{
			Classifier:     defaultClassifier,
			SubtitlePolicy: defaultSubtitlePolicy,
			Recursive:      true,
		},
		Progress: Progress{
			StateFilename: defaultStateFilename,
			LockSessions:  true,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultHistoryPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "watchnext", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/watchnext/history.db"
	}
	return filepath.Join(home, ".local", "share", "watchnext", "history.db")
}
