package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values the rest of the program cannot
// work with. It reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Player.Command == "" {
		problems = append(problems, "player command must not be empty")
	}
	if c.Player.SubtitleFlag == "" {
		problems = append(problems, "player subtitle_flag must not be empty")
	}

	switch c.Matcher.Classifier {
	case ClassifierExtension, ClassifierContent:
	default:
		problems = append(problems, fmt.Sprintf("matcher classifier must be %q or %q, got %q",
			ClassifierExtension, ClassifierContent, c.Matcher.Classifier))
	}

	switch c.Matcher.SubtitlePolicy {
	case SubtitlePolicyTolerant, SubtitlePolicyStrict:
	default:
		problems = append(problems, fmt.Sprintf("matcher subtitle_policy must be %q or %q, got %q",
			SubtitlePolicyTolerant, SubtitlePolicyStrict, c.Matcher.SubtitlePolicy))
	}

	if c.Progress.StateFilename == "" {
		problems = append(problems, "progress state_filename must not be empty")
	} else if strings.ContainsAny(c.Progress.StateFilename, "/\\") {
		problems = append(problems, "progress state_filename must be a bare filename, not a path")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging format must be console or json, got %q", c.Logging.Format))
	}

	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		problems = append(problems, "history path must be set when history is enabled")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid configuration: " + strings.Join(problems, "; "))
}
