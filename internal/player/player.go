// Package player launches the external media player and blocks until it
// exits. A non-zero exit is reported to the caller but is not fatal for a
// session; the user still gets asked whether they finished the episode.
package player

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"watchnext/internal/config"
	"watchnext/internal/logging"
)

var commandContext = exec.CommandContext

// Launcher invokes the configured player binary.
type Launcher struct {
	command      string
	args         []string
	subtitleFlag string
	logger       *slog.Logger
}

// New constructs a Launcher from player configuration.
func New(cfg config.Player, logger *slog.Logger) *Launcher {
	return &Launcher{
		command:      cfg.Command,
		args:         append([]string{}, cfg.Args...),
		subtitleFlag: cfg.SubtitleFlag,
		logger:       logging.NewComponentLogger(logger, "player"),
	}
}

// Play runs the player for one video, waiting for the process to terminate.
// subtitlePath may be empty. The returned error covers both launch failures
// and non-zero exits; callers decide whether that aborts anything.
func (l *Launcher) Play(ctx context.Context, videoPath, subtitlePath string) error {
	if strings.TrimSpace(videoPath) == "" {
		return errors.New("video path required")
	}

	args := append([]string{}, l.args...)
	if subtitlePath != "" {
		if strings.HasSuffix(l.subtitleFlag, "=") {
			args = append(args, l.subtitleFlag+subtitlePath)
		} else {
			args = append(args, l.subtitleFlag, subtitlePath)
		}
	}
	args = append(args, videoPath)

	l.logger.Info("launching player",
		logging.String("command", l.command),
		logging.String("video", videoPath),
		logging.Bool("subtitle", subtitlePath != ""))

	cmd := commandContext(ctx, l.command, args...)
	// Players that render on the terminal need the real streams.
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			l.logger.Warn("player exited abnormally",
				logging.Int("exit_code", exitErr.ExitCode()),
				logging.String("video", videoPath))
		}
		return err
	}
	return nil
}
