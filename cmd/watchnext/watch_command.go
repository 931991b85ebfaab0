package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"watchnext/internal/config"
	"watchnext/internal/history"
	"watchnext/internal/logging"
	"watchnext/internal/media"
	"watchnext/internal/player"
	"watchnext/internal/progress"
	"watchnext/internal/prompt"
	"watchnext/internal/session"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var batch bool
	var assumeYes bool
	var playerOverride string

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Pick and play the next unwatched episode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			dir, err := resolveDir(args)
			if err != nil {
				return err
			}

			classifier, err := media.NewClassifier(cfg.Matcher.Classifier)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store := progress.NewStore(cfg.Progress.StateFilename, logger)
			if cfg.Progress.LockSessions {
				release, err := store.Lock(dir)
				if err != nil {
					if errors.Is(err, progress.ErrLocked) {
						return fmt.Errorf("another session is already running in %s", dir)
					}
					return err
				}
				defer release()
			}

			var journal session.Journal
			if cfg.History.Enabled {
				js, err := history.Open(cfg.History.Path)
				if err != nil {
					logger.Warn("history journal unavailable", logging.Error(err))
				} else {
					defer js.Close()
					journal = js
				}
			}

			playerCfg := cfg.Player
			if command := strings.TrimSpace(playerOverride); command != "" {
				playerCfg.Command = command
			}

			sess := session.New(session.Options{
				Dir:             dir,
				Store:           store,
				Classifier:      classifier,
				Recursive:       cfg.Matcher.Recursive,
				StrictSubtitles: cfg.Matcher.SubtitlePolicy == config.SubtitlePolicyStrict,
				Prompter:        prompt.Detect(assumeYes),
				Player:          player.New(playerCfg, logger),
				Journal:         journal,
				Logger:          logger,
			})

			if err := sess.RunLoop(runCtx, batch); err != nil {
				// An interrupt ends the session quietly.
				if errors.Is(err, context.Canceled) || runCtx.Err() != nil {
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&batch, "batch", "b", false, "Keep playing consecutive episodes after each confirmed completion")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Answer prompts with their defaults instead of asking")
	cmd.Flags().StringVar(&playerOverride, "player", "", "Player command to use instead of the configured one")

	return cmd
}
