package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchnext/internal/media"
	"watchnext/internal/progress"
	"watchnext/internal/prompt"
)

func newResetCommand(ctx *commandContext) *cobra.Command {
	var toEpisode int
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "reset [path]",
		Short: "Reset watch progress for a directory",
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

			store := progress.NewStore(cfg.Progress.StateFilename, logger)
			state, err := store.Load(dir)
			if err != nil {
				return err
			}

			skip := []string{store.Filename(), store.Filename() + ".lock", store.Filename() + ".tmp"}
			paths, err := media.Scan(dir, cfg.Matcher.Recursive, skip...)
			if err != nil {
				return err
			}
			matched := media.Match(paths, classifier)

			// --to is one-based to match the status listing; 0 means the start.
			target := toEpisode
			if target < 0 {
				return fmt.Errorf("--to must not be negative, got %d", target)
			}
			if count := len(matched.Episodes); target > count {
				return fmt.Errorf("--to %d exceeds the %d matched episode(s)", target, count)
			}

			if !assumeYes {
				prompter := prompt.Detect(false)
				message := fmt.Sprintf("Reset progress from %d to %d?", state.Counter, target)
				confirmed, err := prompter.ConfirmYesNo(cmd.Context(), message, false)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
			}

			state.Counter = target
			if err := store.Save(dir, state); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Progress for %s set to %d\n", dir, target)
			return nil
		},
	}

	cmd.Flags().IntVar(&toEpisode, "to", 0, "Number of episodes to mark as watched")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
