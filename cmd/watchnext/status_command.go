package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"watchnext/internal/media"
	"watchnext/internal/progress"
	"watchnext/internal/selection"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [path]",
		Short: "Show matched episodes and watch progress",
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

			out := cmd.OutOrStdout()
			if len(matched.Episodes) == 0 {
				fmt.Fprintf(out, "No episodes found in %s\n", dir)
				return nil
			}

			colorize := false
			if f, ok := out.(*os.File); ok {
				colorize = shouldColorize(f)
			}

			plan := selection.Decide(matched.Episodes, state.Counter)
			rows := make([][]string, 0, len(matched.Episodes))
			for _, ep := range matched.Episodes {
				marker := ""
				switch {
				case ep.Index < plan.Counter:
					marker = colorizeMarker("watched", ansiGreen, colorize)
				case ep.Index == plan.Counter && plan.Outcome == selection.OutcomePresent:
					marker = colorizeMarker("next", ansiYellow, colorize)
				}
				rows = append(rows, []string{
					strconv.Itoa(ep.Index + 1),
					media.Label(ep),
					yesNo(ep.HasSubtitle()),
					marker,
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"#", "Episode", "Subtitle", "Status"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d of %d watched\n", plan.Counter, len(matched.Episodes))
			if matched.SurplusSubtitles > 0 {
				fmt.Fprintf(out, "%d surplus subtitle file(s) ignored\n", matched.SurplusSubtitles)
			}
			return nil
		},
	}
}
