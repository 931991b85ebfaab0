// Package session orchestrates one episode-watching transaction: match the
// directory, present the choice, launch the player, and advance the
// persisted counter on confirmed completion.
//
// Every exit path that mutated in-memory state saves it explicitly before
// returning; nothing relies on teardown for durable writes.
package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"watchnext/internal/history"
	"watchnext/internal/logging"
	"watchnext/internal/media"
	"watchnext/internal/progress"
	"watchnext/internal/prompt"
	"watchnext/internal/selection"
)

// Player launches a video and blocks until the player exits.
type Player interface {
	Play(ctx context.Context, videoPath, subtitlePath string) error
}

// Journal records watch events. Implementations must tolerate being called
// on every cycle; failures are logged by the session, never fatal.
type Journal interface {
	Record(ctx context.Context, ev history.Event) error
}

// Result reports what one cycle did.
type Result struct {
	// Ran is false when the cycle ended without playing anything
	// (everything watched, exit picked, or interrupted).
	Ran bool
	// Advanced is true when a confirmed completion incremented the counter.
	Advanced bool
}

// Options wires a Session.
type Options struct {
	Dir             string
	Store           *progress.Store
	Classifier      media.Classifier
	Recursive       bool
	StrictSubtitles bool
	Prompter        prompt.Prompter
	Player          Player
	Journal         Journal
	Logger          *slog.Logger
}

// Session runs watch cycles against one directory.
type Session struct {
	dir        string
	store      *progress.Store
	classifier media.Classifier
	recursive  bool
	strictSubs bool
	prompter   prompt.Prompter
	player     Player
	journal    Journal
	logger     *slog.Logger
}

// New constructs a Session.
func New(opts Options) *Session {
	return &Session{
		dir:        opts.Dir,
		store:      opts.Store,
		classifier: opts.Classifier,
		recursive:  opts.Recursive,
		strictSubs: opts.StrictSubtitles,
		prompter:   opts.Prompter,
		player:     opts.Player,
		journal:    opts.Journal,
		logger:     logging.NewComponentLogger(opts.Logger, "session"),
	}
}

// Run executes one selection/play/confirm cycle. The directory is re-scanned
// on every call so changes between cycles are picked up.
func (s *Session) Run(ctx context.Context) (Result, error) {
	logger := s.logger.With(
		logging.String(logging.FieldSessionID, uuid.NewString()),
		logging.String(logging.FieldDirectory, s.dir))

	skip := []string{s.store.Filename(), s.store.Filename() + ".lock", s.store.Filename() + ".tmp"}
	paths, err := media.Scan(s.dir, s.recursive, skip...)
	if err != nil {
		return Result{}, err
	}

	matched := media.Match(paths, s.classifier)
	if s.strictSubs && matched.SurplusSubtitles > 0 {
		logger.Warn("more subtitles than videos, surplus ignored",
			logging.Int("surplus_subtitles", matched.SurplusSubtitles))
	}

	state, err := s.store.Load(s.dir)
	if err != nil {
		return Result{}, err
	}

	plan := selection.Decide(matched.Episodes, state.Counter)
	logger.Debug("matched directory",
		logging.Int(logging.FieldEpisodeCount, len(matched.Episodes)),
		logging.Int(logging.FieldCounter, state.Counter))

	if plan.Outcome == selection.OutcomeAllWatched {
		if plan.Clamped {
			state.Counter = plan.Counter
			if err := s.store.Save(s.dir, state); err != nil {
				return Result{}, err
			}
		}
		logger.Info("all episodes watched")
		return Result{}, nil
	}

	picked, err := s.prompter.ChooseOne(ctx, "Which episode?", plan.Options, plan.Default)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			logger.Info("selection aborted")
			return Result{}, nil
		}
		return Result{}, err
	}

	choice := selection.Resolve(plan, picked)
	if choice.Kind == selection.ChoiceExit {
		logger.Info("no episode selected")
		return Result{}, nil
	}

	episode := matched.Episodes[choice.Index]

	if choice.NeedsResetConfirm {
		confirmed, err := s.prompter.ConfirmYesNo(ctx, "Reset progress to this episode?", true)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				logger.Info("reset prompt aborted")
				return Result{}, nil
			}
			return Result{}, err
		}
		if confirmed {
			state.Counter = choice.Index
			// Committed state must survive an interrupt during playback.
			if err := s.store.Save(s.dir, state); err != nil {
				return Result{}, err
			}
			s.record(ctx, logger, episode, history.EventReset)
			logger.Info("progress reset",
				logging.Int(logging.FieldCounter, state.Counter))
		}
	}

	logger.Info("watching episode",
		logging.Int(logging.FieldEpisodeIndex, episode.Index),
		logging.String("video", episode.VideoPath))

	if err := s.player.Play(ctx, episode.VideoPath, episode.SubtitlePath); err != nil {
		if ctx.Err() != nil {
			logger.Info("playback interrupted")
			return Result{}, nil
		}
		// Player failure is non-fatal; the user still decides below whether
		// the episode counts as watched.
		logger.Warn("player failed", logging.Error(err))
	}
	s.record(ctx, logger, episode, history.EventPlayed)

	advanced := false
	if selection.ShouldConfirmCompletion(choice.Index, state.Counter) {
		confirmed, err := s.prompter.ConfirmYesNo(ctx, "Did you watch this episode completely?", true)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				logger.Info("completion prompt aborted")
				return Result{}, nil
			}
			return Result{}, err
		}
		if confirmed {
			state.Counter++
			advanced = true
			s.record(ctx, logger, episode, history.EventCompleted)
		}
	}

	if err := s.store.Save(s.dir, state); err != nil {
		return Result{}, err
	}

	return Result{Ran: true, Advanced: advanced}, nil
}

func (s *Session) record(ctx context.Context, logger *slog.Logger, ep media.Episode, kind history.EventType) {
	if s.journal == nil {
		return
	}
	ev := history.Event{
		Directory:    s.dir,
		EpisodeIndex: ep.Index,
		VideoPath:    ep.VideoPath,
		Type:         kind,
	}
	if err := s.journal.Record(ctx, ev); err != nil {
		logger.Warn("history journal write failed", logging.Error(err))
	}
}
