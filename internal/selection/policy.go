// Package selection turns an episode list and the watch counter into a
// presentation plan and interprets the user's pick. It owns the rules for
// when a pick resets the counter and when a completed watch advances it; it
// never performs I/O itself.
package selection

import "watchnext/internal/media"

// ExitOption is the synthetic option appended after the episode list.
const ExitOption = "exit"

// Outcome classifies what one selection cycle should do.
type Outcome int

const (
	// OutcomeAllWatched means the counter is at or past the end of the
	// episode list; there is nothing new to present.
	OutcomeAllWatched Outcome = iota
	// OutcomePresent means the caller should present the plan's options.
	OutcomePresent
)

// Plan describes the options to present for one cycle.
type Plan struct {
	Outcome Outcome
	// Options holds each episode's video path plus ExitOption appended last.
	// Empty unless Outcome is OutcomePresent.
	Options []string
	// Default is the option index to highlight, the episode at the counter.
	Default int
	// Counter is the normalized counter: clamped down to the episode count
	// when it exceeded it, never clamped up.
	Counter int
	// Clamped reports whether normalization changed the counter; the caller
	// should persist the clamp.
	Clamped bool
}

// Decide builds the presentation plan for the current episodes and counter.
func Decide(episodes []media.Episode, counter int) Plan {
	if counter >= len(episodes) {
		clamped := len(episodes)
		return Plan{
			Outcome: OutcomeAllWatched,
			Counter: clamped,
			Clamped: counter != clamped,
		}
	}

	options := make([]string, 0, len(episodes)+1)
	for _, ep := range episodes {
		options = append(options, ep.VideoPath)
	}
	options = append(options, ExitOption)

	return Plan{
		Outcome: OutcomePresent,
		Options: options,
		Default: counter,
		Counter: counter,
	}
}

// ChoiceKind classifies a resolved pick.
type ChoiceKind int

const (
	// ChoiceExit means the user picked the exit option; nothing is played
	// and nothing mutates.
	ChoiceExit ChoiceKind = iota
	// ChoicePlay means an episode should be played.
	ChoicePlay
)

// Choice is the interpretation of one pick against the current counter.
type Choice struct {
	Kind  ChoiceKind
	Index int
	// NeedsResetConfirm is set when the pick differs from the counter: the
	// user must confirm before the counter resets to the picked episode.
	// Picking the episode at the counter never asks.
	NeedsResetConfirm bool
}

// Resolve interprets a picked option index against the plan.
func Resolve(plan Plan, picked int) Choice {
	exitIndex := len(plan.Options) - 1
	if picked < 0 || picked >= exitIndex {
		return Choice{Kind: ChoiceExit}
	}
	return Choice{
		Kind:              ChoicePlay,
		Index:             picked,
		NeedsResetConfirm: picked != plan.Counter,
	}
}

// ShouldConfirmCompletion reports whether the completion question is asked
// after playing playedIndex: only when it equals the (possibly just-reset)
// counter. Replays of passed episodes and skips ahead never advance progress.
func ShouldConfirmCompletion(playedIndex, counter int) bool {
	return playedIndex == counter
}
