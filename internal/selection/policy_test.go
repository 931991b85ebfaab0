package selection_test

import (
	"testing"

	"watchnext/internal/media"
	"watchnext/internal/selection"
)

func episodes(n int) []media.Episode {
	eps := make([]media.Episode, n)
	for i := range eps {
		eps[i] = media.Episode{Index: i, VideoPath: string(rune('a'+i)) + ".mkv"}
	}
	return eps
}

func TestDecidePresentsEpisodesPlusExit(t *testing.T) {
	plan := selection.Decide(episodes(3), 1)

	if plan.Outcome != selection.OutcomePresent {
		t.Fatalf("expected OutcomePresent, got %v", plan.Outcome)
	}
	if len(plan.Options) != 4 {
		t.Fatalf("expected 4 options, got %v", plan.Options)
	}
	if plan.Options[3] != selection.ExitOption {
		t.Fatalf("expected exit last, got %q", plan.Options[3])
	}
	if plan.Default != 1 {
		t.Fatalf("expected default 1, got %d", plan.Default)
	}
	if plan.Clamped {
		t.Fatal("expected no clamp")
	}
}

func TestDecideAllWatchedAtExactCount(t *testing.T) {
	plan := selection.Decide(episodes(3), 3)

	if plan.Outcome != selection.OutcomeAllWatched {
		t.Fatalf("expected OutcomeAllWatched, got %v", plan.Outcome)
	}
	if plan.Counter != 3 {
		t.Fatalf("expected counter 3, got %d", plan.Counter)
	}
	if plan.Clamped {
		t.Fatal("counter already at count, no clamp expected")
	}
}

func TestDecideClampsCounterDown(t *testing.T) {
	plan := selection.Decide(episodes(3), 5)

	if plan.Outcome != selection.OutcomeAllWatched {
		t.Fatalf("expected OutcomeAllWatched, got %v", plan.Outcome)
	}
	if plan.Counter != 3 {
		t.Fatalf("expected clamp to 3, got %d", plan.Counter)
	}
	if !plan.Clamped {
		t.Fatal("expected Clamped=true")
	}
}

func TestDecideEmptyEpisodes(t *testing.T) {
	plan := selection.Decide(nil, 0)
	if plan.Outcome != selection.OutcomeAllWatched {
		t.Fatalf("expected OutcomeAllWatched for empty list, got %v", plan.Outcome)
	}
	if plan.Counter != 0 || plan.Clamped {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestResolveExit(t *testing.T) {
	plan := selection.Decide(episodes(3), 0)

	choice := selection.Resolve(plan, 3)
	if choice.Kind != selection.ChoiceExit {
		t.Fatalf("expected ChoiceExit, got %+v", choice)
	}
}

func TestResolveCurrentEpisodeSkipsResetConfirm(t *testing.T) {
	plan := selection.Decide(episodes(3), 1)

	choice := selection.Resolve(plan, 1)
	if choice.Kind != selection.ChoicePlay || choice.Index != 1 {
		t.Fatalf("unexpected choice: %+v", choice)
	}
	if choice.NeedsResetConfirm {
		t.Fatal("picking the counter episode must not ask for reset")
	}
}

func TestResolveOtherEpisodeNeedsResetConfirm(t *testing.T) {
	plan := selection.Decide(episodes(3), 0)

	choice := selection.Resolve(plan, 2)
	if choice.Kind != selection.ChoicePlay || choice.Index != 2 {
		t.Fatalf("unexpected choice: %+v", choice)
	}
	if !choice.NeedsResetConfirm {
		t.Fatal("picking a different episode must ask for reset")
	}
}

func TestShouldConfirmCompletion(t *testing.T) {
	if !selection.ShouldConfirmCompletion(2, 2) {
		t.Fatal("playing the counter episode should ask for completion")
	}
	if selection.ShouldConfirmCompletion(2, 0) {
		t.Fatal("replaying a different episode must not ask for completion")
	}
}
