package prompt_test

import (
	"context"
	"testing"

	"watchnext/internal/prompt"
)

func TestNonInteractiveChooseOneReturnsDefault(t *testing.T) {
	p := prompt.NonInteractive{}

	selected, err := p.ChooseOne(context.Background(), "Which episode?", []string{"a", "b", "exit"}, 1)
	if err != nil {
		t.Fatalf("ChooseOne returned error: %v", err)
	}
	if selected != 1 {
		t.Fatalf("expected default 1, got %d", selected)
	}
}

func TestNonInteractiveChooseOneClampsBadDefault(t *testing.T) {
	p := prompt.NonInteractive{}

	selected, err := p.ChooseOne(context.Background(), "Which episode?", []string{"a", "b"}, 9)
	if err != nil {
		t.Fatalf("ChooseOne returned error: %v", err)
	}
	if selected != 0 {
		t.Fatalf("expected clamp to 0, got %d", selected)
	}
}

func TestNonInteractiveChooseOneRejectsEmptyOptions(t *testing.T) {
	p := prompt.NonInteractive{}
	if _, err := p.ChooseOne(context.Background(), "?", nil, 0); err == nil {
		t.Fatal("expected error for empty options")
	}
}

func TestNonInteractiveConfirmReturnsDefault(t *testing.T) {
	p := prompt.NonInteractive{}

	for _, def := range []bool{true, false} {
		got, err := p.ConfirmYesNo(context.Background(), "Watched?", def)
		if err != nil {
			t.Fatalf("ConfirmYesNo returned error: %v", err)
		}
		if got != def {
			t.Fatalf("expected %v, got %v", def, got)
		}
	}
}

func TestDetectForcedNonInteractive(t *testing.T) {
	if _, ok := prompt.Detect(true).(prompt.NonInteractive); !ok {
		t.Fatal("expected NonInteractive prompter when forced")
	}
}
