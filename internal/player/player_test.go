package player

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"

	"watchnext/internal/config"
)

func stubCommand(t *testing.T, capture *[][]string, mode string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if capture != nil {
			*capture = append(*capture, append([]string{name}, args...))
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "PLAYER_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestPlayRequiresVideoPath(t *testing.T) {
	launcher := New(config.Default().Player, nil)
	if err := launcher.Play(context.Background(), "", ""); err == nil {
		t.Fatal("expected error for empty video path")
	}
}

func TestPlayAppendsSubtitleFlagAndVideo(t *testing.T) {
	var captured [][]string
	stubCommand(t, &captured, "success")

	launcher := New(config.Player{
		Command:      "mpv",
		Args:         []string{"--no-terminal"},
		SubtitleFlag: "--sub-file=",
	}, nil)

	if err := launcher.Play(context.Background(), "ep1.mkv", "ep1.srt"); err != nil {
		t.Fatalf("Play returned error: %v", err)
	}

	if len(captured) != 1 {
		t.Fatalf("expected one invocation, got %d", len(captured))
	}
	got := captured[0]
	want := []string{"mpv", "--no-terminal", "--sub-file=ep1.srt", "ep1.mkv"}
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("args = %v, want %v", got, want)
		}
	}
}

func TestPlayOmitsSubtitleFlagWhenAbsent(t *testing.T) {
	var captured [][]string
	stubCommand(t, &captured, "success")

	launcher := New(config.Default().Player, nil)
	if err := launcher.Play(context.Background(), "ep1.mkv", ""); err != nil {
		t.Fatalf("Play returned error: %v", err)
	}

	for _, arg := range captured[0] {
		if arg == "--sub-file=" {
			t.Fatalf("unexpected bare subtitle flag in %v", captured[0])
		}
	}
}

func TestPlayReturnsNonZeroExit(t *testing.T) {
	stubCommand(t, nil, "fail")

	launcher := New(config.Default().Player, nil)
	err := launcher.Play(context.Background(), "ep1.mkv", "")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit code 3, got %d", exitErr.ExitCode())
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	if os.Getenv("PLAYER_HELPER_MODE") == "fail" {
		os.Exit(3)
	}
	os.Exit(0)
}
