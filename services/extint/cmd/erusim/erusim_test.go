package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	runOpts.pulses, runOpts.feed, runOpts.serial, runOpts.quiet = 1, "", "", false
	board = "kit_xmc14_boot_001"

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunPulses(t *testing.T) {
	out, err := execute(t, "run", "--board", "kit_xmc47_relax_v1", "-n", "3")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "falls=3 rises=3 serviced=3 toggles=3 led=true drops=0 state=enabled") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if strings.Count(out, " led=") != 4 {
		t.Fatalf("want 3 event lines and a summary:\n%s", out)
	}
}

func TestRunFeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	if err := os.WriteFile(path, []byte("# two pulses, rising first\nR\nF\nR\nP 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "run", "-q", "--feed", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "serviced=2 toggles=2 led=false") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestRunRejectsBadFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("F\nZ\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "run", "-q", "--feed", path); err == nil || !strings.Contains(err.Error(), "invalid_feed") {
		t.Fatalf("want invalid_feed, got %v", err)
	}
}

func TestUnknownBoard(t *testing.T) {
	if _, err := execute(t, "regs", "--board", "nope"); err == nil || !strings.Contains(err.Error(), "unknown_board") {
		t.Fatalf("want unknown_board, got %v", err)
	}
}

func TestBoardsAndRegs(t *testing.T) {
	out, err := execute(t, "boards")
	if err != nil {
		t.Fatalf("boards: %v", err)
	}
	if !strings.Contains(out, "kit_xmc14_boot_001") || !strings.Contains(out, "ERU1_0") {
		t.Fatalf("boards output:\n%s", out)
	}

	out, err = execute(t, "regs")
	if err != nil {
		t.Fatalf("regs: %v", err)
	}
	for _, want := range []string{"edge=falling", "gp=on_trigger", "priority 0xc0", "enabled=true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("regs output missing %q:\n%s", want, out)
		}
	}
}
