package core

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected guarded goroutine to run")
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	called := false
	SetCrashReset(func() { called = true })
	defer SetCrashReset(nil)

	HandleCrash(nil)

	if called {
		t.Error("Expected reset not to run without a panic value")
	}
}

// Re-executes the test binary so the exit path can be observed
func TestHandleCrashResetsAndExits(t *testing.T) {
	if os.Getenv("FLAPPY_CRASH_CHILD") == "1" {
		SetCrashReset(func() { fmt.Fprint(os.Stderr, "reset-ran\n") })
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		panic("boom")
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestHandleCrashResetsAndExits$")
	cmd.Env = append(os.Environ(), "FLAPPY_CRASH_CHILD=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("Expected exit code 1, got %v\n%s", err, out)
	}
	text := string(out)
	reset := strings.Index(text, "reset-ran")
	report := strings.Index(text, "CRASH DETECTED: boom")
	if reset < 0 || report < 0 {
		t.Fatalf("Expected reset and crash report, got:\n%s", text)
	}
	if reset > report {
		t.Error("Expected terminal reset before the crash report")
	}
	if !strings.Contains(text, "Stack Trace:") {
		t.Error("Expected a stack trace")
	}
}
