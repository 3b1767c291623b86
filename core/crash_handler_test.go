package core

import (
	"testing"
	"time"
)

// TestGoRunsFunction verifies Go executes the function on a new goroutine
func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected function to run")
	}
}

// TestHandleCrashNil verifies a nil recovery value is ignored
func TestHandleCrashNil(t *testing.T) {
	called := false
	SetCrashCleanup(func() { called = true })
	defer SetCrashCleanup(nil)

	HandleCrash(nil)

	if called {
		t.Error("Expected cleanup to not run for nil recovery")
	}
}
