package main

import (
	"context"
	"testing"
)

func TestRun_Version(t *testing.T) {
	if code := run(context.Background(), []string{"version"}); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if code := run(context.Background(), []string{"does-not-exist"}); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}
