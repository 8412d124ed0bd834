package main

import (
	"context"
	"errors"
	"testing"

	"lrucache/internal/scenario"
)

func TestSelectScenarios(t *testing.T) {
	all, err := selectScenarios("all")
	if err != nil || len(all) != len(scenario.Builtin()) {
		t.Fatalf("all: n=%d err=%v", len(all), err)
	}

	one, err := selectScenarios("reference")
	if err != nil || len(one) != 1 || one[0].Name != "reference" {
		t.Fatalf("reference: %v err=%v", one, err)
	}

	if _, err := selectScenarios("missing"); err == nil {
		t.Fatalf("expected error for unknown scenario")
	}
}

func TestReplayAll_Builtin(t *testing.T) {
	if err := replayAll(context.Background(), scenario.Builtin(), false); err != nil {
		t.Fatalf("replay: %v", err)
	}
}

func TestReplayAll_PropagatesMismatch(t *testing.T) {
	bad := scenario.Scenario{
		Name:     "bad",
		Capacity: 1,
		Steps:    []scenario.Step{{Op: scenario.OpGet, Key: 1, Want: 5}},
	}
	err := replayAll(context.Background(), append(scenario.Builtin(), bad), false)

	var mismatch *scenario.MismatchError
	if !errors.As(err, &mismatch) || mismatch.Scenario != "bad" {
		t.Fatalf("err=%v, want mismatch from %q", err, "bad")
	}
}

func TestReplayAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := replayAll(ctx, scenario.Builtin(), false); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
