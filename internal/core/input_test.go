package core

import (
	"testing"
	"time"
)

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionRight)
	if !f.Has(ActionJump) || !f.Has(ActionRight) {
		t.Error("set actions should be reported")
	}

	kept := f
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !kept.Has(ActionJump) || !kept.Has(ActionRight) {
		t.Error("Clear should not touch a frame copied before it")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v, expected %v", got, time.Second/60)
	}

	cfg.TickRate = 0
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60, got %v", got)
	}
}
