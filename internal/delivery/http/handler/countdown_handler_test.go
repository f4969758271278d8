package handler

import (
	"testing"
	"time"
)

func TestNextRevealBeforeHour(t *testing.T) {
	now := time.Date(2026, 2, 13, 9, 30, 0, 0, time.UTC)
	target := nextReveal(now, 16)
	want := time.Date(2026, 2, 13, 16, 0, 0, 0, time.UTC)
	if !target.Equal(want) {
		t.Fatalf("expected %v, got %v", want, target)
	}
}

func TestNextRevealAfterHourRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, 2, 13, 18, 0, 0, 0, time.UTC)
	target := nextReveal(now, 16)
	want := time.Date(2026, 2, 14, 16, 0, 0, 0, time.UTC)
	if !target.Equal(want) {
		t.Fatalf("expected %v, got %v", want, target)
	}
}

func TestNextRevealExactlyAtHourRolls(t *testing.T) {
	now := time.Date(2026, 2, 13, 16, 0, 0, 0, time.UTC)
	target := nextReveal(now, 16)
	if target.Day() != 14 {
		t.Fatalf("expected rollover to the 14th, got %v", target)
	}
}
