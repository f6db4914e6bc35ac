package leave

import (
	"testing"
	"time"
)

func TestCalculateDaysSameDay(t *testing.T) {
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	days, err := CalculateDays(day, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day, got %d", days)
	}
}

func TestCalculateDaysInclusive(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 5 {
		t.Fatalf("expected 5 days, got %d", days)
	}
}

func TestCalculateDaysAcrossMonths(t *testing.T) {
	start := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 4 {
		t.Fatalf("expected 4 days, got %d", days)
	}
}

func TestCalculateDaysInvalidRange(t *testing.T) {
	start := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	if _, err := CalculateDays(start, end); err == nil {
		t.Fatal("expected error for end before start")
	}
}
