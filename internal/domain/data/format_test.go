package data

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{950, "$950"},
		{9583.33, "$9,583"},
		{120000, "$120,000"},
		{1437.5, "$1,438"},
		{-4520, "-$4,520"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount); got != tc.want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestRatingColorTotal(t *testing.T) {
	ratings := []Rating{
		RatingExceptional, RatingExceeds, RatingMeets,
		RatingNeedsImprovement, RatingUnsatisfactory,
	}
	seen := map[string]Rating{}
	for _, rating := range ratings {
		color, err := RatingColor(rating)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", rating, err)
		}
		if color == "" {
			t.Fatalf("empty color for %s", rating)
		}
		if prev, dup := seen[color]; dup {
			t.Fatalf("color %s shared by %s and %s", color, prev, rating)
		}
		seen[color] = rating

		again, err := RatingColor(rating)
		if err != nil || again != color {
			t.Fatalf("RatingColor not deterministic for %s", rating)
		}
	}
}

func TestRatingColorUnknown(t *testing.T) {
	if _, err := RatingColor(Rating("Stellar")); err == nil {
		t.Fatal("expected error for unknown rating")
	}
}
