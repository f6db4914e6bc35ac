package data

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as en-US dollars rounded to whole units,
// e.g. 9583.33 -> "$9,583". Display only; the rounding is lossy.
func FormatCurrency(amount float64) string {
	units := int64(math.Round(math.Abs(amount)))
	text := usPrinter.Sprintf("$%d", units)
	if amount < 0 && units != 0 {
		return "-" + text
	}
	return text
}

// RatingColor maps each rating to its fixed display color. Unknown ratings are
// an error so a new rating value cannot silently render unstyled.
func RatingColor(rating Rating) (string, error) {
	switch rating {
	case RatingExceptional:
		return "#10b981", nil
	case RatingExceeds:
		return "#3b82f6", nil
	case RatingMeets:
		return "#f59e0b", nil
	case RatingNeedsImprovement:
		return "#f97316", nil
	case RatingUnsatisfactory:
		return "#ef4444", nil
	default:
		return "", fmt.Errorf("unknown rating %q", rating)
	}
}
