package report

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatNumber renders a finite number for display. Magnitudes of at least
// 1e9 / 1e6 / 1e3 collapse to two-decimal B / M / k suffixes, integers below
// a thousand get locale thousands grouping with no decimals, and everything
// else is shown to two decimal places. Pure and deterministic; behavior for
// NaN or infinities is not part of the contract since upstream filtering
// never passes them.
func FormatNumber(n float64) string {
	abs := math.Abs(n)
	switch {
	case abs >= 1e9:
		return fixed2(n/1e9) + "B"
	case abs >= 1e6:
		return fixed2(n/1e6) + "M"
	case abs >= 1e3:
		return fixed2(n/1e3) + "k"
	case n == math.Trunc(n):
		return englishPrinter.Sprintf("%d", int64(n))
	default:
		return fixed2(n)
	}
}

func fixed2(n float64) string {
	return decimal.NewFromFloat(n).StringFixed(2)
}

// groupedInt renders an integer count with locale thousands grouping.
func groupedInt(n int) string {
	return englishPrinter.Sprintf("%d", n)
}
