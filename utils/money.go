package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Round rounds half up (towards +Inf), so -2.5 becomes -2 and 2.5 becomes 3.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// FormatAmount renders a currency amount with Russian digit grouping, e.g. "118 333 ₽".
func FormatAmount(v float64) string {
	p := message.NewPrinter(language.Russian)
	if v == math.Trunc(v) {
		return p.Sprintf("%d ₽", int64(v))
	}
	return p.Sprintf("%.2f ₽", v)
}

// FormatCount renders an integer with Russian digit grouping
func FormatCount(n int) string {
	return message.NewPrinter(language.Russian).Sprintf("%d", n)
}
