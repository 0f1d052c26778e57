package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an integer rupiah amount the way the storefront shows prices,
// e.g. 189000 as "Rp 189.000".
func FormatRupiah(amount int64) string {
	return "Rp " + rupiahPrinter.Sprintf("%d", amount)
}
