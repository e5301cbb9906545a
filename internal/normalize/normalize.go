// Package normalize canonicalizes Arabic text so that spelling variants of
// the same name compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var letterFolds = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ٱ", "ا",
	"ة", "ه",
	"ى", "ي",
	"ـ", "", // tatweel
)

var digitFolds = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

// Normalize folds alif forms to bare alif, teh marbuta to heh and alif
// maqsura to yeh, drops diacritics and tatweel, trims and lower-cases.
// It is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)

	// NFD splits hamza and madda off their carrier letters as nonspacing
	// marks, so they go with the harakat.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := letterFolds.Replace(b.String())
	return norm.NFC.String(strings.TrimSpace(out))
}

// Contains reports whether the normalized form of s contains the normalized
// form of sub. Blank values never match.
func Contains(s, sub string) bool {
	ns, nsub := Normalize(s), Normalize(sub)
	if ns == "" || nsub == "" {
		return false
	}
	return strings.Contains(ns, nsub)
}

// Equal reports whether a and b normalize to the same non-empty string.
func Equal(a, b string) bool {
	na := Normalize(a)
	return na != "" && na == Normalize(b)
}

// Digits rewrites Arabic-Indic and Persian digits as ASCII.
func Digits(s string) string {
	return digitFolds.Replace(s)
}
