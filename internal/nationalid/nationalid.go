// Package nationalid reads the birth date encoded in an Egyptian national
// ID number: a century digit (2 for 1900s, 3 for 2000s) followed by YYMMDD.
package nationalid

import (
	"strconv"
	"strings"
	"time"

	"alkhair/internal/normalize"
)

// BirthDate decodes the first seven digits of id.
func BirthDate(id string) (time.Time, bool) {
	id = strings.TrimSpace(normalize.Digits(id))
	if len(id) < 7 {
		return time.Time{}, false
	}

	digits := id[:7]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return time.Time{}, false
		}
	}

	century := 1900
	if digits[0] == '3' {
		century = 2000
	}

	yy, _ := strconv.Atoi(digits[1:3])
	mm, _ := strconv.Atoi(digits[3:5])
	dd, _ := strconv.Atoi(digits[5:7])

	year := century + yy
	birth := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if birth.Year() != year || birth.Month() != time.Month(mm) || birth.Day() != dd {
		return time.Time{}, false
	}
	return birth, true
}

// Age returns the completed years between the encoded birth date and now.
func Age(id string, now time.Time) (int, bool) {
	birth, ok := BirthDate(id)
	if !ok {
		return 0, false
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}
