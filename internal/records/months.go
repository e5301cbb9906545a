package records

import (
	"fmt"
	"time"
)

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// monthLabel renders the month of an ISO date the way the aid sheet writes
// it ("يناير 2024"). An unreadable date falls back to fallback.
func monthLabel(date string, fallback time.Time) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		t = fallback
	}
	return fmt.Sprintf("%s %d", arabicMonths[t.Month()-1], t.Year())
}
