package reporting

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayoutISO is the canonical form; dates are always formatted back with it.
const DateLayoutISO = "2006-01-02"

// acceptedDateLayouts is tried in order. ISO goes first so a string valid
// under both layouts resolves to the ISO reading.
var acceptedDateLayouts = []string{
	DateLayoutISO,
	"01/02/2006",
}

// ParseDate normalizes a persisted date string to a calendar date (midnight
// UTC). It returns ErrUnrecognizedDateFormat when no accepted layout matches.
func ParseDate(dateStr string) (time.Time, error) {
	for _, layout := range acceptedDateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Wrapf(ErrUnrecognizedDateFormat, "date %q", dateStr)
}

// FormatDate renders a date in the canonical ISO form.
func FormatDate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// weekBounds returns the Monday and Sunday of the week containing ref,
// both at midnight UTC.
func weekBounds(ref time.Time) (time.Time, time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7

	weekStart := day.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart, weekEnd
}
