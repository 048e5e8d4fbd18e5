package attendance

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"daycare/backend/foundation/web"
)

// timeLayouts are the accepted shapes for time-like input, tried in order.
// Full timestamps are accepted because kiosk clients send the device clock
// as-is; only the clock part is kept.
var timeLayouts = []string{
	"15:04:05",
	"15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeTime converts a time-like input string into the canonical
// HH:MM:SS form used for storage and comparison.
func NormalizeTime(value string) (string, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04:05"), nil
		}
	}

	return "", web.NewRequestError(errors.Errorf("invalid time value %q", value), http.StatusBadRequest)
}

// clockToSeconds converts a normalized HH:MM:SS string into seconds since
// midnight.
func clockToSeconds(value string) (int, bool) {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return 0, false
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
}

// secondsToClock is the inverse of clockToSeconds.
func secondsToClock(seconds int) string {
	return time.Date(0, 1, 1, 0, 0, seconds, 0, time.UTC).Format("15:04:05")
}

// totalHours renders the attended duration as HH:MM, empty while the child is
// still present.
func totalHours(checkIn, checkOut *string) string {
	if checkIn == nil || checkOut == nil {
		return ""
	}

	in, okIn := clockToSeconds(*checkIn)
	out, okOut := clockToSeconds(*checkOut)
	if !okIn || !okOut || out < in {
		return ""
	}

	diff := out - in
	return time.Date(0, 1, 1, 0, 0, diff, 0, time.UTC).Format("15:04")
}
