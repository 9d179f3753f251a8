package dashboard

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tonhe/poewatch/internal/api"
)

// TimeLayout is used for absolute timestamps, rendered in local time.
const TimeLayout = "2006-01-02 15:04:05"

// FormatDivine renders a Divine Orb amount with one decimal, or "?".
func FormatDivine(v *float64) string {
	if v == nil {
		return "?"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// FormatROI renders a percentage without decimals, or "?%".
func FormatROI(v *float64) string {
	if v == nil {
		return "?%"
	}
	return strconv.FormatFloat(*v, 'f', 0, 64) + "%"
}

// FormatSuccessRate renders a 0..1 probability as a percentage with one
// decimal. A missing rate counts as zero.
func FormatSuccessRate(v *float64) string {
	rate := 0.0
	if v != nil {
		rate = *v
	}
	return strconv.FormatFloat(rate*100, 'f', 1, 64) + "%"
}

// FormatRate renders an exchange rate with fixed decimals, or "-".
func FormatRate(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatLevel renders a required level. Missing and zero both render "-".
func FormatLevel(v *int) string {
	if v == nil || *v == 0 {
		return "-"
	}
	return strconv.Itoa(*v)
}

// FormatTime renders t in local time, or "-" when unset.
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(TimeLayout)
}

func FormatTimestamp(ts *api.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return FormatTime(&ts.Time)
}

// FormatAgo renders t relative to now, e.g. "3 minutes ago".
func FormatAgo(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatClock renders only the time of day, as the header does.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "--:--:--"
	}
	return t.Local().Format("15:04:05")
}
