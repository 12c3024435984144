package formatting

import (
	"fmt"
	"time"
)

// RelativeTime describes how long ago past was relative to now.
// Buckets use floor division of the elapsed seconds:
//
//	< 1 minute  "just now"
//	< 1 hour    "{n} min"
//	< 1 day     "{n} hour(s)"
//	< 1 week    "{n} day(s)"
//	< 4 weeks   "{n} week(s)"
//	otherwise   past as YYYY-MM-DD in UTC
func RelativeTime(past, now time.Time) string {
	seconds := int64(now.Sub(past) / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	weeks := days / 7

	switch {
	case seconds < 60:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	case hours < 24:
		return plural(hours, "hour")
	case days < 7:
		return plural(days, "day")
	case weeks < 4:
		return plural(weeks, "week")
	}

	return past.UTC().Format(time.DateOnly)
}

// TimeAgo is RelativeTime against the current clock
func TimeAgo(past time.Time) string {
	return RelativeTime(past, time.Now())
}

func plural(n int64, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, unit)
	}
	return fmt.Sprintf("%d %s", n, unit)
}
