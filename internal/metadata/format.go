// Package metadata reduces yt-dlp's full metadata object to the small stable
// schema persisted in .info.json sidecar files.
package metadata

import (
	"fmt"
	"time"
)

// FormatDuration converts a duration in seconds to "HH:MM:SS" (one hour or
// longer) or "MM:SS". Zero or negative durations format as "Unknown".
func FormatDuration(secs float64) string {
	if secs <= 0 {
		return "Unknown"
	}
	total := int(secs)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatDate reformats an 8-digit YYYYMMDD string into a long-form date like
// "June 15, 2023". Empty input formats as "Unknown"; anything that does not
// parse as YYYYMMDD passes through unchanged.
func FormatDate(dateStr string) string {
	if dateStr == "" {
		return "Unknown"
	}
	t, err := time.Parse("20060102", dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("January 02, 2006")
}
