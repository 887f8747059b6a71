package utils

import "time"

const fileTimestampLayout = "2006-01-02_15-04-05"

// FileTimestamp formats t in UTC for use in file names
func FileTimestamp(t time.Time) string {
	return t.UTC().Format(fileTimestampLayout)
}
