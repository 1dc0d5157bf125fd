package utils

import (
	"fmt"
	"time"
)

// Korea Standard Time (KST, +09:00)
var kstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

func KST() *time.Location { return kstLoc }

// ParseClock parses an "HH:MM" wall-clock string.
func ParseClock(s string) (hour, minute int, err error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return 0, 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	fmt.Sscanf(s, "%d:%d", &hour, &minute)
	return hour, minute, nil
}

// FormatClock renders a time as "HH:MM".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSecondsKST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(kstLoc)
}

func FormatRFC3339KST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kstLoc).Format(time.RFC3339)
}
