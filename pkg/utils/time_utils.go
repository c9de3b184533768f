package utils

import "time"

// Campus time (Pullman, WA).
var campusLoc = func() *time.Location {
	if loc, err := time.LoadLocation("America/Los_Angeles"); err == nil {
		return loc
	}
	return time.FixedZone("PST", -8*3600)
}()

// NowUnixSeconds is the unit every stored timestamp uses.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(campusLoc)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(campusLoc).Format(time.RFC3339)
}

// FormatDisplay renders a date for the routine guide, e.g. "October 14, 2026".
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(campusLoc).Format("January 2, 2006")
}
