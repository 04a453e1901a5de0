package prayer

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/models"
)

// NextByHour picks the next prayer index from fixed hour thresholds. It does
// not look at the estimated times, so a seasonal shift can make it disagree
// with them: in June Maghrib falls at 19:05, yet from 18:00 this already
// points at Isha.
func NextByHour(now time.Time) int {
	h := now.Hour()
	for i, limit := range config.NextPrayerHours {
		if h < limit {
			return i
		}
	}
	return 0
}

// NextByTimes picks the first prayer whose estimated time is still ahead of
// now, wrapping to Fajr after Isha. Records with unparsable times are skipped.
func NextByTimes(prayers []models.PrayerRecord, now time.Time) int {
	cur := now.Hour()*60 + now.Minute()
	for i, p := range prayers {
		h, m, err := ParseClock(p.Time)
		if err != nil {
			continue
		}
		if h*60+m > cur {
			return i
		}
	}
	return 0
}

// MarkNext returns a copy of prayers with only index idx flagged as next.
// Completed flags are preserved.
func MarkNext(prayers []models.PrayerRecord, idx int) []models.PrayerRecord {
	out := make([]models.PrayerRecord, len(prayers))
	for i, p := range prayers {
		p.IsNext = i == idx
		out[i] = p
	}
	return out
}

// ParseClock parses an HH:MM 24-hour string.
func ParseClock(s string) (int, int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("parse time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("parse time %q: out of range", s)
	}
	return h, m, nil
}

// Clock12 renders an HH:MM value as "5:45 AM".
func Clock12(s string) string {
	h, m, err := ParseClock(s)
	if err != nil {
		return s
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

// TimeUntil formats the gap between now and the prayer's time today:
// "Now" once it has passed, otherwise "2h 5m" or "12m".
func TimeUntil(p models.PrayerRecord, now time.Time) string {
	h, m, err := ParseClock(p.Time)
	if err != nil {
		return ""
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	diff := at.Sub(now)
	if diff <= 0 {
		return "Now"
	}
	hours := int(diff / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
