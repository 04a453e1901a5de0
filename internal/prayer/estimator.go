// Package prayer derives approximate daily prayer times and picks the next
// prayer. The seasonal model is a deliberate approximation: it shifts Fajr and
// Maghrib by up to half an hour over the year and ignores location entirely.
package prayer

import (
	"fmt"
	"math"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/models"
)

// Estimator maps a calendar date to the five prayer records in fixed order.
type Estimator interface {
	Estimate(date time.Time) []models.PrayerRecord
}

type clock struct {
	hour, minute int
}

var baseTimes = map[models.PrayerName]clock{
	models.Fajr:    {5, 45},
	models.Dhuhr:   {13, 30},
	models.Asr:     {17, 15},
	models.Maghrib: {18, 35},
	models.Isha:    {20, 30},
}

var arabicNames = map[models.PrayerName]string{
	models.Fajr:    "الفجر",
	models.Dhuhr:   "الظهر",
	models.Asr:     "العصر",
	models.Maghrib: "المغرب",
	models.Isha:    "العشاء",
}

// Seasonal is the sinusoidal month-based estimator.
type Seasonal struct{}

// SeasonalOffset returns the whole-minute shift for the month of date,
// truncated toward zero. Month 3 is the zero crossing; June peaks at +30,
// December bottoms at -30. sin(pi/6) is just under 0.5 in float64, so April
// lands on +14, not +15.
func SeasonalOffset(date time.Time) int {
	month := float64(date.Month())
	raw := math.Sin((month-3)*math.Pi/6) * config.SeasonalAmplitude
	return int(raw)
}

func (Seasonal) Estimate(date time.Time) []models.PrayerRecord {
	offset := SeasonalOffset(date)
	out := make([]models.PrayerRecord, 0, len(models.PrayerOrder))
	for _, name := range models.PrayerOrder {
		base := baseTimes[name]
		total := base.hour*60 + base.minute
		if name == models.Fajr || name == models.Maghrib {
			total += offset
		}
		total = ((total % (24 * 60)) + 24*60) % (24 * 60)
		out = append(out, models.PrayerRecord{
			Name:   name,
			Time:   fmt.Sprintf("%02d:%02d", total/60, total%60),
			Arabic: arabicNames[name],
		})
	}
	return out
}
