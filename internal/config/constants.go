package config

import "time"

// Scheduler cadences.
const (
	ClockInterval      = time.Second
	NextPrayerInterval = time.Minute
	SyncInterval       = 5 * time.Minute
)

// Tasbeeh rules.
const (
	DefaultTasbeehGoal = 300
	MilestoneEvery     = 33
)

// Next-prayer hour thresholds: before hour[i] the next prayer is index i.
var NextPrayerHours = [5]int{6, 12, 15, 18, 20}

// Seasonal swing applied to Fajr and Maghrib, in minutes.
const SeasonalAmplitude = 30.0

// Database/application settings.
const (
	AppName         = "deen"
	DBFileName      = "deen.db"
	LogFileName     = "deen.log"
	StateKey        = "deenRoutineData"
	DefaultLocation = "New Delhi, India"
	DefaultTheme    = "default"
	ReportDays      = 7
)

// Settings table keys.
const (
	SettingTheme = "theme"
)
