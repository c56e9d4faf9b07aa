package checkins

import "time"

// Energy is the self-reported energy level attached to a check-in.
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

func ParseEnergy(value string) (Energy, bool) {
	switch Energy(value) {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return Energy(value), true
	default:
		return "", false
	}
}

// Checkin is one mood check-in: a 1..5 mood score, an energy level, and an
// optional free-text note.
type Checkin struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Mood      int       `json:"mood"`
	Energy    Energy    `json:"energy"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateInput struct {
	Mood   int    `json:"mood"`
	Energy string `json:"energy"`
	Note   string `json:"note"`
}

type CheckinResult struct {
	Source  string   `json:"source"`
	Checkin *Checkin `json:"checkin"`
}

type HistoryResult struct {
	Source   string    `json:"source"`
	Checkins []Checkin `json:"checkins"`
}

// WeekPoint is one point on the mood trend line: the average mood of all
// check-ins in the week starting at WeekStart (Monday, UTC).
type WeekPoint struct {
	WeekStart time.Time `json:"weekStart"`
	Average   float64   `json:"average"`
	Count     int       `json:"count"`
}

// DayCount is the number of check-ins on one weekday within the last seven
// days.
type DayCount struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

type Summary struct {
	Source   string      `json:"source"`
	Trend    []WeekPoint `json:"trend"`
	Activity []DayCount  `json:"activity"`
}
