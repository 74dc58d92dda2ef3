package domain

import (
	"strings"
	"time"
)

// Cadence defines how often an action item reminder fires
type Cadence string

const (
	CadenceDaily   Cadence = "DAILY"
	CadenceWeekly  Cadence = "WEEKLY"
	CadenceMonthly Cadence = "MONTHLY"
)

// Cadences lists all valid cadences in notification order
var Cadences = []Cadence{CadenceDaily, CadenceWeekly, CadenceMonthly}

// ParseCadence converts user input to a Cadence, case-insensitively
func ParseCadence(s string) (Cadence, bool) {
	switch Cadence(strings.ToUpper(strings.TrimSpace(s))) {
	case CadenceDaily:
		return CadenceDaily, true
	case CadenceWeekly:
		return CadenceWeekly, true
	case CadenceMonthly:
		return CadenceMonthly, true
	}
	return "", false
}

// Emoji returns the icon used in reminder headers for this cadence
func (c Cadence) Emoji() string {
	switch c {
	case CadenceDaily:
		return "🌅"
	case CadenceWeekly:
		return "📅"
	case CadenceMonthly:
		return "🗓️"
	}
	return "⏰"
}

// ValidDay reports whether t falls on a day this cadence notifies on.
// Daily items notify every day, weekly items on Mondays, monthly items
// on the first of the month.
func (c Cadence) ValidDay(t time.Time) bool {
	switch c {
	case CadenceDaily:
		return true
	case CadenceWeekly:
		return t.Weekday() == time.Monday
	case CadenceMonthly:
		return t.Day() == 1
	}
	return false
}

// Daily notification schedule
const (
	NotifyHour   = 8
	NotifyMinute = 0
	TimezoneName = "America/New_York"
)

// Scheduling retry limits
const (
	InitialCheckDelay    = 5 * time.Second
	MinEarlyRetryDelay   = 30 * time.Second
	MaxEarlyFireAttempts = 5
)

// MaxDescriptionLength caps action item descriptions
const MaxDescriptionLength = 100

// DateLayout is the canonical date-only format used in stored records
const DateLayout = "2006-01-02"

// FormatDate renders t as a date-only string in the canonical layout
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FeedbackKind distinguishes general feedback from feature requests
type FeedbackKind string

const (
	FeedbackGeneral FeedbackKind = "feedback"
	FeedbackFeature FeedbackKind = "featurerequest"
)

// Label returns the heading used when relaying a submission
func (k FeedbackKind) Label() string {
	if k == FeedbackFeature {
		return "FEATURE REQUEST"
	}
	return "FEEDBACK"
}
