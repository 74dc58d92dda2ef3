package entity

import "fmt"

// ChannelRecord holds per-channel crossword tracking state: the channel
// being watched, the last date a leaderboard was posted for, and the
// channel's completion streak counters.
type ChannelRecord struct {
	ChannelID      string `json:"channelId"`
	LastPostedDate string `json:"lastPostedDate,omitempty"`
	CurrentStreak  int    `json:"currentStreak"`
	BestStreak     int    `json:"bestStreak"`
}

// HasPostedFor reports whether a leaderboard was already posted for date
func (c *ChannelRecord) HasPostedFor(date string) bool {
	return c.LastPostedDate != "" && c.LastPostedDate == date
}

// IncrementStreak extends the streak and raises the best if surpassed
func (c *ChannelRecord) IncrementStreak() {
	c.CurrentStreak++
	if c.CurrentStreak > c.BestStreak {
		c.BestStreak = c.CurrentStreak
	}
}

// ResetStreak zeroes the current streak, leaving the best untouched
func (c *ChannelRecord) ResetStreak() {
	c.CurrentStreak = 0
}

// Clone returns an independent copy of the record
func (c *ChannelRecord) Clone() *ChannelRecord {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Completion is a single solved crossword: who, how fast, and the puzzle URL
type Completion struct {
	UserID      string `json:"userId"`
	TimeSeconds int    `json:"timeInSeconds"`
	OriginalURL string `json:"originalUrl"`
}

// FormattedTime renders the solve time as M:SS
func (c Completion) FormattedTime() string {
	return fmt.Sprintf("%d:%02d", c.TimeSeconds/60, c.TimeSeconds%60)
}

// CompletionRecord pairs a completion with the puzzle date it belongs to
type CompletionRecord struct {
	Date       string
	Completion Completion
}

// UserStats summarizes a user's completion history in one channel
type UserStats struct {
	Total          int
	Best           CompletionRecord
	AverageSeconds int
	MostRecent     CompletionRecord
}
