package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/contract"
	"github.com/zigbotdev/zigbot/internal/domain/entity"
)

const playTodayLink = "\n\n🧩 *<https://www.latimes.com/games/mini-crossword|Play Today's Mini Crossword>*"

type crosswordService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	clock       Clock
	loc         *time.Location
	log         *logrus.Entry
	job         *dailyJob
}

func newCrossword(dm contract.DataManager, slackClient contract.SlackClient, loc *time.Location, clock Clock, log *logrus.Logger) *crosswordService {
	s := &crosswordService{
		dm:          dm,
		slackClient: slackClient,
		clock:       clock,
		loc:         loc,
		log:         log.WithField("component", "service.crossword"),
	}
	s.job = newDailyJob("crossword", loc, clock, log, s.runDailyPost)
	return s
}

// Start launches the daily leaderboard schedule
func (s *crosswordService) Start() { s.job.Start() }

// Stop halts the daily leaderboard schedule
func (s *crosswordService) Stop() { s.job.Stop() }

// ForceRun posts yesterday's leaderboards immediately without touching
// posting or streak state
func (s *crosswordService) ForceRun() { s.job.Force() }

// TrackMessage scans a channel message for puzzle links and a solve
// time, recording one completion per valid link. Messages outside the
// tracking channel or without a recognizable time are ignored.
func (s *crosswordService) TrackMessage(serverID, channelID, userID, text string) (bool, error) {
	repo := s.dm.Crossword()
	if !repo.IsTrackingChannel(serverID, channelID) {
		return false, nil
	}

	seconds := extractTimeSeconds(text)
	if seconds < 0 {
		return false, nil
	}

	tracked := false
	for _, rawURL := range findPuzzleURLs(text) {
		date, ok := parsePuzzleDate(rawURL)
		if !ok {
			s.log.WithField("url", rawURL).Warn("puzzle link without a parseable date")
			continue
		}

		completion := entity.Completion{
			UserID:      userID,
			TimeSeconds: seconds,
			OriginalURL: rawURL,
		}
		if err := repo.AddCompletion(serverID, channelID, domain.FormatDate(date), completion); err != nil {
			return tracked, fmt.Errorf("failed to record completion: %w", err)
		}
		tracked = true

		s.log.WithFields(logrus.Fields{
			"user":    userID,
			"date":    domain.FormatDate(date),
			"seconds": seconds,
		}).Info("crossword completion recorded")
	}
	return tracked, nil
}

// SetTrackingChannel registers the channel that future completions and
// daily leaderboards belong to
func (s *crosswordService) SetTrackingChannel(serverID, channelID string) error {
	if err := s.dm.Crossword().AddTrackingChannel(serverID, channelID); err != nil {
		return fmt.Errorf("failed to register tracking channel: %w", err)
	}
	s.log.WithFields(logrus.Fields{"server": serverID, "channel": channelID}).Info("tracking channel set")
	return nil
}

// UserStats summarizes the user's completions in the channel. Returns
// nil when the user has none.
func (s *crosswordService) UserStats(serverID, channelID, userID string) (*entity.UserStats, error) {
	records, err := s.dm.Crossword().CompletionsForUser(serverID, channelID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	best := records[0]
	total := 0
	for _, rec := range records {
		total += rec.Completion.TimeSeconds
		if rec.Completion.TimeSeconds < best.Completion.TimeSeconds {
			best = rec
		}
	}

	return &entity.UserStats{
		Total:          len(records),
		Best:           best,
		AverageSeconds: total / len(records),
		MostRecent:     records[0],
	}, nil
}

// RecentCompletions returns the user's completions newest first, capped
// at limit when limit is positive
func (s *crosswordService) RecentCompletions(serverID, channelID, userID string, limit int) ([]entity.CompletionRecord, error) {
	records, err := s.dm.Crossword().CompletionsForUser(serverID, channelID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// BestCompletion returns the user's fastest solve, or nil when the user
// has none. Ties go to the most recent.
func (s *crosswordService) BestCompletion(serverID, channelID, userID string) (*entity.CompletionRecord, error) {
	records, err := s.dm.Crossword().CompletionsForUser(serverID, channelID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	best := records[0]
	for _, rec := range records {
		if rec.Completion.TimeSeconds < best.Completion.TimeSeconds {
			best = rec
		}
	}
	return &best, nil
}

// Leaderboard renders the ranking for one date with resolved display
// names instead of mentions. The bool result reports whether any
// completions exist for the date.
func (s *crosswordService) Leaderboard(serverID, channelID string, date time.Time) (string, bool, error) {
	completions, err := s.dm.Crossword().Completions(serverID, channelID, domain.FormatDate(date))
	if err != nil {
		return "", false, fmt.Errorf("failed to load completions: %w", err)
	}
	if len(completions) == 0 {
		return "", false, nil
	}
	return s.leaderboardMessage(date, completions, false, nil), true, nil
}

// runDailyPost publishes yesterday's leaderboard to every tracked
// channel. Scheduled runs skip channels that already posted for the
// date and persist posting and streak state after a successful send;
// forced runs post unconditionally and leave state alone.
func (s *crosswordService) runDailyPost(now time.Time, forced bool) {
	yesterday := now.In(s.loc).AddDate(0, 0, -1)

	for serverID, records := range s.dm.Crossword().TrackedChannels() {
		for _, record := range records {
			s.postChannelLeaderboard(serverID, record, yesterday, forced)
		}
	}

	if err := s.dm.Flush(); err != nil {
		s.log.WithError(err).Error("failed to flush state after leaderboard run")
	}
}

func (s *crosswordService) postChannelLeaderboard(serverID string, record *entity.ChannelRecord, day time.Time, forced bool) {
	repo := s.dm.Crossword()
	channelID := record.ChannelID
	date := domain.FormatDate(day)

	if !forced && repo.HasPostedForDate(serverID, channelID, date) {
		s.log.WithFields(logrus.Fields{"channel": channelID, "date": date}).Info("leaderboard already posted")
		return
	}

	completions, err := repo.Completions(serverID, channelID, date)
	if err != nil {
		s.log.WithError(err).WithField("channel", channelID).Error("failed to load completions")
		return
	}
	hadResults := len(completions) > 0

	// Scheduled posts show the streak values the channel will hold once
	// this post is recorded; forced posts show none.
	var streaks *streakDisplay
	if !forced {
		display := streakDisplay{best: record.BestStreak}
		if hadResults {
			display.current = record.CurrentStreak + 1
			if display.current > display.best {
				display.best = display.current
			}
		}
		streaks = &display
	}

	message := s.leaderboardMessage(day, completions, true, streaks)
	if _, _, err := s.slackClient.PostMessage(channelID, slack.MsgOptionText(message, false)); err != nil {
		s.log.WithError(err).WithField("channel", channelID).Error("failed to post leaderboard")
		return
	}

	if !forced {
		if err := repo.MarkPosted(serverID, channelID, date); err != nil {
			s.log.WithError(err).WithField("channel", channelID).Error("failed to record posted date")
		}
		if err := repo.UpdateStreak(serverID, channelID, hadResults); err != nil {
			s.log.WithError(err).WithField("channel", channelID).Error("failed to update streak")
		}
	}

	s.log.WithFields(logrus.Fields{
		"channel": channelID,
		"date":    date,
		"entries": len(completions),
	}).Info("leaderboard posted")
}

// streakDisplay carries the streak counters shown on scheduled posts
type streakDisplay struct {
	current int
	best    int
}

// leaderboardMessage builds the ranking text for one date. Entries are
// ordered fastest first; mentionUsers switches between mention tags and
// resolved display names.
func (s *crosswordService) leaderboardMessage(date time.Time, completions []entity.Completion, mentionUsers bool, streaks *streakDisplay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏆 *Mini Crossword Leaderboard - %s*\n\n", date.Format("January 2, 2006"))

	if len(completions) == 0 {
		b.WriteString("No completions recorded for this date.")
		if streaks != nil {
			fmt.Fprintf(&b, "\n🔥 Streak: *%d*  •  Best: *%d*", streaks.current, streaks.best)
		}
		b.WriteString(playTodayLink)
		return b.String()
	}

	sorted := make([]entity.Completion, len(completions))
	copy(sorted, completions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeSeconds < sorted[j].TimeSeconds
	})

	for i, entry := range sorted {
		display := "<@" + entry.UserID + ">"
		if !mentionUsers {
			display = s.resolveUserName(entry.UserID)
		}
		fmt.Fprintf(&b, "%s *#%d* - %s - %s\n", medalEmoji(i+1), i+1, display, formatDuration(entry.TimeSeconds))
	}

	if streaks != nil {
		fmt.Fprintf(&b, "\n🔥 Streak: *%d*  •  Best: *%d*", streaks.current, streaks.best)
	}
	b.WriteString("\n_Great job everyone! 🎉_")
	b.WriteString(playTodayLink)
	return b.String()
}

// resolveUserName looks up a display name, falling back to a mention
// when the lookup fails
func (s *crosswordService) resolveUserName(userID string) string {
	user, err := s.slackClient.GetUserInfo(userID)
	if err != nil {
		s.log.WithError(err).WithField("user", userID).Warn("failed to resolve user name")
		return "<@" + userID + ">"
	}
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.RealName != "" {
		return user.RealName
	}
	return user.Name
}

func medalEmoji(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return "🏅"
}

// formatDuration renders a solve time the way leaderboard entries show
// it: bare seconds under a minute, minutes and seconds above
func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
