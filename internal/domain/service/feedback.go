package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/contract"
)

// ErrFeedbackNotConfigured is returned when no relay channel is set
var ErrFeedbackNotConfigured = errors.New("feedback channel not configured")

type feedbackService struct {
	slackClient contract.SlackClient
	channelID   string
	clock       Clock
	log         *logrus.Entry
}

func newFeedback(slackClient contract.SlackClient, channelID string, clock Clock, log *logrus.Logger) *feedbackService {
	return &feedbackService{
		slackClient: slackClient,
		channelID:   channelID,
		clock:       clock,
		log:         log.WithField("component", "service.feedback"),
	}
}

// Submit relays the message to the feedback channel and returns the
// reference code attached to it
func (s *feedbackService) Submit(kind domain.FeedbackKind, userID, userName, message, category string) (string, error) {
	if strings.TrimSpace(s.channelID) == "" {
		return "", ErrFeedbackNotConfigured
	}

	ref := uuid.NewString()[:8]
	relay := feedbackMessage(kind, userID, userName, message, strings.TrimSpace(category), ref, s.clock.Now())
	if _, _, err := s.slackClient.PostMessage(s.channelID, slack.MsgOptionText(relay, false)); err != nil {
		return "", fmt.Errorf("failed to post to feedback channel: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user":      userID,
		"kind":      kind,
		"category":  category,
		"reference": ref,
	}).Info("feedback relayed")
	return ref, nil
}

// feedbackMessage builds the relay posted to the feedback channel.
// The message keeps the submitter's formatting untouched.
func feedbackMessage(kind domain.FeedbackKind, userID, userName, message, category, ref string, at time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔔 *New %s*\n\n", kind.Label())
	fmt.Fprintf(&b, "👤 *User:* %s (`%s`)\n", userName, userID)
	if category != "" {
		fmt.Fprintf(&b, "🏷️ *Category:* %s\n", category)
	}
	fmt.Fprintf(&b, "💬 *Message:*\n%s\n\n", message)
	fmt.Fprintf(&b, "_Submitted at: <!date^%d^{date_long} at {time}|%s>_\n", at.Unix(), at.UTC().Format(time.RFC1123))
	fmt.Fprintf(&b, "_Reference: `%s`_", ref)
	return b.String()
}
