package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/logger"
)

func Test_feedbackService_Submit(t *testing.T) {
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	t.Run("Should relay the message and return a reference code", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newFeedback(m.mockSlackClient, "C999", fixedClock{now: now}, logger.New("error"))

		m.mockSlackClient.EXPECT().
			PostMessage("C999", gomock.Any()).
			Return("C999", "165.1", nil).Times(1)

		ref, err := s.Submit(domain.FeedbackGeneral, "U123", "dana", "Love the bot", "")
		require.NoError(t, err)
		assert.Len(t, ref, 8)
	})

	t.Run("Should report an unconfigured relay channel", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newFeedback(m.mockSlackClient, "", fixedClock{now: now}, logger.New("error"))

		_, err := s.Submit(domain.FeedbackGeneral, "U123", "dana", "Love the bot", "")
		require.ErrorIs(t, err, ErrFeedbackNotConfigured)
	})

	t.Run("Should return error when posting fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newFeedback(m.mockSlackClient, "C999", fixedClock{now: now}, logger.New("error"))

		m.mockSlackClient.EXPECT().
			PostMessage("C999", gomock.Any()).
			Return("", "", assert.AnError).Times(1)

		_, err := s.Submit(domain.FeedbackFeature, "U123", "dana", "Add dark mode", "")
		require.Error(t, err)
	})
}

func Test_feedbackMessage(t *testing.T) {
	at := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	t.Run("Should include the category when present", func(t *testing.T) {
		got := feedbackMessage(domain.FeedbackFeature, "U123", "dana", "Add dark mode", "ui", "abc12345", at)

		want := "🔔 *New FEATURE REQUEST*\n\n" +
			"👤 *User:* dana (`U123`)\n" +
			"🏷️ *Category:* ui\n" +
			"💬 *Message:*\nAdd dark mode\n\n" +
			fmt.Sprintf("_Submitted at: <!date^%d^{date_long} at {time}|Tue, 03 Jun 2025 12:00:00 UTC>_\n", at.Unix()) +
			"_Reference: `abc12345`_"
		assert.Equal(t, want, got)
	})

	t.Run("Should omit the category line when absent", func(t *testing.T) {
		got := feedbackMessage(domain.FeedbackGeneral, "U123", "dana", "Love the bot", "", "abc12345", at)

		want := "🔔 *New FEEDBACK*\n\n" +
			"👤 *User:* dana (`U123`)\n" +
			"💬 *Message:*\nLove the bot\n\n" +
			fmt.Sprintf("_Submitted at: <!date^%d^{date_long} at {time}|Tue, 03 Jun 2025 12:00:00 UTC>_\n", at.Unix()) +
			"_Reference: `abc12345`_"
		assert.Equal(t, want, got)
	})
}
