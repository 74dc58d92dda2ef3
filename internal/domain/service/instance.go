package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zigbotdev/zigbot/internal/config"
	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/contract"
)

// Instance aggregates the bot's feature services
type Instance struct {
	ActionItem contract.ActionItemService
	Crossword  contract.CrosswordService
	Feedback   contract.FeedbackService
	Gif        contract.GifService

	// Location is the bot's home timezone, shared with handlers that
	// render dates
	Location *time.Location
}

func New(dm contract.DataManager, slackClient contract.SlackClient, cfg *config.Config, log *logrus.Logger) (*Instance, error) {
	loc, err := time.LoadLocation(domain.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", domain.TimezoneName, err)
	}

	clock := realClock{}
	return &Instance{
		ActionItem: newActionItem(dm, slackClient, loc, clock, log),
		Crossword:  newCrossword(dm, slackClient, loc, clock, log),
		Feedback:   newFeedback(slackClient, cfg.FeedbackChannelID, clock, log),
		Gif:        newGif(slackClient, &http.Client{Timeout: 30 * time.Second}, log),
		Location:   loc,
	}, nil
}
