package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/contract"
	"github.com/zigbotdev/zigbot/internal/domain/service"
	slackcmd "github.com/zigbotdev/zigbot/internal/slack"
)

// FeedbackHandler serves /feedback and /featurerequest
type FeedbackHandler struct {
	svc contract.FeedbackService
	log *logrus.Entry
}

func NewFeedbackHandler(svc contract.FeedbackService, log *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		svc: svc,
		log: log.WithField("component", "handler.feedback"),
	}
}

func (h *FeedbackHandler) Name() string { return "feedback" }

func (h *FeedbackHandler) Commands() []string { return []string{"/feedback", "/featurerequest"} }

func (h *FeedbackHandler) Initialize() error { return nil }

func (h *FeedbackHandler) Shutdown() {}

func (h *FeedbackHandler) Handle(cmd *slackcmd.Command, req *slack.SlashCommand) (*slack.Msg, bool) {
	if !slashMatches(h.Commands(), cmd.Slash) {
		return nil, false
	}

	kind := domain.FeedbackGeneral
	if cmd.Slash == "/featurerequest" {
		kind = domain.FeedbackFeature
	}

	category, message := splitCategory(cmd.Raw)
	if message == "" {
		return createErrorResponse("Message cannot be empty! Please provide your feedback or feature request."), true
	}

	ref, err := h.svc.Submit(kind, req.UserID, req.UserName, message, category)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotConfigured) {
			return createErrorResponse("Feedback system is not configured. Please contact an administrator."), true
		}
		h.log.WithError(err).WithField("user", req.UserID).Error("failed to relay feedback")
		if kind == domain.FeedbackFeature {
			return createErrorResponse("Failed to submit feature request. Please try again later or contact an administrator."), true
		}
		return createErrorResponse("Failed to submit feedback. Please try again later or contact an administrator."), true
	}

	thanks := "✅ Thank you for your feedback! It has been forwarded to the development team."
	if kind == domain.FeedbackFeature {
		thanks = "✅ Thank you for your feature request! It has been forwarded to the development team."
	}
	return ephemeralResponse(fmt.Sprintf("%s\n_Reference: `%s`_", thanks, ref)), true
}

// splitCategory peels an optional leading [category] tag off the text.
// Text without the tag comes back whole with an empty category.
func splitCategory(text string) (category, message string) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") {
		return "", trimmed
	}
	end := strings.IndexByte(trimmed, ']')
	if end < 0 {
		return "", trimmed
	}
	return strings.TrimSpace(trimmed[1:end]), strings.TrimSpace(trimmed[end+1:])
}
