package handlers

import (
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/zigbotdev/zigbot/internal/domain/contract"
	"github.com/zigbotdev/zigbot/internal/domain/service"
	slackcmd "github.com/zigbotdev/zigbot/internal/slack"
)

// ImageToGifHandler serves /imagetogif. Conversions run in the
// background so the slash command can be acknowledged within Slack's
// response window.
type ImageToGifHandler struct {
	svc         contract.GifService
	slackClient contract.SlackClient
	log         *logrus.Entry

	wg sync.WaitGroup
}

func NewImageToGifHandler(svc contract.GifService, slackClient contract.SlackClient, log *logrus.Logger) *ImageToGifHandler {
	return &ImageToGifHandler{
		svc:         svc,
		slackClient: slackClient,
		log:         log.WithField("component", "handler.imagetogif"),
	}
}

func (h *ImageToGifHandler) Name() string { return "imagetogif" }

func (h *ImageToGifHandler) Commands() []string { return []string{"/imagetogif"} }

func (h *ImageToGifHandler) Initialize() error { return nil }

// Shutdown waits for in-flight conversions to finish
func (h *ImageToGifHandler) Shutdown() { h.wg.Wait() }

func (h *ImageToGifHandler) Handle(cmd *slackcmd.Command, req *slack.SlashCommand) (*slack.Msg, bool) {
	if !slashMatches(h.Commands(), cmd.Slash) {
		return nil, false
	}

	imageURL := strings.TrimSpace(slackcmd.UnwrapLinks(cmd.Raw))
	if imageURL == "" {
		return createErrorResponse("Please provide an image URL: `/imagetogif <image-url>`"), true
	}

	channelID, userID := req.ChannelID, req.UserID
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.convert(channelID, userID, imageURL)
	}()

	return ephemeralResponse("⏳ Converting your image to GIF... The result will be posted to this channel shortly."), true
}

func (h *ImageToGifHandler) convert(channelID, userID, imageURL string) {
	err := h.svc.Convert(channelID, userID, imageURL)
	if err == nil {
		return
	}

	h.log.WithError(err).WithFields(logrus.Fields{
		"channel": channelID,
		"user":    userID,
	}).Error("image conversion failed")

	if _, err := h.slackClient.PostEphemeral(channelID, userID, slack.MsgOptionText(conversionErrorText(err), false)); err != nil {
		h.log.WithError(err).Error("failed to deliver conversion error")
	}
}

func conversionErrorText(err error) string {
	switch {
	case errors.Is(err, service.ErrUnsupportedImage):
		return "❌ Please provide a valid image file (PNG, JPG, JPEG, BMP, WEBP)."
	case errors.Is(err, service.ErrImageTooLarge):
		return "❌ Image file is too large. Please use an image smaller than 8MB."
	case errors.Is(err, service.ErrImageUnreadable):
		return "❌ Failed to download or process the image. Please try again."
	case errors.Is(err, service.ErrGifEncode):
		return "❌ Failed to convert image to GIF format. Please try again."
	}
	return "❌ An error occurred while converting your image. Please try again."
}
