package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/zigbotdev/zigbot/internal/domain/contract"
	slackcmd "github.com/zigbotdev/zigbot/internal/slack"
)

// SlackHandler is the HTTP entry point for slash commands and Events
// API callbacks. Slash commands go through the registry; message events
// feed the crossword tracker directly.
type SlackHandler struct {
	registry      *Registry
	slackClient   contract.SlackClient
	crossword     contract.CrosswordService
	signingSecret string
	log           *logrus.Entry
}

func New(registry *Registry, slackClient contract.SlackClient, crossword contract.CrosswordService, signingSecret string, log *logrus.Logger) *SlackHandler {
	return &SlackHandler{
		registry:      registry,
		slackClient:   slackClient,
		crossword:     crossword,
		signingSecret: signingSecret,
		log:           log.WithField("component", "handler.slack"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd := slackcmd.ParseCommand(s.Command, s.Text)
	response, handled := h.registry.Dispatch(cmd, &s)
	if !handled {
		h.log.WithField("command", s.Command).Warn("no handler for command")
		response = createErrorResponse(fmt.Sprintf("Unknown command: %s", s.Command))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		if ev, isMessage := event.InnerEvent.Data.(*slackevents.MessageEvent); isMessage {
			h.handleMessageEvent(event.TeamID, ev)
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

// handleMessageEvent feeds channel messages to the crossword tracker
// and acknowledges tracked completions with a reaction. Bot messages
// and message edits are ignored.
func (h *SlackHandler) handleMessageEvent(teamID string, ev *slackevents.MessageEvent) {
	if ev.BotID != "" || ev.SubType != "" {
		return
	}

	tracked, err := h.crossword.TrackMessage(teamID, ev.Channel, ev.User, ev.Text)
	if err != nil {
		h.log.WithError(err).WithField("channel", ev.Channel).Error("failed to track message")
		return
	}
	if !tracked {
		return
	}

	if err := h.slackClient.AddReaction("jigsaw", slack.NewRefToMessage(ev.Channel, ev.TimeStamp)); err != nil {
		h.log.WithError(err).WithField("channel", ev.Channel).Warn("failed to add tracking reaction")
	}
}

func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// verifiedBody reads the request body and checks the Slack signature,
// writing the failure status itself when verification does not pass
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}
	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func ephemeralResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func inChannelResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

// userDisplayName resolves the name shown for a user, falling back to a
// mention when the lookup fails
func userDisplayName(client contract.SlackClient, log *logrus.Entry, userID string) string {
	user, err := client.GetUserInfo(userID)
	if err != nil {
		log.WithError(err).WithField("user", userID).Warn("failed to resolve user name")
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
