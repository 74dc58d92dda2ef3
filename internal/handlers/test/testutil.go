package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/handlers"
	"github.com/zigbotdev/zigbot/internal/logger"
	"github.com/zigbotdev/zigbot/mocks"
)

// SigningSecret signs every request this package builds
const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	ActionItemServiceMock *mocks.MockActionItemService
	CrosswordServiceMock  *mocks.MockCrosswordService
	FeedbackServiceMock   *mocks.MockFeedbackService
	GifServiceMock        *mocks.MockGifService
	SlackClientMock       *mocks.MockSlackClient
}

// GetHandlerTest wires a SlackHandler over a registry of all feature
// handlers backed by mocks. Development commands are enabled.
func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ActionItemServiceMock: mocks.NewMockActionItemService(ctrl),
		CrosswordServiceMock:  mocks.NewMockCrosswordService(ctrl),
		FeedbackServiceMock:   mocks.NewMockFeedbackService(ctrl),
		GifServiceMock:        mocks.NewMockGifService(ctrl),
		SlackClientMock:       mocks.NewMockSlackClient(ctrl),
	}

	log := logger.New("error")
	loc, err := time.LoadLocation(domain.TimezoneName)
	require.NoError(t, err)

	registry := handlers.NewRegistry(log)
	registry.Register(handlers.NewActionItemHandler(m.ActionItemServiceMock, m.SlackClientMock, true, log))
	registry.Register(handlers.NewCrosswordHandler(m.CrosswordServiceMock, m.SlackClientMock, loc, true, log))
	registry.Register(handlers.NewFeedbackHandler(m.FeedbackServiceMock, log))
	registry.Register(handlers.NewImageToGifHandler(m.GifServiceMock, m.SlackClientMock, log))

	handler = handlers.New(registry, m.SlackClientMock, m.CrosswordServiceMock, SigningSecret, log)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, channelName, userID, teamID string) *http.Request {
	t.Helper()

	// Form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signRequest(req, body)

	return req
}

// CreateEventsRequest creates a properly signed Events API request
// carrying the given JSON body
func CreateEventsRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	signRequest(req, body)

	return req
}

func signRequest(req *http.Request, body string) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(SigningSecret, timestamp, body))
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
