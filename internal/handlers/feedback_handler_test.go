package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/service"
	"github.com/zigbotdev/zigbot/internal/handlers/test"
)

func TestFeedbackHandler_Submit(t *testing.T) {
	type args struct {
		command string
		text    string
		userID  string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should submit feedback successfully",
			args: args{
				command: "/feedback",
				text:    "The reminders are super useful!",
				userID:  "U987654321",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.FeedbackServiceMock.EXPECT().
					Submit(domain.FeedbackGeneral, args.userID, "test-user", "The reminders are super useful!", "").
					Return("a1b2c3d4", nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "✅ Thank you for your feedback! It has been forwarded to the development team.")
				assert.Contains(t, response.Text, "_Reference: `a1b2c3d4`_")
			},
		},
		{
			name: "Should submit a feature request with a category",
			args: args{
				command: "/featurerequest",
				text:    "[ui] Dark mode for the leaderboard",
				userID:  "U987654321",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.FeedbackServiceMock.EXPECT().
					Submit(domain.FeedbackFeature, args.userID, "test-user", "Dark mode for the leaderboard", "ui").
					Return("e5f6a7b8", nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "✅ Thank you for your feature request! It has been forwarded to the development team.")
				assert.Contains(t, response.Text, "_Reference: `e5f6a7b8`_")
			},
		},
		{
			name: "Should keep an unclosed bracket as part of the message",
			args: args{
				command: "/feedback",
				text:    "[broken message",
				userID:  "U987654321",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.FeedbackServiceMock.EXPECT().
					Submit(domain.FeedbackGeneral, args.userID, "test-user", "[broken message", "").
					Return("a1b2c3d4", nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
			},
		},
		{
			name: "Should reject an empty message",
			args: args{
				command: "/feedback",
				text:    "   ",
				userID:  "U987654321",
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ Message cannot be empty! Please provide your feedback or feature request.")
			},
		},
		{
			name: "Should reject a category tag with no message",
			args: args{
				command: "/feedback",
				text:    "[ui]",
				userID:  "U987654321",
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "❌ Message cannot be empty!")
			},
		},
		{
			name: "Should explain when the relay channel is not configured",
			args: args{
				command: "/feedback",
				text:    "Love it",
				userID:  "U987654321",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.FeedbackServiceMock.EXPECT().
					Submit(domain.FeedbackGeneral, args.userID, "test-user", "Love it", "").
					Return("", service.ErrFeedbackNotConfigured).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "❌ Feedback system is not configured. Please contact an administrator.")
			},
		},
		{
			name: "Should report a relay failure for feedback",
			args: args{
				command: "/feedback",
				text:    "Love it",
				userID:  "U987654321",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.FeedbackServiceMock.EXPECT().
					Submit(domain.FeedbackGeneral, args.userID, "test-user", "Love it", "").
					Return("", assert.AnError).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "❌ Failed to submit feedback. Please try again later or contact an administrator.")
			},
		},
		{
			name: "Should report a relay failure for a feature request",
			args: args{
				command: "/featurerequest",
				text:    "Dark mode",
				userID:  "U987654321",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.FeedbackServiceMock.EXPECT().
					Submit(domain.FeedbackFeature, args.userID, "test-user", "Dark mode", "").
					Return("", assert.AnError).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "❌ Failed to submit feature request. Please try again later or contact an administrator.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m, tt.args)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, "C123456789", "test-channel", tt.args.userID, "T123456789")

			handler.HandleSlashCommand(recorder, req)

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}
