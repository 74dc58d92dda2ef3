package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zigbotdev/zigbot/internal/domain/service"
	"github.com/zigbotdev/zigbot/internal/handlers"
	"github.com/zigbotdev/zigbot/internal/handlers/test"
	"github.com/zigbotdev/zigbot/internal/logger"
	slackcmd "github.com/zigbotdev/zigbot/internal/slack"
	"github.com/zigbotdev/zigbot/mocks"
)

func newGifHandlerTest(t *testing.T) (svc *mocks.MockGifService, client *mocks.MockSlackClient, handler *handlers.ImageToGifHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	svc = mocks.NewMockGifService(ctrl)
	client = mocks.NewMockSlackClient(ctrl)
	handler = handlers.NewImageToGifHandler(svc, client, logger.New("error"))

	return
}

func TestImageToGifHandler_Convert(t *testing.T) {
	svc, _, handler, ctrl := newGifHandlerTest(t)
	defer ctrl.Finish()

	svc.EXPECT().
		Convert("C123456789", "U987654321", "https://example.com/photo.png").
		Return(nil).Times(1)

	msg, handled := handler.Handle(
		slackcmd.ParseCommand("/imagetogif", "<https://example.com/photo.png>"),
		&slack.SlashCommand{Command: "/imagetogif", ChannelID: "C123456789", UserID: "U987654321"})

	require.True(t, handled)
	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	assert.Contains(t, msg.Text, "⏳ Converting your image to GIF... The result will be posted to this channel shortly.")

	// join the background conversion before the controller asserts
	handler.Shutdown()
}

func TestImageToGifHandler_MissingURL(t *testing.T) {
	_, _, handler, ctrl := newGifHandlerTest(t)
	defer ctrl.Finish()

	msg, handled := handler.Handle(
		slackcmd.ParseCommand("/imagetogif", ""),
		&slack.SlashCommand{Command: "/imagetogif", ChannelID: "C123456789", UserID: "U987654321"})

	require.True(t, handled)
	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	assert.Contains(t, msg.Text, "❌ Please provide an image URL: `/imagetogif <image-url>`")
}

func TestImageToGifHandler_ConversionErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "Should report an unsupported image type", err: service.ErrUnsupportedImage},
		{name: "Should report an oversized image", err: service.ErrImageTooLarge},
		{name: "Should report an unreadable image", err: service.ErrImageUnreadable},
		{name: "Should report an encode failure", err: service.ErrGifEncode},
		{name: "Should report other failures generically", err: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client, handler, ctrl := newGifHandlerTest(t)
			defer ctrl.Finish()

			svc.EXPECT().
				Convert("C123456789", "U987654321", "https://example.com/photo.png").
				Return(tt.err).Times(1)

			client.EXPECT().
				PostEphemeral("C123456789", "U987654321", gomock.Any()).
				Return("", nil).Times(1)

			_, handled := handler.Handle(
				slackcmd.ParseCommand("/imagetogif", "https://example.com/photo.png"),
				&slack.SlashCommand{Command: "/imagetogif", ChannelID: "C123456789", UserID: "U987654321"})

			require.True(t, handled)

			handler.Shutdown()
		})
	}
}

func TestImageToGifHandler_DeclinesOtherCommands(t *testing.T) {
	_, _, handler, ctrl := newGifHandlerTest(t)
	defer ctrl.Finish()

	msg, handled := handler.Handle(
		slackcmd.ParseCommand("/feedback", "hello"),
		&slack.SlashCommand{Command: "/feedback"})

	require.False(t, handled)
	assert.Nil(t, msg)
}

func TestImageToGifHandler_ThroughSlashCommand(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := test.CreateTestRecorder()
	req := test.CreateSlackRequest(t, "/imagetogif", "", "C123456789", "test-channel", "U987654321", "T123456789")

	handler.HandleSlashCommand(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response slack.Msg
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Contains(t, response.Text, "❌ Please provide an image URL")
}
