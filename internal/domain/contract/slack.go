package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// PostEphemeral sends a message only the given user can see
	PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error)

	// AddReaction adds an emoji reaction to a message
	AddReaction(name string, item slack.ItemRef) error

	// UploadFileV2 uploads a file to a channel
	UploadFileV2(params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}
