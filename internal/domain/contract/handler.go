package contract

import (
	"github.com/slack-go/slack"

	slackcmd "github.com/zigbotdev/zigbot/internal/slack"
)

// CommandHandler is implemented by each bot feature. Handle returns the
// response for a slash command plus true when the command belongs to this
// handler, or false to let the next handler try it.
type CommandHandler interface {
	// Name identifies the handler in logs
	Name() string

	// Commands lists the slash commands this handler accepts
	Commands() []string

	// Handle processes a parsed slash command
	Handle(cmd *slackcmd.Command, req *slack.SlashCommand) (*slack.Msg, bool)

	// Initialize starts any background work the handler needs
	Initialize() error

	// Shutdown stops background work and releases resources
	Shutdown()
}
