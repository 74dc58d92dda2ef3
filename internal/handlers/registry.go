package handlers

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/zigbotdev/zigbot/internal/domain/contract"
	slackcmd "github.com/zigbotdev/zigbot/internal/slack"
)

// Registry dispatches slash commands to feature handlers in registration
// order and drives their lifecycle
type Registry struct {
	handlers []contract.CommandHandler
	log      *logrus.Entry
}

func NewRegistry(log *logrus.Logger) *Registry {
	return &Registry{log: log.WithField("component", "handler.registry")}
}

func (r *Registry) Register(h contract.CommandHandler) {
	r.handlers = append(r.handlers, h)
	r.log.WithFields(logrus.Fields{
		"handler":  h.Name(),
		"commands": h.Commands(),
	}).Info("handler registered")
}

// Dispatch offers the command to each handler and returns the first
// response. The bool result reports whether any handler accepted it.
func (r *Registry) Dispatch(cmd *slackcmd.Command, req *slack.SlashCommand) (*slack.Msg, bool) {
	for _, h := range r.handlers {
		if msg, handled := h.Handle(cmd, req); handled {
			return msg, true
		}
	}
	return nil, false
}

// Initialize starts every handler, stopping at the first failure
func (r *Registry) Initialize() error {
	for _, h := range r.handlers {
		if err := h.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize %s handler: %w", h.Name(), err)
		}
		r.log.WithField("handler", h.Name()).Info("handler initialized")
	}
	return nil
}

// Shutdown stops every handler in registration order
func (r *Registry) Shutdown() {
	for _, h := range r.handlers {
		h.Shutdown()
		r.log.WithField("handler", h.Name()).Info("handler stopped")
	}
}

// slashMatches reports whether slash is one of the handler's commands
func slashMatches(commands []string, slash string) bool {
	for _, c := range commands {
		if c == slash {
			return true
		}
	}
	return false
}
