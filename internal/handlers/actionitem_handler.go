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

// ActionItemHandler serves /actionitem and its /ai shorthand
type ActionItemHandler struct {
	svc         contract.ActionItemService
	slackClient contract.SlackClient
	devCommands bool
	log         *logrus.Entry
}

func NewActionItemHandler(svc contract.ActionItemService, slackClient contract.SlackClient, devCommands bool, log *logrus.Logger) *ActionItemHandler {
	return &ActionItemHandler{
		svc:         svc,
		slackClient: slackClient,
		devCommands: devCommands,
		log:         log.WithField("component", "handler.actionitem"),
	}
}

func (h *ActionItemHandler) Name() string { return "actionitem" }

func (h *ActionItemHandler) Commands() []string { return []string{"/actionitem", "/ai"} }

// Initialize starts the daily reminder schedule
func (h *ActionItemHandler) Initialize() error {
	h.svc.Start()
	return nil
}

func (h *ActionItemHandler) Shutdown() { h.svc.Stop() }

func (h *ActionItemHandler) Handle(cmd *slackcmd.Command, req *slack.SlashCommand) (*slack.Msg, bool) {
	if !slashMatches(h.Commands(), cmd.Slash) {
		return nil, false
	}

	switch cmd.Sub {
	case "":
		return createErrorResponse("Please specify a subcommand. Use `/actionitem help` for more information."), true
	case slackcmd.SubAdd:
		return h.handleAdd(cmd, req), true
	case slackcmd.SubList:
		return h.handleList(req), true
	case slackcmd.SubRemove:
		return h.handleRemove(cmd, req), true
	case slackcmd.SubAssign:
		return h.handleAssign(cmd, req), true
	case slackcmd.SubHelp:
		return ephemeralResponse(slackcmd.ActionItemHelpText()), true
	case slackcmd.SubTest:
		return h.handleTest(), true
	default:
		return createErrorResponse("Unknown subcommand. Use `/actionitem help` for available commands."), true
	}
}

func (h *ActionItemHandler) handleAdd(cmd *slackcmd.Command, req *slack.SlashCommand) *slack.Msg {
	var cadence, description string
	if len(cmd.Args) > 0 {
		cadence = cmd.Args[0]
	}
	if len(cmd.Args) > 1 {
		description = strings.Join(cmd.Args[1:], " ")
	}

	item, err := h.svc.AddItem(req.TeamID, req.ChannelID, req.UserID, cadence, description)
	if err != nil {
		return createErrorResponse(err.Error())
	}

	return inChannelResponse(fmt.Sprintf("✅ Added action item: *%s* (%s)\nID: `%s`",
		item.Description, item.Cadence, item.ID))
}

func (h *ActionItemHandler) handleList(req *slack.SlashCommand) *slack.Msg {
	items, err := h.svc.ListItems(req.TeamID, req.ChannelID)
	if err != nil {
		return createErrorResponse(err.Error())
	}

	var b strings.Builder
	b.WriteString("📋 *Action Items for this channel:*\n\n")

	if len(items) == 0 {
		b.WriteString("No action items found in this channel. Use `/actionitem add` to create the first one!")
		return inChannelResponse(b.String())
	}

	for _, item := range items {
		cadence, _ := domain.ParseCadence(item.Cadence)
		owner := userDisplayName(h.slackClient, h.log, item.OwnerUserID)
		fmt.Fprintf(&b, "🔹 *#%s* - %s (%s %s) - _Assigned to: %s_\n",
			item.ID, item.Description, cadence.Emoji(), item.Cadence, owner)
	}

	return inChannelResponse(b.String())
}

func (h *ActionItemHandler) handleRemove(cmd *slackcmd.Command, req *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return createErrorResponse("Please provide an item ID: `/actionitem remove <id>`")
	}
	itemID := cmd.Args[0]

	removed, err := h.svc.RemoveItem(req.TeamID, req.ChannelID, itemID)
	if errors.Is(err, service.ErrItemNotFound) {
		return createErrorResponse(fmt.Sprintf("Action item with ID `%s` not found in this channel.", itemID))
	}
	if err != nil {
		return createErrorResponse("Failed to remove action item.")
	}

	return inChannelResponse(fmt.Sprintf("✅ Removed action item: *%s*", removed.Description))
}

func (h *ActionItemHandler) handleAssign(cmd *slackcmd.Command, req *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return createErrorResponse("Please provide an item ID and a user: `/actionitem assign <id> <@user>`")
	}
	itemID := cmd.Args[0]
	newOwnerID := slackcmd.ExtractUserID(cmd.Args[1])
	if newOwnerID == "" {
		return createErrorResponse("Please mention a valid user: `/actionitem assign <id> <@user>`")
	}

	item, err := h.svc.GetItem(req.TeamID, req.ChannelID, itemID)
	if errors.Is(err, service.ErrItemNotFound) {
		return createErrorResponse(fmt.Sprintf("Action item with ID `%s` not found in this channel.", itemID))
	}
	if err != nil {
		return createErrorResponse("Failed to assign action item.")
	}

	oldOwner := userDisplayName(h.slackClient, h.log, item.OwnerUserID)
	newOwner := userDisplayName(h.slackClient, h.log, newOwnerID)

	if _, err := h.svc.ReassignItem(req.TeamID, req.ChannelID, itemID, newOwnerID); err != nil {
		return createErrorResponse("Failed to assign action item.")
	}

	return inChannelResponse(fmt.Sprintf(
		"✅ *Action Item Reassigned*\n\n📝 *Item #%s:* %s\n👤 *From:* %s\n👤 *To:* %s\n\n_The new owner will receive notifications for this item._",
		itemID, item.Description, oldOwner, newOwner))
}

func (h *ActionItemHandler) handleTest() *slack.Msg {
	if !h.devCommands {
		return createErrorResponse("Development commands are not enabled.")
	}
	h.svc.ForceRun()
	return ephemeralResponse("🧪 *Development Test Command*\nForcing daily notification check...")
}
