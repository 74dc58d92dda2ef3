package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/contract"
	slackcmd "github.com/zigbotdev/zigbot/internal/slack"
)

const noCompletionsHint = "You haven't completed any crosswords yet! Share an LA Times Mini crossword message with your time and link in the tracking channel to get started."

// CrosswordHandler serves /crossword
type CrosswordHandler struct {
	svc         contract.CrosswordService
	slackClient contract.SlackClient
	loc         *time.Location
	devCommands bool
	log         *logrus.Entry
}

func NewCrosswordHandler(svc contract.CrosswordService, slackClient contract.SlackClient, loc *time.Location, devCommands bool, log *logrus.Logger) *CrosswordHandler {
	return &CrosswordHandler{
		svc:         svc,
		slackClient: slackClient,
		loc:         loc,
		devCommands: devCommands,
		log:         log.WithField("component", "handler.crossword"),
	}
}

func (h *CrosswordHandler) Name() string { return "crossword" }

func (h *CrosswordHandler) Commands() []string { return []string{"/crossword"} }

// Initialize starts the daily leaderboard schedule
func (h *CrosswordHandler) Initialize() error {
	h.svc.Start()
	return nil
}

func (h *CrosswordHandler) Shutdown() { h.svc.Stop() }

func (h *CrosswordHandler) Handle(cmd *slackcmd.Command, req *slack.SlashCommand) (*slack.Msg, bool) {
	if !slashMatches(h.Commands(), cmd.Slash) {
		return nil, false
	}

	switch cmd.Sub {
	case "":
		return createErrorResponse("Invalid crossword command"), true
	case slackcmd.SubStats:
		return h.handleStats(req), true
	case slackcmd.SubRecent:
		return h.handleRecent(cmd, req), true
	case slackcmd.SubBest:
		return h.handleBest(req), true
	case slackcmd.SubLeaderboard:
		return h.handleLeaderboard(cmd, req), true
	case slackcmd.SubSetChannel:
		return h.handleSetChannel(cmd, req), true
	case slackcmd.SubHelp:
		return ephemeralResponse(slackcmd.CrosswordHelpText()), true
	case slackcmd.SubTest:
		return h.handleTest(), true
	default:
		return createErrorResponse(fmt.Sprintf("Unknown crossword subcommand: %s", cmd.Sub)), true
	}
}

func (h *CrosswordHandler) handleStats(req *slack.SlashCommand) *slack.Msg {
	stats, err := h.svc.UserStats(req.TeamID, req.ChannelID, req.UserID)
	if err != nil {
		return createErrorResponse(err.Error())
	}
	if stats == nil {
		return ephemeralResponse("📊 " + noCompletionsHint)
	}

	return ephemeralResponse(fmt.Sprintf(
		"📊 *Your Crossword Statistics*\n\n"+
			"🧩 *Total Completions:* %d\n"+
			"🏆 *Best Time:* %s (%s)\n"+
			"📈 *Average Time:* %d:%02d\n"+
			"📅 *Most Recent:* %s (%s)\n\n"+
			"_Use `/crossword recent` to see your recent completions!_",
		stats.Total,
		stats.Best.Completion.FormattedTime(), stats.Best.Date,
		stats.AverageSeconds/60, stats.AverageSeconds%60,
		stats.MostRecent.Date, stats.MostRecent.Completion.FormattedTime()))
}

func (h *CrosswordHandler) handleRecent(cmd *slackcmd.Command, req *slack.SlashCommand) *slack.Msg {
	count := 5
	if len(cmd.Args) > 0 {
		if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
			count = n
		}
	}
	if count > 10 {
		count = 10
	}

	records, err := h.svc.RecentCompletions(req.TeamID, req.ChannelID, req.UserID, count)
	if err != nil {
		return createErrorResponse(err.Error())
	}
	if len(records) == 0 {
		return ephemeralResponse("📋 " + noCompletionsHint)
	}

	now := time.Now().In(h.loc)
	today := domain.FormatDate(now)
	yesterday := domain.FormatDate(now.AddDate(0, 0, -1))

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Your Recent Completions* (Last %d)\n\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. *%s* - %s (%s)\n",
			i+1, rec.Date, rec.Completion.FormattedTime(), relativeDay(rec.Date, today, yesterday))
	}

	return ephemeralResponse(b.String())
}

// relativeDay labels a stored date against today for recent listings
func relativeDay(date, today, yesterday string) string {
	switch date {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	}
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 02")
}

func (h *CrosswordHandler) handleBest(req *slack.SlashCommand) *slack.Msg {
	best, err := h.svc.BestCompletion(req.TeamID, req.ChannelID, req.UserID)
	if err != nil {
		return createErrorResponse(err.Error())
	}
	if best == nil {
		return ephemeralResponse("🏆 " + noCompletionsHint)
	}

	return ephemeralResponse(fmt.Sprintf(
		"🏆 *Your Best Time*\n\n⏱️ *Time:* %s\n📅 *Date:* %s\n\n_Keep practicing to beat your record!_",
		best.Completion.FormattedTime(), best.Date))
}

func (h *CrosswordHandler) handleLeaderboard(cmd *slackcmd.Command, req *slack.SlashCommand) *slack.Msg {
	target := time.Now().In(h.loc).AddDate(0, 0, -1)
	if len(cmd.Args) > 0 {
		parsed, ok := slackcmd.ParseFlexibleDate(cmd.Args[0])
		if !ok {
			return createErrorResponse("*Invalid date format!*\n\n" +
				"Please use one of these formats:\n" +
				"• `M/D/YY` (e.g., 8/9/25)\n" +
				"• `M/D/YYYY` (e.g., 8/9/2025)\n" +
				"• `M-D-YY` (e.g., 8-9-25)\n" +
				"• `M-D-YYYY` (e.g., 8-9-2025)\n" +
				"• `MM/DD/YY` (e.g., 08/09/25)\n" +
				"• `MM/DD/YYYY` (e.g., 08/09/2025)")
		}
		target = parsed
	}

	message, found, err := h.svc.Leaderboard(req.TeamID, req.ChannelID, target)
	if err != nil {
		return createErrorResponse(err.Error())
	}
	if !found {
		return ephemeralResponse(fmt.Sprintf(
			"📊 *No completions found for %s*\n\nTry a different date or check if anyone completed the crossword that day.",
			target.Format("January 2, 2006")))
	}

	return inChannelResponse(message)
}

// handleSetChannel registers the tracking channel, defaulting to the
// channel the command was issued in when no channel is named
func (h *CrosswordHandler) handleSetChannel(cmd *slackcmd.Command, req *slack.SlashCommand) *slack.Msg {
	user, err := h.slackClient.GetUserInfo(req.UserID)
	if err != nil {
		h.log.WithError(err).WithField("user", req.UserID).Error("failed to check admin status")
		return createErrorResponse("Failed to verify your permissions. Please try again.")
	}
	if !user.IsAdmin && !user.IsOwner {
		return createErrorResponse("You need to be a workspace admin to set the tracking channel.")
	}

	channelID := req.ChannelID
	if len(cmd.Args) > 0 {
		channelID = slackcmd.ExtractChannelID(cmd.Args[0])
		if channelID == "" {
			return createErrorResponse("Please provide a valid channel: `/crossword setchannel <#channel>`")
		}
	}

	if err := h.svc.SetTrackingChannel(req.TeamID, channelID); err != nil {
		return createErrorResponse(err.Error())
	}

	return ephemeralResponse(fmt.Sprintf(
		"✅ Crossword tracking channel set to <#%s>!\n\nUsers can now share LA Times Mini Crossword messages (with time in text) in that channel to track their times.",
		channelID))
}

func (h *CrosswordHandler) handleTest() *slack.Msg {
	if !h.devCommands {
		return createErrorResponse("Development commands are not enabled.")
	}
	h.svc.ForceRun()
	return ephemeralResponse("🧪 *Running daily leaderboard test...*\n\nThis will force a leaderboard check for yesterday's completions.")
}
