// Package slack parses slash command text and the Slack-specific markup
// that arrives inside it (user mentions, channel references, wrapped
// links).
package slack

import (
	"regexp"
	"strings"
	"time"
)

// Subcommand names shared across features
const (
	SubAdd         = "add"
	SubList        = "list"
	SubRemove      = "remove"
	SubAssign      = "assign"
	SubStats       = "stats"
	SubRecent      = "recent"
	SubBest        = "best"
	SubLeaderboard = "leaderboard"
	SubSetChannel  = "setchannel"
	SubHelp        = "help"
	SubTest        = "test"
)

// Command is a parsed slash command invocation
type Command struct {
	// Slash is the command itself, e.g. "/actionitem"
	Slash string
	// Sub is the normalized first word of the text, "" when absent
	Sub string
	// Args holds the words after the subcommand
	Args []string
	// Raw is the untouched command text
	Raw string
}

// ParseCommand splits slash command text into subcommand and arguments.
// Common aliases are normalized (ls -> list, rm -> remove). Commands
// without subcommands read Raw instead.
func ParseCommand(slash, text string) *Command {
	cmd := &Command{
		Slash: slash,
		Raw:   text,
	}

	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return cmd
	}

	switch sub := strings.ToLower(parts[0]); sub {
	case "ls":
		cmd.Sub = SubList
	case "rm":
		cmd.Sub = SubRemove
	default:
		cmd.Sub = sub
	}
	cmd.Args = parts[1:]

	return cmd
}

var (
	userMentionRe = regexp.MustCompile(`^<@([A-Z0-9]+)(?:\|[^>]*)?>$`)
	channelRefRe  = regexp.MustCompile(`^<#([A-Z0-9]+)(?:\|[^>]*)?>$`)
)

// ExtractUserID pulls the user ID out of a mention token like
// <@U12345|name>. Bare IDs pass through; anything else returns "".
func ExtractUserID(token string) string {
	if m := userMentionRe.FindStringSubmatch(token); m != nil {
		return m[1]
	}
	if strings.HasPrefix(token, "U") || strings.HasPrefix(token, "W") {
		return token
	}
	return ""
}

// ExtractChannelID pulls the channel ID out of a reference token like
// <#C12345|name>. Bare IDs pass through; anything else returns "".
func ExtractChannelID(token string) string {
	if m := channelRefRe.FindStringSubmatch(token); m != nil {
		return m[1]
	}
	if strings.HasPrefix(token, "C") || strings.HasPrefix(token, "G") {
		return token
	}
	return ""
}

// UnwrapLinks rewrites Slack link markup <url|label> or <url> back to
// the bare URL everywhere it appears in text
func UnwrapLinks(text string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(text, '<')
		if start < 0 {
			b.WriteString(text)
			return b.String()
		}
		end := strings.IndexByte(text[start:], '>')
		if end < 0 {
			b.WriteString(text)
			return b.String()
		}
		end += start

		inner := text[start+1 : end]
		b.WriteString(text[:start])
		if strings.HasPrefix(inner, "http://") || strings.HasPrefix(inner, "https://") {
			if pipe := strings.IndexByte(inner, '|'); pipe >= 0 {
				inner = inner[:pipe]
			}
			b.WriteString(inner)
		} else {
			b.WriteString(text[start : end+1])
		}
		text = text[end+1:]
	}
}

var flexibleDateRe = regexp.MustCompile(`^(\d{1,2})([/-])(\d{1,2})([/-])(\d{2}|\d{4})$`)

// ParseFlexibleDate accepts M/D/YY, M/D/YYYY, M-D-YY and M-D-YYYY.
// Two digit years up to 30 land in the 2000s, the rest in the 1900s.
func ParseFlexibleDate(s string) (time.Time, bool) {
	m := flexibleDateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || m[2] != m[4] {
		return time.Time{}, false
	}

	month := atoi(m[1])
	day := atoi(m[3])
	year := atoi(m[5])
	if len(m[5]) == 2 {
		if year <= 30 {
			year += 2000
		} else {
			year += 1900
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 || year > 2100 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow like June 31, so round-trip to verify
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// ActionItemHelpText is the reply for /actionitem help
func ActionItemHelpText() string {
	return "🤖 *Action Item Bot Help*\n\n" +
		"*Commands:*\n" +
		"🌅 `/actionitem add <cadence> <description>` - Add a new action item\n" +
		"📋 `/actionitem list` - List your action items\n" +
		"🗑️ `/actionitem remove <id>` - Remove an action item by ID number\n" +
		"👤 `/actionitem assign <id> <@user>` - Assign an action item to another user\n" +
		"❓ `/actionitem help` - Show this help message\n\n" +
		"*Cadence Options:*\n" +
		"• `Daily` - Reminder every day at 8:00 AM Eastern\n" +
		"• `Weekly` - Reminder every Monday at 8:00 AM Eastern\n" +
		"• `Monthly` - Reminder on the 1st of each month at 8:00 AM Eastern\n\n" +
		"*Examples:*\n" +
		"`/actionitem add Daily Take vitamins`\n" +
		"`/actionitem assign 5 @teammate`\n\n" +
		"*Note:* Action items have global IDs and can be reassigned to any user. " +
		"`/ai` works as a shorthand for `/actionitem`."
}

// CrosswordHelpText is the reply for /crossword help
func CrosswordHelpText() string {
	return "🧩 *Mini Crossword Tracker Help (LA Times)*\n\n" +
		"*How to track completions:*\n" +
		"1. Complete the LA Times Mini Crossword\n" +
		"2. Post a message in the tracking channel that includes your time in text and the LA Times link\n" +
		"   • Example: \"I just solved this Crossword in 2 minutes and 13 seconds. Can you beat my time? https://www.latimes.com/games/mini-crossword?id=latimes-mini-20250827&set=latimes-mini&puzzleType=crossword\"\n" +
		"   • Or: \"I just solved this Crossword in 13 seconds. Can you beat my time? https://www.latimes.com/games/mini-crossword?id=latimes-mini-20250827&set=latimes-mini&puzzleType=crossword\"\n" +
		"3. The bot will record your completion!\n\n" +
		"*Available Commands:*\n" +
		"• `/crossword stats` - View your completion statistics\n" +
		"• `/crossword recent [count]` - View recent completions (default: 5)\n" +
		"• `/crossword best` - View your fastest completion time\n" +
		"• `/crossword leaderboard [date]` - View the channel leaderboard\n" +
		"• `/crossword help` - Show this help message\n\n" +
		"*Admin Commands:*\n" +
		"• `/crossword setchannel <#channel>` - Set the tracking channel\n\n" +
		"_The bot extracts the date from the link's `id` parameter (YYYYMMDD) and the time from your message text._"
}
