package service

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// puzzleDateLayout is the digits-only date embedded in LA Times puzzle IDs
const puzzleDateLayout = "20060102"

var (
	// puzzleURLRe finds LA Times Mini Crossword links in message text.
	// Slack wraps links in <...|label>, so the match stops at those
	// delimiters as well as whitespace.
	puzzleURLRe = regexp.MustCompile(`https://www\.latimes\.com/games/mini-crossword\?[^\s>|]*`)

	minutesAndSecondsRe = regexp.MustCompile(`\b(\d+)\s+minutes?\s+and\s+(\d+)\s+seconds?\b`)
	secondsOnlyRe       = regexp.MustCompile(`\b(\d+)\s+seconds?\b`)
	minutesOnlyRe       = regexp.MustCompile(`\b(\d+)\s+minutes?\b`)

	nonDigitsRe = regexp.MustCompile(`\D`)
)

// findPuzzleURLs returns every LA Times Mini Crossword link in text
func findPuzzleURLs(text string) []string {
	return puzzleURLRe.FindAllString(text, -1)
}

// parsePuzzleDate extracts the puzzle date from a crossword link's id
// query parameter. The id holds the date as eight digits (e.g.
// latimes-mini-20250827); anything else fails the parse.
func parsePuzzleDate(rawURL string) (time.Time, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return time.Time{}, false
	}

	id := u.Query().Get("id")
	if id == "" {
		return time.Time{}, false
	}

	digits := nonDigitsRe.ReplaceAllString(id, "")
	if len(digits) != len(puzzleDateLayout) {
		return time.Time{}, false
	}

	t, err := time.Parse(puzzleDateLayout, digits)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// extractTimeSeconds pulls a solve time out of message text, accepting
// "2 minutes and 13 seconds", "45 seconds" or "3 minutes". Returns -1
// when no time is present.
func extractTimeSeconds(text string) int {
	lower := strings.ToLower(text)

	if m := minutesAndSecondsRe.FindStringSubmatch(lower); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		return minutes*60 + seconds
	}
	if m := secondsOnlyRe.FindStringSubmatch(lower); m != nil {
		seconds, _ := strconv.Atoi(m[1])
		return seconds
	}
	if m := minutesOnlyRe.FindStringSubmatch(lower); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes * 60
	}
	return -1
}
