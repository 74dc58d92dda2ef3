package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/contract"
	"github.com/zigbotdev/zigbot/internal/domain/entity"
)

// ErrItemNotFound is returned for operations on an ID that does not
// exist in the channel
var ErrItemNotFound = errors.New("action item not found")

type actionItemService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	clock       Clock
	loc         *time.Location
	validate    *validator.Validate
	log         *logrus.Entry
	job         *dailyJob
}

func newActionItem(dm contract.DataManager, slackClient contract.SlackClient, loc *time.Location, clock Clock, log *logrus.Logger) *actionItemService {
	s := &actionItemService{
		dm:          dm,
		slackClient: slackClient,
		clock:       clock,
		loc:         loc,
		validate:    validator.New(),
		log:         log.WithField("component", "service.actionitem"),
	}
	s.job = newDailyJob("actionitem", loc, clock, log, s.runDailyCheck)
	return s
}

// Start launches the daily reminder schedule
func (s *actionItemService) Start() { s.job.Start() }

// Stop halts the daily reminder schedule
func (s *actionItemService) Stop() { s.job.Stop() }

// ForceRun posts reminders for every item immediately without touching
// notification state
func (s *actionItemService) ForceRun() { s.job.Force() }

// actionItemInput carries the user-provided fields through validation.
// The max tag mirrors domain.MaxDescriptionLength.
type actionItemInput struct {
	Description string `validate:"required,max=100"`
	Cadence     string `validate:"oneof=DAILY WEEKLY MONTHLY"`
}

// AddItem validates and stores a new item. Validation failures return
// errors whose text is shown to the user as-is.
func (s *actionItemService) AddItem(serverID, channelID, ownerUserID, cadence, description string) (*entity.ActionItem, error) {
	input := actionItemInput{
		Description: strings.TrimSpace(description),
		Cadence:     strings.ToUpper(strings.TrimSpace(cadence)),
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, inputError(err, input)
	}

	now := s.clock.Now()
	item := &entity.ActionItem{
		OwnerUserID: ownerUserID,
		Description: input.Description,
		Cadence:     input.Cadence,
		CreatedAt:   now,
		// LastNotified equal to CreatedAt marks an item the schedule
		// has never picked up
		LastNotified: now,
	}
	if err := s.dm.ActionItem().Create(serverID, channelID, item); err != nil {
		return nil, fmt.Errorf("failed to store action item: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"item_id": item.ID,
		"channel": channelID,
		"cadence": item.Cadence,
	}).Info("action item added")
	return item, nil
}

// inputError converts validation failures into the messages users see
func inputError(err error, input actionItemInput) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Description" && fe.Tag() == "required":
			return errors.New("Description cannot be empty! Please provide a meaningful description for your action item.")
		case fe.Field() == "Description" && fe.Tag() == "max":
			return fmt.Errorf("Description too long! Maximum length is %d characters. Your description is %d characters.",
				domain.MaxDescriptionLength, utf8.RuneCountInString(input.Description))
		case fe.Field() == "Cadence":
			return errors.New("Invalid cadence. Must be one of: DAILY, WEEKLY, MONTHLY")
		}
	}
	return err
}

// GetItem returns the channel's item with the given ID, or
// ErrItemNotFound when no item matches
func (s *actionItemService) GetItem(serverID, channelID, itemID string) (*entity.ActionItem, error) {
	item, err := s.dm.ActionItem().GetByID(serverID, channelID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load action item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ListItems returns the channel's items sorted numerically by ID
func (s *actionItemService) ListItems(serverID, channelID string) ([]*entity.ActionItem, error) {
	items, err := s.dm.ActionItem().ListByChannel(serverID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}

	sortItemsByID(items)
	return items, nil
}

func sortItemsByID(items []*entity.ActionItem) {
	sort.Slice(items, func(i, j int) bool {
		a, _ := strconv.Atoi(items[i].ID)
		b, _ := strconv.Atoi(items[j].ID)
		return a < b
	})
}

// RemoveItem deletes the item, returning ErrItemNotFound when the ID
// does not exist in the channel
func (s *actionItemService) RemoveItem(serverID, channelID, itemID string) (*entity.ActionItem, error) {
	removed, err := s.dm.ActionItem().Remove(serverID, channelID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove action item: %w", err)
	}
	if removed == nil {
		return nil, ErrItemNotFound
	}

	s.log.WithFields(logrus.Fields{"item_id": itemID, "channel": channelID}).Info("action item removed")
	return removed, nil
}

// ReassignItem moves the item to a new owner, returning ErrItemNotFound
// when the ID does not exist in the channel
func (s *actionItemService) ReassignItem(serverID, channelID, itemID, newOwnerID string) (*entity.ActionItem, error) {
	updated, err := s.dm.ActionItem().Reassign(serverID, channelID, itemID, newOwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reassign action item: %w", err)
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}

	s.log.WithFields(logrus.Fields{
		"item_id": itemID,
		"channel": channelID,
		"owner":   newOwnerID,
	}).Info("action item reassigned")
	return updated, nil
}

// runDailyCheck posts one consolidated reminder per cadence to every
// channel holding due items. Scheduled runs stamp the posted items so
// they are not reposted the same day; forced runs leave state alone.
func (s *actionItemService) runDailyCheck(now time.Time, forced bool) {
	repo := s.dm.ActionItem()
	for _, serverID := range repo.Servers() {
		for _, channelID := range repo.Channels(serverID) {
			s.notifyChannel(serverID, channelID, now, forced)
		}
	}

	if err := s.dm.Flush(); err != nil {
		s.log.WithError(err).Error("failed to flush state after reminder run")
	}
}

func (s *actionItemService) notifyChannel(serverID, channelID string, now time.Time, forced bool) {
	repo := s.dm.ActionItem()
	items, err := repo.ListByChannel(serverID, channelID)
	if err != nil {
		s.log.WithError(err).WithField("channel", channelID).Error("failed to load channel items")
		return
	}

	local := now.In(s.loc)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), domain.NotifyHour, domain.NotifyMinute, 0, 0, s.loc)

	groups := make(map[domain.Cadence][]*entity.ActionItem)
	for _, item := range items {
		cadence, ok := domain.ParseCadence(item.Cadence)
		if !ok {
			continue
		}
		if notificationDue(item, cadence, local, cutoff, s.loc, forced) {
			groups[cadence] = append(groups[cadence], item)
		}
	}

	for _, cadence := range domain.Cadences {
		group := groups[cadence]
		if len(group) == 0 {
			continue
		}

		message := reminderMessage(cadence, group)
		if _, _, err := s.slackClient.PostMessage(channelID, slack.MsgOptionText(message, false)); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"channel": channelID,
				"cadence": cadence,
			}).Error("failed to post reminder")
			continue
		}

		if !forced {
			ids := make([]string, 0, len(group))
			for _, item := range group {
				ids = append(ids, item.ID)
			}
			if err := repo.MarkNotified(serverID, channelID, ids, now); err != nil {
				s.log.WithError(err).WithField("channel", channelID).Error("failed to record notification time")
			}
		}

		s.log.WithFields(logrus.Fields{
			"channel": channelID,
			"cadence": cadence,
			"items":   len(group),
		}).Info("reminder posted")
	}
}

// notificationDue decides whether an item belongs in today's reminder.
//
// Forced runs include everything. An item created today before the
// cutoff gets its first reminder the same morning, provided today is a
// day its cadence fires on. An item already notified today at or after
// the cutoff waits for tomorrow. Otherwise daily items are always due,
// weekly items on Mondays and monthly items on the first, as long as
// the last notification predates today's cutoff.
func notificationDue(item *entity.ActionItem, cadence domain.Cadence, now, cutoff time.Time, loc *time.Location, forced bool) bool {
	if forced {
		return true
	}

	last := item.LastNotified.In(loc)
	created := item.CreatedAt.In(loc)
	sameDay := last.Year() == now.Year() && last.YearDay() == now.YearDay()

	if sameDay && last.Equal(created) && last.Before(cutoff) {
		return cadence.ValidDay(now)
	}

	if sameDay && !last.Before(cutoff) {
		return false
	}

	switch cadence {
	case domain.CadenceDaily:
		return true
	case domain.CadenceWeekly:
		return now.Weekday() == time.Monday && notifiedBefore(last, now, cutoff, sameDay)
	case domain.CadenceMonthly:
		return now.Day() == 1 && notifiedBefore(last, now, cutoff, sameDay)
	}
	return false
}

// notifiedBefore reports whether the last notification happened on an
// earlier day, or today but before the cutoff
func notifiedBefore(last, now, cutoff time.Time, sameDay bool) bool {
	if sameDay {
		return last.Before(cutoff)
	}
	return beforeDay(last, now)
}

// beforeDay reports whether a's calendar day precedes b's
func beforeDay(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.YearDay() < b.YearDay()
}

// reminderMessage builds the consolidated reminder for one cadence,
// grouping items under their owners in first-appearance order
func reminderMessage(cadence domain.Cadence, items []*entity.ActionItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔔 *%s Action Item Reminders* %s\n\n", cadence, cadence.Emoji())

	var owners []string
	byOwner := make(map[string][]*entity.ActionItem)
	for _, item := range items {
		if _, seen := byOwner[item.OwnerUserID]; !seen {
			owners = append(owners, item.OwnerUserID)
		}
		byOwner[item.OwnerUserID] = append(byOwner[item.OwnerUserID], item)
	}

	for _, owner := range owners {
		fmt.Fprintf(&b, "*<@%s>:*\n", owner)
		for _, item := range byOwner[owner] {
			fmt.Fprintf(&b, "• %s\n", item.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("_Use `/actionitem list` to see all your items_")
	return b.String()
}
