package contract

import (
	"time"

	"github.com/zigbotdev/zigbot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	ActionItem() ActionItemRepo
	Crossword() CrosswordRepo
	Flush() error
}

// ActionItemRepo defines the contract for the action item repository.
// Items are keyed by workspace and channel; IDs are global across both.
type ActionItemRepo interface {
	Create(serverID, channelID string, item *entity.ActionItem) error
	GetByID(serverID, channelID, itemID string) (*entity.ActionItem, error)
	ListByChannel(serverID, channelID string) ([]*entity.ActionItem, error)
	Servers() []string
	Channels(serverID string) []string
	Remove(serverID, channelID, itemID string) (*entity.ActionItem, error)
	Reassign(serverID, channelID, itemID, ownerUserID string) (*entity.ActionItem, error)
	MarkNotified(serverID, channelID string, itemIDs []string, at time.Time) error
}

// CrosswordRepo defines the contract for the crossword repository:
// tracked channels with their posting and streak state, plus completions
// keyed by workspace, channel and puzzle date.
type CrosswordRepo interface {
	AddTrackingChannel(serverID, channelID string) error
	IsTrackingChannel(serverID, channelID string) bool
	TrackedChannels() map[string][]*entity.ChannelRecord
	ChannelRecord(serverID, channelID string) (*entity.ChannelRecord, error)
	HasPostedForDate(serverID, channelID, date string) bool
	MarkPosted(serverID, channelID, date string) error
	UpdateStreak(serverID, channelID string, hadResults bool) error
	AddCompletion(serverID, channelID, date string, completion entity.Completion) error
	Completions(serverID, channelID, date string) ([]entity.Completion, error)
	CompletionsForUser(serverID, channelID, userID string) ([]entity.CompletionRecord, error)
}
