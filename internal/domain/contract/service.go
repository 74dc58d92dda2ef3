package contract

import (
	"time"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/entity"
)

type ActionItemService interface {
	Start()
	Stop()
	ForceRun()
	AddItem(serverID, channelID, ownerUserID, cadence, description string) (*entity.ActionItem, error)
	GetItem(serverID, channelID, itemID string) (*entity.ActionItem, error)
	ListItems(serverID, channelID string) ([]*entity.ActionItem, error)
	RemoveItem(serverID, channelID, itemID string) (*entity.ActionItem, error)
	ReassignItem(serverID, channelID, itemID, newOwnerID string) (*entity.ActionItem, error)
}

type CrosswordService interface {
	Start()
	Stop()
	ForceRun()
	TrackMessage(serverID, channelID, userID, text string) (bool, error)
	SetTrackingChannel(serverID, channelID string) error
	UserStats(serverID, channelID, userID string) (*entity.UserStats, error)
	RecentCompletions(serverID, channelID, userID string, limit int) ([]entity.CompletionRecord, error)
	BestCompletion(serverID, channelID, userID string) (*entity.CompletionRecord, error)
	Leaderboard(serverID, channelID string, date time.Time) (string, bool, error)
}

type FeedbackService interface {
	Submit(kind domain.FeedbackKind, userID, userName, message, category string) (string, error)
}

type GifService interface {
	Convert(channelID, userID, imageURL string) error
}
