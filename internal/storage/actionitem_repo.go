package storage

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zigbotdev/zigbot/internal/domain/entity"
)

// actionItemRepository stores items as server -> channel -> list,
// matching the data file layout
type actionItemRepository struct {
	mu      sync.RWMutex
	path    string
	log     *logrus.Entry
	items   map[string]map[string][]*entity.ActionItem
	counter int
}

func newActionItemRepository(path string, log *logrus.Logger) *actionItemRepository {
	return &actionItemRepository{
		path:  path,
		log:   log.WithField("component", "storage.actionitem"),
		items: make(map[string]map[string][]*entity.ActionItem),
	}
}

// load reads the data file and seeds the ID counter from the highest
// numeric ID present, so restarts never reissue an existing ID
func (r *actionItemRepository) load() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := loadJSON(r.path, &r.items); err != nil {
		r.log.WithError(err).Warn("starting with empty action items")
		r.items = make(map[string]map[string][]*entity.ActionItem)
	}

	for _, channels := range r.items {
		for _, items := range channels {
			for _, item := range items {
				if n, err := strconv.Atoi(item.ID); err == nil && n > r.counter {
					r.counter = n
				}
			}
		}
	}
}

// save must be called with the write lock held
func (r *actionItemRepository) save() {
	if err := saveJSON(r.path, r.items); err != nil {
		r.log.WithError(err).Error("failed to save action items")
	}
}

func (r *actionItemRepository) flush() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return saveJSON(r.path, r.items)
}

// Create assigns the next global ID, writes it back to item, and stores
// a copy
func (r *actionItemRepository) Create(serverID, channelID string, item *entity.ActionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	item.ID = strconv.Itoa(r.counter)

	if r.items[serverID] == nil {
		r.items[serverID] = make(map[string][]*entity.ActionItem)
	}
	r.items[serverID][channelID] = append(r.items[serverID][channelID], item.Clone())
	r.save()

	return nil
}

// GetByID returns a copy of the item, or nil when no item matches
func (r *actionItemRepository) GetByID(serverID, channelID, itemID string) (*entity.ActionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items[serverID][channelID] {
		if item.ID == itemID {
			return item.Clone(), nil
		}
	}
	return nil, nil
}

// ListByChannel returns copies of all items in the channel
func (r *actionItemRepository) ListByChannel(serverID, channelID string) ([]*entity.ActionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.items[serverID][channelID]
	items := make([]*entity.ActionItem, 0, len(src))
	for _, item := range src {
		items = append(items, item.Clone())
	}
	return items, nil
}

// Servers returns all server IDs holding items, sorted for stable iteration
func (r *actionItemRepository) Servers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	servers := make([]string, 0, len(r.items))
	for id := range r.items {
		servers = append(servers, id)
	}
	sort.Strings(servers)
	return servers
}

// Channels returns all channel IDs holding items in the server, sorted
func (r *actionItemRepository) Channels(serverID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channels := make([]string, 0, len(r.items[serverID]))
	for id := range r.items[serverID] {
		channels = append(channels, id)
	}
	sort.Strings(channels)
	return channels
}

// Remove deletes the item, pruning the channel and server entries once
// they hold nothing else. Returns the removed item, or nil when no item
// matched.
func (r *actionItemRepository) Remove(serverID, channelID, itemID string) (*entity.ActionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	channels := r.items[serverID]
	items := channels[channelID]
	for idx, item := range items {
		if item.ID != itemID {
			continue
		}

		channels[channelID] = append(items[:idx], items[idx+1:]...)
		if len(channels[channelID]) == 0 {
			delete(channels, channelID)
		}
		if len(channels) == 0 {
			delete(r.items, serverID)
		}
		r.save()
		return item, nil
	}
	return nil, nil
}

// Reassign changes the item's owner, returning the updated copy or nil
// when no item matched
func (r *actionItemRepository) Reassign(serverID, channelID, itemID, ownerUserID string) (*entity.ActionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items[serverID][channelID] {
		if item.ID == itemID {
			item.OwnerUserID = ownerUserID
			r.save()
			return item.Clone(), nil
		}
	}
	return nil, nil
}

// MarkNotified stamps the named items with the notification time
func (r *actionItemRepository) MarkNotified(serverID, channelID string, itemIDs []string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		ids[id] = struct{}{}
	}

	changed := false
	for _, item := range r.items[serverID][channelID] {
		if _, ok := ids[item.ID]; ok {
			item.LastNotified = at
			changed = true
		}
	}
	if changed {
		r.save()
	}
	return nil
}
