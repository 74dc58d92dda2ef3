package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/zigbotdev/zigbot/internal/domain/entity"
)

// crosswordRepository keeps tracked channels and completions in memory,
// each mirrored to its own JSON file. Completions are stored as
// server -> channel -> date -> entries.
type crosswordRepository struct {
	mu              sync.RWMutex
	channelsPath    string
	completionsPath string
	log             *logrus.Entry
	channels        map[string][]*entity.ChannelRecord
	completions     map[string]map[string]map[string][]entity.Completion
}

func newCrosswordRepository(channelsPath, completionsPath string, log *logrus.Logger) *crosswordRepository {
	return &crosswordRepository{
		channelsPath:    channelsPath,
		completionsPath: completionsPath,
		log:             log.WithField("component", "storage.crossword"),
		channels:        make(map[string][]*entity.ChannelRecord),
		completions:     make(map[string]map[string]map[string][]entity.Completion),
	}
}

func (r *crosswordRepository) load() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := loadJSON(r.channelsPath, &r.channels); err != nil {
		r.log.WithError(err).Warn("starting with empty channel configuration")
		r.channels = make(map[string][]*entity.ChannelRecord)
	}
	if err := loadJSON(r.completionsPath, &r.completions); err != nil {
		r.log.WithError(err).Warn("starting with empty completions")
		r.completions = make(map[string]map[string]map[string][]entity.Completion)
	}
}

// saveChannels must be called with the write lock held
func (r *crosswordRepository) saveChannels() {
	if err := saveJSON(r.channelsPath, r.channels); err != nil {
		r.log.WithError(err).Error("failed to save channel configuration")
	}
}

// saveCompletions must be called with the write lock held
func (r *crosswordRepository) saveCompletions() {
	if err := saveJSON(r.completionsPath, r.completions); err != nil {
		r.log.WithError(err).Error("failed to save completions")
	}
}

func (r *crosswordRepository) flush() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := saveJSON(r.channelsPath, r.channels); err != nil {
		return err
	}
	return saveJSON(r.completionsPath, r.completions)
}

// findChannel must be called with the lock held
func (r *crosswordRepository) findChannel(serverID, channelID string) *entity.ChannelRecord {
	for _, rec := range r.channels[serverID] {
		if rec.ChannelID == channelID {
			return rec
		}
	}
	return nil
}

// AddTrackingChannel registers channelID for tracking. Registering an
// already tracked channel is a no-op that preserves its streak state.
func (r *crosswordRepository) AddTrackingChannel(serverID, channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findChannel(serverID, channelID) != nil {
		return nil
	}
	r.channels[serverID] = append(r.channels[serverID], &entity.ChannelRecord{ChannelID: channelID})
	r.saveChannels()
	return nil
}

func (r *crosswordRepository) IsTrackingChannel(serverID, channelID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findChannel(serverID, channelID) != nil
}

// TrackedChannels returns a copy of the full tracking configuration
// keyed by server ID
func (r *crosswordRepository) TrackedChannels() map[string][]*entity.ChannelRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]*entity.ChannelRecord, len(r.channels))
	for serverID, recs := range r.channels {
		cp := make([]*entity.ChannelRecord, 0, len(recs))
		for _, rec := range recs {
			cp = append(cp, rec.Clone())
		}
		out[serverID] = cp
	}
	return out
}

// ChannelRecord returns a copy of the channel's tracking state, or nil
// when the channel is not tracked
func (r *crosswordRepository) ChannelRecord(serverID, channelID string) (*entity.ChannelRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findChannel(serverID, channelID).Clone(), nil
}

func (r *crosswordRepository) HasPostedForDate(serverID, channelID, date string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec := r.findChannel(serverID, channelID)
	return rec != nil && rec.HasPostedFor(date)
}

func (r *crosswordRepository) MarkPosted(serverID, channelID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.findChannel(serverID, channelID)
	if rec == nil {
		return fmt.Errorf("channel %s is not tracked in server %s", channelID, serverID)
	}
	rec.LastPostedDate = date
	r.saveChannels()
	return nil
}

// UpdateStreak extends the channel's streak when the day had results
// and resets it when it did not
func (r *crosswordRepository) UpdateStreak(serverID, channelID string, hadResults bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.findChannel(serverID, channelID)
	if rec == nil {
		return fmt.Errorf("channel %s is not tracked in server %s", channelID, serverID)
	}
	if hadResults {
		rec.IncrementStreak()
	} else {
		rec.ResetStreak()
	}
	r.saveChannels()
	return nil
}

func (r *crosswordRepository) AddCompletion(serverID, channelID, date string, completion entity.Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.completions[serverID] == nil {
		r.completions[serverID] = make(map[string]map[string][]entity.Completion)
	}
	if r.completions[serverID][channelID] == nil {
		r.completions[serverID][channelID] = make(map[string][]entity.Completion)
	}
	byDate := r.completions[serverID][channelID]
	byDate[date] = append(byDate[date], completion)
	r.saveCompletions()
	return nil
}

// Completions returns a copy of the completions recorded for the date
func (r *crosswordRepository) Completions(serverID, channelID, date string) ([]entity.Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.completions[serverID][channelID][date]
	out := make([]entity.Completion, len(src))
	copy(out, src)
	return out, nil
}

// CompletionsForUser returns the user's completions in one channel,
// most recent puzzle date first
func (r *crosswordRepository) CompletionsForUser(serverID, channelID, userID string) ([]entity.CompletionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.CompletionRecord
	for date, list := range r.completions[serverID][channelID] {
		for _, c := range list {
			if c.UserID == userID {
				out = append(out, entity.CompletionRecord{Date: date, Completion: c})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}
