// Package storage persists bot state as JSON documents on disk. Each
// repository keeps its data in memory and mirrors every mutation to its
// file, so reads never touch the filesystem.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/zigbotdev/zigbot/internal/domain/contract"
)

// Data file names inside the data directory
const (
	actionItemsFile          = "action-items.json"
	crosswordChannelsFile    = "crossword-channels.json"
	crosswordCompletionsFile = "crossword-completions-v2.json"
)

// instance implements DataManager over the JSON file repositories
type instance struct {
	actionItemRepo *actionItemRepository
	crosswordRepo  *crosswordRepository
}

// New creates the store, loading any existing data files from dataDir.
// Unreadable files are logged and treated as empty rather than failing
// startup.
func New(dataDir string, log *logrus.Logger) (contract.DataManager, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	i := &instance{
		actionItemRepo: newActionItemRepository(filepath.Join(dataDir, actionItemsFile), log),
		crosswordRepo: newCrosswordRepository(
			filepath.Join(dataDir, crosswordChannelsFile),
			filepath.Join(dataDir, crosswordCompletionsFile),
			log,
		),
	}
	i.actionItemRepo.load()
	i.crosswordRepo.load()

	return i, nil
}

// ActionItem returns the action item repository
func (i *instance) ActionItem() contract.ActionItemRepo {
	return i.actionItemRepo
}

// Crossword returns the crossword repository
func (i *instance) Crossword() contract.CrosswordRepo {
	return i.crosswordRepo
}

// Flush writes all in-memory state to disk, reporting the first failure
func (i *instance) Flush() error {
	if err := i.actionItemRepo.flush(); err != nil {
		return err
	}
	return i.crosswordRepo.flush()
}
