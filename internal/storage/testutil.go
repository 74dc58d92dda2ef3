package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zigbotdev/zigbot/internal/domain/contract"
	"github.com/zigbotdev/zigbot/internal/logger"
)

// SetupTestStore creates a store backed by a temp directory that the
// test framework removes on cleanup
func SetupTestStore(t *testing.T) contract.DataManager {
	t.Helper()

	dm, err := New(t.TempDir(), logger.New("error"))
	require.NoError(t, err, "Failed to create test store")

	return dm
}
