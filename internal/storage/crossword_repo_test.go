package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zigbotdev/zigbot/internal/domain/entity"
	"github.com/zigbotdev/zigbot/internal/logger"
)

func TestCrosswordRepository_AddTrackingChannel(t *testing.T) {
	repo := SetupTestStore(t).Crossword()

	require.NoError(t, repo.AddTrackingChannel("T1", "C1"))
	assert.True(t, repo.IsTrackingChannel("T1", "C1"))
	assert.False(t, repo.IsTrackingChannel("T1", "C2"))
	assert.False(t, repo.IsTrackingChannel("T2", "C1"), "Expected server scoping to apply")

	// Re-adding must not reset streak state
	require.NoError(t, repo.UpdateStreak("T1", "C1", true))
	require.NoError(t, repo.AddTrackingChannel("T1", "C1"))

	rec, err := repo.ChannelRecord("T1", "C1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.CurrentStreak)

	tracked := repo.TrackedChannels()
	assert.Len(t, tracked["T1"], 1, "Expected no duplicate channel entries")
}

func TestCrosswordRepository_PostedDateGuard(t *testing.T) {
	repo := SetupTestStore(t).Crossword()

	require.NoError(t, repo.AddTrackingChannel("T1", "C1"))
	assert.False(t, repo.HasPostedForDate("T1", "C1", "2025-06-01"))

	require.NoError(t, repo.MarkPosted("T1", "C1", "2025-06-01"))
	assert.True(t, repo.HasPostedForDate("T1", "C1", "2025-06-01"))
	assert.False(t, repo.HasPostedForDate("T1", "C1", "2025-06-02"))

	// Untracked channels cannot be marked
	err := repo.MarkPosted("T1", "C9", "2025-06-01")
	assert.Error(t, err)
}

func TestCrosswordRepository_UpdateStreak(t *testing.T) {
	repo := SetupTestStore(t).Crossword()
	require.NoError(t, repo.AddTrackingChannel("T1", "C1"))

	require.NoError(t, repo.UpdateStreak("T1", "C1", true))
	require.NoError(t, repo.UpdateStreak("T1", "C1", true))

	rec, err := repo.ChannelRecord("T1", "C1")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.CurrentStreak)
	assert.Equal(t, 2, rec.BestStreak)

	// A day without results resets current but keeps best
	require.NoError(t, repo.UpdateStreak("T1", "C1", false))
	rec, err = repo.ChannelRecord("T1", "C1")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.CurrentStreak)
	assert.Equal(t, 2, rec.BestStreak)

	require.NoError(t, repo.UpdateStreak("T1", "C1", true))
	rec, err = repo.ChannelRecord("T1", "C1")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 2, rec.BestStreak)
}

func TestCrosswordRepository_StreakOverThreeDays(t *testing.T) {
	repo := SetupTestStore(t).Crossword()
	require.NoError(t, repo.AddTrackingChannel("T1", "C1"))

	days := []struct {
		hadResults  bool
		wantCurrent int
		wantBest    int
	}{
		{hadResults: true, wantCurrent: 1, wantBest: 1},
		{hadResults: false, wantCurrent: 0, wantBest: 1},
		{hadResults: true, wantCurrent: 1, wantBest: 1},
	}

	for i, day := range days {
		require.NoError(t, repo.UpdateStreak("T1", "C1", day.hadResults))

		rec, err := repo.ChannelRecord("T1", "C1")
		require.NoError(t, err)
		assert.Equal(t, day.wantCurrent, rec.CurrentStreak, "day %d", i+1)
		assert.Equal(t, day.wantBest, rec.BestStreak, "day %d", i+1)
		assert.GreaterOrEqual(t, rec.BestStreak, rec.CurrentStreak, "day %d", i+1)
	}
}

func TestCrosswordRepository_ChannelRecordCopies(t *testing.T) {
	repo := SetupTestStore(t).Crossword()
	require.NoError(t, repo.AddTrackingChannel("T1", "C1"))

	rec, err := repo.ChannelRecord("T1", "C1")
	require.NoError(t, err)
	rec.CurrentStreak = 99

	fresh, err := repo.ChannelRecord("T1", "C1")
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.CurrentStreak, "Expected returned record to be a copy")

	missing, err := repo.ChannelRecord("T1", "C9")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCrosswordRepository_Completions(t *testing.T) {
	repo := SetupTestStore(t).Crossword()

	require.NoError(t, repo.AddCompletion("T1", "C1", "2025-06-01", entity.Completion{
		UserID: "U1", TimeSeconds: 45, OriginalURL: "https://www.latimes.com/games/mini-crossword?id=20250601",
	}))
	require.NoError(t, repo.AddCompletion("T1", "C1", "2025-06-01", entity.Completion{
		UserID: "U2", TimeSeconds: 30,
	}))
	require.NoError(t, repo.AddCompletion("T1", "C1", "2025-06-02", entity.Completion{
		UserID: "U1", TimeSeconds: 90,
	}))

	got, err := repo.Completions("T1", "C1", "2025-06-01")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := repo.Completions("T1", "C1", "2025-05-31")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCrosswordRepository_CompletionsForUser(t *testing.T) {
	repo := SetupTestStore(t).Crossword()

	require.NoError(t, repo.AddCompletion("T1", "C1", "2025-06-01", entity.Completion{UserID: "U1", TimeSeconds: 45}))
	require.NoError(t, repo.AddCompletion("T1", "C1", "2025-06-03", entity.Completion{UserID: "U1", TimeSeconds: 30}))
	require.NoError(t, repo.AddCompletion("T1", "C1", "2025-06-02", entity.Completion{UserID: "U1", TimeSeconds: 60}))
	require.NoError(t, repo.AddCompletion("T1", "C1", "2025-06-02", entity.Completion{UserID: "U2", TimeSeconds: 10}))

	records, err := repo.CompletionsForUser("T1", "C1", "U1")
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Most recent puzzle date first, other users filtered out
	assert.Equal(t, "2025-06-03", records[0].Date)
	assert.Equal(t, "2025-06-02", records[1].Date)
	assert.Equal(t, "2025-06-01", records[2].Date)

	none, err := repo.CompletionsForUser("T1", "C1", "U9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCrosswordRepository_StateSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	log := logger.New("error")

	dm, err := New(dir, log)
	require.NoError(t, err)

	repo := dm.Crossword()
	require.NoError(t, repo.AddTrackingChannel("T1", "C1"))
	require.NoError(t, repo.MarkPosted("T1", "C1", "2025-06-01"))
	require.NoError(t, repo.UpdateStreak("T1", "C1", true))
	require.NoError(t, repo.AddCompletion("T1", "C1", "2025-06-01", entity.Completion{UserID: "U1", TimeSeconds: 45}))

	reopened, err := New(dir, log)
	require.NoError(t, err)

	repo = reopened.Crossword()
	assert.True(t, repo.IsTrackingChannel("T1", "C1"))
	assert.True(t, repo.HasPostedForDate("T1", "C1", "2025-06-01"))

	rec, err := repo.ChannelRecord("T1", "C1")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 1, rec.BestStreak)

	got, err := repo.Completions("T1", "C1", "2025-06-01")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 45, got[0].TimeSeconds)
}
