package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/domain/entity"
	"github.com/zigbotdev/zigbot/internal/logger"
)

// fixedClock pins Now for tests that never arm timers
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func (c fixedClock) NewTimer(d time.Duration) Timer { return realClock{}.NewTimer(d) }

func newTestActionItemService(t *testing.T, m allMocks, now time.Time) *actionItemService {
	t.Helper()

	loc, err := time.LoadLocation(domain.TimezoneName)
	require.NoError(t, err)
	return newActionItem(m.mockDataManager, m.mockSlackClient, loc, fixedClock{now: now}, logger.New("error"))
}

func Test_actionItemService_AddItem(t *testing.T) {
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	type args struct {
		cadence     string
		description string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantErr   string
	}{
		{
			name: "Should store item with normalized cadence and trimmed description",
			args: args{
				cadence:     "daily",
				description: "  Take vitamins  ",
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockActionItemRepo.EXPECT().
					Create("T123", "C123", gomock.Any()).
					DoAndReturn(func(serverID, channelID string, item *entity.ActionItem) error {
						item.ID = "7"
						require.Equal(t, "U123", item.OwnerUserID)
						require.Equal(t, "Take vitamins", item.Description)
						require.Equal(t, "DAILY", item.Cadence)
						require.Equal(t, now, item.CreatedAt)
						require.Equal(t, item.CreatedAt, item.LastNotified)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reject empty description",
			args: args{
				cadence:     "DAILY",
				description: "   ",
			},
			wantErr: "Description cannot be empty! Please provide a meaningful description for your action item.",
		},
		{
			name: "Should reject description over the length limit",
			args: args{
				cadence:     "WEEKLY",
				description: strings.Repeat("x", 101),
			},
			wantErr: "Description too long! Maximum length is 100 characters. Your description is 101 characters.",
		},
		{
			name: "Should reject unknown cadence",
			args: args{
				cadence:     "YEARLY",
				description: "Water plants",
			},
			wantErr: "Invalid cadence. Must be one of: DAILY, WEEKLY, MONTHLY",
		},
		{
			name: "Should return error when store fails",
			args: args{
				cadence:     "MONTHLY",
				description: "Submit expense report",
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockActionItemRepo.EXPECT().
					Create("T123", "C123", gomock.Any()).
					Return(assert.AnError).Times(1)
			},
			wantErr: "failed to store action item: " + assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestActionItemService(t, m, now)

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			item, err := s.AddItem("T123", "C123", "U123", tt.args.cadence, tt.args.description)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, item)
			assert.Equal(t, "7", item.ID)
		})
	}
}

func Test_actionItemService_ListItems(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestActionItemService(t, m, time.Now())

	m.mockActionItemRepo.EXPECT().
		ListByChannel("T123", "C123").
		Return([]*entity.ActionItem{
			{ID: "10", Description: "third"},
			{ID: "2", Description: "second"},
			{ID: "1", Description: "first"},
		}, nil).Times(1)

	items, err := s.ListItems("T123", "C123")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "1", items[0].ID, "Items should be sorted numerically, not lexically")
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "10", items[2].ID)
}

func Test_actionItemService_ListItems_Error(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestActionItemService(t, m, time.Now())

	m.mockActionItemRepo.EXPECT().
		ListByChannel("T123", "C123").
		Return(nil, assert.AnError).Times(1)

	_, err := s.ListItems("T123", "C123")
	require.Error(t, err)
}

func Test_actionItemService_GetItem(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should return the item",
			buildMock: func(mocks allMocks) {
				mocks.mockActionItemRepo.EXPECT().
					GetByID("T123", "C123", "5").
					Return(&entity.ActionItem{ID: "5", OwnerUserID: "U1", Description: "Water plants"}, nil).Times(1)
			},
		},
		{
			name: "Should report unknown IDs",
			buildMock: func(mocks allMocks) {
				mocks.mockActionItemRepo.EXPECT().
					GetByID("T123", "C123", "5").
					Return(nil, nil).Times(1)
			},
			wantErr: ErrItemNotFound,
		},
		{
			name: "Should return error when store fails",
			buildMock: func(mocks allMocks) {
				mocks.mockActionItemRepo.EXPECT().
					GetByID("T123", "C123", "5").
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestActionItemService(t, m, time.Now())
			tt.buildMock(m)

			item, err := s.GetItem("T123", "C123", "5")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, item)
			assert.Equal(t, "U1", item.OwnerUserID)
		})
	}
}

func Test_actionItemService_RemoveItem(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should return the removed item",
			buildMock: func(mocks allMocks) {
				mocks.mockActionItemRepo.EXPECT().
					Remove("T123", "C123", "5").
					Return(&entity.ActionItem{ID: "5", Description: "Water plants"}, nil).Times(1)
			},
		},
		{
			name: "Should report unknown IDs",
			buildMock: func(mocks allMocks) {
				mocks.mockActionItemRepo.EXPECT().
					Remove("T123", "C123", "5").
					Return(nil, nil).Times(1)
			},
			wantErr: ErrItemNotFound,
		},
		{
			name: "Should return error when store fails",
			buildMock: func(mocks allMocks) {
				mocks.mockActionItemRepo.EXPECT().
					Remove("T123", "C123", "5").
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestActionItemService(t, m, time.Now())
			tt.buildMock(m)

			removed, err := s.RemoveItem("T123", "C123", "5")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, removed)
			assert.Equal(t, "Water plants", removed.Description)
		})
	}
}

func Test_actionItemService_ReassignItem(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should return the updated item",
			buildMock: func(mocks allMocks) {
				mocks.mockActionItemRepo.EXPECT().
					Reassign("T123", "C123", "5", "U999").
					Return(&entity.ActionItem{ID: "5", OwnerUserID: "U999"}, nil).Times(1)
			},
		},
		{
			name: "Should report unknown IDs",
			buildMock: func(mocks allMocks) {
				mocks.mockActionItemRepo.EXPECT().
					Reassign("T123", "C123", "5", "U999").
					Return(nil, nil).Times(1)
			},
			wantErr: ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestActionItemService(t, m, time.Now())
			tt.buildMock(m)

			updated, err := s.ReassignItem("T123", "C123", "5", "U999")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, "U999", updated.OwnerUserID)
		})
	}
}

func Test_notificationDue(t *testing.T) {
	loc, err := time.LoadLocation(domain.TimezoneName)
	require.NoError(t, err)

	// Tuesday June 3 2025; Monday June 2; Sunday June 1
	tuesday := time.Date(2025, 6, 3, 8, 5, 0, 0, loc)
	monday := time.Date(2025, 6, 2, 8, 5, 0, 0, loc)
	firstOfMonth := time.Date(2025, 7, 1, 8, 5, 0, 0, loc)

	tests := []struct {
		name    string
		cadence domain.Cadence
		created time.Time
		last    time.Time
		now     time.Time
		forced  bool
		want    bool
	}{
		{
			name:    "forced runs include everything",
			cadence: domain.CadenceWeekly,
			created: tuesday.AddDate(0, 0, -30),
			last:    tuesday.Add(-time.Minute),
			now:     tuesday,
			forced:  true,
			want:    true,
		},
		{
			name:    "daily item created this morning before the cutoff fires the same day",
			cadence: domain.CadenceDaily,
			created: time.Date(2025, 6, 3, 7, 50, 0, 0, loc),
			last:    time.Date(2025, 6, 3, 7, 50, 0, 0, loc),
			now:     tuesday,
			want:    true,
		},
		{
			name:    "weekly item created this morning waits for its day",
			cadence: domain.CadenceWeekly,
			created: time.Date(2025, 6, 3, 7, 50, 0, 0, loc),
			last:    time.Date(2025, 6, 3, 7, 50, 0, 0, loc),
			now:     tuesday,
			want:    false,
		},
		{
			name:    "weekly item created on a Monday morning fires that Monday",
			cadence: domain.CadenceWeekly,
			created: time.Date(2025, 6, 2, 7, 0, 0, 0, loc),
			last:    time.Date(2025, 6, 2, 7, 0, 0, 0, loc),
			now:     monday,
			want:    true,
		},
		{
			name:    "item created after the cutoff waits for tomorrow",
			cadence: domain.CadenceDaily,
			created: time.Date(2025, 6, 3, 8, 30, 0, 0, loc),
			last:    time.Date(2025, 6, 3, 8, 30, 0, 0, loc),
			now:     time.Date(2025, 6, 3, 8, 31, 0, 0, loc),
			want:    false,
		},
		{
			name:    "daily item notified yesterday is due",
			cadence: domain.CadenceDaily,
			created: tuesday.AddDate(0, 0, -30),
			last:    tuesday.AddDate(0, 0, -1),
			now:     tuesday,
			want:    true,
		},
		{
			name:    "daily item already notified after today's cutoff is not due again",
			cadence: domain.CadenceDaily,
			created: tuesday.AddDate(0, 0, -30),
			last:    time.Date(2025, 6, 3, 8, 1, 0, 0, loc),
			now:     time.Date(2025, 6, 3, 9, 0, 0, 0, loc),
			want:    false,
		},
		{
			name:    "weekly item is due on Monday",
			cadence: domain.CadenceWeekly,
			created: monday.AddDate(0, 0, -30),
			last:    monday.AddDate(0, 0, -7),
			now:     monday,
			want:    true,
		},
		{
			name:    "weekly item is not due on Tuesday",
			cadence: domain.CadenceWeekly,
			created: tuesday.AddDate(0, 0, -30),
			last:    tuesday.AddDate(0, 0, -1),
			now:     tuesday,
			want:    false,
		},
		{
			name:    "monthly item is due on the first",
			cadence: domain.CadenceMonthly,
			created: firstOfMonth.AddDate(0, -2, 0),
			last:    firstOfMonth.AddDate(0, -1, 0),
			now:     firstOfMonth,
			want:    true,
		},
		{
			name:    "monthly item is not due mid-month",
			cadence: domain.CadenceMonthly,
			created: tuesday.AddDate(0, -2, 0),
			last:    tuesday.AddDate(0, -1, 0),
			now:     tuesday,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &entity.ActionItem{
				Cadence:      string(tt.cadence),
				CreatedAt:    tt.created,
				LastNotified: tt.last,
			}
			cutoff := time.Date(tt.now.Year(), tt.now.Month(), tt.now.Day(), domain.NotifyHour, domain.NotifyMinute, 0, 0, loc)

			got := notificationDue(item, tt.cadence, tt.now, cutoff, loc, tt.forced)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_actionItemService_runDailyCheck(t *testing.T) {
	loc, err := time.LoadLocation(domain.TimezoneName)
	require.NoError(t, err)

	// Tuesday, so the weekly item is out of scope for scheduled runs
	now := time.Date(2025, 6, 3, 8, 0, 5, 0, loc)
	items := []*entity.ActionItem{
		{ID: "1", OwnerUserID: "U1", Description: "Water plants", Cadence: "DAILY",
			CreatedAt: now.AddDate(0, 0, -30), LastNotified: now.AddDate(0, 0, -1)},
		{ID: "2", OwnerUserID: "U2", Description: "Stretch", Cadence: "DAILY",
			CreatedAt: now.AddDate(0, 0, -30), LastNotified: now.AddDate(0, 0, -1)},
		{ID: "3", OwnerUserID: "U1", Description: "Weekly report", Cadence: "WEEKLY",
			CreatedAt: now.AddDate(0, 0, -30), LastNotified: now.AddDate(0, 0, -8)},
	}

	setupRepo := func(m allMocks) {
		m.mockActionItemRepo.EXPECT().Servers().Return([]string{"T123"}).Times(1)
		m.mockActionItemRepo.EXPECT().Channels("T123").Return([]string{"C123"}).Times(1)
		m.mockActionItemRepo.EXPECT().ListByChannel("T123", "C123").Return(items, nil).Times(1)
		m.mockDataManager.EXPECT().Flush().Return(nil).Times(1)
	}

	t.Run("Should post due items and stamp only what was sent", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestActionItemService(t, m, now)
		setupRepo(m)

		m.mockSlackClient.EXPECT().
			PostMessage("C123", gomock.Any()).
			Return("C123", "165.1", nil).Times(1)
		m.mockActionItemRepo.EXPECT().
			MarkNotified("T123", "C123", []string{"1", "2"}, now).
			Return(nil).Times(1)

		s.runDailyCheck(now, false)
	})

	t.Run("Should post every cadence on forced runs without touching state", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestActionItemService(t, m, now)
		setupRepo(m)

		// one message for the daily group, one for the weekly group
		m.mockSlackClient.EXPECT().
			PostMessage("C123", gomock.Any()).
			Return("C123", "165.1", nil).Times(2)

		s.runDailyCheck(now, true)
	})

	t.Run("Should not stamp items when posting fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestActionItemService(t, m, now)
		setupRepo(m)

		m.mockSlackClient.EXPECT().
			PostMessage("C123", gomock.Any()).
			Return("", "", assert.AnError).Times(1)

		s.runDailyCheck(now, false)
	})
}

func Test_reminderMessage(t *testing.T) {
	items := []*entity.ActionItem{
		{ID: "1", OwnerUserID: "U1", Description: "Water plants"},
		{ID: "2", OwnerUserID: "U2", Description: "Stretch"},
		{ID: "3", OwnerUserID: "U1", Description: "File TPS report"},
	}

	got := reminderMessage(domain.CadenceDaily, items)

	want := "🔔 *DAILY Action Item Reminders* 🌅\n\n" +
		"*<@U1>:*\n" +
		"• Water plants\n" +
		"• File TPS report\n\n" +
		"*<@U2>:*\n" +
		"• Stretch\n\n" +
		"_Use `/actionitem list` to see all your items_"
	assert.Equal(t, want, got)
}
