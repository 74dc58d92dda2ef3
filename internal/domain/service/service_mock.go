package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zigbotdev/zigbot/internal/domain"
	"github.com/zigbotdev/zigbot/internal/logger"
	"github.com/zigbotdev/zigbot/mocks"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockActionItemRepo *mocks.MockActionItemRepo
	mockCrosswordRepo  *mocks.MockCrosswordRepo
	mockSlackClient    *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	actionItemRepo := mocks.NewMockActionItemRepo(ctrl)
	dm.EXPECT().ActionItem().Return(actionItemRepo).AnyTimes()

	crosswordRepo := mocks.NewMockCrosswordRepo(ctrl)
	dm.EXPECT().Crossword().Return(crosswordRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockActionItemRepo: actionItemRepo,
		mockCrosswordRepo:  crosswordRepo,
		mockSlackClient:    slackClient,
	}

	// validate service creation
	loc, err := time.LoadLocation(domain.TimezoneName)
	require.NoError(t, err)
	log := logger.New("error")
	require.NotNil(t, newActionItem(dm, slackClient, loc, realClock{}, log))
	require.NotNil(t, newCrossword(dm, slackClient, loc, realClock{}, log))

	return
}
