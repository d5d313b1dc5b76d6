package service

import (
	"testing"

	"github.com/diegoclair/slack-wfo-bot/internal/parser"
	"github.com/diegoclair/slack-wfo-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockEmployeeRepo     *mocks.MockEmployeeRepo
	mockAvailabilityRepo *mocks.MockAvailabilityRepo
	mockAttemptRepo      *mocks.MockAttemptRepo
	mockMessageRepo      *mocks.MockMessageRepo
	mockSlackClient      *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *Instance, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	employeeRepo := mocks.NewMockEmployeeRepo(ctrl)
	dm.EXPECT().Employee().Return(employeeRepo).AnyTimes()

	availabilityRepo := mocks.NewMockAvailabilityRepo(ctrl)
	dm.EXPECT().Availability().Return(availabilityRepo).AnyTimes()

	attemptRepo := mocks.NewMockAttemptRepo(ctrl)
	dm.EXPECT().Attempt().Return(attemptRepo).AnyTimes()

	messageRepo := mocks.NewMockMessageRepo(ctrl)
	dm.EXPECT().Message().Return(messageRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:      dm,
		mockEmployeeRepo:     employeeRepo,
		mockAvailabilityRepo: availabilityRepo,
		mockAttemptRepo:      attemptRepo,
		mockMessageRepo:      messageRepo,
		mockSlackClient:      slackClient,
	}

	svc = NewInstance(dm, slackClient, parser.New(parser.DefaultConfig()), DefaultConfig())
	require.NotNil(t, svc)

	return
}
