package service

import (
	"testing"

	"github.com/diegoclair/presenter-rotation/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockPersister *mocks.MockStatePersister
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockPersister: mocks.NewMockStatePersister(ctrl),
	}

	// validate service creation
	controller := newRotationController(m.mockPersister)
	require.NotNil(t, controller)

	return
}
