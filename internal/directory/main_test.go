package directory

import (
	"context"
	"testing"

	"github.com/michael-freling/dirtree/internal/db"
	"github.com/michael-freling/dirtree/internal/xlog"
	"go.uber.org/mock/gomock"
)

type tester struct {
	dbClient db.TestClient
}

func newTester(t *testing.T) tester {
	t.Helper()

	return tester{
		dbClient: db.NewTestClient(t),
	}
}

func (tester tester) getService() *Service {
	return NewService(xlog.Nop(), tester.dbClient.Directory())
}

func newMockService(t *testing.T, setupMockStore func(*MockStore)) *Service {
	t.Helper()

	mockController := gomock.NewController(t)
	mockStore := NewMockStore(mockController)
	mockStore.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f func(context.Context) error) error {
			return f(ctx)
		}).
		AnyTimes()
	setupMockStore(mockStore)

	return NewService(xlog.Test(t), mockStore)
}
