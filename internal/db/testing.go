package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestClient struct {
	*Client
}

// NewTestClient opens an in-memory database which is private to the test.
func NewTestClient(t *testing.T, options ...ClientOption) TestClient {
	t.Helper()

	if len(options) == 0 {
		options = append(options, WithNopLogger())
	}
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	client, err := NewClient(DSNMemoryWithName(name), options...)
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close()
	})
	require.NoError(t, client.Migrate())

	return TestClient{
		Client: client,
	}
}

func (client TestClient) Truncate(t *testing.T, models ...interface{}) {
	t.Helper()

	for _, model := range models {
		err := client.connection.Session(&gorm.Session{
			AllowGlobalUpdate: true,
		}).Delete(model).Error
		require.NoError(t, err)
	}
}

func LoadTestData[Model any](t *testing.T, client TestClient, values []Model) {
	t.Helper()

	if len(values) == 0 {
		return
	}
	require.NoError(t, BatchCreate(client.Client, values))
}
