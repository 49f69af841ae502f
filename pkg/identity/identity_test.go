package identity

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	id := &Identity{ProjectID: "project_test"}

	ctx := Set(context.Background(), id)

	got, ok := Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "project_test", got.ProjectID)
}

func TestGetMissing(t *testing.T) {
	got, ok := Get(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestWithRemoteIP(t *testing.T) {
	id := &Identity{ProjectID: "project_test"}
	id.WithRemoteIP(net.ParseIP("192.0.2.10"))

	assert.Equal(t, "192.0.2.10", id.RemoteIP.String())
}

func TestDistinctFromStringKeys(t *testing.T) {
	// A string-keyed value must not collide with the typed identity key.
	ctx := context.WithValue(context.Background(), "identity", "not-an-identity") //nolint:staticcheck

	_, ok := Get(ctx)
	assert.False(t, ok)
}
