package pitchdeck_test

import (
	"testing"

	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints checks the health, liveness and readiness probes.
func TestHealthEndpoints(t *testing.T) {
	client := pitchsdk.NewSDKClient(setupContainer(t))

	health, err := client.GetHealth(t.Context())
	require.NoError(t, err)
	require.True(t, health.Success)
	require.Equal(t, "API is healthy", health.Message)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
