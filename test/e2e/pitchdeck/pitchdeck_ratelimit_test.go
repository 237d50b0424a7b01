package pitchdeck_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies that repeated logins for one email are
// throttled by the strict profile (10 per minute).
func TestRateLimitLogin(t *testing.T) {
	client := pitchsdk.NewSDKClient(setupContainerWithDefaultRateLimits(t))
	ctx := t.Context()

	email := uniqueEmail(t, "target")
	for i := range 10 {
		_, err := client.Login(ctx, email, "wrong-password")
		assertStatus(t, err, http.StatusUnauthorized, "login before the limit")
		require.False(t, pitchsdk.IsStatus(err, http.StatusTooManyRequests), "request %d should not be limited", i+1)
	}

	_, err := client.Login(ctx, email, "wrong-password")
	assertStatus(t, err, http.StatusTooManyRequests, "login over the limit")
}
