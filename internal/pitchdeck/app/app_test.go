package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
	"github.com/stretchr/testify/require"
)

const seedYAML = `users:
  - name: Ada Founder
    email: ada@example.com
    password: hunter22
    role: founder
  - name: Ivan Investor
    email: ivan@example.com
    password: hunter22
    role: investor
    investmentPreferences:
      industries: [Aerospace]
      stages: [Seed]
pitches:
  - founder: ada@example.com
    name: Acme
    description: Rockets for everyone
    industry: Aerospace
    stage: Seed
`

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	seed := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(seedYAML), 0o600))

	return Config{
		Env:                  "test",
		Port:                 5099,
		LogLevel:             "error",
		LogFormat:            "json",
		DatabaseFile:         filepath.Join(dir, "pitchdeck.db"),
		JWTSecret:            "app-test-secret",
		JWTIssuer:            "pitchdeck-app-test",
		JWTExpiresIn:         time.Hour,
		BcryptCost:           4,
		FrontendURL:          "http://frontend.test",
		SeedFile:             seed,
		MetricsEnabled:       true,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = ""

	_, err := New(cfg)
	require.ErrorContains(t, err, "invalid configuration")
}

func TestApplicationServesSeededData(t *testing.T) {
	cfg := testConfig(t)

	application, err := New(cfg)
	require.NoError(t, err)
	require.False(t, application.oauthService.Enabled())

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)
	client := pitchsdk.NewSDKClient(srv.URL)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	investor, err := client.Login(t.Context(), "ivan@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, pitchsdk.RoleInvestor, investor.User().Role)

	pitches, err := investor.InvestorPitches(t.Context(), pitchsdk.PitchFilter{Industry: "Aerospace"})
	require.NoError(t, err)
	require.Len(t, pitches, 1)
	require.Equal(t, "Acme", pitches[0].Name)
	require.Equal(t, "Ada Founder", pitches[0].Founder.Name)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "http_server_requests")
	require.Contains(t, string(body), "pitchdeck_auth_logins")

	srv.Close()
	application.closeAll()

	// Seeding again against the same database skips existing records.
	again, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(again.closeAll)

	srv2 := httptest.NewServer(again.Handler())
	t.Cleanup(srv2.Close)

	founder, err := pitchsdk.NewSDKClient(srv2.URL).Login(t.Context(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	mine, err := founder.MyPitches(t.Context())
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestApplicationWithoutMetrics(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsEnabled = false
	cfg.SeedFile = ""

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(application.closeAll)
	require.Nil(t, application.telemetry)

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// freeAddr returns a loopback address with a port that was free a moment ago.
func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestRunServesUntilCancelled(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFile = ""
	cfg.MetricsEnabled = false

	application, err := New(cfg)
	require.NoError(t, err)
	addr := freeAddr(t)
	application.server.Addr = addr

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	client := pitchsdk.NewSDKClient("http://" + addr)
	require.Eventually(t, func() bool {
		ready, err := client.GetReadiness(ctx)
		return err == nil && ready.Status == "ok"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// Shutdown stopped housekeeping and closed the server and database.
	_, err = http.Get(fmt.Sprintf("http://%s/livez", addr))
	require.Error(t, err)
	require.Error(t, application.db.Ping(context.Background()))
}

func TestRunReportsListenFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFile = ""
	cfg.MetricsEnabled = false

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	application, err := New(cfg)
	require.NoError(t, err)
	application.server.Addr = busy.Addr().String()

	done := make(chan error, 1)
	go func() { done <- application.Run(context.Background()) }()

	select {
	case err := <-done:
		require.ErrorContains(t, err, "server failed")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the listener failed")
	}
	require.Error(t, application.db.Ping(context.Background()))
}
