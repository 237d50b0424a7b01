package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
)

// HealthHandler godoc
//
//	@Summary		API health
//	@Description	Always answers 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	pitchsdk.HealthResponse	"success, message, timestamp"
//	@Router			/api/health [get].
func HealthHandler(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, pitchsdk.HealthResponse{
			Success:   true,
			Message:   message,
			Timestamp: time.Now().UTC(),
		})
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns uptime and version. Always 200 while the service is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	pitchsdk.ProbeResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, pitchsdk.ProbeResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database connection and the token signer.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	pitchsdk.ProbeResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	pitchsdk.ProbeResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, signer jwtx.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &pitchsdk.ProbeChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := signerReady(signer); err != nil {
			checks.Signer = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, pitchsdk.ProbeResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

func signerReady(s jwtx.Signer) error {
	if s == nil {
		return errors.New("no signing key")
	}
	if v, ok := s.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}

// NotFoundHandler answers every unmatched route.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, "Route "+r.URL.RequestURI()+" not found")
}
