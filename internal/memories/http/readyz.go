package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/store"
	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
	"github.com/aussiebroadwan/memorylane/pkg/memoriessdk"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the store connection and the session signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	memoriessdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	memoriessdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, signer jwtx.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := slogx.FromContext(r.Context())
		checks := &memoriessdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Details stay in the log; the probe is unauthenticated.
		if err := st.Ping(r.Context()); err != nil {
			l.Warn("readiness: store ping failed", "error", err)
			checks.Database = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		signerErr := jwtx.ErrNoKey
		if signer != nil {
			signerErr = signer.Validate()
		}
		if signerErr != nil {
			l.Warn("readiness: signer not ready", "error", signerErr)
			checks.Signer = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, memoriessdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
