package http

import (
	"net/http"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/jwtx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check
//	@Description	Reports whether the database and the identity-provider key set are usable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	marketsdk.HealthResponse
//	@Failure		503	{object}	marketsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys jwtx.Keys,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &marketsdk.HealthChecks{
			Database: "ok",
			Verifier: "ok",
		}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Verifier = "error: no keys loaded"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, marketsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
