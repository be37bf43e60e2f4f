package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-booking-system/api"
)

// GetHealth reports UP only when both Postgres and Redis answer a ping.
func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, code := "UP", http.StatusOK

	if app.db != nil {
		if err := app.db.Ping(ctx); err != nil {
			app.contextGetLogger(r).Error("database ping failed", "error", err)
			status, code = "DOWN", http.StatusServiceUnavailable
		}
	}

	if app.redis != nil {
		if err := app.redis.Ping(ctx).Err(); err != nil {
			app.contextGetLogger(r).Error("redis ping failed", "error", err)
			status, code = "DOWN", http.StatusServiceUnavailable
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
	}

	err := app.writeJSON(w, code, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
