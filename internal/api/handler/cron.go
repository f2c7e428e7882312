package handler

import (
	"net/http"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/scheduler"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/apiErrors"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/log"
)

// RunDailySummary triggers the daily summary job on demand.
func RunDailySummary(service *scheduler.DailySummaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.RunSummary(); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("manual daily summary run failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Daily summary run failed", nil)
			return
		}

		running, lastStartedAt, lastCompletedAt := service.Status()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"running":           running,
			"last_started_at":   lastStartedAt,
			"last_completed_at": lastCompletedAt,
		})
	}
}
