package obs

import (
	"commute-monitor/internal/logging"
	"context"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time reports the duration and outcome of an operation when the returned
// function runs, typically via defer with a named error return:
//
//	defer obs.Time(ctx, "resolver.resolve")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logging.Warn("operation failed",
				"op", name,
				"req_id", reqID,
				"duration_ms", dur.Milliseconds(),
				"error", (*errp).Error(),
			)
			return
		}
		logging.Debug("operation completed",
			"op", name,
			"req_id", reqID,
			"duration_ms", dur.Milliseconds(),
		)
	}
}
