package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (kv.FileStore, kv.RedisStore both qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
// Redis is optional and skipped when nil.
type HealthChecks struct {
	Storage HealthChecker
	Redis   HealthChecker
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Redis   string `json:"redis,omitempty"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:  "ok",
			Storage: "ok",
		}

		if err := checks.Storage.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Storage = "unreachable"
		}
		if checks.Redis != nil {
			resp.Redis = "ok"
			if err := checks.Redis.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Redis = "unreachable"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
