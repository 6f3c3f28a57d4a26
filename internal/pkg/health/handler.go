package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// PingResponse is the fixed-shape liveness payload. Anything deeper than
// process-is-up belongs to the dependency-aware health endpoints.
type PingResponse struct {
	Service       string    `json:"service"`
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	GoVersion     string    `json:"go_version"`
	Hostname      string    `json:"hostname"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	ServerTime    time.Time `json:"server_time"`
}

// NewPingHandler answers liveness pings with the service identity and
// process uptime. The version is read once from the VERSION env var,
// "development" when unset.
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	version := os.Getenv("VERSION")
	if version == "" {
		version = "development"
	}

	started := time.Now()

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, PingResponse{
			Service:       serviceName,
			Status:        "ok",
			Version:       version,
			GoVersion:     runtime.Version(),
			Hostname:      hostname,
			UptimeSeconds: int64(time.Since(started).Seconds()),
			ServerTime:    time.Now(),
		})
	}
}
