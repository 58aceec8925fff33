package redis

import (
	"context"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// HealthStatus is the state reported by HealthCheck
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings Redis within timeout and reports pool statistics
func (c *Client) HealthCheck(ctx context.Context, timeout time.Duration) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	details := map[string]string{
		"address":  c.config.Addr(),
		"database": strconv.Itoa(c.config.Database),
	}

	start := time.Now()
	if err := c.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}
	details["ping_latency"] = time.Since(start).String()

	if client, ok := c.rdb.(interface{ PoolStats() *goredis.PoolStats }); ok {
		stats := client.PoolStats()
		details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
		details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	}

	return RedisHealthCheck{Status: StatusUp, Details: details}
}
