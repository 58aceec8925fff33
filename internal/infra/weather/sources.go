package weather

import (
	"time"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/gateway/api"
	"weather-planner/internal/domain/gateway/cache"
	"weather-planner/internal/domain/usecase/location"
	"weather-planner/pkg/http"
	"weather-planner/pkg/redis"
	"weather-planner/pkg/resource"
)

// ClientOptions reads the outbound HTTP settings under app.http
func ClientOptions() http.ClientOptions {
	return http.ClientOptions{
		ConnectionTimeout:   resource.GetDuration("app.http.connection-timeout"),
		ReadTimeout:         resource.GetDuration("app.http.read-timeout"),
		MaxIdleConns:        resource.GetInt("app.http.max-idle-conns"),
		MaxIdleConnsPerHost: resource.GetInt("app.http.max-idle-conns-per-host"),
		IdleConnTimeout:     resource.GetDuration("app.http.idle-conn-timeout"),
		Logger:              http.NewZapHTTPLogger(),
	}
}

func guardOptions(prefix string) api.GuardOptions {
	return api.GuardOptions{
		Rate:                resource.GetFloat64(prefix + ".rate"),
		Burst:               resource.GetInt(prefix + ".burst"),
		MaxRequests:         uint32(resource.GetInt("app.weather.breaker.max-requests")),
		Interval:            resource.GetDuration("app.weather.breaker.interval"),
		Timeout:             resource.GetDuration("app.weather.breaker.timeout"),
		ConsecutiveFailures: uint32(resource.GetInt("app.weather.breaker.consecutive-failures")),
	}
}

// Sources builds every configured weather source. The network sources are rate limited and
// sit behind a circuit breaker; the synthetic source names coordinates after the nearest catalog entry.
func Sources(locations location.UseCase) []api.WeatherSource {
	options := ClientOptions()

	sources := []api.WeatherSource{
		api.NewGuardedSource(
			api.NewTomorrowSource(
				resource.GetString("app.weather.tomorrow.base-url"),
				resource.GetString("app.weather.tomorrow.api-key"),
				options,
			),
			guardOptions("app.weather.tomorrow"),
		),
		api.NewGuardedSource(
			api.NewNWSSource(
				resource.GetString("app.weather.nws.base-url"),
				resource.GetString("app.weather.nws.user-agent"),
				resource.GetInt("app.weather.nws.hourly-limit"),
				options,
			),
			guardOptions("app.weather.nws"),
		),
	}

	if resource.GetBool("app.weather.synthetic.enabled") {
		namer := func(coord entity.Coordinate) string {
			return locations.Nearest(coord).Name
		}
		sources = append(sources, api.NewSyntheticSource(namer, resource.GetInt("app.planner.horizon-days"), time.Now))
	}
	return sources
}

// ResultCache builds the result cache over the configured backend. redisClient is used only
// when app.cache.backend is redis.
func ResultCache(redisClient *redis.Client) *cache.ResultCache {
	store := cache.NewMemoryStore()
	if UsesRedis() && redisClient != nil {
		store = cache.NewRedisStore(redisClient)
	}

	return cache.NewResultCache(store, cache.TTLs{
		Current:  resource.GetDuration("app.cache.ttl.current"),
		Forecast: resource.GetDuration("app.cache.ttl.forecast"),
	})
}

// UsesRedis reports whether app.cache.backend selects redis
func UsesRedis() bool {
	return resource.GetString("app.cache.backend") == "redis"
}
