package http

import (
	"go.uber.org/zap"

	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
)

// HTTPLogger receives a callback around every outbound request.
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called after a 2xx response
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or a non-2xx response
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// maxLoggedBody keeps debug entries bounded; NWS forecasts are large.
const maxLoggedBody = 512

type zapHTTPLogger struct{}

// NewZapHTTPLogger returns an HTTPLogger writing through pkg/log.
func NewZapHTTPLogger() HTTPLogger {
	return zapHTTPLogger{}
}

func (zapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug(msg.GetMessage("app.http-out", method, url),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", truncate(body)),
	)
}

func (zapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debug(msg.GetMessage("app.http-out-end", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", truncate(responseBody)),
	)
}

func (zapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("app.http-out-fail", method, url, httpStatus, latency, err),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", truncate(responseBody)),
		zap.Error(err),
	)
}

func truncate(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	return value[:maxLoggedBody] + "..."
}
