package http

import (
	"net/http"
	"net/url"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// context key for attaching the request payload for logging
type payloadContextKey struct{}

type logTransport struct {
	transport http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", redactedURL(req.URL)),
		zap.Any("headers", redactedHeaders(req.Header)),
	}

	if payload, ok := ctx.Value(payloadContextKey{}).([]byte); ok && len(payload) > 0 {
		fields = append(fields, zap.ByteString("payload", payload))
	}

	ctxzap.Debug(ctx, "HTTP outbound request", fields...)

	return t.transport.RoundTrip(req)
}

// redactedURL strips the "key" query parameter so API keys never reach
// the logs.
func redactedURL(u *url.URL) string {
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		clone := *u
		clone.RawQuery = q.Encode()
		return clone.String()
	}
	return u.String()
}

func redactedHeaders(h http.Header) http.Header {
	if h.Get("Authorization") == "" {
		return h
	}
	clone := h.Clone()
	clone.Set("Authorization", "REDACTED")
	return clone
}

// WithRequestLogging wraps the HTTP transport with logging of method, URL, headers and payload metadata.
func WithRequestLogging() HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{
			transport: rt,
		}
	})
}

