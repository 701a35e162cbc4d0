package transport

import (
	"net"
	"net/http"
	"time"

	"github.com/maine/shibe_inline_bot/internal/config"
)

// NewHTTPClient создаёт общий для всего процесса HTTP-клиент.
// После создания клиент не меняется и безопасен для конкурентного использования.
func NewHTTPClient(cfg config.HTTP) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}

	base := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ExpectContinueTimeout: time.Second,
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			base:      base,
			userAgent: cfg.UserAgent,
		},
	}
}

// userAgentTransport проставляет User-Agent во все исходящие запросы.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" {
		return t.base.RoundTrip(req)
	}
	// RoundTripper не должен менять исходный запрос
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}
