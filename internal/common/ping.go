package common

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PingServerLoop keeps a free-tier host awake by requesting its own health
// endpoint every interval until ctx is cancelled.
func PingServerLoop(ctx context.Context, serverURL string, interval time.Duration, client *http.Client, logger *zap.Logger) {
	serverURL = strings.TrimRight(strings.TrimSpace(serverURL), "/")
	if serverURL == "" {
		return
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	target := serverURL + "/healthz"

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ping(ctx, client, target, logger)
		}
	}
}

func ping(ctx context.Context, client *http.Client, target string, logger *zap.Logger) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		logger.Warn("keep-alive request", zap.String("url", target), zap.Error(err))
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("keep-alive ping failed", zap.String("url", target), zap.Error(err))
		}
		return
	}
	resp.Body.Close()
	logger.Debug("keep-alive ping", zap.String("url", target), zap.Int("status", resp.StatusCode))
}
