package http

import (
	"context"
	"math"
	"time"
)

// BackoffConfig controls retry behaviour for a request. Retries apply to
// transport failures and 5xx responses; 4xx responses are returned as-is.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// doRequestWithBackoff executes the request, retrying with exponential backoff
// when a backoff config is present. A nil config means a single attempt.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil || backoff.MaxRetries <= 0 {
		return hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var (
		success any
		errResp any
		status  int
		err     error
	)

	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}

		success, errResp, status, err = hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil {
			return success, errResp, status, nil
		}

		// Client errors are definitive; retrying cannot change the outcome.
		if status >= 400 && status < 500 {
			return success, errResp, status, err
		}

		if attempt >= backoff.MaxRetries {
			return success, errResp, status, err
		}

		delay := backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if backoff.MaxInterval > 0 && delay > backoff.MaxInterval {
			delay = backoff.MaxInterval
		}

		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, path, headers, "", status, "", 0, err, attempt+1, backoff.MaxRetries)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, 0, ctx.Err()
		case <-timer.C:
		}
	}
}
