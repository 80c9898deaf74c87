package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	fetchTimeout  = 20 * time.Second
	fetchAttempts = 2 // retries after the first try
	fetchBackoff  = 2 * time.Second
)

var fetchClient = &http.Client{Timeout: fetchTimeout}

// Fetch downloads a spreadsheet payload. Timeouts and non-2xx statuses
// are fetch failures; transient ones are retried a bounded number of
// times before the pipeline aborts.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	backoff := retry.WithMaxRetries(fetchAttempts, retry.NewConstant(fetchBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := fetchClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("fetch spreadsheet: status %s", resp.Status)
			if resp.StatusCode >= http.StatusInternalServerError {
				return retry.RetryableError(err)
			}
			return err
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
