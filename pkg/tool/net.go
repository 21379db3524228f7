package tool

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/beastars1/fiddleless/services/logger"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrUnexpectedStatus = errors.New("unexpected http status")

// HttpGet fetches url with a few quick retries. Failures are reported to sentry.
func HttpGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var body []byte
	err = retry.Do(func() error {
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return errors.Wrapf(ErrUnexpectedStatus, "%d", resp.StatusCode)
		}
		body, err = io.ReadAll(resp.Body)
		return err
	}, retry.Delay(time.Millisecond*10), retry.Attempts(5), retry.LastErrorOnly(true))
	if err != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelError)
			scope.SetExtra("url", url)
			scope.SetExtra("error", err.Error())
			sentry.CaptureMessage("http request failed")
		})
		logger.Debug("http request failed", zap.Error(err), "url", url)
		return nil, err
	}
	return body, nil
}
