package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

const maxFetchBytes = 20 << 20

// HTTPFetcher downloads remote media for visual analysis. Failures are
// soft: callers degrade to default visual scores instead of failing the
// prediction.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build media request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch media: %w: status %d", domain.ErrDependencyUnavailable, resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read media body: %w", err)
	}
	if len(raw) > maxFetchBytes {
		return nil, fmt.Errorf("media exceeds %d bytes: %w", maxFetchBytes, domain.ErrInvalidInput)
	}
	return raw, nil
}
