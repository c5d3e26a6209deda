package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/vmwatch/pkg/adapters"
	"github.com/de-tools/vmwatch/pkg/models/api"
	"github.com/de-tools/vmwatch/pkg/models/domain"
)

// Fetcher retrieves the deployment inventory from the provider API.
type Fetcher interface {
	Fetch(ctx context.Context, creds domain.CredentialSet) ([]domain.InventoryRecord, error)
}

type httpFetcher struct {
	endpoint string
	client   *http.Client
}

func NewFetcher(endpoint string, timeout time.Duration) Fetcher {
	return &httpFetcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch performs a single authenticated GET against the inventory endpoint
// and maps the response to domain records. Entries without deployment data
// are dropped during mapping.
func (f *httpFetcher) Fetch(ctx context.Context, creds domain.CredentialSet) ([]domain.InventoryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("build inventory request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(creds.User, creds.Password)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var entries []api.InventoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("parsing inventory response: %w", err)}
	}

	return adapters.MapInventoryEntriesApiToDomain(entries), nil
}
