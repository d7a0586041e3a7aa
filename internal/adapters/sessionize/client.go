package sessionize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"pyconjptalks/internal/domain"
)

// DefaultBaseURL is the public Sessionize host.
const DefaultBaseURL = "https://sessionize.com"

type sessionizeHTTPFetcher struct {
	client  *http.Client
	baseURL string
}

// NewHTTPFetcher returns a fetcher that calls the Sessionize API at baseURL.
// An empty baseURL means DefaultBaseURL.
func NewHTTPFetcher(client *http.Client, baseURL string) domain.SessionFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &sessionizeHTTPFetcher{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// AllViewURL returns the URL of the "All" view of a Sessionize endpoint.
func AllViewURL(baseURL, endpointID string) string {
	return fmt.Sprintf("%s/api/v2/%s/view/All", strings.TrimRight(baseURL, "/"), endpointID)
}

func (f *sessionizeHTTPFetcher) Fetch(ctx context.Context, endpointID string) (domain.SessionFetcherResponse, error) {
	url := AllViewURL(f.baseURL, endpointID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.SessionFetcherResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return domain.SessionFetcherResponse{}, fmt.Errorf("failed to fetch from sessionize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.SessionFetcherResponse{}, fmt.Errorf("sessionize api returned status: %d", resp.StatusCode)
	}

	var data domain.SessionFetcherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return domain.SessionFetcherResponse{}, fmt.Errorf("failed to decode sessionize response: %w", err)
	}
	return data, nil
}
