package sheets

import (
	"fmt"
	"log"

	"micfinder/api"
)

// MicSourceClient fetches the published mic catalog CSV over HTTP.
type MicSourceClient struct {
	httpClient *api.HTTPClient
	csvPath    string
}

// NewMicSourceClient builds a client fetching csvPath from the given base.
func NewMicSourceClient(httpClient *api.HTTPClient, csvPath string) *MicSourceClient {
	return &MicSourceClient{
		httpClient: httpClient,
		csvPath:    csvPath,
	}
}

// FetchMicsCSV downloads the raw CSV payload.
func (c *MicSourceClient) FetchMicsCSV() ([]byte, error) {
	log.Printf("[MicSourceClient] Fetching mic catalog from %s%s", c.httpClient.BaseURL, c.csvPath)
	body, err := c.httpClient.GetRaw(c.csvPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mic catalog CSV: %w", err)
	}
	return body, nil
}
