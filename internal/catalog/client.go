package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client fetches the product list from the storefront functions API.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Entry
}

// NewClient creates a catalog client for the given functions base URL.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// productsResponse mirrors the get-products function payload.
type productsResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// FetchProducts downloads the full catalog. Product descriptions may carry
// markup from the admin rich-text editor; they are reduced to plain text here
// so the search engine only ever sees clean strings.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	url := c.baseURL + "/get-products"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	for i := range payload.Products {
		payload.Products[i].Description = TextContent(payload.Products[i].Description)
	}

	c.logger.Debugf("Fetched %d products from catalog", len(payload.Products))
	return payload.Products, nil
}
