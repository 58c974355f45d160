// Package skinapi provides a client for a public JSON item catalog
// (skins, knives, gloves and agents).
package skinapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abrezinsky/skinvault/internal/logger"
)

// FlexString is a string type that can be unmarshaled from either a string or a number.
// Catalog dumps are not consistent about whether IDs are quoted.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler for FlexString
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	return fmt.Errorf("FlexString: cannot unmarshal %s", string(data))
}

// String returns the string value
func (f FlexString) String() string {
	return string(f)
}

// Ref is a named reference inside a catalog record
type Ref struct {
	ID   FlexString `json:"id"`
	Name string     `json:"name"`
}

// Item is one catalog record. Weapon is empty for agents; Team is set only for agents.
type Item struct {
	ID          FlexString `json:"id"`
	Name        string     `json:"name"`
	Weapon      *Ref       `json:"weapon,omitempty"`
	Category    *Ref       `json:"category,omitempty"`
	Rarity      *Ref       `json:"rarity,omitempty"`
	Collections []Ref      `json:"collections,omitempty"`
	Team        *Ref       `json:"team,omitempty"`
	Image       string     `json:"image"`
}

// WeaponName returns the weapon name or ""
func (i Item) WeaponName() string {
	if i.Weapon == nil {
		return ""
	}
	return i.Weapon.Name
}

// CategoryName returns the category name or ""
func (i Item) CategoryName() string {
	if i.Category == nil {
		return ""
	}
	return i.Category.Name
}

// RarityName returns the rarity name or ""
func (i Item) RarityName() string {
	if i.Rarity == nil {
		return ""
	}
	return i.Rarity.Name
}

// CollectionName returns the first collection name or ""
func (i Item) CollectionName() string {
	if len(i.Collections) == 0 {
		return ""
	}
	return i.Collections[0].Name
}

// Client defines the interface for catalog operations
type Client interface {
	// FetchSkins retrieves weapon, knife and glove finishes
	FetchSkins(ctx context.Context) ([]Item, error)
	// FetchAgents retrieves agent characters
	FetchAgents(ctx context.Context) ([]Item, error)
	// BaseURL returns the configured catalog base URL
	BaseURL() string
	// SetBaseURL updates the catalog base URL
	SetBaseURL(url string)
}

const (
	skinsPath  = "/skins.json"
	agentsPath = "/agents.json"
)

// HTTPClient is a real HTTP client for the catalog
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// NewHTTPClient creates a new catalog HTTP client
func NewHTTPClient(baseURL string, log logger.Logger) *HTTPClient {
	return NewHTTPClientWithHTTPClient(baseURL, &http.Client{Timeout: 30 * time.Second}, log)
}

// NewHTTPClientWithHTTPClient creates a new catalog client with a custom http.Client
func NewHTTPClientWithHTTPClient(baseURL string, httpClient *http.Client, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

// BaseURL returns the configured catalog base URL
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// SetBaseURL updates the catalog base URL
func (c *HTTPClient) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// FetchSkins retrieves weapon, knife and glove finishes
func (c *HTTPClient) FetchSkins(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.getJSON(ctx, skinsPath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchAgents retrieves agent characters
func (c *HTTPClient) FetchAgents(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.getJSON(ctx, agentsPath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// getJSON executes a GET request against the catalog and decodes the body into response
func (c *HTTPClient) getJSON(ctx context.Context, path string, response any) error {
	if c.baseURL == "" {
		return fmt.Errorf("catalog URL is not configured")
	}
	reqURL := c.baseURL + path

	c.log.Debug("Catalog request", "method", "GET", "url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug("Catalog response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, response); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// Ensure HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)
