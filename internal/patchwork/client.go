// Package patchwork is a minimal client for a patchwork instance's
// REST API: it resolves a patch or series ID to its raw mailbox
// content. Lookups never retry; any failure aborts the caller.
package patchwork

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL points at the public kernel.org instance. Repositories
// override it through the ConfigKey git setting.
const DefaultBaseURL = "https://patchwork.kernel.org"

// ConfigKey is the git configuration key naming the instance to query.
const ConfigKey = "cu.patchwork-url"

// Resource kinds understood by the API.
const (
	KindPatch  = "patch"
	KindSeries = "series"
)

// Client talks to a single patchwork instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the instance at baseURL. A trailing
// slash on baseURL is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// resource is the envelope returned for patch and series lookups.
// Error responses carry detail instead of the content fields.
type resource struct {
	Detail *string `json:"detail"`
	Mbox   string  `json:"mbox"`
}

// APIError is an error reported by the service itself, either through
// the detail field of its JSON envelope or as a bare HTTP status.
type APIError struct {
	Detail string
	Status int
}

func (e *APIError) Error() string {
	return e.Detail
}

func (c *Client) resourceURL(kind, id string) string {
	return fmt.Sprintf("%s/api/%s/%s/", c.baseURL, kind, id)
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	log.Debug().Msgf("GET %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Detail: fmt.Sprintf("HTTP %d", resp.StatusCode), Status: resp.StatusCode}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Mbox resolves the patch or series with the given ID and returns a
// reader streaming its raw mailbox content. A detail field in the
// lookup response is surfaced verbatim as the error message.
func (c *Client) Mbox(ctx context.Context, kind, id string) (io.ReadCloser, error) {
	var res resource
	if err := c.getJSON(ctx, c.resourceURL(kind, id), &res); err != nil {
		return nil, err
	}
	if res.Detail != nil {
		return nil, &APIError{Detail: *res.Detail}
	}
	if res.Mbox == "" {
		return nil, fmt.Errorf("%s %s has no mbox link", kind, id)
	}

	resp, err := c.get(ctx, res.Mbox)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, &APIError{Detail: fmt.Sprintf("HTTP %d", resp.StatusCode), Status: resp.StatusCode}
	}
	return resp.Body, nil
}
