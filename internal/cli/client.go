package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// apiClient is a thin resty wrapper over the service's HTTP surface.
type apiClient struct {
	http *resty.Client
}

func newAPIClient(baseURL, token string) *apiClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(15 * time.Second)
	if token != "" {
		c.SetAuthToken(token)
	}
	return &apiClient{http: c}
}

// envelope mirrors the API's response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (c *apiClient) fetchConfig(ctx context.Context, app string) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("app", app).
		Get("/config")
	if err != nil {
		return nil, fmt.Errorf("fetch config: %w", err)
	}
	return decodeEnvelope(resp)
}

func (c *apiClient) putEntry(ctx context.Context, app, screen, key string, value any, contentType string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"app":    app,
			"screen": screen,
			"key":    key,
			"value":  value,
			"type":   contentType,
		}).
		Post("/admin/config")
	if err != nil {
		return fmt.Errorf("put entry: %w", err)
	}
	_, err = decodeEnvelope(resp)
	return err
}

func (c *apiClient) deleteEntry(ctx context.Context, app, screen, key string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("app", app).
		SetQueryParam("screen", screen).
		Delete("/admin/config/" + key)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil
	}
	_, err = decodeEnvelope(resp)
	return err
}

// decodeEnvelope unwraps a response envelope, converting API failures
// into errors carrying the server's message and code.
func decodeEnvelope(resp *resty.Response) (json.RawMessage, error) {
	var out envelope
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode(), err)
	}
	if !out.Success {
		if out.Error != nil {
			if out.Error.Code != "" {
				return nil, fmt.Errorf("api error %s: %s", out.Error.Code, out.Error.Message)
			}
			return nil, fmt.Errorf("api error: %s", out.Error.Message)
		}
		return nil, fmt.Errorf("api error: status %d", resp.StatusCode())
	}
	return out.Data, nil
}
