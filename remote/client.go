// Package remote reads and deletes list records through the travel
// agency's HTTP API.
package remote

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/supakorn-kn/travel-admin/env"
)

type Client struct {
	client *resty.Client
}

// apiError is the error body the API answers with on failure.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewClient(config env.APIConfig) (*Client, error) {

	if config.BaseURL == "" {
		return nil, errors.New("API base URL must not be empty")
	}

	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {

		slog.Debug("API request done",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)

		return nil
	})

	return &Client{client: client}, nil
}

// responseError turns a non-2xx response into an error carrying the
// server's message when it sent one.
func responseError(resp *resty.Response) error {

	if body, ok := resp.Error().(*apiError); ok && body != nil {

		if body.Error != "" {
			return errors.New(body.Error)
		}

		if body.Message != "" {
			return errors.New(body.Message)
		}
	}

	return fmt.Errorf("unexpected status %s", resp.Status())
}
