package models

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Config is everything a Client needs to reach the models endpoint.
type Config struct {
	// URL is the base endpoint, e.g. http://127.0.0.1:8317. The /v1/models path is
	// appended to it.
	URL   string
	Token string

	// UserAgent defaults to "list-models" when empty.
	UserAgent string

	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration

	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Validate returns an error if any of the fields are invalid.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("api url is required")
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid api url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api url %q: scheme and host are required", c.URL)
	}

	if c.Token == "" {
		return errors.New("api key is required")
	}

	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}

	return nil
}
