// Package models fetches the list of models served by an OpenAI-compatible API.
package models

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const defaultUserAgent = "list-models"

type Client struct {
	url       string
	token     string
	userAgent string
	client    *http.Client
	logger    *zap.Logger
}

// ModelList is the result of a successful List call.
type ModelList struct {
	// Models is sorted by ID.
	Models []Model

	// Total is the number of records the server returned.
	Total int
}

// IDs returns the model identifiers in list order.
func (l *ModelList) IDs() []string {
	ids := make([]string, 0, len(l.Models))

	for _, m := range l.Models {
		ids = append(ids, m.ID)
	}

	return ids
}

func New(conf Config) (*Client, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	client := conf.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	if conf.Timeout > 0 {
		c := *client
		c.Timeout = conf.Timeout
		client = &c
	}

	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	userAgent := conf.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		url:       strings.TrimSuffix(conf.URL, "/"),
		token:     conf.Token,
		userAgent: userAgent,
		client:    client,
		logger:    logger,
	}, nil
}

// List performs a single GET <url>/v1/models and returns the models sorted by ID.
// Nothing is retried; any failure is returned as one of TransportError,
// HTTPStatusError, DecodeError or SchemaError.
func (c *Client) List(ctx context.Context) (*ModelList, error) {
	endpoint := c.url + "/v1/models"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	log := c.logger.With(zap.String("url", endpoint))
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return nil, &TransportError{URL: endpoint, Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug("failed to read response", zap.Error(err))
		return nil, &TransportError{URL: endpoint, Err: err}
	}

	log.Debug(
		"received response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("models endpoint returned an error", zap.ByteString("body", body))
		return nil, statusError(resp, body)
	}

	models, err := decodeModels(body)
	if err != nil {
		return nil, err
	}

	log.Debug("fetched models", zap.Int("count", len(models)))

	for _, m := range models {
		log.Debug("model", zap.String("id", m.ID), zap.String("owned_by", m.OwnedBy))
	}

	return &ModelList{
		Models: Sorted(models),
		Total:  len(models),
	}, nil
}

// Sorted returns a copy of models ordered by ID. Models with equal IDs keep their
// relative order.
func Sorted(models []Model) []Model {
	sorted := make([]Model, len(models))
	copy(sorted, models)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}

func statusError(resp *http.Response, body []byte) *HTTPStatusError {
	e := &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	// https://platform.openai.com/docs/guides/error-codes
	var errResp openai.ErrorResponse

	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		e.Message = errResp.Error.Message
	}

	return e
}
