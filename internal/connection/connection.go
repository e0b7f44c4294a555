// Package connection issues requests to the e-signature API over HTTP with
// XML bodies and decodes XML responses into nested mappings.
package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"

	"github.com/geoirb/go-esign/internal/xmlcodec"
)

const (
	tokenHeader = "api-token"
	contentType = "application/xml"
)

// Connection to the e-signature API.
type Connection struct {
	site   string
	token  string
	client *http.Client

	logger log.Logger
}

// New ...
func New(
	cfg Config,
	logger log.Logger,
) (*Connection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid connection config: %w", err)
	}
	return &Connection{
		site:  strings.TrimSuffix(cfg.Site, "/"),
		token: cfg.APIToken,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: log.WithPrefix(logger, "component", "connection"),
	}, nil
}

// Get path with params as query.
func (c *Connection) Get(ctx context.Context, path string, params map[string]interface{}) (map[string]interface{}, error) {
	endpoint := c.site + path
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, fmt.Sprint(v))
		}
		endpoint += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodGet, path, endpoint, nil)
}

// Post params as XML body to path. Empty params give an empty body.
func (c *Connection) Post(ctx context.Context, path string, params map[string]interface{}) (map[string]interface{}, error) {
	var body []byte
	if len(params) > 0 {
		var err error
		if body, err = xmlcodec.Marshal(params); err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
	}
	return c.do(ctx, http.MethodPost, path, c.site+path, body)
}

func (c *Connection) do(ctx context.Context, method, path, endpoint string, body []byte) (map[string]interface{}, error) {
	logger := log.WithPrefix(c.logger, "method", method, "path", path)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set(tokenHeader, c.token)
	req.Header.Set("Accept", contentType)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	level.Debug(logger).Log("msg", "response", "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   string(respBody),
		}
	}

	result, err := xmlcodec.Unmarshal(respBody)
	if err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	return result, nil
}
