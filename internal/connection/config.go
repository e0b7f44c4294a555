package connection

import (
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Config of connection to the e-signature API.
type Config struct {
	// Site is base URL of the service, e.g. https://rightsignature.com.
	Site string
	// APIToken is sent in the api-token header.
	APIToken string
	// Timeout of one request.
	Timeout time.Duration
}

// Validate returns all problems of the config at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Site == "" {
		result = multierror.Append(result, fmt.Errorf("site is required"))
	} else if u, err := url.Parse(c.Site); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid site: %w", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		result = multierror.Append(result, fmt.Errorf("site must use http or https scheme, got: %q", u.Scheme))
	}

	if c.APIToken == "" {
		result = multierror.Append(result, fmt.Errorf("api token is required"))
	}

	if c.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be positive, got: %v", c.Timeout))
	}

	return result.ErrorOrNil()
}
