package path

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	apiPrefix = "/api"
	format    = ".xml"
)

// Builder of API paths and user-facing site URLs.
type Builder struct {
	site string
}

// NewBuilder ...
// site - base URL of the e-signature service, e.g. https://rightsignature.com.
func NewBuilder(
	site string,
) (*Builder, error) {
	u, err := url.Parse(site)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", site, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("site %s is not an http(s) url", site)
	}
	return &Builder{
		site: strings.TrimSuffix(site, "/"),
	}, nil
}

// Site returns base URL without trailing slash.
func (b *Builder) Site() string {
	return b.site
}

// Templates returns path of the templates collection.
func (b *Builder) Templates() string {
	return apiPrefix + "/templates" + format
}

// Template returns path of template by guid.
func (b *Builder) Template(guid string) string {
	return apiPrefix + "/templates/" + guid + format
}

// Prepackage returns prepackage path of template by guid.
func (b *Builder) Prepackage(guid string) string {
	return apiPrefix + "/templates/" + guid + "/prepackage" + format
}

// BuildToken returns path issuing template builder tokens.
func (b *Builder) BuildToken() string {
	return apiPrefix + "/templates/generate_build_token" + format
}

// SignerLinks returns signer links path of document by guid.
func (b *Builder) SignerLinks(guid string) string {
	return apiPrefix + "/documents/" + guid + "/signer_links" + format
}

// BuilderURL returns template builder URL for redirect token.
// Tokens are issued URL-safe and passed through as is.
func (b *Builder) BuilderURL(token string) string {
	return b.site + "/builder/new?rt=" + token
}

// EmbeddedSigningURL returns embedded signing URL for signer token.
// redirectLocation is appended if not empty.
func (b *Builder) EmbeddedSigningURL(token, redirectLocation string) string {
	u := b.site + "/signatures/embedded?rt=" + token
	if redirectLocation != "" {
		u += "&redirect_location=" + url.QueryEscape(redirectLocation)
	}
	return u
}
