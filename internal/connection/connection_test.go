package connection

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

func newTestConnection(t *testing.T, handler http.HandlerFunc) *Connection {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{Site: srv.URL + "/", APIToken: testToken, Timeout: time.Second}, log.NewNopLogger())
	require.NoError(t, err)
	return c
}

func TestGet(t *testing.T) {
	c := newTestConnection(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/templates.xml", r.URL.Path)
		assert.Equal(t, "search", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, testToken, r.Header.Get("api-token"))
		w.Write([]byte(`<page><total-templates>1</total-templates></page>`))
	})

	res, err := c.Get(context.Background(), "/api/templates.xml", map[string]interface{}{"search": "search", "page": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"page": map[string]interface{}{"total-templates": "1"}}, res)
}

func TestPost(t *testing.T) {
	t.Run("xml body", func(t *testing.T) {
		c := newTestConnection(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Contains(t, string(body), "<template><guid>MYGUID</guid></template>")
			w.Write([]byte(`<document><guid>D1</guid></document>`))
		})

		res, err := c.Post(context.Background(), "/api/templates.xml", map[string]interface{}{
			"template": map[string]interface{}{"guid": "MYGUID"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"document": map[string]interface{}{"guid": "D1"}}, res)
	})

	t.Run("empty body", func(t *testing.T) {
		c := newTestConnection(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Empty(t, body)
			w.Write([]byte(`<template><guid>a_1</guid></template>`))
		})

		_, err := c.Post(context.Background(), "/api/templates/MYGUID/prepackage.xml", map[string]interface{}{})
		assert.NoError(t, err)
	})
}

func TestStatusError(t *testing.T) {
	c := newTestConnection(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`<error><message>Invalid api token</message></error>`))
	})

	_, err := c.Get(context.Background(), "/api/templates.xml", nil)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Contains(t, statusErr.Body, "Invalid api token")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Site: "https://rightsignature.com", APIToken: testToken, Timeout: time.Second}.Validate())

	err := Config{Site: "ftp://rightsignature.com"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme")
	assert.Contains(t, err.Error(), "api token is required")
	assert.Contains(t, err.Error(), "timeout must be positive")
}
