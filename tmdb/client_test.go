package tmdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("valid config", func(t *testing.T) {
		client, err := NewClient("test-key", logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, "test-key", client.apiKey)
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})

	t.Run("missing API key", func(t *testing.T) {
		_, err := NewClient("", logger)
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with base URL", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithBaseURL("http://localhost:9090"))
		require.NoError(t, err)
		// A trailing slash is always present on the API root
		assert.Equal(t, "http://localhost:9090/", client.baseURL)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "tmdbctl/1.0", r.Header.Get("User-Agent"))
			json.NewEncoder(w).Encode(map[string]interface{}{"images": map[string]interface{}{}})
		}))
		defer server.Close()

		client, err := NewClient("test-key", logger,
			WithBaseURL(server.URL), WithUserAgent("tmdbctl/1.0"))
		require.NoError(t, err)

		_, err = client.GetConfiguration(context.Background())
		require.NoError(t, err)
	})
}

func TestRequestHTTPError(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"status_code":7,"status_message":"Invalid API key"}`)
	})

	_, err := client.GetList(context.Background(), "42")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindHTTPError, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.True(t, apiErr.IsUnauthorized())
	assert.False(t, apiErr.IsNotFound())
	assert.Contains(t, apiErr.Response, "Invalid API key")
}

func TestRequestConnectionFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.GetList(context.Background(), "42")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindConnectionFailed, apiErr.Kind)
}

func TestTestConnection(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/configuration", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"images":      map[string]interface{}{"base_url": "http://image.tmdb.org/t/p/"},
				"change_keys": []string{"adult"},
			})
		})

		assert.NoError(t, client.TestConnection(context.Background()))
	})

	t.Run("unauthorized", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		assert.Error(t, client.TestConnection(context.Background()))
	})
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindInvalidURL, "INVALID_URL"},
		{KindConnectionFailed, "CONNECTION_FAILED"},
		{KindHTTPError, "HTTP_ERROR"},
		{KindMappingFailed, "MAPPING_FAILED"},
		{KindUnknown, "UNKNOWN"},
		{ErrorKind(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
