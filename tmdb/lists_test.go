package tmdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestGetList(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/list/509ec17b19c2950a0600050d", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         "509ec17b19c2950a0600050d",
			"name":       "Best Picture Winners",
			"item_count": 1,
			"items": []map[string]interface{}{
				{"id": 238, "title": "The Godfather"},
			},
		})
	})

	list, err := client.GetList(context.Background(), "509ec17b19c2950a0600050d")
	require.NoError(t, err)
	assert.Equal(t, "Best Picture Winners", list.Name)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "The Godfather", list.Items[0].Title)
}

func TestGetListMappingFailed(t *testing.T) {
	const garbage = `<html>service unavailable</html>`

	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, garbage)
	})

	_, err := client.GetList(context.Background(), "42")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindMappingFailed, apiErr.Kind)
	assert.Equal(t, garbage, apiErr.Response)
}

func TestIsMovieOnList(t *testing.T) {
	tests := []struct {
		name    string
		present bool
	}{
		{name: "movie on list", present: true},
		{name: "movie not on list", present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/list/42/item_status", r.URL.Path)
				assert.Equal(t, "603", r.URL.Query().Get("movie_id"))

				json.NewEncoder(w).Encode(map[string]interface{}{
					"id":           "42",
					"item_present": tt.present,
				})
			})

			// A well-formed "not present" response is not an error
			present, err := client.IsMovieOnList(context.Background(), "42", 603)
			require.NoError(t, err)
			assert.Equal(t, tt.present, present)
		})
	}
}

func TestCreateList(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/list", r.URL.Path)
		assert.Equal(t, "session-1", r.URL.Query().Get("session_id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"name":        "Foo",
			"description": "",
		}, body)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status_code":    1,
			"status_message": "Success.",
			"list_id":        "50941077760ee35e1500000e",
		})
	})

	// Name is trimmed, missing description becomes an empty string
	status, err := client.CreateList(context.Background(), "session-1", "  Foo  ", "")
	require.NoError(t, err)
	assert.Equal(t, "50941077760ee35e1500000e", status.ListID)
	assert.True(t, status.Success())
}

func TestCreateListRequiresSession(t *testing.T) {
	client, err := NewClient("test-key", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.CreateList(context.Background(), "", "Foo", "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestModifyMovieList(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		call      func(c *Client) (*StatusCode, error)
	}{
		{
			name:      "add movie",
			operation: "/list/42/add_item",
			call: func(c *Client) (*StatusCode, error) {
				return c.AddMovieToList(context.Background(), "session-1", "42", 603)
			},
		},
		{
			name:      "remove movie",
			operation: "/list/42/remove_item",
			call: func(c *Client) (*StatusCode, error) {
				return c.RemoveMovieFromList(context.Background(), "session-1", "42", 603)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.operation, r.URL.Path)
				assert.Equal(t, "session-1", r.URL.Query().Get("session_id"))

				var body map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				// The movie id is sent stringified
				assert.Equal(t, map[string]string{"media_id": "603"}, body)

				json.NewEncoder(w).Encode(map[string]interface{}{
					"status_code":    12,
					"status_message": "The item/record was updated successfully.",
				})
			})

			status, err := tt.call(client)
			require.NoError(t, err)
			assert.Equal(t, 12, status.Code)
			assert.True(t, status.Success())
		})
	}
}

func TestDeleteList(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/list/42", r.URL.Path)
		assert.Equal(t, "session-1", r.URL.Query().Get("session_id"))

		// DELETE carries no JSON body
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Empty(t, body)
		assert.Empty(t, r.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status_code":    13,
			"status_message": "The item/record was deleted successfully.",
		})
	})

	status, err := client.DeleteList(context.Background(), "session-1", "42")
	require.NoError(t, err)
	assert.Equal(t, 13, status.Code)
	assert.True(t, status.Success())
}
