package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestToken(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/authentication/token/new", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":       true,
			"request_token": "641bf16c663db167c6cffcdff41126039d4445bf",
			"expires_at":    "2026-08-29 23:59:59 UTC",
		})
	})

	token, err := client.GetRequestToken(context.Background())
	require.NoError(t, err)
	assert.True(t, token.Success)
	assert.Equal(t, "641bf16c663db167c6cffcdff41126039d4445bf", token.Token)
}

func TestGetSessionToken(t *testing.T) {
	t.Run("approved token", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/authentication/session/new", r.URL.Path)
			assert.Equal(t, "approved-token", r.URL.Query().Get("request_token"))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":    true,
				"session_id": "79191836ddaa0da3df76a5ffef6f07ad6ab0f641",
			})
		})

		session, err := client.GetSessionToken(context.Background(), "approved-token")
		require.NoError(t, err)
		assert.Equal(t, "79191836ddaa0da3df76a5ffef6f07ad6ab0f641", session.SessionID)
		assert.Equal(t, session.SessionID, session.ID())
	})

	t.Run("unapproved token", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":        false,
				"status_code":    17,
				"status_message": "Session denied.",
			})
		})

		session, err := client.GetSessionToken(context.Background(), "pending-token")
		require.ErrorIs(t, err, ErrTokenDenied)
		// The failed response is still returned for status inspection
		require.NotNil(t, session)
		assert.Equal(t, 17, session.StatusCode)
		assert.Equal(t, "Session denied.", session.StatusMessage)
	})
}

func TestGetGuestSessionToken(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/authentication/guest_session/new", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":          true,
			"guest_session_id": "1ce82ec1223641636ad4a60b07de3581",
			"expires_at":       "2026-08-30 23:59:59 UTC",
		})
	})

	session, err := client.GetGuestSessionToken(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Success)
	assert.Equal(t, "1ce82ec1223641636ad4a60b07de3581", session.GuestSessionID)
	assert.Equal(t, session.GuestSessionID, session.ID())
}

func TestGetConfiguration(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/configuration", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"images": map[string]interface{}{
				"base_url":        "http://image.tmdb.org/t/p/",
				"secure_base_url": "https://image.tmdb.org/t/p/",
				"poster_sizes":    []string{"w92", "w154", "w185", "w342", "w500", "w780", "original"},
			},
			"change_keys": []string{"adult", "air_date", "also_known_as"},
		})
	})

	config, err := client.GetConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://image.tmdb.org/t/p/", config.Images.SecureBaseURL)
	assert.Len(t, config.Images.PosterSizes, 7)
	assert.True(t, config.HasChangeKey("air_date"))
}
