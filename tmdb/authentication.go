package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// ErrTokenDenied indicates TMDb refused to create a session for a token,
// usually because the user has not approved it yet.
var ErrTokenDenied = errors.New("request token was not approved")

// GetRequestToken creates a temporary request token. The token must be
// approved by the user at themoviedb.org before it can be exchanged for a
// session.
func (c *Client) GetRequestToken(ctx context.Context) (*RequestToken, error) {
	requestURL := c.apiURL("authentication/token/new", "", nil)

	var token RequestToken
	if err := c.do(ctx, http.MethodGet, requestURL, nil, &token); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to get request token")
		return nil, err
	}
	return &token, nil
}

// GetSessionToken exchanges an approved request token for a session
func (c *Client) GetSessionToken(ctx context.Context, requestToken string) (*SessionToken, error) {
	args := url.Values{}
	args.Set("request_token", requestToken)
	requestURL := c.apiURL("authentication/session/new", "", args)

	var session SessionToken
	if err := c.do(ctx, http.MethodGet, requestURL, nil, &session); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to get session token")
		return nil, err
	}
	if !session.Success {
		c.logger.Debug().
			Int("status_code", session.StatusCode).
			Str("status_message", session.StatusMessage).
			Msg("Session was not created")
		return &session, ErrTokenDenied
	}
	return &session, nil
}

// GetGuestSessionToken creates a guest session. Guest sessions can rate
// media but cannot use the account or list endpoints.
func (c *Client) GetGuestSessionToken(ctx context.Context) (*SessionToken, error) {
	requestURL := c.apiURL("authentication/guest_session/new", "", nil)

	var session SessionToken
	if err := c.do(ctx, http.MethodGet, requestURL, nil, &session); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to get guest session")
		return nil, err
	}
	return &session, nil
}
