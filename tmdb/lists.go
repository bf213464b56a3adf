package tmdb

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const baseList = "list/"

// GetList retrieves a list and its items by id
func (c *Client) GetList(ctx context.Context, listID string) (*MovieList, error) {
	requestURL := c.apiURL(baseList, listID, nil)

	var list MovieList
	if err := c.do(ctx, http.MethodGet, requestURL, nil, &list); err != nil {
		c.logger.Warn().Err(err).Str("list_id", listID).Msg("Failed to get list")
		return nil, err
	}
	return &list, nil
}

// IsMovieOnList checks whether a movie id is already on a list. A well-formed
// "not present" response returns false without an error.
func (c *Client) IsMovieOnList(ctx context.Context, listID string, movieID int) (bool, error) {
	args := url.Values{}
	args.Set("movie_id", strconv.Itoa(movieID))
	requestURL := c.apiURL(baseList, listID+"/item_status", args)

	var status ListItemStatus
	if err := c.do(ctx, http.MethodGet, requestURL, nil, &status); err != nil {
		c.logger.Warn().Err(err).Str("list_id", listID).Int("movie_id", movieID).
			Msg("Failed to check item status")
		return false, err
	}
	return status.ItemPresent, nil
}

// CreateList creates a new list. A valid session id is required. Name and
// description are trimmed; an empty description is sent as an empty string.
func (c *Client) CreateList(ctx context.Context, sessionID, name, description string) (*StatusCodeList, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	args := url.Values{}
	args.Set("session_id", sessionID)
	requestURL := c.apiURL(strings.TrimSuffix(baseList, "/"), "", args)

	body := map[string]string{
		"name":        strings.TrimSpace(name),
		"description": strings.TrimSpace(description),
	}

	var status StatusCodeList
	if err := c.do(ctx, http.MethodPost, requestURL, body, &status); err != nil {
		c.logger.Warn().Err(err).Str("name", name).Msg("Failed to create list")
		return nil, err
	}
	return &status, nil
}

// AddMovieToList adds a movie to a list the session owner created
func (c *Client) AddMovieToList(ctx context.Context, sessionID, listID string, movieID int) (*StatusCode, error) {
	return c.modifyMovieList(ctx, sessionID, listID, movieID, "/add_item")
}

// RemoveMovieFromList removes a movie from a list the session owner created
func (c *Client) RemoveMovieFromList(ctx context.Context, sessionID, listID string, movieID int) (*StatusCode, error) {
	return c.modifyMovieList(ctx, sessionID, listID, movieID, "/remove_item")
}

func (c *Client) modifyMovieList(ctx context.Context, sessionID, listID string, movieID int, operation string) (*StatusCode, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	args := url.Values{}
	args.Set("session_id", sessionID)
	requestURL := c.apiURL(baseList, listID+operation, args)

	body := map[string]string{"media_id": strconv.Itoa(movieID)}

	var status StatusCode
	if err := c.do(ctx, http.MethodPost, requestURL, body, &status); err != nil {
		c.logger.Warn().Err(err).Str("list_id", listID).Int("movie_id", movieID).
			Str("operation", operation).Msg("Failed to modify list")
		return nil, err
	}
	return &status, nil
}

// DeleteList deletes a list the session owner created
func (c *Client) DeleteList(ctx context.Context, sessionID, listID string) (*StatusCode, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	args := url.Values{}
	args.Set("session_id", sessionID)
	requestURL := c.apiURL(baseList, listID, args)

	var status StatusCode
	if err := c.do(ctx, http.MethodDelete, requestURL, nil, &status); err != nil {
		c.logger.Warn().Err(err).Str("list_id", listID).Msg("Failed to delete list")
		return nil, err
	}
	return &status, nil
}
