package tmdb

import (
	"context"
	"net/http"
)

// GetConfiguration retrieves the system-wide configuration: image URL
// building blocks and the valid change keys.
func (c *Client) GetConfiguration(ctx context.Context) (*Configuration, error) {
	requestURL := c.apiURL("configuration", "", nil)

	var config Configuration
	if err := c.do(ctx, http.MethodGet, requestURL, nil, &config); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to get configuration")
		return nil, err
	}
	return &config, nil
}
