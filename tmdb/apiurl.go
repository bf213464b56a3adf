package tmdb

import (
	"net/url"
	"strings"
)

// buildURL assembles a fully qualified request URL from the API root, a base
// path segment, an optional sub-path suffix, and query arguments. The API key
// is always included as a query parameter. Argument values are encoded as-is;
// empty values are kept as empty strings rather than omitted. No validation
// of the path segments is performed, a malformed base path simply produces a
// request that fails at the transport layer.
func buildURL(root, apiKey, base, suffix string, args url.Values) string {
	var sb strings.Builder
	sb.WriteString(root)
	sb.WriteString(base)
	if suffix != "" {
		sb.WriteString(suffix)
	}

	params := url.Values{}
	for key, values := range args {
		for _, value := range values {
			params.Add(key, value)
		}
	}
	params.Set("api_key", apiKey)

	sb.WriteString("?")
	sb.WriteString(params.Encode())
	return sb.String()
}

// apiURL builds a request URL against the client's configured API root.
func (c *Client) apiURL(base, suffix string, args url.Values) string {
	return buildURL(c.baseURL, c.apiKey, base, suffix, args)
}
