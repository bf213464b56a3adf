package tmdb

import "strings"

// StatusCode is TMDb's own success/failure indicator embedded in a JSON
// response body, distinct from the HTTP status code.
type StatusCode struct {
	Code    int    `json:"status_code"`
	Message string `json:"status_message"`
}

// Success status codes documented by TMDb
const (
	statusSuccess       = 1
	statusRecordUpdated = 12
	statusRecordDeleted = 13
)

// Success reports whether the status code indicates a successful operation
func (s StatusCode) Success() bool {
	switch s.Code {
	case statusSuccess, statusRecordUpdated, statusRecordDeleted:
		return true
	default:
		return false
	}
}

// StatusCodeList is the response to a list creation: a status code plus the
// id of the created list.
type StatusCodeList struct {
	StatusCode
	ListID string `json:"list_id"`
}

// Configuration holds the system-wide configuration information returned by
// the /configuration endpoint: image URL building blocks and the set of
// change keys the /changes endpoints recognize.
type Configuration struct {
	Images     ImageConfig `json:"images"`
	ChangeKeys []string    `json:"change_keys"`
}

// ImageConfig holds the image base URLs and valid size names
type ImageConfig struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// ImageURL joins the secure base URL, a size name, and an image file path
// into a full image URL. It falls back to the plain base URL when no secure
// one is configured.
func (c *Configuration) ImageURL(filePath, size string) string {
	base := c.Images.SecureBaseURL
	if base == "" {
		base = c.Images.BaseURL
	}
	return base + size + filePath
}

// HasChangeKey reports whether the given field name is a valid change key
func (c *Configuration) HasChangeKey(key string) bool {
	for _, k := range c.ChangeKeys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// RequestToken is the temporary token returned by authentication/token/new,
// to be approved by the user and exchanged for a session.
type RequestToken struct {
	Success   bool   `json:"success"`
	Token     string `json:"request_token"`
	ExpiresAt string `json:"expires_at"`
}

// SessionToken is the credential returned by the session endpoints. Either
// SessionID or GuestSessionID is set depending on the endpoint; the status
// code/message pair is only present on failure.
type SessionToken struct {
	Success        bool   `json:"success"`
	SessionID      string `json:"session_id"`
	GuestSessionID string `json:"guest_session_id"`
	ExpiresAt      string `json:"expires_at"`
	StatusCode     int    `json:"status_code"`
	StatusMessage  string `json:"status_message"`
}

// ID returns whichever session identifier is populated
func (t *SessionToken) ID() string {
	if t.SessionID != "" {
		return t.SessionID
	}
	return t.GuestSessionID
}

// MovieList mirrors the list shape returned by GET /list/{id}
type MovieList struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	CreatedBy     string      `json:"created_by"`
	FavoriteCount int         `json:"favorite_count"`
	ItemCount     int         `json:"item_count"`
	Language      string      `json:"iso_639_1"`
	PosterPath    string      `json:"poster_path"`
	Items         []ListMovie `json:"items"`
}

// ListMovie is a movie entry inside a list
type ListMovie struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	MediaType     string  `json:"media_type"`
	Adult         bool    `json:"adult"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
}

// ReleaseYear returns the four-digit release year, or 0 when unknown
func (m *ListMovie) ReleaseYear() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year := 0
	for _, r := range m.ReleaseDate[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}

// ListItemStatus is the response to GET /list/{id}/item_status
type ListItemStatus struct {
	ID          string `json:"id"`
	ItemPresent bool   `json:"item_present"`
}
