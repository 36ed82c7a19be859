package covers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/treygoff24/site/models"
)

const (
	defaultITunesBaseURL = "https://itunes.apple.com/search"
	defaultITunesTimeout = 10 * time.Second
	itunesResultLimit    = 3
)

// ITunesSource looks up podcast artwork through the iTunes Search API.
// This is the only source performing network I/O; failures (timeout,
// no match, malformed response) degrade to the next source for the
// affected appearance only.
type ITunesSource struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// NewITunesSource creates an ITunesSource. A nil client gets a default
// one; baseURL is overridable so tests can point at a fake server.
func NewITunesSource(client *http.Client, baseURL string) *ITunesSource {
	if client == nil {
		client = &http.Client{Timeout: defaultITunesTimeout}
	}
	if baseURL == "" {
		baseURL = defaultITunesBaseURL
	}
	return &ITunesSource{
		client:  client,
		baseURL: baseURL,
		timeout: defaultITunesTimeout,
	}
}

func (s *ITunesSource) Name() string { return SourceITunes }

type itunesSearchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		ArtworkURL600 string `json:"artworkUrl600"`
		ArtworkURL100 string `json:"artworkUrl100"`
	} `json:"results"`
}

func (s *ITunesSource) Resolve(ctx context.Context, app models.Appearance) (string, bool, error) {
	if app.Type != models.AppearanceTypePodcast {
		return "", false, nil
	}
	if app.Title == "" {
		return "", false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("term", app.Title)
	params.Set("media", "podcast")
	params.Set("limit", fmt.Sprintf("%d", itunesResultLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to build iTunes search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("iTunes search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("iTunes search returned status %d", resp.StatusCode)
	}

	var parsed itunesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", false, fmt.Errorf("failed to decode iTunes search response: %w", err)
	}

	for _, result := range parsed.Results {
		if result.ArtworkURL600 != "" {
			return result.ArtworkURL600, true, nil
		}
		if result.ArtworkURL100 != "" {
			return result.ArtworkURL100, true, nil
		}
	}
	return "", false, nil
}
