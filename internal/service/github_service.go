package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrGithubNotFound = errors.New("no github profile found")

// GithubService fetches a user's most recent public repositories from
// the GitHub API.
type GithubService struct {
	baseURL string
	client  *http.Client
}

func NewGithubService() *GithubService {
	return &GithubService{
		baseURL: "https://api.github.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *GithubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", s.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "devconnect")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching github repos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrGithubNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading github response: %w", err)
	}
	return json.RawMessage(body), nil
}
