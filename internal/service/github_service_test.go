package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGithubReposRelaysBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[{"name":"hello-world"}]`))
	}))
	defer srv.Close()

	svc := &GithubService{baseURL: srv.URL, client: srv.Client()}

	repos, err := svc.Repos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"hello-world"}]`, string(repos))
}

func TestGithubReposUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := &GithubService{baseURL: srv.URL, client: srv.Client()}

	_, err := svc.Repos(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrGithubNotFound)
}
