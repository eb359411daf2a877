package gitlabapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/runoshun/backlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRepo = domain.RepoRef{Owner: "group", Name: "project"}

func newTestTracker(t *testing.T, handler http.HandlerFunc) *Tracker {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tracker, err := New("test-token", server.URL, testRepo)
	require.NoError(t, err)
	return tracker
}

func TestTracker_CheckAvailable(t *testing.T) {
	ctx := context.Background()

	noToken, err := New("", "https://gitlab.com", testRepo)
	require.NoError(t, err)
	assert.ErrorIs(t, noToken.CheckAvailable(ctx), domain.ErrMissingToken)

	noRepo, err := New("token", "https://gitlab.com", domain.RepoRef{})
	require.NoError(t, err)
	assert.ErrorIs(t, noRepo.CheckAvailable(ctx), domain.ErrNoRepository)
}

func TestTracker_CheckAuth(t *testing.T) {
	tracker := newTestTracker(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/user", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("PRIVATE-TOKEN"))
		_, _ = w.Write([]byte(`{"id":1,"username":"root"}`))
	})
	assert.NoError(t, tracker.CheckAuth(context.Background()))

	unauthorized := newTestTracker(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"401 Unauthorized"}`))
	})
	assert.ErrorIs(t, unauthorized.CheckAuth(context.Background()), domain.ErrTrackerUnauthenticated)
}

func TestTracker_UpsertLabel(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		tracker := newTestTracker(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.True(t, strings.HasSuffix(r.URL.Path, "/labels"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "backend", body["name"])
			assert.Equal(t, "#0e8a16", body["color"])
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":1,"name":"backend","color":"#0e8a16"}`))
		})

		outcome, err := tracker.UpsertLabel(context.Background(), "backend", "0e8a16")
		require.NoError(t, err)
		assert.Equal(t, domain.LabelCreated, outcome)
	})

	t.Run("conflict updates color", func(t *testing.T) {
		var methods []string
		tracker := newTestTracker(t, func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, r.Method)
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"message":"Label already exists"}`))
				return
			}
			assert.True(t, strings.HasSuffix(r.URL.Path, "/labels/backend"))
			_, _ = w.Write([]byte(`{"id":1,"name":"backend","color":"#0e8a16"}`))
		})

		outcome, err := tracker.UpsertLabel(context.Background(), "backend", "0e8a16")
		require.NoError(t, err)
		assert.Equal(t, domain.LabelExisted, outcome)
		assert.Equal(t, []string{http.MethodPost, http.MethodPut}, methods)
	})

	t.Run("forbidden", func(t *testing.T) {
		tracker := newTestTracker(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"403 Forbidden"}`))
		})

		outcome, err := tracker.UpsertLabel(context.Background(), "backend", "0e8a16")
		require.Error(t, err)
		assert.Equal(t, domain.LabelFailed, outcome)
	})
}

func TestTracker_CreateIssue(t *testing.T) {
	tracker := newTestTracker(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/issues"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Fix login", body["title"])
		assert.Equal(t, "Fix the bug", body["description"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1003,"iid":3,"title":"Fix login","web_url":"https://gitlab.com/group/project/-/issues/3"}`))
	})

	ref, err := tracker.CreateIssue(context.Background(), domain.IssueRecord{
		Title:  "Fix login",
		Body:   "Fix the bug",
		Labels: []string{"bug"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.com/group/project/-/issues/3", ref)
}
