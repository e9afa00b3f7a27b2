package sportlink

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sportLink/api"
	"sportLink/services/activity"
	"sportLink/services/favorites"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/activities", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.Error{Message: "missing access token"})
			return
		}
		assert.Equal(t, "A,B", r.URL.Query().Get("ids"))
		_ = json.NewEncoder(w).Encode(api.ActivityList{Activities: []api.Activity{
			{Id: "A", Title: "Pickup", Status: api.Open, OpenSlots: 2},
		}})
	})
	mux.HandleFunc("/users/u1/favorites/ids", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.FavoriteIds{Ids: []string{"A", "B"}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetByIDs(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, "token")

	got, err := c.GetByIDs(context.Background(), []string{"A", "B"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, activity.StatusOpen, got[0].Status)
	assert.Equal(t, 2, got[0].OpenSlots)

	empty, err := c.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetByIDsUnauthorized(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, "wrong")

	_, err := c.GetByIDs(context.Background(), []string{"A", "B"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "missing access token")
}

func TestReconcileThroughClient(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, "token")
	ctx := context.Background()

	ids, err := c.FavoriteIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids)

	r := favorites.New(c)
	defer r.Close()
	require.NoError(t, r.Reconcile(ctx, ids))
	assert.True(t, r.IDs().Contains("A"))
	assert.False(t, r.IDs().Contains("B"))
}
