package gamerpower

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/giveaway_stats/logger"
)

func newTestClient(url string) *Client {
	return New(Options{BaseURL: url, Timeout: 2 * time.Second, Retries: 1}, logger.NewNop())
}

func TestClientFetchSendsFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/giveaways", r.URL.Path)
		assert.Equal(t, "pc", r.URL.Query().Get("platform"))
		assert.Equal(t, "game", r.URL.Query().Get("type"))
		assert.Equal(t, "value", r.URL.Query().Get("sort-by"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL+"/api").Fetch(context.Background(), Filter{Platform: "pc", Type: "game", SortBy: "value"})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestClientFetchFullSetHasNoQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background(), Filter{})
	require.NoError(t, err)
}

func TestClientFetchNoGiveawaysReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":0,"status_message":"No active giveaways available at the moment, please try again later."}`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).Fetch(context.Background(), Filter{Platform: "vr"})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClientFetchServerErrorIsNetworkError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background(), Filter{})
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "one retry after the first 5xx")
}

func TestClientFetchMalformedBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background(), Filter{})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestClientFetchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(Options{BaseURL: url, Timeout: time.Second}, logger.NewNop()).Fetch(context.Background(), Filter{})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClientFetchRejectsBadSortOrder(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").Fetch(context.Background(), Filter{SortBy: "cheapest"})
	assert.ErrorIs(t, err, ErrFilter)
}
