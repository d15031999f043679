package fixtures

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"errors": [],
	"response": [
		{
			"fixture": {"id": 101, "date": "2026-09-05T18:30:00+02:00", "venue": {"name": "Signal Iduna Park", "city": "Dortmund"}},
			"league": {"name": "Bundesliga"},
			"teams": {"home": {"name": "Borussia Dortmund"}, "away": {"name": "FC Augsburg"}}
		},
		{
			"fixture": {"id": 102, "date": "2026-09-05T15:00:00+01:00", "venue": {"name": "Anfield", "city": "Liverpool"}},
			"league": {"name": "Premier League"},
			"teams": {"home": {"name": "Liverpool FC"}, "away": {"name": "Everton FC"}}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		APIHost: strings.TrimPrefix(server.URL, "https://"),
		APIKey:  "test-key",
	})
	client.httpClient = server.Client()
	return client
}

func TestSearch(t *testing.T) {
	t.Run("filters by venue city", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
			assert.Equal(t, "2026-09-05", r.URL.Query().Get("date"))
			w.Write([]byte(samplePayload))
		})

		results, err := client.Search(context.Background(), "2026-09-05", "dortmund")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "101", results[0].ID)
		assert.Equal(t, "Borussia Dortmund", results[0].HomeTeam)
		assert.Equal(t, "FC Augsburg", results[0].AwayTeam)
		assert.Equal(t, "2026-09-05", results[0].Date)
		assert.Equal(t, "18:30", results[0].Time)
		assert.Equal(t, "Signal Iduna Park, Dortmund", results[0].Location)
		assert.Equal(t, "Bundesliga", results[0].League)
	})

	t.Run("matches team names too", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(samplePayload))
		})

		results, err := client.Search(context.Background(), "2026-09-05", "everton")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Liverpool FC", results[0].HomeTeam)
	})

	t.Run("no match yields empty result, not an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(samplePayload))
		})

		results, err := client.Search(context.Background(), "2026-09-05", "atlantis")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("non-2xx surfaces as a single error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})

		_, err := client.Search(context.Background(), "2026-09-05", "dortmund")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("upstream errors object is refused", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"errors": {"token": "invalid api key"}, "response": []}`))
		})

		_, err := client.Search(context.Background(), "2026-09-05", "dortmund")
		require.Error(t, err)
	})

	t.Run("malformed body surfaces as a single error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": [`))
		})

		_, err := client.Search(context.Background(), "2026-09-05", "dortmund")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed")
	})
}

func TestHasErrors(t *testing.T) {
	assert.False(t, hasErrors(nil))
	assert.False(t, hasErrors([]byte(`null`)))
	assert.False(t, hasErrors([]byte(`[]`)))
	assert.False(t, hasErrors([]byte(`{}`)))
	assert.True(t, hasErrors([]byte(`{"token": "bad"}`)))
	assert.True(t, hasErrors([]byte(`["rate limit"]`)))
}

func TestSplitKickoff(t *testing.T) {
	date, clock := splitKickoff("2026-09-05T18:30:00+02:00")
	assert.Equal(t, "2026-09-05", date)
	assert.Equal(t, "18:30", clock)

	date, clock = splitKickoff("2026-09-05")
	assert.Equal(t, "2026-09-05", date)
	assert.Equal(t, "", clock)
}
