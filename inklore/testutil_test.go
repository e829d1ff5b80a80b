package inklore

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
)

// newTestClient points every API version and the site base at a fake server
// built from the given router, mirroring the real path layout per version.
func newTestClient(t *testing.T, r *mux.Router, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	opts = append([]Option{
		WithBaseURLs(map[string]string{
			APIv2: srv.URL + "/apiv2/",
			APIv3: srv.URL + "/api/v3/",
			APIv4: srv.URL + "/v4/",
			APIv5: srv.URL + "/v5/",
		}),
		WithSiteBaseURL(srv.URL),
	}, opts...)

	return New(opts...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// requestCounter counts how many requests reached the fake server.
type requestCounter struct {
	n atomic.Int32
}

func (c *requestCounter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.n.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (c *requestCounter) count() int { return int(c.n.Load()) }

func loggedInClient(t *testing.T, r *mux.Router, username, token string) *Client {
	t.Helper()
	c := newTestClient(t, r)
	c.SetSession(&Session{Token: token, Username: username})
	return c
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }
