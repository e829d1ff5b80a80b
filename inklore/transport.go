package inklore

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inklore/go-inklore/internal/ratelimit"
)

// API version tags addressing the four base-URL prefixes.
const (
	APIv2 = "v2"
	APIv3 = "v3"
	APIv4 = "v4"
	APIv5 = "v5"
)

const defaultSiteBaseURL = "https://www.inklore.com"

func defaultBaseURLs() map[string]string {
	return map[string]string{
		APIv2: "https://www.inklore.com/apiv2/",
		APIv3: "https://www.inklore.com/api/v3/",
		APIv4: "https://api.inklore.com/v4/",
		APIv5: "https://api.inklore.com/v5/",
	}
}

// transport maps logical (api version, path, query, method, body) requests to
// HTTP calls. One attempt per call, no retry.
type transport struct {
	http      *http.Client
	bases     map[string]string
	log       zerolog.Logger
	userAgent string
	throttle  ratelimit.Throttle
}

// baseURL panics on an unknown version tag; the tags are package constants.
func (t *transport) baseURL(api string) string {
	base, ok := t.bases[api]
	if !ok {
		panic("inklore: unknown api version " + api)
	}
	return base
}

// request issues one HTTP call against a versioned API path. The returned
// response body is still encoded; callers go through decodeBody.
func (t *transport) request(ctx context.Context, sess *Session, method, api, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	rawURL := t.baseURL(api) + path
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	return t.requestURL(ctx, sess, method, rawURL, body, contentType)
}

// requestURL issues one HTTP call against an absolute URL (login form, signed
// text URLs, site pages).
func (t *transport) requestURL(ctx context.Context, sess *Session, method, rawURL string, body io.Reader, contentType string) (*http.Response, error) {
	if t.throttle != nil {
		if err := t.throttle.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if sess.LoggedIn() {
		// The token may contain characters AddCookie would reject, so the
		// header is written directly.
		req.Header.Set("Cookie", "token="+sess.Token)
	}

	start := time.Now()
	res, err := t.http.Do(req)
	if err != nil {
		t.log.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("url", rawURL).
			Err(err).
			Msg("request failed")
		return nil, err
	}

	t.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", rawURL).
		Int("status", res.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")
	return res, nil
}

// fetch GETs a versioned API path and decodes the JSON body into v. Unknown
// JSON keys are ignored; a non-2xx status is a *StatusError, a body that does
// not match the expected shape is a *DecodeError.
func (t *transport) fetch(ctx context.Context, sess *Session, api, path string, query url.Values, v any) error {
	res, err := t.request(ctx, sess, http.MethodGet, api, path, query, nil, "")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{Method: http.MethodGet, URL: res.Request.URL.String(), Status: res.StatusCode}
	}
	return decodeJSON(res, v)
}

// fetchObj is fetch with the three uniformly recognized pagination options.
// An empty field set and zero limit/offset are omitted from the query string
// entirely, meaning "server default".
func (t *transport) fetchObj(ctx context.Context, sess *Session, api, path string, fields FieldSet, limit, offset int, v any) error {
	q := url.Values{}
	if !fields.Empty() {
		q.Set("fields", fields.encode())
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return t.fetch(ctx, sess, api, path, q, v)
}

func formReader(form url.Values) io.Reader {
	return strings.NewReader(form.Encode())
}

// postForm submits a URL-encoded form to an absolute URL.
func (t *transport) postForm(ctx context.Context, sess *Session, rawURL string, form url.Values) (*http.Response, error) {
	return t.requestURL(ctx, sess, http.MethodPost, rawURL,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

// decodeBody returns a reader over the response body with any gzip or deflate
// content encoding removed.
func decodeBody(res *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(res.Header.Get("Content-Encoding")) {
	case "gzip":
		return gzip.NewReader(res.Body)
	case "deflate":
		return flate.NewReader(res.Body), nil
	default:
		return io.NopCloser(res.Body), nil
	}
}

func decodeJSON(res *http.Response, v any) error {
	body, err := decodeBody(res)
	if err != nil {
		return &DecodeError{URL: res.Request.URL.String(), Err: err}
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return &DecodeError{URL: res.Request.URL.String(), Err: err}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &DecodeError{URL: res.Request.URL.String(), Err: err}
	}
	return nil
}

// readText drains the decoded response body as plain text.
func readText(res *http.Response) (string, error) {
	body, err := decodeBody(res)
	if err != nil {
		return "", err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// statusOK mirrors the mutation contract: success is communicated solely
// through HTTP 200.
func statusOK(res *http.Response) bool {
	return res.StatusCode == http.StatusOK
}

func statusError(method string, res *http.Response) error {
	return &StatusError{Method: method, URL: res.Request.URL.String(), Status: res.StatusCode}
}
