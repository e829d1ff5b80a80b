// Package inklore is a typed client for the Inklore story-hosting REST API.
//
// A Client composes the transport, the authentication flows and the resource
// accessors. Fetch operations return accessor values (Story, Part, User,
// Comment, ReadingList) that pair an immutable snapshot of the decoded
// response with further network operations scoped to that resource.
package inklore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/inklore/go-inklore/internal/ratelimit"
)

// Client is the top-level entry point for all API operations.
type Client struct {
	tr       *transport
	siteBase string

	mu      sync.RWMutex
	session *Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.tr.http = h }
}

// WithBaseURLs overrides base URLs for the given API version tags. URLs must
// end with a slash.
func WithBaseURLs(bases map[string]string) Option {
	return func(c *Client) {
		for api, base := range bases {
			c.tr.bases[api] = base
		}
	}
}

// WithSiteBaseURL overrides the site base URL used by the login form and the
// notification mark-read page.
func WithSiteBaseURL(u string) Option {
	return func(c *Client) { c.siteBase = u }
}

// WithLogger attaches a logger; requests are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.tr.log = log }
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.tr.userAgent = ua }
}

// WithThrottle paces outgoing requests with the given throttle.
func WithThrottle(th ratelimit.Throttle) Option {
	return func(c *Client) { c.tr.throttle = th }
}

// New creates an anonymous client.
func New(opts ...Option) *Client {
	c := &Client{
		tr: &transport{
			http:      &http.Client{Timeout: 30 * time.Second},
			bases:     defaultBaseURLs(),
			log:       zerolog.Nop(),
			userAgent: "go-inklore",
		},
		siteBase: defaultSiteBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the currently installed session snapshot, or nil when
// anonymous.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// SetSession installs a session. Only calls issued after the install carry the
// new credentials; requests already in flight keep the snapshot they were
// issued with.
func (c *Client) SetSession(s *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

// Logout discards the installed session. Purely local; the server-side
// session is untouched.
func (c *Client) Logout() { c.SetSession(nil) }

// LoggedIn reports whether a session is installed.
func (c *Client) LoggedIn() bool { return c.Session().LoggedIn() }

// Username returns the authenticated username, or "" when anonymous.
func (c *Client) Username() string {
	if s := c.Session(); s != nil {
		return s.Username
	}
	return ""
}

// FetchStory fetches a story by id. The id and user fields are always
// requested on top of the given selection.
func (c *Client) FetchStory(ctx context.Context, id int, fields FieldSet) (*Story, error) {
	var data StoryData
	sel := fields.withRequired("id", "user")
	if err := c.tr.fetchObj(ctx, c.Session(), APIv3, fmt.Sprintf("stories/%d", id), sel, 0, 0, &data); err != nil {
		return nil, err
	}
	return newStory(c, data), nil
}

// FetchPart fetches a story part by id. The id and text_url fields are always
// requested on top of the given selection.
func (c *Client) FetchPart(ctx context.Context, id int, fields FieldSet) (*Part, error) {
	var data PartData
	sel := fields.withRequired("id", "text_url")
	if err := c.tr.fetchObj(ctx, c.Session(), APIv4, fmt.Sprintf("parts/%d", id), sel, 0, 0, &data); err != nil {
		return nil, err
	}
	return newPart(c, data), nil
}

// FetchUser fetches a user profile by username.
func (c *Client) FetchUser(ctx context.Context, username string, fields FieldSet) (*User, error) {
	var data UserData
	if err := c.tr.fetchObj(ctx, c.Session(), APIv3, "users/"+url.PathEscape(username), fields, 0, 0, &data); err != nil {
		return nil, err
	}
	return newUser(c, data), nil
}

// FetchList fetches a reading list by id.
func (c *Client) FetchList(ctx context.Context, id int, fields FieldSet) (*ReadingList, error) {
	var data ListData
	if err := c.tr.fetchObj(ctx, c.Session(), APIv3, fmt.Sprintf("lists/%d", id), fields, 0, 0, &data); err != nil {
		return nil, err
	}
	return newReadingList(c, data), nil
}

// FetchLibrary fetches the library of the logged-in user.
func (c *Client) FetchLibrary(ctx context.Context) (*Library, error) {
	sess := c.Session()
	if !sess.LoggedIn() {
		return nil, ErrNotAuthenticated
	}
	return newUser(c, UserData{Username: sess.Username}).FetchLibrary(ctx, FieldSet{})
}

// FetchNotifications fetches the logged-in user's notification feed. limit 0
// means the server default; newestID 0 fetches from the top of the feed.
func (c *Client) FetchNotifications(ctx context.Context, limit int, newestID int64) (*NotificationsResult, error) {
	sess := c.Session()
	if !sess.LoggedIn() {
		return nil, ErrNotAuthenticated
	}

	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if newestID > 0 {
		q.Set("newest_id", strconv.FormatInt(newestID, 10))
	}

	var result NotificationsResult
	path := "users/" + url.PathEscape(sess.Username) + "/notifications"
	if err := c.tr.fetch(ctx, sess, APIv3, path, q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkNotificationsRead marks every notification of the logged-in user as
// read.
func (c *Client) MarkNotificationsRead(ctx context.Context) error {
	sess := c.Session()
	if !sess.LoggedIn() {
		return ErrNotAuthenticated
	}

	res, err := c.tr.requestURL(ctx, sess, http.MethodGet, c.siteBase+"/notifications", nil, "")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if !statusOK(res) {
		return statusError(http.MethodGet, res)
	}
	return nil
}
