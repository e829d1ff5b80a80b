package inklore

import (
	"context"
	"errors"
	"net/url"
)

// Login authenticates with username and password. The server answers a
// successful form post with a token cookie; its URL-decoded value becomes the
// session token. The new session is installed on the client and returned.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	res, err := c.tr.postForm(ctx, nil, c.siteBase+"/login", form)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	for _, cookie := range res.Cookies() {
		if cookie.Name != "token" {
			continue
		}
		token, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			return nil, err
		}
		sess := &Session{Token: token, Username: username}
		c.SetSession(sess)
		return sess, nil
	}

	return nil, ErrLoginFailed
}

// LoginWithToken validates a previously obtained session token against the
// current-user endpoint and, on success, installs a session carrying the
// username the server reports. Any non-success status means the token is not
// a valid session and the client stays anonymous.
func (c *Client) LoginWithToken(ctx context.Context, token string) (*Session, error) {
	candidate := &Session{Token: token}
	sel := FieldSet{resource: "user", names: []string{"username"}}

	var data UserData
	err := c.tr.fetchObj(ctx, candidate, APIv3, "internal/current_user", sel, 0, 0, &data)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	sess := &Session{Token: token, Username: data.Username}
	c.SetSession(sess)
	return sess, nil
}
