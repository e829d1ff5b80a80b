package inklore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Comment pairs a comment snapshot with the client that fetched it. Comments
// are addressed by their namespace+resourceId pair; replies hang off the
// parent comment's resource id, one level per request.
type Comment struct {
	client *Client
	Data   CommentData
}

func newComment(c *Client, data CommentData) *Comment {
	return &Comment{client: c, Data: data}
}

func (c *Comment) path(suffix string) string {
	return fmt.Sprintf("comments/namespaces/%s/resources/%s%s",
		url.PathEscape(c.Data.CommentID.Namespace), url.PathEscape(c.Data.CommentID.ResourceID), suffix)
}

// FetchReplies fetches the direct replies of the comment. When the snapshot
// reports zero replies the call returns an empty slice without touching the
// network.
func (c *Comment) FetchReplies(ctx context.Context, fields FieldSet, limit int) ([]*Comment, error) {
	if c.Data.ReplyCount == 0 {
		return []*Comment{}, nil
	}

	var result CommentsResult
	path := fmt.Sprintf("comments/namespaces/comments/resources/%s/comments", url.PathEscape(c.Data.CommentID.ResourceID))
	if err := c.client.tr.fetchObj(ctx, c.client.Session(), APIv5, path, fields, limit, 0, &result); err != nil {
		return nil, err
	}

	replies := make([]*Comment, 0, len(result.Comments))
	for _, data := range result.Comments {
		replies = append(replies, newComment(c.client, data))
	}
	return replies, nil
}

// Like likes the comment. Returns a fresh snapshot carrying the
// server-reported like sentiment; the receiver is never modified.
func (c *Comment) Like(ctx context.Context) (*Comment, error) {
	return c.setLike(ctx, http.MethodPost)
}

// Unlike removes the like. The call is issued regardless of the snapshot's
// like state; the server's answer is reported as-is.
func (c *Comment) Unlike(ctx context.Context) (*Comment, error) {
	return c.setLike(ctx, http.MethodDelete)
}

func (c *Comment) setLike(ctx context.Context, method string) (*Comment, error) {
	sess := c.client.Session()
	if !sess.LoggedIn() {
		return nil, ErrNotAuthenticated
	}

	res, err := c.client.tr.request(ctx, sess, method, APIv5, c.path("/sentiments/like"), nil, nil, "")
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if !statusOK(res) {
		return nil, statusError(method, res)
	}

	var sentiment Sentiment
	if err := decodeJSON(res, &sentiment); err != nil {
		return nil, err
	}

	data := c.Data
	data.Sentiments.Like = &sentiment
	return newComment(c.client, data), nil
}

// Delete deletes the comment. Only the comment's author may do so; the server
// communicates rejection through the status code.
func (c *Comment) Delete(ctx context.Context) error {
	sess := c.client.Session()
	if !sess.LoggedIn() {
		return ErrNotAuthenticated
	}

	res, err := c.client.tr.request(ctx, sess, http.MethodDelete, APIv5, c.path(""), nil, nil, "")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if !statusOK(res) {
		return statusError(http.MethodDelete, res)
	}
	return nil
}
