package inklore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Part pairs a story-part snapshot with the client that fetched it.
type Part struct {
	client *Client
	Data   PartData
}

func newPart(c *Client, data PartData) *Part {
	return &Part{client: c, Data: data}
}

func (p *Part) id() (int, error) {
	if p.Data.ID == nil {
		return 0, ErrMissingID
	}
	return *p.Data.ID, nil
}

// FetchComments fetches one page of comments on the part. after is the
// resource id of the last comment of the previous page, or "" for the first
// page. The second return value reports whether another page exists.
func (p *Part) FetchComments(ctx context.Context, limit int, after string) ([]*Comment, bool, error) {
	id, err := p.id()
	if err != nil {
		return nil, false, err
	}

	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if after != "" {
		q.Set("after", after)
	}

	var result CommentsResult
	path := fmt.Sprintf("comments/namespaces/parts/resources/%d/comments", id)
	if err := p.client.tr.fetch(ctx, p.client.Session(), APIv5, path, q, &result); err != nil {
		return nil, false, err
	}

	comments := make([]*Comment, 0, len(result.Comments))
	for _, data := range result.Comments {
		comments = append(comments, newComment(p.client, data))
	}
	return comments, result.Pagination.After != nil, nil
}

// FetchText fetches the part's body text from its signed text URL. The
// text_url field must have been selected when the part was fetched.
func (p *Part) FetchText(ctx context.Context) (string, error) {
	if p.Data.TextURL == nil {
		return "", ErrTextURLNotFetched
	}

	res, err := p.client.tr.requestURL(ctx, p.client.Session(), http.MethodGet, p.Data.TextURL.Text, nil, "")
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if !statusOK(res) {
		return "", statusError(http.MethodGet, res)
	}
	return readText(res)
}

// Vote votes for the part. Returns a fresh snapshot reflecting the
// server-reported state; the receiver is never modified.
func (p *Part) Vote(ctx context.Context) (*Part, *VoteResult, error) {
	return p.setVote(ctx, http.MethodPost, true)
}

// Unvote removes the vote for the part. Returns a fresh snapshot; the
// receiver is never modified.
func (p *Part) Unvote(ctx context.Context) (*Part, *VoteResult, error) {
	return p.setVote(ctx, http.MethodDelete, false)
}

// ToggleVote votes or unvotes depending on the snapshot's vote state. The
// voted field must have been selected when the part was fetched.
func (p *Part) ToggleVote(ctx context.Context) (*Part, *VoteResult, error) {
	if p.Data.Voted == nil {
		return nil, nil, ErrVoteStateUnknown
	}
	if *p.Data.Voted {
		return p.Unvote(ctx)
	}
	return p.Vote(ctx)
}

func (p *Part) setVote(ctx context.Context, method string, voted bool) (*Part, *VoteResult, error) {
	sess := p.client.Session()
	if !sess.LoggedIn() {
		return nil, nil, ErrNotAuthenticated
	}
	if p.Data.Story == nil {
		return nil, nil, ErrStoryNotFetched
	}
	id, err := p.id()
	if err != nil {
		return nil, nil, err
	}

	path := fmt.Sprintf("stories/%d/parts/%d/votes", p.Data.Story.ID, id)
	res, err := p.client.tr.request(ctx, sess, method, APIv3, path, nil, nil, "")
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	if !statusOK(res) {
		return nil, nil, statusError(method, res)
	}

	var result VoteResult
	if err := decodeJSON(res, &result); err != nil {
		return nil, nil, err
	}

	data := p.Data
	data.Voted = &voted
	if result.VoteCount != nil {
		data.VoteCount = result.VoteCount
	}
	return newPart(p.client, data), &result, nil
}

// PostComment posts a comment on the part.
func (p *Part) PostComment(ctx context.Context, text string) (*Comment, error) {
	sess := p.client.Session()
	if !sess.LoggedIn() {
		return nil, ErrNotAuthenticated
	}
	id, err := p.id()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]string{"body": text})
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("parts/%d/comments", id)
	res, err := p.client.tr.request(ctx, sess, http.MethodPost, APIv4, path, nil, bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if !statusOK(res) {
		return nil, statusError(http.MethodPost, res)
	}

	var post CommentPostData
	if err := decodeJSON(res, &post); err != nil {
		return nil, err
	}

	avatar := post.Author.Avatar
	data := CommentData{
		User:      MinUser{Username: post.Author.Username, Avatar: &avatar},
		CommentID: CommentRef{Namespace: "comments", ResourceID: post.ID},
		Text:      post.Body,
		Created:   post.CreateDate,
		Modified:  post.CreateDate,
		Deeplink:  post.Deeplink,
	}
	return newComment(p.client, data), nil
}

// SyncReadingPosition marks the part as the one currently being read.
func (p *Part) SyncReadingPosition(ctx context.Context) error {
	sess := p.client.Session()
	if !sess.LoggedIn() {
		return ErrNotAuthenticated
	}
	id, err := p.id()
	if err != nil {
		return err
	}

	form := url.Values{
		"story_id": {strconv.Itoa(id)},
		"position": {"1"},
	}
	res, err := p.client.tr.request(ctx, sess, http.MethodPost, APIv2, "syncreadingposition", nil,
		formReader(form), "application/x-www-form-urlencoded")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if !statusOK(res) {
		return statusError(http.MethodPost, res)
	}
	return nil
}
