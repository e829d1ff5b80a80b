package inklore

import (
	"context"
	"net/url"
	"strconv"
)

// SearchResult is the closed pair of result variants a combined search can
// produce.
type SearchResult struct {
	Stories []*Story
	Users   []*User
}

// SearchStories searches stories by a free-text query.
func (c *Client) SearchStories(ctx context.Context, query string, offset int) ([]*Story, error) {
	q := url.Values{"query": {query}}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	var result StoriesSearchResult
	if err := c.tr.fetch(ctx, c.Session(), APIv4, "search/stories/", q, &result); err != nil {
		return nil, err
	}

	stories := make([]*Story, 0, len(result.Stories))
	for _, data := range result.Stories {
		stories = append(stories, newStory(c, data.storyData()))
	}
	return stories, nil
}

// SearchUsers searches users by a free-text query.
func (c *Client) SearchUsers(ctx context.Context, query string, offset int) ([]*User, error) {
	q := url.Values{"query": {query}}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	var datas []UserData
	if err := c.tr.fetch(ctx, c.Session(), APIv4, "search/users/", q, &datas); err != nil {
		return nil, err
	}

	users := make([]*User, 0, len(datas))
	for _, data := range datas {
		users = append(users, newUser(c, data))
	}
	return users, nil
}

// Search runs the story and user searches for a query and returns both result
// sets. The two requests are issued sequentially.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	stories, err := c.SearchStories(ctx, query, 0)
	if err != nil {
		return nil, err
	}
	users, err := c.SearchUsers(ctx, query, 0)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Stories: stories, Users: users}, nil
}
