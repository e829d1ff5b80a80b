package inklore

import (
	"context"
	"fmt"
)

// ReadingList pairs a reading-list snapshot with the client that fetched it.
type ReadingList struct {
	client *Client
	Data   ListData
}

func newReadingList(c *Client, data ListData) *ReadingList {
	return &ReadingList{client: c, Data: data}
}

// FetchStories fetches one page of the stories collected in the list. The id
// and user fields are always selected for each element.
func (l *ReadingList) FetchStories(ctx context.Context, fields FieldSet, limit, offset int) ([]*Story, error) {
	sel := nestedFields2("stories", "id", "user", fields)

	var result ReadingListStoriesResult
	path := fmt.Sprintf("lists/%d/stories", l.Data.ID)
	if err := l.client.tr.fetchObj(ctx, l.client.Session(), APIv3, path, sel, limit, offset, &result); err != nil {
		return nil, err
	}

	stories := make([]*Story, 0, len(result.Stories))
	for _, data := range result.Stories {
		stories = append(stories, newStory(l.client, data))
	}
	return stories, nil
}
