package inklore

import "context"

// Story pairs a story snapshot with the client that fetched it.
type Story struct {
	client *Client
	Data   StoryData

	parts []*Part
}

func newStory(c *Client, data StoryData) *Story {
	s := &Story{client: c, Data: data}
	for _, pd := range data.Parts {
		if pd.Story == nil {
			// Embedded parts carry no group back-reference; synthesize one so
			// vote operations can address the owning story.
			pd.Story = &StoryData{ID: data.ID, User: data.User}
		}
		s.parts = append(s.parts, newPart(c, pd))
	}
	return s
}

// Parts returns accessors for the parts embedded in the snapshot. Empty
// unless the parts field was selected when the story was fetched.
func (s *Story) Parts() []*Part { return s.parts }

// FetchUser fetches the profile of the story's owner.
func (s *Story) FetchUser(ctx context.Context, fields FieldSet) (*User, error) {
	return s.client.FetchUser(ctx, s.Data.User.Username, fields)
}
