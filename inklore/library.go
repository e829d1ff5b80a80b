package inklore

// Library is a snapshot of a user's saved-story collection.
type Library struct {
	client *Client
	Data   LibraryData

	stories []*Story
}

func newLibrary(c *Client, data LibraryData) *Library {
	l := &Library{client: c, Data: data}
	for _, sd := range data.Stories {
		l.stories = append(l.stories, newStory(c, sd))
	}
	return l
}

// Stories returns accessors for the stories in the library.
func (l *Library) Stories() []*Story { return l.stories }
