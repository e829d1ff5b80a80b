package inklore

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
)

func TestStoryParts(t *testing.T) {
	c := newTestClient(t, mux.NewRouter())

	t.Run("embedded parts reference the story", func(t *testing.T) {
		story := newStory(c, StoryData{
			ID:   42,
			User: MinUser{Username: "ada"},
			Parts: []PartData{
				{ID: intPtr(1)},
				{ID: intPtr(2)},
			},
		})

		parts := story.Parts()
		if len(parts) != 2 {
			t.Fatalf("parts = %d, want 2", len(parts))
		}
		for _, p := range parts {
			if p.Data.Story == nil {
				t.Fatal("embedded part has no story reference")
			}
			if p.Data.Story.ID != 42 {
				t.Errorf("story id = %d, want 42", p.Data.Story.ID)
			}
			if p.Data.Story.User.Username != "ada" {
				t.Errorf("story user = %q, want %q", p.Data.Story.User.Username, "ada")
			}
		}
	})

	t.Run("empty without parts selection", func(t *testing.T) {
		story := newStory(c, StoryData{ID: 42, User: MinUser{Username: "ada"}})
		if parts := story.Parts(); len(parts) != 0 {
			t.Errorf("parts = %d, want 0", len(parts))
		}
	})

	t.Run("explicit group reference is kept", func(t *testing.T) {
		story := newStory(c, StoryData{
			ID:   42,
			User: MinUser{Username: "ada"},
			Parts: []PartData{
				{ID: intPtr(1), Story: &StoryData{ID: 7, User: MinUser{Username: "kim"}}},
			},
		})
		if got := story.Parts()[0].Data.Story.ID; got != 7 {
			t.Errorf("story id = %d, want 7", got)
		}
	})
}

func TestStoryFetchUser(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/v3/users/ada", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, map[string]any{"username": "ada", "numFollowers": 3})
	})
	c := newTestClient(t, r)

	story := newStory(c, StoryData{ID: 42, User: MinUser{Username: "ada"}})
	user, err := story.FetchUser(context.Background(), FieldSet{})
	if err != nil {
		t.Fatalf("FetchUser: %v", err)
	}
	if user.Data.Username != "ada" {
		t.Errorf("username = %q, want %q", user.Data.Username, "ada")
	}
	if user.Data.NumFollowers == nil || *user.Data.NumFollowers != 3 {
		t.Errorf("numFollowers = %v, want 3", user.Data.NumFollowers)
	}
}
