package inklore

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
)

func TestReadingListFetchStories(t *testing.T) {
	var gotQuery url.Values
	r := mux.NewRouter()
	r.HandleFunc("/api/v3/lists/5/stories", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query()
		writeJSON(t, w, map[string]any{
			"id":    5,
			"name":  "favorites",
			"total": 2,
			"stories": []map[string]any{
				{"id": 42, "title": "T1", "user": map[string]any{"name": "ada"}},
				{"id": 43, "title": "T2", "user": map[string]any{"name": "kim"}},
			},
		})
	})
	c := newTestClient(t, r)
	list := newReadingList(c, ListData{ID: 5})

	fields, err := StoryFields("title")
	if err != nil {
		t.Fatal(err)
	}
	stories, err := list.FetchStories(context.Background(), fields, 2, 0)
	if err != nil {
		t.Fatalf("FetchStories: %v", err)
	}

	if got, want := gotQuery.Get("fields"), "total,stories(id,user,title)"; got != want {
		t.Errorf("fields = %q, want %q", got, want)
	}
	if gotQuery.Get("limit") != "2" {
		t.Errorf("limit = %q, want %q", gotQuery.Get("limit"), "2")
	}
	if len(stories) != 2 {
		t.Fatalf("stories = %d, want 2", len(stories))
	}
	if stories[1].Data.ID != 43 || stories[1].Data.User.Username != "kim" {
		t.Errorf("story = %+v, want id 43 user kim", stories[1].Data)
	}
}
