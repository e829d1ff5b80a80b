package inklore

import (
	"errors"
	"testing"
)

func TestFieldSetValidation(t *testing.T) {
	tests := []struct {
		name      string
		build     func() (FieldSet, error)
		wantErr   string
		wantNames string
	}{
		{
			name:      "valid story fields",
			build:     func() (FieldSet, error) { return StoryFields("title", "voteCount") },
			wantNames: "title,voteCount",
		},
		{
			name:    "unknown story field",
			build:   func() (FieldSet, error) { return StoryFields("title", "nope") },
			wantErr: "nope",
		},
		{
			name:      "duplicates collapsed",
			build:     func() (FieldSet, error) { return UserFields("avatar", "avatar", "name") },
			wantNames: "avatar,name",
		},
		{
			name:      "part fields",
			build:     func() (FieldSet, error) { return PartFields("text_url", "voted") },
			wantNames: "text_url,voted",
		},
		{
			name:    "unknown part field",
			build:   func() (FieldSet, error) { return PartFields("body") },
			wantErr: "body",
		},
		{
			name:      "empty selection",
			build:     func() (FieldSet, error) { return ListFields() },
			wantNames: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := tt.build()
			if tt.wantErr != "" {
				var ufe *UnknownFieldError
				if !errors.As(err, &ufe) {
					t.Fatalf("error = %v, want *UnknownFieldError", err)
				}
				if ufe.Field != tt.wantErr {
					t.Errorf("field = %q, want %q", ufe.Field, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := fs.encode(); got != tt.wantNames {
				t.Errorf("encode = %q, want %q", got, tt.wantNames)
			}
		})
	}
}

func TestFieldSetWithRequired(t *testing.T) {
	fs, err := StoryFields("title")
	if err != nil {
		t.Fatalf("StoryFields: %v", err)
	}

	got := fs.withRequired("id", "user").encode()
	if got != "id,title,user" {
		t.Errorf("encode = %q, want %q", got, "id,title,user")
	}

	// The original set is not modified.
	if fs.encode() != "title" {
		t.Errorf("original mutated: %q", fs.encode())
	}

	t.Run("already present", func(t *testing.T) {
		fs, _ := StoryFields("id", "title")
		if got := fs.withRequired("id").encode(); got != "id,title" {
			t.Errorf("encode = %q, want %q", got, "id,title")
		}
	})
}

func TestNestedFields(t *testing.T) {
	fs, err := UserFields("avatar", "name")
	if err != nil {
		t.Fatalf("UserFields: %v", err)
	}

	got := nestedFields("users", "username", fs).encode()
	if got != "total,users(username,avatar,name)" {
		t.Errorf("encode = %q, want %q", got, "total,users(username,avatar,name)")
	}

	t.Run("empty inner selection", func(t *testing.T) {
		got := nestedFields("users", "username", FieldSet{}).encode()
		if got != "total,users(username)" {
			t.Errorf("encode = %q, want %q", got, "total,users(username)")
		}
	})

	t.Run("two keys", func(t *testing.T) {
		fs, _ := StoryFields("title")
		got := nestedFields2("stories", "id", "user", fs).encode()
		if got != "total,stories(id,user,title)" {
			t.Errorf("encode = %q, want %q", got, "total,stories(id,user,title)")
		}
	})
}
