package inklore

import (
	"sort"
	"strings"
)

// FieldSet is a validated selection of fields to request from the API. The
// zero value selects the server default: the fields query parameter is
// omitted entirely.
type FieldSet struct {
	resource string
	names    []string
}

// Field registries, one per resource. A selection is validated against the
// registry of the resource it targets before any request is built.
var (
	storyFieldRegistry = registry(
		"id", "title", "length", "createDate", "modifyDate", "voteCount",
		"readCount", "commentCount", "language", "description", "cover",
		"cover_timestamp", "completed", "categories", "tags", "rating",
		"mature", "copyright", "url", "firstPartId", "numParts",
		"firstPublishedPart", "lastPublishedPart", "parts", "user",
	)
	partFieldRegistry = registry(
		"id", "title", "url", "rating", "draft", "createDate", "modifyDate",
		"length", "videoId", "photoUrl", "commentCount", "voteCount",
		"readCount", "voted", "text_url", "group",
	)
	userFieldRegistry = registry(
		"username", "name", "avatar", "description", "numFollowers",
		"numStoriesPublished", "numLists", "isPrivate", "backgroundUrl",
		"status", "gender", "genderCode", "language", "locale", "createDate",
		"modifyDate", "location", "verified", "ambassador", "facebook",
		"website", "votesReceived", "numFollowing", "numMessages",
		"verified_email", "allowCrawler", "deeplink", "isMuted", "following",
	)
	listFieldRegistry = registry(
		"id", "name", "user", "numStories", "sample_covers", "cover",
		"featured", "tags", "stories",
	)
	commentFieldRegistry = registry(
		"resource", "user", "commentId", "text", "created", "modified",
		"status", "sentiments", "replyCount", "deeplink",
	)
)

func registry(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, name := range names {
		m[name] = true
	}
	return m
}

// StoryFields builds a story field selection.
func StoryFields(names ...string) (FieldSet, error) {
	return newFieldSet("story", storyFieldRegistry, names)
}

// PartFields builds a story-part field selection.
func PartFields(names ...string) (FieldSet, error) {
	return newFieldSet("part", partFieldRegistry, names)
}

// UserFields builds a user field selection.
func UserFields(names ...string) (FieldSet, error) {
	return newFieldSet("user", userFieldRegistry, names)
}

// ListFields builds a reading-list field selection.
func ListFields(names ...string) (FieldSet, error) {
	return newFieldSet("list", listFieldRegistry, names)
}

// CommentFields builds a comment field selection.
func CommentFields(names ...string) (FieldSet, error) {
	return newFieldSet("comment", commentFieldRegistry, names)
}

func newFieldSet(resource string, reg map[string]bool, names []string) (FieldSet, error) {
	fs := FieldSet{resource: resource}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !reg[name] {
			return FieldSet{}, &UnknownFieldError{Resource: resource, Field: name}
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		fs.names = append(fs.names, name)
	}
	sort.Strings(fs.names)
	return fs, nil
}

// Empty reports whether the selection carries no names.
func (f FieldSet) Empty() bool { return len(f.names) == 0 }

// Names returns the selected field names in encoding order.
func (f FieldSet) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

func (f FieldSet) contains(name string) bool {
	for _, n := range f.names {
		if n == name {
			return true
		}
	}
	return false
}

// withRequired returns a copy guaranteed to include the given names. Used by
// facade operations that need stable identifiers regardless of what the
// caller selected.
func (f FieldSet) withRequired(names ...string) FieldSet {
	out := FieldSet{resource: f.resource, names: append([]string(nil), f.names...)}
	for _, name := range names {
		if !out.contains(name) {
			out.names = append(out.names, name)
		}
	}
	sort.Strings(out.names)
	return out
}

func (f FieldSet) encode() string { return strings.Join(f.names, ",") }

// nestedFields composes the wrapper selection used by collection endpoints,
// e.g. "total,users(username,avatar)". The key field is always selected so a
// usable accessor can be built from every element.
func nestedFields(wrapper, key string, fields FieldSet) FieldSet {
	inner := []string{key}
	for _, name := range fields.names {
		if name != key {
			inner = append(inner, name)
		}
	}
	return FieldSet{
		resource: fields.resource,
		names:    []string{"total", wrapper + "(" + strings.Join(inner, ",") + ")"},
	}
}

// nestedFields2 is nestedFields with two key fields, used by story collections
// which always need id and user.
func nestedFields2(wrapper, key1, key2 string, fields FieldSet) FieldSet {
	inner := []string{key1, key2}
	for _, name := range fields.names {
		if name != key1 && name != key2 {
			inner = append(inner, name)
		}
	}
	return FieldSet{
		resource: fields.resource,
		names:    []string{"total", wrapper + "(" + strings.Join(inner, ",") + ")"},
	}
}
