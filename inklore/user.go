package inklore

import (
	"context"
	"net/http"
	"net/url"
)

// User pairs a user snapshot with the client that fetched it.
type User struct {
	client *Client
	Data   UserData
}

func newUser(c *Client, data UserData) *User {
	return &User{client: c, Data: data}
}

func (u *User) path() string {
	return "users/" + url.PathEscape(u.Data.Username)
}

// FetchFollowers fetches one page of the user's followers. The username field
// is always selected for each element.
func (u *User) FetchFollowers(ctx context.Context, fields FieldSet, limit, offset int) ([]*User, error) {
	sel := nestedFields("users", "username", fields)

	var result FollowersResult
	if err := u.client.tr.fetchObj(ctx, u.client.Session(), APIv3, u.path()+"/followers", sel, limit, offset, &result); err != nil {
		return nil, err
	}
	return u.wrapUsers(result.Users), nil
}

// FetchFollowing fetches one page of the users this user follows.
func (u *User) FetchFollowing(ctx context.Context, fields FieldSet, limit, offset int) ([]*User, error) {
	sel := nestedFields("users", "username", fields)

	var result FollowingResult
	if err := u.client.tr.fetchObj(ctx, u.client.Session(), APIv3, u.path()+"/following", sel, limit, offset, &result); err != nil {
		return nil, err
	}
	return u.wrapUsers(result.Users), nil
}

// FetchLists fetches the user's reading lists. The id field is always
// selected for each element.
func (u *User) FetchLists(ctx context.Context, fields FieldSet, limit int) ([]*ReadingList, error) {
	sel := nestedFields("lists", "id", fields)

	var result ListsResult
	if err := u.client.tr.fetchObj(ctx, u.client.Session(), APIv3, u.path()+"/lists", sel, limit, 0, &result); err != nil {
		return nil, err
	}

	lists := make([]*ReadingList, 0, len(result.Lists))
	for _, data := range result.Lists {
		lists = append(lists, newReadingList(u.client, data))
	}
	return lists, nil
}

// FetchStories fetches one page of the user's published stories. The id and
// user fields are always selected for each element; an empty selection
// defaults to the title field.
func (u *User) FetchStories(ctx context.Context, fields FieldSet, limit, offset int) ([]*Story, error) {
	if fields.Empty() {
		fields = FieldSet{resource: "story", names: []string{"title"}}
	}
	sel := nestedFields2("stories", "id", "user", fields)

	var result UserStoriesResult
	if err := u.client.tr.fetchObj(ctx, u.client.Session(), APIv4, u.path()+"/stories/published", sel, limit, offset, &result); err != nil {
		return nil, err
	}

	stories := make([]*Story, 0, len(result.Stories))
	for _, data := range result.Stories {
		stories = append(stories, newStory(u.client, data))
	}
	return stories, nil
}

// FetchLibrary fetches the user's library.
func (u *User) FetchLibrary(ctx context.Context, fields FieldSet) (*Library, error) {
	var data LibraryData
	if err := u.client.tr.fetchObj(ctx, u.client.Session(), APIv3, u.path()+"/library", fields, 0, 0, &data); err != nil {
		return nil, err
	}
	return newLibrary(u.client, data), nil
}

// Follow follows the user on behalf of the logged-in user. Returns a fresh
// snapshot with the following flag set; the receiver is never modified.
func (u *User) Follow(ctx context.Context) (*User, error) {
	return u.setFollowing(ctx, true)
}

// Unfollow unfollows the user. The call is issued regardless of the current
// follow state; the server's answer is reported as-is. Returns a fresh
// snapshot with the following flag cleared.
func (u *User) Unfollow(ctx context.Context) (*User, error) {
	return u.setFollowing(ctx, false)
}

func (u *User) setFollowing(ctx context.Context, following bool) (*User, error) {
	sess := u.client.Session()
	if !sess.LoggedIn() {
		return nil, ErrNotAuthenticated
	}

	me := "users/" + url.PathEscape(sess.Username) + "/following"
	var (
		res *http.Response
		err error
	)
	if following {
		q := url.Values{"users": {u.Data.Username}}
		res, err = u.client.tr.request(ctx, sess, http.MethodPost, APIv3, me, q, nil, "")
	} else {
		res, err = u.client.tr.request(ctx, sess, http.MethodDelete, APIv3, me+"/"+url.PathEscape(u.Data.Username), nil, nil, "")
	}
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	method := http.MethodPost
	if !following {
		method = http.MethodDelete
	}
	if !statusOK(res) {
		return nil, statusError(method, res)
	}

	data := u.Data
	data.Following = &following
	return newUser(u.client, data), nil
}

func (u *User) wrapUsers(datas []UserData) []*User {
	users := make([]*User, 0, len(datas))
	for _, data := range datas {
		users = append(users, newUser(u.client, data))
	}
	return users
}
