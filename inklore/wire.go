package inklore

// Wire types for the Inklore REST API. The server supports partial responses
// through field selection, so every field beyond a resource's stable
// identifier is optional and decodes to nil when the server omits it. Unknown
// keys in a payload are ignored.

// MinUser is the reduced user snapshot embedded in other resources.
type MinUser struct {
	Username string  `json:"name"`
	Avatar   *string `json:"avatar,omitempty"`
	Fullname *string `json:"fullname,omitempty"`
}

// UserData is a full user profile.
type UserData struct {
	Username            string     `json:"username"`
	Name                *string    `json:"name,omitempty"`
	Avatar              *string    `json:"avatar,omitempty"`
	Description         *string    `json:"description,omitempty"`
	NumFollowers        *int       `json:"numFollowers,omitempty"`
	NumStoriesPublished *int       `json:"numStoriesPublished,omitempty"`
	NumLists            *int       `json:"numLists,omitempty"`
	IsPrivate           *bool      `json:"isPrivate,omitempty"`
	BackgroundURL       *string    `json:"backgroundUrl,omitempty"`
	Status              *string    `json:"status,omitempty"`
	Gender              *string    `json:"gender,omitempty"`
	GenderCode          *string    `json:"genderCode,omitempty"`
	Language            *int       `json:"language,omitempty"`
	Locale              *string    `json:"locale,omitempty"`
	CreateDate          *Timestamp `json:"createDate,omitempty"`
	ModifyDate          *Timestamp `json:"modifyDate,omitempty"`
	Location            *string    `json:"location,omitempty"`
	Verified            *bool      `json:"verified,omitempty"`
	Ambassador          *bool      `json:"ambassador,omitempty"`
	Facebook            *string    `json:"facebook,omitempty"`
	Website             *string    `json:"website,omitempty"`
	VotesReceived       *int       `json:"votesReceived,omitempty"`
	NumFollowing        *int       `json:"numFollowing,omitempty"`
	NumMessages         *int       `json:"numMessages,omitempty"`
	VerifiedEmail       *bool      `json:"verified_email,omitempty"`
	AllowCrawler        *bool      `json:"allowCrawler,omitempty"`
	Deeplink            *string    `json:"deeplink,omitempty"`
	IsMuted             *bool      `json:"isMuted,omitempty"`
	Following           *bool      `json:"following,omitempty"`
}

// StoryLanguage identifies the language a story is written in.
type StoryLanguage struct {
	ID   int     `json:"id"`
	Name *string `json:"name,omitempty"`
}

// TextURL is the signed location a part's body text is served from.
type TextURL struct {
	Text         string `json:"text"`
	RefreshToken string `json:"refresh_token"`
}

// PartData is a story part (chapter) snapshot. The Story back-reference is
// populated from the "group" key on part endpoints, or synthesized when the
// part was embedded in a story response.
type PartData struct {
	ID           *int       `json:"id,omitempty"`
	Title        *string    `json:"title,omitempty"`
	URL          *string    `json:"url,omitempty"`
	Rating       *int       `json:"rating,omitempty"`
	Draft        *bool      `json:"draft,omitempty"`
	CreateDate   *Timestamp `json:"createDate,omitempty"`
	ModifyDate   *Timestamp `json:"modifyDate,omitempty"`
	Length       *int       `json:"length,omitempty"`
	VideoID      *string    `json:"videoId,omitempty"`
	PhotoURL     *string    `json:"photoUrl,omitempty"`
	CommentCount *int       `json:"commentCount,omitempty"`
	VoteCount    *int       `json:"voteCount,omitempty"`
	ReadCount    *int       `json:"readCount,omitempty"`
	Voted        *bool      `json:"voted,omitempty"`
	TextURL      *TextURL   `json:"text_url,omitempty"`
	Story        *StoryData `json:"group,omitempty"`
}

// StoryData is a story snapshot. ID and User are always present; everything
// else depends on the requested field selection.
type StoryData struct {
	ID                 int            `json:"id"`
	Title              *string        `json:"title,omitempty"`
	Length             *int           `json:"length,omitempty"`
	CreateDate         *Timestamp     `json:"createDate,omitempty"`
	ModifyDate         *Timestamp     `json:"modifyDate,omitempty"`
	VoteCount          *int           `json:"voteCount,omitempty"`
	ReadCount          *int           `json:"readCount,omitempty"`
	CommentCount       *int           `json:"commentCount,omitempty"`
	Language           *StoryLanguage `json:"language,omitempty"`
	Description        *string        `json:"description,omitempty"`
	Cover              *string        `json:"cover,omitempty"`
	CoverTimestamp     *Timestamp     `json:"cover_timestamp,omitempty"`
	Completed          *bool          `json:"completed,omitempty"`
	Categories         []int          `json:"categories,omitempty"`
	Tags               []string       `json:"tags,omitempty"`
	Rating             *int           `json:"rating,omitempty"`
	Mature             *bool          `json:"mature,omitempty"`
	Copyright          *int           `json:"copyright,omitempty"`
	URL                *string        `json:"url,omitempty"`
	FirstPartID        *int           `json:"firstPartId,omitempty"`
	NumParts           *int           `json:"numParts,omitempty"`
	FirstPublishedPart *PartData      `json:"firstPublishedPart,omitempty"`
	LastPublishedPart  *PartData      `json:"lastPublishedPart,omitempty"`
	Parts              []PartData     `json:"parts,omitempty"`
	User               MinUser        `json:"user"`
}

// SearchPartData is the part stub attached to search results; its dates use
// the loose wire format.
type SearchPartData struct {
	CreateDate *LooseTimestamp `json:"createDate,omitempty"`
}

// SearchStoryData is the story shape returned by the search endpoint. It
// mirrors StoryData but with loose-format dates.
type SearchStoryData struct {
	ID                int             `json:"id"`
	Title             *string         `json:"title,omitempty"`
	Length            *int            `json:"length,omitempty"`
	CreateDate        *LooseTimestamp `json:"createDate,omitempty"`
	ModifyDate        *LooseTimestamp `json:"modifyDate,omitempty"`
	VoteCount         *int            `json:"voteCount,omitempty"`
	ReadCount         *int            `json:"readCount,omitempty"`
	CommentCount      *int            `json:"commentCount,omitempty"`
	Language          *StoryLanguage  `json:"language,omitempty"`
	Description       *string         `json:"description,omitempty"`
	Cover             *string         `json:"cover,omitempty"`
	CoverTimestamp    *LooseTimestamp `json:"cover_timestamp,omitempty"`
	Completed         *bool           `json:"completed,omitempty"`
	Categories        []int           `json:"categories,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	Rating            *int            `json:"rating,omitempty"`
	Mature            *bool           `json:"mature,omitempty"`
	Copyright         *int            `json:"copyright,omitempty"`
	URL               *string         `json:"url,omitempty"`
	NumParts          *int            `json:"numParts,omitempty"`
	LastPublishedPart *SearchPartData `json:"lastPublishedPart,omitempty"`
	User              MinUser         `json:"user"`
}

// storyData maps a search result onto the regular story shape.
func (d SearchStoryData) storyData() StoryData {
	data := StoryData{
		ID:           d.ID,
		Title:        d.Title,
		Length:       d.Length,
		VoteCount:    d.VoteCount,
		ReadCount:    d.ReadCount,
		CommentCount: d.CommentCount,
		Language:     d.Language,
		Description:  d.Description,
		Cover:        d.Cover,
		Completed:    d.Completed,
		Categories:   d.Categories,
		Tags:         d.Tags,
		Rating:       d.Rating,
		Mature:       d.Mature,
		Copyright:    d.Copyright,
		URL:          d.URL,
		NumParts:     d.NumParts,
		User:         d.User,
	}
	if d.CreateDate != nil {
		data.CreateDate = &Timestamp{d.CreateDate.Time}
	}
	if d.ModifyDate != nil {
		data.ModifyDate = &Timestamp{d.ModifyDate.Time}
	}
	if d.CoverTimestamp != nil {
		data.CoverTimestamp = &Timestamp{d.CoverTimestamp.Time}
	}
	if d.LastPublishedPart != nil && d.LastPublishedPart.CreateDate != nil {
		data.LastPublishedPart = &PartData{
			CreateDate: &Timestamp{d.LastPublishedPart.CreateDate.Time},
		}
	}
	return data
}

// CommentRef is the namespace+resourceId pair addressing a comment or the
// resource it is attached to.
type CommentRef struct {
	Namespace  string `json:"namespace"`
	ResourceID string `json:"resourceId"`
}

// SentimentInteraction records the current session's reaction to a comment.
type SentimentInteraction struct {
	Resource      CommentRef `json:"resource"`
	SentimentType string     `json:"sentimentType"`
	Created       *Timestamp `json:"created,omitempty"`
	Status        string     `json:"status"`
}

// Sentiment is one reaction bucket on a comment.
type Sentiment struct {
	Count       int                   `json:"count"`
	Interaction *SentimentInteraction `json:"interaction,omitempty"`
}

// Sentiments holds the reaction buckets the API currently exposes.
type Sentiments struct {
	Like *Sentiment `json:":like:"`
}

// CommentData is a comment or reply snapshot.
type CommentData struct {
	Resource   CommentRef `json:"resource"`
	User       MinUser    `json:"user"`
	CommentID  CommentRef `json:"commentId"`
	Text       string     `json:"text"`
	Created    *Timestamp `json:"created,omitempty"`
	Modified   *Timestamp `json:"modified,omitempty"`
	Status     string     `json:"status"`
	Sentiments Sentiments `json:"sentiments"`
	ReplyCount int        `json:"replyCount"`
	Deeplink   string     `json:"deeplink"`
}

// CommentsPagination carries the after-cursor of a comment listing.
type CommentsPagination struct {
	After *CommentRef `json:"after,omitempty"`
}

// CommentsResult is the envelope of the comment listing endpoints.
type CommentsResult struct {
	Pagination CommentsPagination `json:"pagination"`
	Comments   []CommentData      `json:"comments"`
}

// CommentPostAuthor is the author stub in a comment-creation response.
type CommentPostAuthor struct {
	Avatar   string `json:"avatar"`
	Username string `json:"name"`
}

// CommentPostData is the response of the comment-creation endpoint.
type CommentPostData struct {
	Author        CommentPostAuthor `json:"author"`
	Body          string            `json:"body"`
	CreateDate    *Timestamp        `json:"createDate,omitempty"`
	StartPosition int               `json:"startPosition"`
	EndPosition   int               `json:"endPosition"`
	ID            string            `json:"id"`
	IsOffensive   bool              `json:"isOffensive"`
	IsReply       bool              `json:"isReply"`
	NumReplies    int               `json:"numReplies"`
	ParagraphID   *int              `json:"paragraphId,omitempty"`
	ParentID      *string           `json:"parentId,omitempty"`
	PartID        int               `json:"partId"`
	Deeplink      string            `json:"deeplink"`
	LegacyID      int               `json:"legacyId"`
}

// VoteResult is the response of the vote endpoints. The server reports the
// authoritative state; the client never recomputes counts locally.
type VoteResult struct {
	Voted     *bool `json:"voted,omitempty"`
	VoteCount *int  `json:"voteCount,omitempty"`
}

// ListData is a reading-list snapshot.
type ListData struct {
	ID           int         `json:"id"`
	Name         *string     `json:"name,omitempty"`
	User         *MinUser    `json:"user,omitempty"`
	NumStories   *int        `json:"numStories,omitempty"`
	SampleCovers []string    `json:"sample_covers,omitempty"`
	Cover        *string     `json:"cover,omitempty"`
	Featured     *bool       `json:"featured,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	Stories      []StoryData `json:"stories,omitempty"`
}

// LibraryData is the saved-story collection of a user.
type LibraryData struct {
	Stories           []StoryData `json:"stories"`
	Total             int         `json:"total"`
	LastSyncTimestamp string      `json:"last_sync_timestamp"`
}

// Collection envelopes.

type FollowersResult struct {
	Users []UserData `json:"users"`
	Total int        `json:"total"`
}

type FollowingResult struct {
	Users []UserData `json:"users"`
	Total int        `json:"total"`
}

type ListsResult struct {
	Lists []ListData `json:"lists"`
	Total int        `json:"total"`
}

type UserStoriesResult struct {
	Stories []StoryData `json:"stories"`
	Total   int         `json:"total"`
}

type StoriesSearchResult struct {
	Total   int               `json:"total"`
	Stories []SearchStoryData `json:"stories"`
}

// ReadingListStoriesResult is the envelope of the list-stories endpoint.
type ReadingListStoriesResult struct {
	ID      *int        `json:"id,omitempty"`
	Name    *string     `json:"name,omitempty"`
	Stories []StoryData `json:"stories"`
	Total   *int        `json:"total,omitempty"`
	NextURL *string     `json:"nextUrl,omitempty"`
}

// Notification types.

type ActionURL struct {
	Deeplink *string `json:"deeplink,omitempty"`
	Standard *string `json:"standard,omitempty"`
}

type NotificationImage struct {
	URL             *string    `json:"url,omitempty"`
	CallToActionURL *ActionURL `json:"callToActionUrl,omitempty"`
}

type NotificationImages struct {
	Left *NotificationImage `json:"left,omitempty"`
}

type NotificationPartData struct {
	ID    *int    `json:"id,omitempty"`
	Title *string `json:"title,omitempty"`
	Index *int    `json:"index,omitempty"`
	URL   *string `json:"url,omitempty"`
}

type NotificationStoryData struct {
	ID          *int                  `json:"id,omitempty"`
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	Cover       *string               `json:"cover,omitempty"`
	VoteCount   *int                  `json:"voteCount,omitempty"`
	ReadCount   *int                  `json:"readCount,omitempty"`
	URL         *string               `json:"url,omitempty"`
	Part        *NotificationPartData `json:"part,omitempty"`
	NumParts    *int                  `json:"numParts,omitempty"`
	User        *MinUser              `json:"user,omitempty"`
	Category1   *string               `json:"category1,omitempty"`
	Category2   *string               `json:"category2,omitempty"`
	Tag         *string               `json:"tag,omitempty"`
}

type NotificationCommentData struct {
	ID                     *string  `json:"id,omitempty"`
	Body                   *string  `json:"body,omitempty"`
	User                   *MinUser `json:"user,omitempty"`
	ParentID               *string  `json:"parentId,omitempty"`
	NotificationInstanceID *string  `json:"notification_instance_id,omitempty"`
}

type NotificationMessageData struct {
	ID            *int64                    `json:"id,omitempty"`
	Body          *string                   `json:"body,omitempty"`
	CreateDate    *Timestamp                `json:"createDate,omitempty"`
	From          *MinUser                  `json:"from,omitempty"`
	To            *MinUser                  `json:"to,omitempty"`
	NumReplies    *int                      `json:"numReplies,omitempty"`
	IsReply       *bool                     `json:"isReply,omitempty"`
	IsOffensive   *bool                     `json:"isOffensive,omitempty"`
	LatestReplies []NotificationMessageData `json:"latestReplies,omitempty"`
	ParentID      *int64                    `json:"parentId,omitempty"`
	WasBroadcast  *bool                     `json:"wasBroadcast,omitempty"`
}

type NotificationData struct {
	Comment                *NotificationCommentData `json:"comment,omitempty"`
	Story                  *NotificationStoryData   `json:"story,omitempty"`
	HighlightColor         *string                  `json:"highlight_colour,omitempty"`
	Icon                   *string                  `json:"icon,omitempty"`
	Subtype                *string                  `json:"subtype,omitempty"`
	SubType                *string                  `json:"sub_type,omitempty"`
	Body                   *string                  `json:"body,omitempty"`
	Images                 *NotificationImages      `json:"images,omitempty"`
	CallToActionURL        *ActionURL               `json:"callToActionUrl,omitempty"`
	NotificationInstanceID *string                  `json:"notification_instance_id,omitempty"`
	Followed               *MinUser                 `json:"followed,omitempty"`
	Follower               *MinUser                 `json:"follower,omitempty"`
	Message                *NotificationMessageData `json:"message,omitempty"`
	Voter                  *MinUser                 `json:"voter,omitempty"`
}

type NotificationItem struct {
	ID         *int64           `json:"id,omitempty"`
	Type       *string          `json:"type,omitempty"`
	CreateDate *Timestamp       `json:"createDate,omitempty"`
	Data       NotificationData `json:"data"`
	IsRead     *bool            `json:"isRead,omitempty"`
}

// NotificationsResult is the logged-in user's notification feed.
type NotificationsResult struct {
	Feed        []NotificationItem `json:"feed,omitempty"`
	Total       *int               `json:"total,omitempty"`
	HasMore     *bool              `json:"hasMore,omitempty"`
	UnreadTotal *int               `json:"unreadTotal,omitempty"`
	NextURL     *string            `json:"nextUrl,omitempty"`
}
