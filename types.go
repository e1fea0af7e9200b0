package tiktok

import "time"

// User identifies a TikTok account. Either field may be empty; at least one
// must be set before the user can be passed to a lookup. A User built directly
// from an id (GetUserByID) is just as valid as one resolved over the network.
type User struct {
	ID       string
	Username string
}

// UserInfo is a full profile snapshot embedding the user's identity.
type UserInfo struct {
	User           User
	Nickname       string
	Bio            string
	AvatarURL      string
	Verified       bool
	FollowerCount  int
	FollowingCount int
	LikeCount      int
	VideoCount     int
}

// Video identifies a single video by its platform-unique id.
type Video struct {
	ID string
}

// VideoInfo is a full video metadata snapshot. The upstream API serves video
// metadata in two different JSON shapes depending on the endpoint; both
// construct the same VideoInfo.
type VideoInfo struct {
	Video        Video
	Author       User
	Music        AudioInfo
	Description  string
	CreatedAt    time.Time
	CoverURL     string
	PlayURL      string
	PlayCount    int
	LikeCount    int
	CommentCount int
	ShareCount   int
}

// Audio identifies a music track by its platform-unique id.
type Audio struct {
	ID string
}

// AudioInfo is a full track metadata snapshot embedding the audio identity.
type AudioInfo struct {
	Audio      Audio
	Title      string
	AuthorName string
	CoverURL   string
	PlayURL    string
	Duration   int
}

// Tag is a hashtag/challenge. The id is the hashtag name itself; the title is
// populated only once the tag has been resolved through an info lookup.
type Tag struct {
	ID    string
	Title string
}

// TagInfo is a full hashtag metadata snapshot embedding the tag identity.
type TagInfo struct {
	Tag         Tag
	Description string
	VideoCount  int
	ViewCount   int
}

// UserIdentifier addresses a user at the API boundary: either an existing
// User or a bare Username. The canonical identity object is built before
// dispatch, so operations never inspect types at runtime.
type UserIdentifier interface {
	canonicalUser() User
}

func (u User) canonicalUser() User { return u }

// Username addresses a user by handle without a prior lookup.
type Username string

func (n Username) canonicalUser() User { return User{Username: string(n)} }

// TagIdentifier addresses a hashtag: either an existing Tag or a bare TagName.
type TagIdentifier interface {
	canonicalTag() Tag
}

func (t Tag) canonicalTag() Tag { return t }

// TagName addresses a hashtag by name without a prior lookup.
type TagName string

func (n TagName) canonicalTag() Tag { return Tag{ID: string(n)} }
