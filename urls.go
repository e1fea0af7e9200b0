package tiktok

import (
	"fmt"
	"net/url"
	"strconv"
)

// listPageSize is the fixed page cap the upstream list endpoints accept.
const listPageSize = 30

// endpoints holds the upstream API paths, relative to the app's base URL.
// Loaded once at process start; per-request data only ever lands in query
// parameters.
var endpoints = struct {
	trending        string
	userDetail      string
	userPosts       string
	userLikes       string
	itemDetail      string
	musicDetail     string
	musicItems      string
	challengeDetail string
	challengeItems  string
}{
	trending:        "/api/recommend/item_list/",
	userDetail:      "/api/user/detail/",
	userPosts:       "/api/post/item_list/",
	userLikes:       "/api/favorite/item_list/",
	itemDetail:      "/api/item/detail/",
	musicDetail:     "/api/music/detail/",
	musicItems:      "/api/music/item_list/",
	challengeDetail: "/api/challenge/detail/",
	challengeItems:  "/api/challenge/item_list/",
}

// statusCodes are the domain status codes embedded in upstream JSON bodies.
// The platform reports errors this way instead of via the HTTP status line.
var statusCodes = struct {
	success           int64
	illegalIdentifier int64
	notFound          int64
	videoNotFound     int64
}{
	success:           0,
	illegalIdentifier: 10201,
	notFound:          10202,
	videoNotFound:     10204,
}

// buildURL joins the base URL, an endpoint path, and query parameters.
func (a *App) buildURL(path string, query url.Values) string {
	return a.baseURL + path + "?" + query.Encode()
}

func listQuery() url.Values {
	q := url.Values{}
	q.Set("count", strconv.Itoa(listPageSize))
	return q
}

func (a *App) trendingURL() string {
	return a.buildURL(endpoints.trending, listQuery())
}

// userInfoURL accepts either identifying field; the id wins when both are set.
func (a *App) userInfoURL(user User) (string, error) {
	q := url.Values{}
	switch {
	case user.ID != "":
		q.Set("userId", user.ID)
	case user.Username != "":
		q.Set("uniqueId", user.Username)
	default:
		return "", fmt.Errorf("%w: user has neither id nor username", ErrIllegalArgument)
	}
	return a.buildURL(endpoints.userDetail, q), nil
}

func (a *App) recentVideosURL(user User) (string, error) {
	if user.ID == "" {
		return "", fmt.Errorf("%w: user id is required", ErrIllegalArgument)
	}
	q := listQuery()
	q.Set("userId", user.ID)
	return a.buildURL(endpoints.userPosts, q), nil
}

func (a *App) likedVideosURL(user User) (string, error) {
	if user.ID == "" {
		return "", fmt.Errorf("%w: user id is required", ErrIllegalArgument)
	}
	q := listQuery()
	q.Set("userId", user.ID)
	return a.buildURL(endpoints.userLikes, q), nil
}

func (a *App) videoInfoURL(video Video) (string, error) {
	if video.ID == "" {
		return "", fmt.Errorf("%w: video id is required", ErrIllegalArgument)
	}
	q := url.Values{}
	q.Set("itemId", video.ID)
	return a.buildURL(endpoints.itemDetail, q), nil
}

func (a *App) audioInfoURL(audio Audio) (string, error) {
	if audio.ID == "" {
		return "", fmt.Errorf("%w: audio id is required", ErrIllegalArgument)
	}
	q := url.Values{}
	q.Set("musicId", audio.ID)
	return a.buildURL(endpoints.musicDetail, q), nil
}

func (a *App) audioTopVideosURL(audio Audio) (string, error) {
	if audio.ID == "" {
		return "", fmt.Errorf("%w: audio id is required", ErrIllegalArgument)
	}
	q := listQuery()
	q.Set("musicID", audio.ID)
	return a.buildURL(endpoints.musicItems, q), nil
}

func (a *App) tagInfoURL(tag Tag) (string, error) {
	if tag.ID == "" {
		return "", fmt.Errorf("%w: tag id is required", ErrIllegalArgument)
	}
	q := url.Values{}
	q.Set("challengeName", tag.ID)
	return a.buildURL(endpoints.challengeDetail, q), nil
}

func (a *App) tagTopVideosURL(tag Tag) (string, error) {
	if tag.ID == "" {
		return "", fmt.Errorf("%w: tag id is required", ErrIllegalArgument)
	}
	q := listQuery()
	q.Set("challengeID", tag.ID)
	return a.buildURL(endpoints.challengeItems, q), nil
}
